// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 📄 Entry is one top-level item of the source directory
type Entry struct {
	Path    string // Full path
	Name    string // Base name
	Regular bool   // Whether the entry is (or links to) a regular file
}

// isHidden reports whether a name is a dotfile
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// 📂 ListFolder returns the non-hidden top-level entries of dir, files and
// directories alike, in directory order.
func ListFolder(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("reading directory: %w", err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		if isHidden(d.Name()) {
			continue
		}
		path := filepath.Join(dir, d.Name())
		regular := d.Type().IsRegular()
		if d.Type()&fs.ModeSymlink != 0 {
			regular = isRegular(path)
		}
		entries = append(entries, Entry{Path: path, Name: d.Name(), Regular: regular})
	}
	return entries, nil
}

// 🔍 GlobFolder returns the top-level entries of dir matching "*.{ext}".
// Matching is case-sensitive and, like the glob itself, includes dotfiles.
// ext must already be validated as letters and digits, so it carries no
// glob metacharacters.
func GlobFolder(dir, ext string) ([]Entry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Errorf("reading directory: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("reading directory: %s is not a directory", dir)
	}

	pattern := "*." + ext
	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, errors.Errorf("matching %q: %w", pattern, err)
	}

	entries := make([]Entry, 0, len(matches))
	for _, name := range matches {
		path := filepath.Join(dir, filepath.FromSlash(name))
		entries = append(entries, Entry{Path: path, Name: filepath.Base(path), Regular: isRegular(path)})
	}
	return entries, nil
}

// isRegular follows symlinks; anything that cannot be stat'd is not regular
func isRegular(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
