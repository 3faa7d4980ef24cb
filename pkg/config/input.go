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

package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

var alnum = regexp.MustCompile(`^[a-z0-9]+$`)

// ErrInvalidExtension is returned for extensions that are not alphanumeric
var ErrInvalidExtension = errors.Base("invalid file type")

// ErrInvalidFolder is returned for paths that are not existing directories
var ErrInvalidFolder = errors.Base("could not find folder")

// 📂 ValidateFolder checks that path names an existing directory and returns
// it in absolute form
func ValidateFolder(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.Errorf("%w: empty path", ErrInvalidFolder)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", errors.WrapWith(err, ErrInvalidFolder)
	}
	if !info.IsDir() {
		return "", errors.Errorf("%w: %s is not a directory", ErrInvalidFolder, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Errorf("resolving %s: %w", path, err)
	}
	return abs, nil
}

// 🏷️ NormalizeExtension trims and lowercases a user-typed extension and
// checks that it is alphanumeric. A single leading dot is accepted.
func NormalizeExtension(input string) (string, error) {
	ext := strings.ToLower(strings.TrimSpace(input))
	ext = strings.TrimPrefix(ext, ".")
	if !alnum.MatchString(ext) {
		return "", errors.Errorf("%w: %q", ErrInvalidExtension, input)
	}
	return ext, nil
}
