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

// Package classify maps file names to the short type labels used to name
// destination directories.
package classify

import (
	"mime"
	"path/filepath"
	"regexp"
	"strings"
)

// 🏷️ Label is a lowercase alphanumeric file category such as "pdf" or "docx"
type Label string

// Unknown is the label for names whose media type cannot be determined
const Unknown Label = "unknown"

// dirSuffix is appended to a label to name its destination directory
const dirSuffix = "_files"

var labelPattern = regexp.MustCompile(`^[a-z0-9]+$`)

// DirName returns the destination directory name for the label
func (l Label) DirName() string {
	return string(l) + dirSuffix
}

// IsValid reports whether s is safe to use as a label
func IsValid(s string) bool {
	return labelPattern.MatchString(s)
}

// 🔍 Sniffer resolves a media type ("type/subtype") from a file name
type Sniffer interface {
	Sniff(name string) (string, bool)
}

// RegistrySniffer looks the extension up in the user-provided table, the
// platform media-type registry, and finally the built-in table.
type RegistrySniffer struct {
	extra map[string]string
}

// NewRegistrySniffer creates a sniffer; extra maps extensions (with or
// without the leading dot) to media types and takes precedence.
func NewRegistrySniffer(extra map[string]string) *RegistrySniffer {
	s := &RegistrySniffer{extra: make(map[string]string, len(extra))}
	for ext, typ := range extra {
		s.extra[normalizeExt(ext)] = typ
	}
	return s
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Sniff implements Sniffer
func (s *RegistrySniffer) Sniff(name string) (string, bool) {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return "", false
	}
	lower := strings.ToLower(ext)

	if typ, ok := s.extra[lower]; ok && typ != "" {
		return typ, true
	}
	if typ := mime.TypeByExtension(ext); typ != "" {
		return typ, true
	}
	if typ, ok := builtinTypes[lower]; ok {
		return typ, true
	}
	return "", false
}

// 🎯 Classifier turns file names into labels
type Classifier struct {
	sniffer Sniffer
	aliases map[string]Label
}

// Option configures a Classifier
type Option func(*Classifier)

// WithSniffer replaces the default registry sniffer
func WithSniffer(s Sniffer) Option {
	return func(c *Classifier) {
		c.sniffer = s
	}
}

// WithAliases adds subtype aliases on top of the defaults. Entries whose
// label is not a valid Label are ignored.
func WithAliases(extra map[string]string) Option {
	return func(c *Classifier) {
		for subtype, label := range extra {
			if !IsValid(label) {
				continue
			}
			c.aliases[strings.ToLower(subtype)] = Label(label)
		}
	}
}

// 🏭 New creates a classifier backed by the default alias table
func New(opts ...Option) *Classifier {
	c := &Classifier{
		sniffer: NewRegistrySniffer(nil),
		aliases: make(map[string]Label, len(defaultAliases)),
	}
	for k, v := range defaultAliases {
		c.aliases[k] = v
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the label for a file name. It never fails: anything it
// cannot place becomes Unknown.
func (c *Classifier) Classify(name string) Label {
	typ, ok := c.sniffer.Sniff(filepath.Base(name))
	if !ok {
		return Unknown
	}

	subtype := Subtype(typ)
	if subtype == "" {
		return Unknown
	}
	if alias, ok := c.aliases[subtype]; ok {
		return alias
	}
	return Normalize(subtype)
}

// Subtype extracts the lowercase subtype from a media type, dropping any
// parameters. Returns "" when there is no subtype.
func Subtype(mediaType string) string {
	base, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		base, _, _ = strings.Cut(mediaType, ";")
	}
	base = strings.ToLower(strings.TrimSpace(base))
	_, sub, ok := strings.Cut(base, "/")
	if !ok {
		return ""
	}
	return sub
}

// Normalize reduces a raw subtype to a label by lowercasing it and keeping
// only [a-z0-9], so "x-matroska" becomes "xmatroska". An empty result is
// Unknown.
func Normalize(subtype string) Label {
	s := strings.ToLower(subtype)

	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return Unknown
	}
	return Label(b.String())
}
