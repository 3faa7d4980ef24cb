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
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/filesort/pkg/classify"
	"gitlab.com/tozd/go/errors"
)

// 📚 Config holds the user's additions to the classification tables
type Config struct {
	// Aliases maps a raw media subtype to a label, e.g. "plain" -> "text"
	Aliases map[string]string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	// Extensions maps a file extension to a media type, e.g. "heic" -> "image/heic"
	Extensions map[string]string `json:"extensions,omitempty" yaml:"extensions,omitempty"`

	location string
}

// Default returns an empty configuration
func Default() *Config {
	return &Config{}
}

// Location returns the file the config was loaded from, "" for defaults
func (c *Config) Location() string {
	return c.location
}

// 🔍 Validate checks that every alias is a usable label and every extension
// maps to a "type/subtype" media type
func Validate(ctx context.Context, cfg *Config) error {
	for _, subtype := range sortedKeys(cfg.Aliases) {
		label := cfg.Aliases[subtype]
		if strings.TrimSpace(subtype) == "" {
			return errors.Errorf("aliases: empty subtype")
		}
		if !classify.IsValid(label) {
			return errors.Errorf("aliases.%s: label %q must be lowercase letters and digits", subtype, label)
		}
	}

	for _, ext := range sortedKeys(cfg.Extensions) {
		typ := cfg.Extensions[ext]
		if strings.Trim(ext, ". ") == "" {
			return errors.Errorf("extensions: empty extension")
		}
		if classify.Subtype(typ) == "" {
			return errors.Errorf("extensions.%s: %q is not a media type", ext, typ)
		}
	}

	zerolog.Ctx(ctx).Debug().
		Int("aliases", len(cfg.Aliases)).
		Int("extensions", len(cfg.Extensions)).
		Msg("config validated")

	return nil
}

// 🏷️ Classifier builds a classifier that includes the configured tables
func (c *Config) Classifier() *classify.Classifier {
	return classify.New(
		classify.WithSniffer(classify.NewRegistrySniffer(c.Extensions)),
		classify.WithAliases(c.Aliases),
	)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
