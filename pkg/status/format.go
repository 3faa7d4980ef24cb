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

package status

import (
	"fmt"
)

// FileFormatter defines how organize events are rendered as text
type FileFormatter interface {
	// FormatProgress formats the line printed before a file is moved
	FormatProgress(index, total int, name string) string

	// FormatMoved formats a successful move
	FormatMoved(src, destDir string) string

	// FormatFailure formats a failed move
	FormatFailure(src string, err error) string

	// FormatNoFiles formats the message for an empty candidate set; ext is
	// empty for whole-folder runs
	FormatNoFiles(ext string) string

	// FormatSummary formats the final tally
	FormatSummary(successful, total int) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatProgress renders "[i/total] Moving: name"
func (f *DefaultFileFormatter) FormatProgress(index, total int, name string) string {
	return fmt.Sprintf("[%d/%d] Moving: %s", index, total, name)
}

func (f *DefaultFileFormatter) FormatMoved(src, destDir string) string {
	return fmt.Sprintf("Moved: %s -> %s", src, destDir)
}

func (f *DefaultFileFormatter) FormatFailure(src string, err error) string {
	if err == nil {
		return fmt.Sprintf("Failed to move: %s", src)
	}
	return fmt.Sprintf("Failed to move: %s. Error: %v", src, err)
}

func (f *DefaultFileFormatter) FormatNoFiles(ext string) string {
	if ext == "" {
		return "No files found in this folder."
	}
	return fmt.Sprintf("No files found with type: %s", ext)
}

// FormatSummary renders the successful/total line, with a percentage when
// anything was attempted
func (f *DefaultFileFormatter) FormatSummary(successful, total int) string {
	if total == 0 {
		return "Organization Complete! Successfully moved 0 / 0 files."
	}
	percentage := float64(successful) / float64(total) * 100
	return fmt.Sprintf("Organization Complete! Successfully moved %d / %d files (%.0f%%).", successful, total, percentage)
}
