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
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	labelWidth  = 15 // Width for the type label
	statusWidth = 10 // Width for status text
)

// 🎯 FormatFileOperation formats one organized file as an aligned row
func FormatFileOperation(name, label string, st FileStatus) string {
	var prefix string
	switch st {
	case StatusMoved:
		prefix = color.GreenString("✓")
	case StatusFailed:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	namePart := fmt.Sprintf("%-*s", nameWidth, name)
	labelPart := color.CyanString("%-*s", labelWidth, label)
	statusPart := fmt.Sprintf("%-*s", statusWidth, st.String())

	return fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		labelPart,
		statusPart,
	)
}
