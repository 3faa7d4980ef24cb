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

package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/filesort/cmd/filesort/opts"
	"github.com/walteh/filesort/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// NewTypeCmd creates the command that organizes files of given extensions
func NewTypeCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type <folder> <ext> [ext...]",
		Short: "Move every file with the given extensions into {ext}_files",
		Long: `Type moves the top-level files of a folder whose name ends in .<ext>
into a sibling directory named <ext>_files. Extensions are matched
case-sensitively after being lowercased, and must be alphanumeric.`,
		Example: `  filesort type ~/Downloads pdf
  filesort type . docx xlsx`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := config.ValidateFolder(args[0])
			if err != nil {
				return errors.Errorf("validating folder: %w", err)
			}

			exts := make([]string, 0, len(args)-1)
			for _, arg := range args[1:] {
				ext, err := config.NormalizeExtension(arg)
				if err != nil {
					return errors.Errorf("validating extension: %w", err)
				}
				exts = append(exts, ext)
			}

			_, err = organizeTypes(cmd.Context(), opts, folder, exts)
			return err
		},
	}

	return cmd
}
