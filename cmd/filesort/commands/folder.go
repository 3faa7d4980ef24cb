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

// NewFolderCmd creates the command that organizes a whole folder by type
func NewFolderCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder <folder>",
		Short: "Sort every file of a folder into {type}_files directories",
		Long: `Folder classifies each top-level, non-hidden file of a folder by its
extension and moves it into a sibling directory named after the type,
for example report.docx into docx_files. Files without a known type
go to unknown_files. Subdirectories are left alone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := config.ValidateFolder(args[0])
			if err != nil {
				return errors.Errorf("validating folder: %w", err)
			}

			_, err = organizeFolder(cmd.Context(), opts, folder)
			return err
		},
	}

	return cmd
}
