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
	"context"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/filesort/cmd/filesort/opts"
	"github.com/walteh/filesort/pkg/config"
	"gitlab.com/tozd/go/errors"
)

const (
	menuSpecificType = "1. Organize by specific file type"
	menuWholeFolder  = "2. Organize entire folder by file types"
	menuExit         = "3. Exit"
)

var menu = []string{menuSpecificType, menuWholeFolder, menuExit}

// 💬 Prompter asks the user for input on the terminal
type Prompter interface {
	// Select shows options and returns the chosen one
	Select(label string, options []string) (string, error)
	// Input reads one line of free text
	Input(label string) (string, error)
}

// NewPtermPrompter returns a Prompter backed by pterm's interactive printers
func NewPtermPrompter() Prompter {
	return ptermPrompter{}
}

type ptermPrompter struct{}

func (ptermPrompter) Select(label string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.WithOptions(options).Show(label)
}

func (ptermPrompter) Input(label string) (string, error) {
	return pterm.DefaultInteractiveTextInput.Show(label)
}

// NewInteractiveCmd creates the menu-driven prompt loop
func NewInteractiveCmd(opts *opts.RootOpts, prompter Prompter) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Organize folders from an interactive menu",
		Long: `Interactive repeatedly offers to organize a folder by one file type or
by every file type, asking again whenever a folder or extension is not
valid, until Exit is chosen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), opts, prompter)
		},
	}

	return cmd
}

// runInteractive loops over the menu until the user exits or a prompt fails.
// A failed run is reported and the menu is shown again.
func runInteractive(ctx context.Context, o *opts.RootOpts, p Prompter) error {
	logger := zerolog.Ctx(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := p.Select("Choose an option", menu)
		if err != nil {
			return errors.Errorf("reading menu choice: %w", err)
		}
		logger.Debug().Str("choice", choice).Msg("menu choice")

		switch choice {
		case menuSpecificType:
			ext, err := askExtension(o, p)
			if err != nil {
				return err
			}
			folder, err := askFolder(o, p)
			if err != nil {
				return err
			}
			if _, err := organizeTypes(ctx, o, folder, []string{ext}); err != nil {
				o.Logger.Error(err.Error())
			}
		case menuWholeFolder:
			folder, err := askFolder(o, p)
			if err != nil {
				return err
			}
			if _, err := organizeFolder(ctx, o, folder); err != nil {
				o.Logger.Error(err.Error())
			}
		case menuExit:
			o.Logger.Info("Exiting. Goodbye!")
			return nil
		default:
			o.Logger.Warning("Invalid choice. Please try again.")
		}
	}
}

// askFolder prompts until the answer names an existing directory
func askFolder(o *opts.RootOpts, p Prompter) (string, error) {
	for {
		input, err := p.Input("provide the path to the folder you would like to organize")
		if err != nil {
			return "", errors.Errorf("reading folder: %w", err)
		}
		folder, err := config.ValidateFolder(input)
		if err == nil {
			return folder, nil
		}
		o.Logger.Warning("Could not find folder. Please try again.")
	}
}

// askExtension prompts until the answer is an alphanumeric extension
func askExtension(o *opts.RootOpts, p Prompter) (string, error) {
	for {
		input, err := p.Input("provide file type to be organized (ex: txt, pdf, ...)")
		if err != nil {
			return "", errors.Errorf("reading file type: %w", err)
		}
		ext, err := config.NormalizeExtension(input)
		if err == nil {
			return ext, nil
		}
		o.Logger.Warning("Invalid file type. Try again.")
	}
}
