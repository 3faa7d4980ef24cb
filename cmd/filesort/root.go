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

package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/filesort/cmd/filesort/commands"
	"github.com/walteh/filesort/cmd/filesort/opts"
	"github.com/walteh/filesort/pkg/config"
	"github.com/walteh/filesort/pkg/log"
	"github.com/walteh/filesort/pkg/mover"
	"github.com/walteh/filesort/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// rootFlags are the persistent flags shared by every command
type rootFlags struct {
	configFile string
	debug      bool
}

// newRootCmd builds the command tree. Console output goes to stdout and
// structured logs to stderr.
func newRootCmd(stdout, stderr io.Writer, prompter commands.Prompter) *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "filesort",
		Short: "Sort the files of a folder into per-type directories",
		Long: `filesort moves the files of a folder into sibling directories named
after their type, such as pdf_files or docx_files. Only the top level of
the folder is touched and nothing is ever deleted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newRootOpts(cmd.Context(), flags, stdout, stderr, rootOpts)
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewTypeCmd(rootOpts),
		commands.NewFolderCmd(rootOpts),
		commands.NewInteractiveCmd(rootOpts, prompter),
		newVersionCmd(),
	)

	return cmd
}

// newRootOpts fills rootOpts from the parsed flags and returns a context
// carrying the structured logger
func newRootOpts(ctx context.Context, flags *rootFlags, stdout, stderr io.Writer, rootOpts *opts.RootOpts) (context.Context, error) {
	zlog := setupLogging(stderr, flags.debug)
	ctx = zlog.WithContext(ctx)

	wd, err := os.Getwd()
	if err != nil {
		return ctx, errors.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Resolve(ctx, flags.configFile, wd)
	if err != nil {
		return ctx, errors.Errorf("loading config: %w", err)
	}

	logger := log.NewWithZerolog(stdout, zlog)

	rootOpts.Config = cfg
	rootOpts.Classifier = cfg.Classifier()
	rootOpts.Mover = mover.New()
	rootOpts.Logger = logger
	rootOpts.Runner = operation.NewRunner(&zlog)

	return ctx, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "options file path (default: .filesort.{yaml,yml,json,hcl} in the working directory)")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging builds the structured logger. The console already shows
// progress, so only warnings and above are logged unless debugging.
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}
