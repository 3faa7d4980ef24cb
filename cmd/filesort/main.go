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
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/walteh/filesort/cmd/filesort/commands"
	"github.com/walteh/filesort/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := newRootCmd(os.Stdout, os.Stderr, commands.NewPtermPrompter())
	err := cmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		log.NewWithZerolog(os.Stderr, zerolog.Nop()).Error(err.Error())
		os.Exit(1)
	}
}
