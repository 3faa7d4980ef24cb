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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/filesort/pkg/status"
)

// 🎯 Logger writes organize events to the console and mirrors them to zerolog
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.FileFormatter
	mu        sync.Mutex
}

// 🏭 NewWithZerolog creates a logger that mirrors events to an existing zerolog logger
func NewWithZerolog(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:      zlog,
		console:   console,
		formatter: status.NewDefaultFileFormatter(),
	}
}

// 📝 Progress prints the "[i/total] Moving: name" line
func (l *Logger) Progress(ctx context.Context, index, total int, name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatter.FormatProgress(index, total, name))
	l.zlog.Debug().Int("index", index).Int("total", total).Str("file", name).Msg("moving file")
}

// 📝 Moved records a successful move
func (l *Logger) Moved(ctx context.Context, name, label, src, destDir string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, status.FormatFileOperation(name, label, status.StatusMoved))

	l.zlog.Info().
		Str("file", src).
		Str("label", label).
		Str("destination", destDir).
		Msg(l.formatter.FormatMoved(src, destDir))
}

// 📝 Failed records a failed move
func (l *Logger) Failed(ctx context.Context, name, label, src string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, status.FormatFileOperation(name, label, status.StatusFailed))
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(l.formatter.FormatFailure(src, err)))

	l.zlog.Error().
		Err(err).
		Str("file", src).
		Str("label", label).
		Msg("failed to move file")
}

// 📝 NoFiles reports an empty candidate set
func (l *Logger) NoFiles(ctx context.Context, ext string) {
	l.Warning(l.formatter.FormatNoFiles(ext))
}

// 📝 Summary prints the successful/total line after a blank line
func (l *Logger) Summary(ctx context.Context, successful, total int) {
	l.LogNewline()
	msg := l.formatter.FormatSummary(successful, total)
	if successful < total {
		l.Warning(msg)
		return
	}
	l.Success(msg)
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("filesort")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}
