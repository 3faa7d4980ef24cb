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

// Package mover relocates single files into a directory and reports the
// outcome as a value.
package mover

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📦 Outcome is the result of one move attempt
type Outcome struct {
	Source      string // Original path
	Destination string // Target path inside the destination directory
	Err         error  // Why the move failed, nil on success
}

// OK reports whether the file was moved
func (o Outcome) OK() bool {
	return o.Err == nil
}

// 🚚 Mover moves one file into a directory, keeping its base name
type Mover interface {
	Move(ctx context.Context, src, destDir string) Outcome
}

// FileMover is the os-backed Mover. A same-named file already present at the
// destination is handled however rename handles it on the host.
type FileMover struct {
	rename func(oldpath, newpath string) error
	remove func(name string) error
}

// Option configures a FileMover
type Option func(*FileMover)

// WithRename swaps the rename primitive
func WithRename(fn func(oldpath, newpath string) error) Option {
	return func(m *FileMover) {
		m.rename = fn
	}
}

// WithRemove swaps the primitive that deletes the source after a
// cross-device copy
func WithRemove(fn func(name string) error) Option {
	return func(m *FileMover) {
		m.remove = fn
	}
}

// 🏭 New creates a FileMover
func New(opts ...Option) *FileMover {
	m := &FileMover{rename: os.Rename, remove: os.Remove}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Move implements Mover. It never returns an error directly; failures are
// recorded on the Outcome.
func (m *FileMover) Move(ctx context.Context, src, destDir string) (out Outcome) {
	out = Outcome{
		Source:      src,
		Destination: filepath.Join(destDir, filepath.Base(src)),
	}

	defer func() {
		if r := recover(); r != nil {
			out.Err = errors.Errorf("moving %s: %v", src, r)
		}
	}()

	if err := m.move(ctx, out.Source, out.Destination); err != nil {
		out.Err = err
	}
	return out
}

func (m *FileMover) move(ctx context.Context, src, dst string) error {
	renameErr := m.rename(src, dst)
	if renameErr == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(renameErr, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return errors.Errorf("renaming: %w", renameErr)
	}

	// cross-device: copy then drop the source
	zerolog.Ctx(ctx).Debug().Str("src", src).Str("dst", dst).Msg("rename crossed devices, copying instead")
	if err := copyFile(src, dst); err != nil {
		return errors.Errorf("copying across devices: %w", err)
	}
	// the copy stays in place; the file still counts as not moved
	if err := m.remove(src); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("src", src).Str("dst", dst).Msg("copied file but could not remove the source")
		return errors.Errorf("removing source after copy: %w", err)
	}
	return nil
}

// copyFile copies src to dst keeping the permission bits of src
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return errors.Errorf("stat source file: %w", err)
	}

	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	destination, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}

	if _, err := io.Copy(destination, source); err != nil {
		destination.Close()
		os.Remove(dst)
		return errors.Errorf("copying file: %w", err)
	}

	if err := destination.Close(); err != nil {
		os.Remove(dst)
		return errors.Errorf("closing destination file: %w", err)
	}

	return nil
}
