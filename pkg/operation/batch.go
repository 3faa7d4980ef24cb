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

package operation

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/filesort/pkg/classify"
	"github.com/walteh/filesort/pkg/mover"
	"gitlab.com/tozd/go/errors"
)

// Resolver picks the label for an entry
type Resolver func(Entry) classify.Label

// 📦 Batch moves a set of candidates into per-label directories, one file at
// a time, tallying successes.
type Batch struct {
	mover    mover.Mover
	reporter Reporter
	mkdir    func(path string, perm os.FileMode) error
}

// 🏭 NewBatch creates a batch runner
func NewBatch(m mover.Mover, r Reporter) *Batch {
	if r == nil {
		r = nopReporter{}
	}
	return &Batch{
		mover:    m,
		reporter: r,
		mkdir:    os.MkdirAll,
	}
}

// Run organizes candidates found in source. Non-regular entries are skipped
// and do not count toward the total. A failure to create a directory or move
// a file only affects that file. The returned error is non-nil only when ctx
// is cancelled; Successful then counts the files moved before that point.
func (b *Batch) Run(ctx context.Context, source string, candidates []Entry, resolve Resolver) (Result, error) {
	logger := zerolog.Ctx(ctx)

	files := make([]Entry, 0, len(candidates))
	for _, c := range candidates {
		if !c.Regular {
			logger.Debug().Str("path", c.Path).Msg("skipping non-regular entry")
			continue
		}
		files = append(files, c)
	}

	res := Result{Total: len(files)}
	if res.Total == 0 {
		return res, nil
	}

	created := make(map[classify.Label]string)
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return res, errors.Errorf("organizing %s: %w", source, err)
		}

		label := resolve(file)
		b.reporter.Progress(ctx, i+1, res.Total, file.Name)

		destDir, err := b.destination(source, label, created)
		if err != nil {
			b.reporter.Failed(ctx, file.Name, string(label), file.Path, err)
			continue
		}

		out := b.mover.Move(ctx, file.Path, destDir)
		if !out.OK() {
			b.reporter.Failed(ctx, file.Name, string(label), file.Path, out.Err)
			continue
		}

		res.Successful++
		b.reporter.Moved(ctx, file.Name, string(label), file.Path, destDir)
	}

	return res, nil
}

// destination returns source/{label}_files, creating it the first time a
// label is seen. Failed creations are not remembered.
func (b *Batch) destination(source string, label classify.Label, created map[classify.Label]string) (string, error) {
	if dir, ok := created[label]; ok {
		return dir, nil
	}

	name := label.DirName()
	if label == "" || filepath.Base(name) != name {
		return "", errors.Errorf("invalid label %q", label)
	}

	dir := filepath.Join(source, name)
	if err := b.mkdir(dir, 0o755); err != nil {
		return "", errors.Errorf("creating directory %s: %w", name, err)
	}
	created[label] = dir
	return dir, nil
}
