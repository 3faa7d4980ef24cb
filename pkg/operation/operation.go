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

	"github.com/walteh/filesort/pkg/classify"
	"github.com/walteh/filesort/pkg/mover"
)

// 🎯 Operation is a single organize workflow over one source directory
type Operation interface {
	// Execute runs the workflow once and returns its tally
	Execute(ctx context.Context) (Result, error)
}

// 📊 Result is the tally of one run
type Result struct {
	Successful int // Files moved
	Total      int // Regular files attempted
}

// Failed returns the number of files that could not be moved
func (r Result) Failed() int {
	return r.Total - r.Successful
}

// 🏷️ Classifier maps a file name to a type label
type Classifier interface {
	Classify(name string) classify.Label
}

// 📢 Reporter receives progress for each run. Output is advisory only.
type Reporter interface {
	Progress(ctx context.Context, index, total int, name string)
	Moved(ctx context.Context, name, label, src, destDir string)
	Failed(ctx context.Context, name, label, src string, err error)
	NoFiles(ctx context.Context, ext string)
	Summary(ctx context.Context, successful, total int)
}

// 🔧 Options contains the collaborators shared by all operations
type Options struct {
	// Source is the directory being organized
	Source string
	// Classifier labels files for whole-folder runs
	Classifier Classifier
	// Mover relocates single files
	Mover mover.Mover
	// Reporter receives progress, may be nil
	Reporter Reporter
}

// BaseOperation holds the options common to every operation
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation fills in default collaborators
func NewBaseOperation(opts Options) BaseOperation {
	if opts.Classifier == nil {
		opts.Classifier = classify.New()
	}
	if opts.Mover == nil {
		opts.Mover = mover.New()
	}
	if opts.Reporter == nil {
		opts.Reporter = nopReporter{}
	}
	return BaseOperation{Options: opts}
}

func (b BaseOperation) batch() *Batch {
	return NewBatch(b.Mover, b.Reporter)
}

type nopReporter struct{}

func (nopReporter) Progress(context.Context, int, int, string)            {}
func (nopReporter) Moved(context.Context, string, string, string, string) {}
func (nopReporter) Failed(context.Context, string, string, string, error) {}
func (nopReporter) NoFiles(context.Context, string)                       {}
func (nopReporter) Summary(context.Context, int, int)                     {}
