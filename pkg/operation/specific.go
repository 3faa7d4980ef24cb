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

	"github.com/rs/zerolog"
	"github.com/walteh/filesort/pkg/classify"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewSpecificTypeOperation creates an operation that moves every
// "*.{ext}" file of the source directory into "{ext}_files"
func NewSpecificTypeOperation(opts Options, ext string) Operation {
	return &specificTypeOperation{
		BaseOperation: NewBaseOperation(opts),
		ext:           ext,
	}
}

// 📦 specificTypeOperation implements the single-extension workflow
type specificTypeOperation struct {
	BaseOperation
	ext string
}

// 🏃 Execute runs the specific type operation
func (op *specificTypeOperation) Execute(ctx context.Context) (Result, error) {
	if !classify.IsValid(op.ext) {
		return Result{}, errors.Errorf("invalid extension %q: must be lowercase letters and digits", op.ext)
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("source", op.Source).Str("ext", op.ext).Msg("organizing files of one type")

	candidates, err := GlobFolder(op.Source, op.ext)
	if err != nil {
		return Result{}, errors.Errorf("listing %s files: %w", op.ext, err)
	}

	label := classify.Label(op.ext)
	res, err := op.batch().Run(ctx, op.Source, candidates, func(Entry) classify.Label {
		return label
	})
	if err != nil {
		return res, err
	}

	if res.Total == 0 {
		op.Reporter.NoFiles(ctx, op.ext)
	}
	op.Reporter.Summary(ctx, res.Successful, res.Total)

	return res, nil
}
