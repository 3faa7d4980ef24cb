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

// 🗂️ NewWholeFolderOperation creates an operation that sorts every visible
// file of the source directory into a directory named after its type
func NewWholeFolderOperation(opts Options) Operation {
	return &wholeFolderOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

type wholeFolderOperation struct {
	BaseOperation
}

// 🏃 Execute runs the whole folder operation
func (op *wholeFolderOperation) Execute(ctx context.Context) (Result, error) {
	zerolog.Ctx(ctx).Debug().Str("source", op.Source).Msg("organizing entire folder")

	candidates, err := ListFolder(op.Source)
	if err != nil {
		return Result{}, errors.Errorf("listing folder: %w", err)
	}

	res, err := op.batch().Run(ctx, op.Source, candidates, func(e Entry) classify.Label {
		return op.Classifier.Classify(e.Name)
	})
	if err != nil {
		return res, err
	}

	if res.Total == 0 {
		op.Reporter.NoFiles(ctx, "")
	}
	op.Reporter.Summary(ctx, res.Successful, res.Total)

	return res, nil
}
