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
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏃 OperationRunner executes operations one after another
type OperationRunner struct {
	logger *zerolog.Logger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger) *OperationRunner {
	return &OperationRunner{
		logger: logger,
	}
}

// 🏃 Run executes an operation and logs its tally
func (r *OperationRunner) Run(ctx context.Context, name string, op Operation) (Result, error) {
	start := time.Now()
	r.logger.Debug().Str("operation", name).Msg("starting operation")

	res, err := op.Execute(r.logger.WithContext(ctx))
	if err != nil {
		r.logger.Debug().Err(err).Str("operation", name).Msg("operation stopped")
		return res, errors.Errorf("running %s: %w", name, err)
	}

	r.logger.Info().
		Str("operation", name).
		Int("successful", res.Successful).
		Int("total", res.Total).
		Dur("elapsed", time.Since(start)).
		Msg("operation complete")

	return res, nil
}

// NamedOperation pairs an operation with the name used in logs
type NamedOperation struct {
	Name string
	Op   Operation
}

// RunAll executes operations in order, stopping at the first error. The
// returned Result sums every run that happened.
func (r *OperationRunner) RunAll(ctx context.Context, ops ...NamedOperation) (Result, error) {
	var total Result
	for _, n := range ops {
		res, err := r.Run(ctx, n.Name, n.Op)
		total.Successful += res.Successful
		total.Total += res.Total
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
