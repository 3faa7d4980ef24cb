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

package opts

import (
	"github.com/walteh/filesort/pkg/classify"
	"github.com/walteh/filesort/pkg/config"
	"github.com/walteh/filesort/pkg/log"
	"github.com/walteh/filesort/pkg/mover"
	"github.com/walteh/filesort/pkg/operation"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	Classifier *classify.Classifier
	Mover      mover.Mover
	Logger     *log.Logger
	Runner     *operation.OperationRunner
}

// OperationOptions returns the collaborators for a run over source
func (o *RootOpts) OperationOptions(source string) operation.Options {
	opts := operation.Options{
		Source: source,
		Mover:  o.Mover,
	}
	// nil pointers must not reach the interface fields
	if o.Classifier != nil {
		opts.Classifier = o.Classifier
	}
	if o.Logger != nil {
		opts.Reporter = o.Logger
	}
	return opts
}
