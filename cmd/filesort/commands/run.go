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

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/filesort/cmd/filesort/opts"
	"github.com/walteh/filesort/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// organizeTypes runs one specific type operation per extension over folder
func organizeTypes(ctx context.Context, o *opts.RootOpts, folder string, exts []string) (operation.Result, error) {
	o.Logger.Header(fmt.Sprintf("organizing *.%s in %s", strings.Join(exts, ", *."), folder))

	ops := make([]operation.NamedOperation, 0, len(exts))
	for _, ext := range exts {
		ops = append(ops, operation.NamedOperation{
			Name: "type " + ext,
			Op:   operation.NewSpecificTypeOperation(o.OperationOptions(folder), ext),
		})
	}

	res, err := o.Runner.RunAll(ctx, ops...)
	if err != nil {
		return res, errors.Errorf("organizing %s: %w", folder, err)
	}
	return res, nil
}

// organizeFolder sorts every top-level file of folder by its type label
func organizeFolder(ctx context.Context, o *opts.RootOpts, folder string) (operation.Result, error) {
	o.Logger.Header("organizing " + folder)

	res, err := o.Runner.Run(ctx, "folder", operation.NewWholeFolderOperation(o.OperationOptions(folder)))
	if err != nil {
		return res, errors.Errorf("organizing %s: %w", folder, err)
	}
	return res, nil
}
