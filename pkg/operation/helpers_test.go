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
	"sort"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/filesort/pkg/mover"
)

// 🔧 MockMover is a mock implementation of the mover.Mover interface
type MockMover struct {
	mock.Mock
}

func (m *MockMover) Move(ctx context.Context, src, destDir string) mover.Outcome {
	result := m.Called(ctx, src, destDir)
	return result.Get(0).(mover.Outcome)
}

// 📝 event is one call made to the recordingReporter
type event struct {
	kind  string
	name  string
	label string
	err   error
}

// recordingReporter captures everything a run reports
type recordingReporter struct {
	mu         sync.Mutex
	events     []event
	progress   []string
	noFiles    []string
	summaries  []Result
	afterMoved func()
}

func (r *recordingReporter) Progress(ctx context.Context, index, total int, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = append(r.progress, name)
}

func (r *recordingReporter) Moved(ctx context.Context, name, label, src, destDir string) {
	r.mu.Lock()
	r.events = append(r.events, event{kind: "moved", name: name, label: label})
	hook := r.afterMoved
	r.mu.Unlock()
	if hook != nil {
		hook()
	}
}

func (r *recordingReporter) Failed(ctx context.Context, name, label, src string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{kind: "failed", name: name, label: label, err: err})
}

func (r *recordingReporter) NoFiles(ctx context.Context, ext string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.noFiles = append(r.noFiles, ext)
}

func (r *recordingReporter) Summary(ctx context.Context, successful, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summaries = append(r.summaries, Result{Successful: successful, Total: total})
}

func (r *recordingReporter) failed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var names []string
	for _, e := range r.events {
		if e.kind == "failed" {
			names = append(names, e.name)
		}
	}
	return names
}

// 🧪 testContext returns a context carrying a test logger
func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

// touch creates files with small contents under dir
func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("content of "+name), 0o644))
	}
}

// listDir returns the sorted names directly under dir
func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}
