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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/filesort/cmd/filesort/opts"
	"github.com/walteh/filesort/pkg/classify"
	"github.com/walteh/filesort/pkg/log"
	"github.com/walteh/filesort/pkg/mover"
	"github.com/walteh/filesort/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// scriptedPrompter answers prompts from fixed lists and records the labels
type scriptedPrompter struct {
	selects []string
	inputs  []string
	asked   []string
}

func (p *scriptedPrompter) Select(label string, options []string) (string, error) {
	p.asked = append(p.asked, label)
	if len(p.selects) == 0 {
		return "", errors.New("no more menu answers")
	}
	answer := p.selects[0]
	p.selects = p.selects[1:]
	return answer, nil
}

func (p *scriptedPrompter) Input(label string) (string, error) {
	p.asked = append(p.asked, label)
	if len(p.inputs) == 0 {
		return "", errors.New("no more input answers")
	}
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	return answer, nil
}

func newTestOpts(t *testing.T) (*opts.RootOpts, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true

	var console bytes.Buffer
	zlog := zerolog.New(zerolog.NewTestWriter(t))
	return &opts.RootOpts{
		Classifier: classify.New(),
		Mover:      mover.New(),
		Logger:     log.NewWithZerolog(&console, zlog),
		Runner:     operation.NewRunner(&zlog),
	}, &console
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644), "writing %s", name)
	}
}

func TestRunInteractive(t *testing.T) {
	t.Run("specific_type_with_retries", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "a.pdf", "b.txt")

		o, console := newTestOpts(t)
		p := &scriptedPrompter{
			selects: []string{menuSpecificType, menuExit},
			inputs:  []string{"p df", "  PDF ", filepath.Join(dir, "missing"), dir},
		}

		require.NoError(t, runInteractive(context.Background(), o, p))

		assert.FileExists(t, filepath.Join(dir, "pdf_files", "a.pdf"))
		assert.FileExists(t, filepath.Join(dir, "b.txt"))

		out := console.String()
		assert.Equal(t, 1, strings.Count(out, "Invalid file type. Try again."))
		assert.Equal(t, 1, strings.Count(out, "Could not find folder. Please try again."))
		assert.Contains(t, out, "Successfully moved 1 / 1 files")
		assert.Contains(t, out, "Exiting. Goodbye!")
	})

	t.Run("extension_asked_before_folder", func(t *testing.T) {
		dir := t.TempDir()
		o, _ := newTestOpts(t)
		p := &scriptedPrompter{
			selects: []string{menuSpecificType, menuExit},
			inputs:  []string{"pdf", dir},
		}

		require.NoError(t, runInteractive(context.Background(), o, p))
		require.Len(t, p.asked, 4)
		assert.Contains(t, p.asked[1], "file type")
		assert.Contains(t, p.asked[2], "folder")
	})

	t.Run("whole_folder_twice", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "report.docx", "notes")

		o, console := newTestOpts(t)
		p := &scriptedPrompter{
			selects: []string{menuWholeFolder, menuWholeFolder, menuExit},
			inputs:  []string{dir, dir},
		}

		require.NoError(t, runInteractive(context.Background(), o, p))

		assert.FileExists(t, filepath.Join(dir, "docx_files", "report.docx"))
		assert.FileExists(t, filepath.Join(dir, "unknown_files", "notes"))

		out := console.String()
		assert.Contains(t, out, "Successfully moved 2 / 2 files")
		assert.Contains(t, out, "No files found in this folder.")
	})

	t.Run("unknown_choice", func(t *testing.T) {
		o, console := newTestOpts(t)
		p := &scriptedPrompter{selects: []string{"4", menuExit}}

		require.NoError(t, runInteractive(context.Background(), o, p))
		assert.Contains(t, console.String(), "Invalid choice. Please try again.")
	})

	t.Run("prompt_failure", func(t *testing.T) {
		o, _ := newTestOpts(t)
		p := &scriptedPrompter{selects: []string{menuWholeFolder}}

		err := runInteractive(context.Background(), o, p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading folder")
	})

	t.Run("cancelled", func(t *testing.T) {
		o, _ := newTestOpts(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := runInteractive(ctx, o, &scriptedPrompter{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestOrganizeTypes(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.md", "b.md", "c.csv", "d.json")

	o, _ := newTestOpts(t)
	res, err := organizeTypes(context.Background(), o, dir, []string{"md", "csv"})
	require.NoError(t, err)

	assert.Equal(t, operation.Result{Successful: 3, Total: 3}, res)
	assert.FileExists(t, filepath.Join(dir, "md_files", "a.md"))
	assert.FileExists(t, filepath.Join(dir, "csv_files", "c.csv"))
	assert.FileExists(t, filepath.Join(dir, "d.json"))
}

func TestOrganizeFolderMissing(t *testing.T) {
	o, _ := newTestOpts(t)
	_, err := organizeFolder(context.Background(), o, filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "organizing")
}
