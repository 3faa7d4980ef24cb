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

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/filesort/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// scriptedPrompter answers prompts from fixed lists
type scriptedPrompter struct {
	selects []string
	inputs  []string
}

func (p *scriptedPrompter) Select(label string, options []string) (string, error) {
	if len(p.selects) == 0 {
		return "", errors.New("no more menu answers")
	}
	answer := p.selects[0]
	p.selects = p.selects[1:]
	return answer, nil
}

func (p *scriptedPrompter) Input(label string) (string, error) {
	if len(p.inputs) == 0 {
		return "", errors.New("no more input answers")
	}
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	return answer, nil
}

func execute(t *testing.T, prompter *scriptedPrompter, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	if prompter == nil {
		prompter = &scriptedPrompter{}
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr, prompter)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644), "writing %s", name)
	}
}

func TestFolderCommand(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "report.docx", "notes.txt", "README")

	out, err := execute(t, nil, "folder", dir)
	require.NoError(t, err, "running folder command")

	assert.FileExists(t, filepath.Join(dir, "docx_files", "report.docx"))
	assert.FileExists(t, filepath.Join(dir, "txt_files", "notes.txt"))
	assert.FileExists(t, filepath.Join(dir, "unknown_files", "README"))
	assert.Contains(t, out, "Successfully moved 3 / 3 files")
}

func TestTypeCommand(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.pdf", "b.pdf", "c.docx", "d.txt")

	out, err := execute(t, nil, "type", dir, "PDF", ".docx")
	require.NoError(t, err, "running type command")

	assert.FileExists(t, filepath.Join(dir, "pdf_files", "a.pdf"))
	assert.FileExists(t, filepath.Join(dir, "pdf_files", "b.pdf"))
	assert.FileExists(t, filepath.Join(dir, "docx_files", "c.docx"))
	assert.FileExists(t, filepath.Join(dir, "d.txt"), "unlisted types stay put")
	assert.NoDirExists(t, filepath.Join(dir, "txt_files"))
	assert.Contains(t, out, "Successfully moved 2 / 2 files")
	assert.Contains(t, out, "Successfully moved 1 / 1 files")
}

func TestTypeCommandNoMatches(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt")

	out, err := execute(t, nil, "type", dir, "pdf")
	require.NoError(t, err, "running type command")

	assert.Contains(t, out, "No files found with type: pdf")
	assert.NoDirExists(t, filepath.Join(dir, "pdf_files"))
}

func TestCommandInputErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "missing_folder",
			args:    []string{"folder", filepath.Join(dir, "missing")},
			wantErr: config.ErrInvalidFolder,
		},
		{
			name:    "type_missing_folder",
			args:    []string{"type", filepath.Join(dir, "missing"), "pdf"},
			wantErr: config.ErrInvalidFolder,
		},
		{
			name:    "bad_extension",
			args:    []string{"type", dir, "p-df"},
			wantErr: config.ErrInvalidExtension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, nil, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "unexpected error: %v", err)
		})
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "notes.txt", "photo.heic")

	cfgPath := filepath.Join(t.TempDir(), "opts.yaml")
	cfg := `
aliases:
  plain: text
  heic: photo
extensions:
  .heic: image/heic
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644), "writing config")

	_, err := execute(t, nil, "--config", cfgPath, "folder", dir)
	require.NoError(t, err, "running folder command")

	assert.FileExists(t, filepath.Join(dir, "text_files", "notes.txt"))
	assert.FileExists(t, filepath.Join(dir, "photo_files", "photo.heic"))
}

func TestConfigFlagInvalid(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "opts.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("aliases:\n  plain: \"not valid\"\n"), 0644), "writing config")

	_, err := execute(t, nil, "--config", cfgPath, "folder", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestInteractiveCommand(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.csv")

	prompter := &scriptedPrompter{
		selects: []string{"2. Organize entire folder by file types", "3. Exit"},
		inputs:  []string{dir},
	}

	out, err := execute(t, prompter, "interactive")
	require.NoError(t, err, "running interactive command")

	assert.FileExists(t, filepath.Join(dir, "csv_files", "a.csv"))
	assert.Contains(t, out, "Exiting. Goodbye!")
}

func TestVersionCommand(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := execute(t, nil, "version")
		require.NoError(t, err)
		assert.Contains(t, out, "filesort version info")
		assert.Contains(t, out, "Go:")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, nil, "version", "--json")
		require.NoError(t, err)

		var info VersionInfo
		require.NoError(t, json.Unmarshal([]byte(out), &info), "decoding version output")
		assert.NotEmpty(t, info.GoVersion)
		assert.NotEmpty(t, info.Platform)
		assert.NotEmpty(t, info.Version)
	})
}

func TestVersionIgnoresBrokenConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), ".filesort.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("aliases: [not, a, map"), 0644), "writing config")

	_, err := execute(t, nil, "--config", cfgPath, "folder", t.TempDir())
	require.Error(t, err, "other commands should reject the config")

	out, err := execute(t, nil, "--config", cfgPath, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "filesort version info")
}

func TestFormatVersion(t *testing.T) {
	out := FormatVersion(&VersionInfo{
		Version:   "v1.2.3",
		GoVersion: "go1.23.5",
		Platform:  "linux/amd64",
		Revision:  "abc123",
		Modified:  true,
	})
	assert.Contains(t, out, "Version:   v1.2.3")
	assert.Contains(t, out, "Revision:  abc123 (modified)")
	assert.Contains(t, out, "Platform:  linux/amd64")
}
