// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config_test

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsyntax/rsyntax/config"
	"github.com/rsyntax/rsyntax/parser"
)

func write(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rparse.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, parser.DefaultMaxDepth, cfg.ParserOptions().MaxDepth)
	assert.Equal(t, config.FormatText, cfg.Output.Format)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
	assert.Zero(t, cfg.Batch.Parallelism)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := write(t, `
[parser]
max_depth = 64

[output]
format = "yaml"
color = true

[log]
level = "debug"

[batch]
parallelism = 3
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, parser.Options{MaxDepth: 64}, cfg.ParserOptions())
	assert.Equal(t, config.OutputConfig{Format: config.FormatYAML, Color: true}, cfg.Output)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
	assert.Equal(t, 3, cfg.Batch.Parallelism)
}

func TestLoadPartial(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(write(t, "[output]\ncompact = true\n"))
	require.NoError(t, err)

	want := config.Default()
	want.Output.Compact = true
	assert.Equal(t, want, cfg)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text, err string
	}{
		{"syntax", "[parser\n", "parsing"},
		{"unknown", "[parser]\nmax_depht = 3\n", "unknown keys"},
		{"format", "[output]\nformat = \"json\"\n", "output.format"},
		{"level", "[log]\nlevel = \"loud\"\n", "log.level"},
		{"depth", "[parser]\nmax_depth = -1\n", "parser.max_depth"},
		{"parallelism", "[batch]\nparallelism = -2\n", "batch.parallelism"},
		{"type", "[parser]\nmax_depth = \"deep\"\n", "parsing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(write(t, tt.text))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope.toml")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	cfg, err := config.LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestValidateJoinsErrors(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Output.Format = "xml"
	cfg.Batch.Parallelism = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
	assert.Contains(t, err.Error(), "batch.parallelism")

	cfg.Log.Level = "bogus"
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}
