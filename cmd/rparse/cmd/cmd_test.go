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

package cmd_test

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rsyntax/rsyntax/cmd/rparse/cmd"
)

// run executes rparse with the given arguments and standard input.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cmd.New()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestTree(t *testing.T) {
	t.Parallel()

	out, stderr, err := run(t, "1 + 2 * 3\n", "tree")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	want, err := os.ReadFile("../../../parser/testdata/precedence.R.tree")
	require.NoError(t, err)
	assert.Equal(t, string(want), out)
}

func TestTreeDiagnostics(t *testing.T) {
	t.Parallel()

	out, stderr, err := run(t, "f(", "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "GlobalScope  [Global]")
	assert.Contains(t, stderr, "unmatched `(`")
}

func TestTreeYAML(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "x <- 1\n", "tree", "--format", "yaml")
	require.NoError(t, err)

	var doc struct {
		Path string `yaml:"path"`
		Tree struct {
			Kind     string `yaml:"kind"`
			Children []any  `yaml:"children"`
		} `yaml:"tree"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "<stdin>", doc.Path)
	assert.Equal(t, "GlobalScope", doc.Tree.Kind)
	assert.Len(t, doc.Tree.Children, 1)
}

func TestTreeBadFormat(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "x\n", "tree", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
}

func TestGlob(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.R"), []byte("a <- 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.R"), []byte("b <- 2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("not R\n"), 0o644))

	out, _, err := run(t, "", "tree", filepath.Join(dir, "*.R"))
	require.NoError(t, err)
	assert.Contains(t, out, "# "+filepath.Join(dir, "a.R")+"\n")
	assert.Contains(t, out, "# "+filepath.Join(dir, "b.R")+"\n")
	assert.NotContains(t, out, "c.txt")
	assert.Contains(t, out, "Variable  [a]")
	assert.Contains(t, out, "Variable  [b]")

	_, _, err = run(t, "", "tree", filepath.Join(dir, "*.py"))
	assert.Error(t, err)
}

func TestTokens(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "x <- 1", "tokens")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"Ident", "-", "[0...1]", `"x"`}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Space", "-", "[1...2]", `"`, `"`}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"Operator", "<-", "[2...4]", `"<-"`}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"Number", "-", "[5...6]", `"1"`}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"EOF", "-", "[6...6]", `""`}, strings.Fields(lines[5]))
}

func TestCheck(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "x <- 1\n", "check")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, _, err = run(t, "f(", "check", "--format", "text")
	require.ErrorIs(t, err, cmd.ErrDiagnostics)
	assert.Contains(t, out, "unmatched `(`")
	assert.Contains(t, out, "encountered 1 error")
}

func TestCheckCompact(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := filepath.Join(dir, "rparse.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[output]\ncompact = true\n"), 0o644))

	out, _, err := run(t, "if (x) {", "check", "--config", cfg)
	require.ErrorIs(t, err, cmd.ErrDiagnostics)
	assert.Equal(t, "error: <stdin>:1:8: encountered unmatched `{` delimiter\n", out)
}

func TestCheckYAML(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "y <- )\n", "check", "-f", "yaml")
	require.ErrorIs(t, err, cmd.ErrDiagnostics)

	var reports []struct {
		Path        string `yaml:"path"`
		Diagnostics []struct {
			Level   string `yaml:"level"`
			Message string `yaml:"message"`
			Line    int    `yaml:"line"`
			Column  int    `yaml:"column"`
		} `yaml:"diagnostics"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "<stdin>", reports[0].Path)
	require.Len(t, reports[0].Diagnostics, 1)
	d := reports[0].Diagnostics[0]
	assert.Equal(t, "error", d.Level)
	assert.Equal(t, "unexpected `)` after operator, expected expression", d.Message)
	assert.Equal(t, 1, d.Line)
	assert.Equal(t, 6, d.Column)
}

func TestMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "", "check", filepath.Join(t.TempDir(), "missing.R"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, cmd.ErrDiagnostics)
}

func TestBadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := filepath.Join(dir, "rparse.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[parser]\nmax_dpeth = 3\n"), 0o644))

	_, _, err := run(t, "x\n", "tree", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys")

	_, _, err = run(t, "x\n", "tree", "--config", filepath.Join(dir, "nope.toml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNegativeJobs(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "x\n", "tree", "--jobs", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--jobs")
}
