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

package source_test

import (
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsyntax/rsyntax/source"
)

func TestFS(t *testing.T) {
	t.Parallel()

	opener := &source.FS{FS: os.DirFS("testdata")}

	file, err := opener.Open("hello.R")
	require.NoError(t, err)
	assert.Equal(t, "hello <- \"world\"\n", file.Text())
	assert.Equal(t, "hello.R", file.Path())

	_, err = opener.Open("missing.R")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFSPathMapper(t *testing.T) {
	t.Parallel()

	opener := &source.FS{
		FS:         os.DirFS("testdata"),
		PathMapper: func(p string) string { return strings.TrimPrefix(p, "pkg/") },
	}

	file, err := opener.Open("pkg/hello.R")
	require.NoError(t, err)
	assert.Equal(t, "pkg/hello.R", file.Path())
}

func TestMap(t *testing.T) {
	t.Parallel()

	opener := source.Map{}
	opener.Add("hello.R", "x <- 1\n")

	file, err := opener.Open("hello.R")
	require.NoError(t, err)
	assert.Equal(t, "x <- 1\n", file.Text())

	_, err = opener.Open("missing.R")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOpeners(t *testing.T) {
	t.Parallel()

	mapped := source.Map{"overlaid.R": "y <- 2\n"}
	opener := source.Openers{
		mapped,
		&source.FS{FS: os.DirFS("testdata")},
	}

	file, err := opener.Open("overlaid.R")
	require.NoError(t, err)
	assert.Equal(t, "y <- 2\n", file.Text())

	file, err = opener.Open("hello.R")
	require.NoError(t, err)
	assert.Equal(t, "hello <- \"world\"\n", file.Text())

	_, err = opener.Open("missing.R")
	require.ErrorIs(t, err, fs.ErrNotExist)
}
