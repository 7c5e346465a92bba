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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rsyntax/rsyntax/source"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	// Offsets are in runes: "é" is one character.
	file := source.NewFile("test.R", "é <- 1\r\nx\ry\n")

	tests := []struct {
		offset       int
		line, column int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{6, 1, 7},
		{8, 2, 1},
		{9, 2, 2},
		{10, 3, 1},
		{12, 4, 1},
		{100, 4, 1},
	}
	for _, test := range tests {
		loc := file.Location(test.offset)
		assert.Equal(t, test.line, loc.Line, "line at %d", test.offset)
		assert.Equal(t, test.column, loc.Column, "column at %d", test.offset)
	}

	assert.Equal(t, 12, file.Len())
	assert.Equal(t, 4, file.Lines())
	assert.Equal(t, "é <- 1", file.Line(1))
	assert.Equal(t, "x", file.Line(2))
	assert.Equal(t, "", file.Line(4))
}

func TestSpan(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.R", "  f(αβ)\n")
	span := file.Span(4, 6)
	assert.Equal(t, "αβ", span.Text())
	assert.Equal(t, 2, span.Len())
	assert.True(t, span.Contains(4))
	assert.False(t, span.Contains(6))
	assert.Equal(t, "  ", file.Indentation(5))
	assert.Equal(t, `"test.R":1:5[4:6]`, span.String())

	joined := source.Join(file.Span(2, 3), source.Span{}, file.Span(6, 7))
	assert.Equal(t, "f(αβ)", joined.Text())
	assert.True(t, source.Join().IsZero())

	other := source.NewFile("other.R", "x")
	assert.Panics(t, func() { source.Join(file.Span(0, 1), other.Span(0, 1)) })
}

func TestNilFile(t *testing.T) {
	t.Parallel()

	var file *source.File
	assert.Equal(t, "", file.Text())
	assert.Equal(t, 0, file.Len())
	assert.True(t, file.Span(0, 0).IsZero())
	assert.Equal(t, source.Location{Offset: 0, Line: 1, Column: 1}, file.Location(5))
}
