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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rsyntax/rsyntax/token"
)

func TestCursor(t *testing.T) {
	t.Parallel()

	c := stream().Cursor()
	assert.Equal(t, "f", c.Next().Text())

	mark := c.Mark()
	assert.Equal(t, "(", c.Peek().Text())
	assert.Equal(t, "x", c.PeekN(2).Text())
	assert.Equal(t, "(", c.Next().Text())
	assert.Equal(t, "x", c.Next().Text())
	assert.Equal(t, ")", c.Next().Text())
	assert.Equal(t, ")", c.Prev().Text())

	// Space and comments are skipped, newlines are not.
	assert.Equal(t, token.Newline, c.Peek().Kind())
	c.SkipNewlines = true
	assert.Equal(t, token.EOF, c.Peek().Kind())
	assert.True(t, c.Done())
	c.SkipNewlines = false
	assert.False(t, c.Done())

	c.Rewind(mark)
	assert.Equal(t, "(", c.Peek().Text())

	other := stream().Cursor()
	assert.Panics(t, func() { other.Rewind(mark) })
}

func TestCursorSkippable(t *testing.T) {
	t.Parallel()

	c := stream().Cursor()
	var kinds []token.Kind
	for tok := range c.Rest() {
		kinds = append(kinds, tok.Kind())
	}
	assert.Equal(t, []token.Kind{
		token.Ident, token.Punct, token.Ident, token.Punct,
		token.Space, token.Comment, token.Newline, token.EOF,
	}, kinds)

	// The cursor sticks at EOF.
	assert.Equal(t, token.EOF, c.NextSkippable().Kind())
	assert.Equal(t, token.EOF, c.Next().Kind())
	assert.Equal(t, token.EOF, c.PeekN(3).Kind())
}
