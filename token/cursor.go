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

package token

import "iter"

// Cursor is an iterator-like construct for looping over a token stream.
// Unlike a plain range func, it supports peeking and rewinding.
//
// A cursor never advances past a trailing [EOF] token: once it reaches one,
// [Cursor.Peek] and [Cursor.Next] keep returning it.
type Cursor struct {
	stream *Stream

	// idx is the zero-based index of the next natural token.
	idx int

	// If set, [Newline] tokens are treated as skippable by Peek and Next.
	SkipNewlines bool
}

// CursorMark is the return value of [Cursor.Mark], which marks a position on
// a Cursor for rewinding to.
type CursorMark struct {
	owner *Cursor
	idx   int
}

// Stream returns the stream this cursor iterates over.
func (c *Cursor) Stream() *Stream {
	return c.stream
}

// Done returns whether or not there are still tokens left to yield. A
// cursor positioned at the EOF token is done.
func (c *Cursor) Done() bool {
	tok := c.Peek()
	return tok.IsZero() || tok.Kind() == EOF
}

// Mark makes a mark on this cursor to indicate a place that can be rewound
// to.
func (c *Cursor) Mark() CursorMark {
	return CursorMark{owner: c, idx: c.idx}
}

// Rewind moves this cursor back to the position described by mark.
//
// Panics if mark was not created using this cursor's Mark method.
func (c *Cursor) Rewind(mark CursorMark) {
	if c != mark.owner {
		panic("rsyntax/token: rewound cursor using the wrong cursor's mark")
	}
	c.idx = mark.idx
}

// PeekSkippable returns the current token in the sequence, if there is one.
// This may return a skippable token.
//
// Returns the zero token if this cursor is at the end of the stream.
func (c *Cursor) PeekSkippable() Token {
	if c == nil || c.idx >= len(c.stream.nats) {
		return Zero
	}
	return ID(c.idx + 1).In(c.stream)
}

// NextSkippable returns the current token in the sequence, and advances the
// cursor, unless the token is [EOF].
func (c *Cursor) NextSkippable() Token {
	tok := c.PeekSkippable()
	if !tok.IsZero() && tok.Kind() != EOF {
		c.idx++
	}
	return tok
}

// Peek returns the next token in the sequence, if there is one.
// This automatically skips past skippable tokens.
//
// Returns the zero token if this cursor is at the end of the stream.
func (c *Cursor) Peek() Token {
	if c == nil {
		return Zero
	}
	idx := c.idx
	tok := c.Next()
	c.idx = idx
	return tok
}

// PeekN returns the nth token that [Cursor.Next] would return, counting
// from one. PeekN(1) is equivalent to Peek.
func (c *Cursor) PeekN(n int) Token {
	if c == nil {
		return Zero
	}
	idx := c.idx
	var tok Token
	for range n {
		tok = c.Next()
	}
	c.idx = idx
	return tok
}

// Next returns the next token in the sequence, and advances the cursor.
func (c *Cursor) Next() Token {
	for {
		next := c.NextSkippable()
		if next.IsZero() || !c.skippable(next.Kind()) {
			return next
		}
	}
}

// Prev returns the last token the cursor has moved past, without moving the
// cursor. This may be a skippable token.
//
// Returns the zero token if the cursor is at the start of the stream.
func (c *Cursor) Prev() Token {
	if c == nil || c.idx == 0 {
		return Zero
	}
	return ID(c.idx).In(c.stream)
}

// Rest returns an iterator over the remaining tokens in the cursor,
// including skippable ones, up to and including the [EOF] token.
//
// Note that breaking out of a loop over this iterator, and starting a new
// loop, will resume at the iteration that was broken at.
func (c *Cursor) Rest() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := c.PeekSkippable()
			if tok.IsZero() {
				return
			}
			if !yield(tok) {
				return
			}
			if tok.Kind() == EOF {
				return
			}
			c.idx++
		}
	}
}

func (c *Cursor) skippable(k Kind) bool {
	return k.IsSkippable() || (c.SkipNewlines && k == Newline)
}
