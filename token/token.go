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

import (
	"fmt"

	"github.com/rsyntax/rsyntax/source"
	"github.com/rsyntax/rsyntax/token/keyword"
)

// Zero is the zero [Token].
var Zero Token

// ID is the raw ID of a [Token], disassociated from its [Stream].
//
// Natural tokens have positive IDs, starting at 1. Synthetic tokens have
// negative IDs. Zero is the ID of the zero token.
type ID int32

// In wraps this ID with a stream.
func (id ID) In(s *Stream) Token {
	if id == 0 {
		return Zero
	}
	return Token{s, id}
}

// Token is a lexical element of an R file.
//
// Token is a pointer-like value: it is a reference into a [Stream], and is
// cheap to copy and compare. The zero value denotes the absence of a token.
type Token struct {
	stream *Stream
	id     ID
}

// IsZero returns whether this is the zero token.
func (t Token) IsZero() bool {
	return t.stream == nil
}

// ID returns this token's raw ID.
func (t Token) ID() ID {
	return t.id
}

// Stream returns the stream this token belongs to.
func (t Token) Stream() *Stream {
	return t.stream
}

// IsSynthetic returns whether this is a non-zero synthetic token, i.e. one
// created by the parser rather than the lexer.
func (t Token) IsSynthetic() bool {
	return t.id < 0
}

// Kind returns what kind of token this is.
//
// Returns [Unrecognized] for the zero token.
func (t Token) Kind() Kind {
	switch {
	case t.IsZero():
		return Unrecognized
	case t.IsSynthetic():
		return t.synth().kind
	default:
		return t.nat().kind
	}
}

// Keyword returns the keyword of this token, if it is a reserved word,
// operator or punctuation.
func (t Token) Keyword() keyword.Keyword {
	switch {
	case t.IsZero():
		return keyword.Unknown
	case t.IsSynthetic():
		return t.synth().keyword
	default:
		return t.nat().keyword
	}
}

// Offsets returns the start and end rune offsets of this token.
//
// Synthetic tokens have zero length.
func (t Token) Offsets() (start, end int) {
	switch {
	case t.IsZero():
		return 0, 0
	case t.IsSynthetic():
		off := int(t.synth().offset)
		return off, off
	}

	idx := int(t.id) - 1
	if idx > 0 {
		start = int(t.stream.nats[idx-1].end)
	}
	return start, int(t.stream.nats[idx].end)
}

// Span implements [source.Spanner].
func (t Token) Span() source.Span {
	if t.IsZero() {
		return source.Span{}
	}
	start, end := t.Offsets()
	return t.stream.file.Span(start, end)
}

// Len returns the length of this token in runes.
func (t Token) Len() int {
	start, end := t.Offsets()
	return end - start
}

// Text returns the text of this token.
//
// For a synthetic token, this is the text the token stands in for, even
// though the token occupies no space in the file.
func (t Token) Text() string {
	switch {
	case t.IsZero():
		return ""
	case t.IsSynthetic():
		return t.synth().keyword.String()
	}
	return t.Span().Text()
}

// Prev returns the natural token before this one, or the zero token if this
// is the first token or is synthetic.
func (t Token) Prev() Token {
	if t.IsZero() || t.IsSynthetic() {
		return Zero
	}
	return (t.id - 1).In(t.stream)
}

// Next returns the natural token after this one, or the zero token if this
// is the last token or is synthetic.
func (t Token) Next() Token {
	if t.IsZero() || t.IsSynthetic() || int(t.id) >= len(t.stream.nats) {
		return Zero
	}
	return (t.id + 1).In(t.stream)
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	if t.IsZero() {
		return "Token(<zero>)"
	}
	start, end := t.Offsets()
	if t.IsSynthetic() {
		return fmt.Sprintf("Token(%v %q @%d, synthetic)", t.Kind(), t.Text(), start)
	}
	return fmt.Sprintf("Token(%v %q @%d:%d)", t.Kind(), t.Text(), start, end)
}

func (t Token) nat() *nat {
	return &t.stream.nats[t.id-1]
}

func (t Token) synth() *synth {
	return &t.stream.synths[^t.id]
}

// nat is the storage for a natural token.
type nat struct {
	// The rune offset one past the end of this token. The start is the end of
	// the previous token.
	end     int32
	kind    Kind
	keyword keyword.Keyword
}

// synth is the storage for a synthetic token.
type synth struct {
	offset  int32
	kind    Kind
	keyword keyword.Keyword
}
