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
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/rsyntax/rsyntax/source"
	"github.com/rsyntax/rsyntax/token/keyword"
)

// Stream is a token stream.
//
// Internally, Stream uses a compressed representation for storing tokens:
// natural tokens only record their end offset, since each one starts where
// the previous one ended.
//
// Streams may be frozen, after which only synthetic tokens may be added.
// The lexer freezes every stream it produces.
type Stream struct {
	file *source.File

	nats   []nat
	synths []synth

	frozen bool
}

// NewStream returns a new empty stream over the given file.
func NewStream(file *source.File) *Stream {
	return &Stream{file: file}
}

// File returns the file this stream tokenizes.
func (s *Stream) File() *source.File {
	return s.file
}

// Len returns the number of natural tokens in this stream.
func (s *Stream) Len() int {
	return len(s.nats)
}

// At returns the ith natural token, zero-indexed.
func (s *Stream) At(i int) Token {
	if i < 0 || i >= len(s.nats) {
		panic(fmt.Sprintf("rsyntax/token: index %d out of range [0:%d]", i, len(s.nats)))
	}
	return ID(i + 1).In(s)
}

// Last returns the last natural token, or the zero token if there are none.
func (s *Stream) Last() Token {
	return ID(len(s.nats)).In(s)
}

// Push mints the next natural token, which is the next length runes of the
// file.
//
// Panics if this stream is frozen or if the token runs past the end of the
// file.
func (s *Stream) Push(length int, kind Kind, kw keyword.Keyword) Token {
	if s.frozen {
		panic("rsyntax/token: attempted to mutate frozen stream")
	}

	var start int32
	if len(s.nats) > 0 {
		start = s.nats[len(s.nats)-1].end
	}
	end := start + int32(length)
	if length < 0 || int(end) > s.file.Len() {
		panic(fmt.Sprintf("rsyntax/token: token [%d:%d] out of bounds for file of length %d", start, end, s.file.Len()))
	}
	if length == 0 && kind != EOF {
		panic("rsyntax/token: pushed empty non-EOF token")
	}

	s.nats = append(s.nats, nat{end: end, kind: kind, keyword: kw})
	return ID(len(s.nats)).In(s)
}

// NewSynthetic mints a zero-length synthetic token at the given offset.
func (s *Stream) NewSynthetic(offset int, kind Kind, kw keyword.Keyword) Token {
	s.synths = append(s.synths, synth{offset: int32(offset), kind: kind, keyword: kw})
	return ID(^(len(s.synths) - 1)).In(s)
}

// Freeze marks this stream as frozen, so that [Stream.Push] panics.
func (s *Stream) Freeze() {
	s.frozen = true
}

// All returns an iterator over the natural tokens in this stream.
func (s *Stream) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for i := range s.nats {
			if !yield(ID(i + 1).In(s)) {
				return
			}
		}
	}
}

// Synthetic returns an iterator over the synthetic tokens in this stream,
// in order of creation.
func (s *Stream) Synthetic() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for i := range s.synths {
			if !yield(ID(^i).In(s)) {
				return
			}
		}
	}
}

// Comments returns an iterator over the comment tokens in this stream.
func (s *Stream) Comments() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for t := range s.All() {
			if t.Kind() == Comment && !yield(t) {
				return
			}
		}
	}
}

// Around returns the natural token containing the given offset. An offset
// at the boundary between two tokens belongs to the second one.
//
// Returns the zero token if offset is out of range.
func (s *Stream) Around(offset int) Token {
	if offset < 0 || len(s.nats) == 0 {
		return Zero
	}
	idx, exact := slices.BinarySearchFunc(s.nats, offset, func(n nat, offset int) int {
		return cmp.Compare(int(n.end), offset)
	})
	if exact {
		idx++
	}
	if idx >= len(s.nats) {
		return s.Last()
	}
	return ID(idx + 1).In(s)
}

// Text returns the concatenation of the text of every natural token.
//
// For a stream produced by the lexer, this is exactly the file's text.
func (s *Stream) Text() string {
	var b strings.Builder
	for t := range s.All() {
		b.WriteString(t.Text())
	}
	return b.String()
}

// Cursor returns a cursor over the natural token stream.
func (s *Stream) Cursor() *Cursor {
	return &Cursor{stream: s}
}
