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

// Package arena defines an append-only Arena type with compressed pointers.
package arena

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

const (
	firstChunkShift = 4
	firstChunkLen   = 1 << firstChunkShift
)

// Pointer is a compressed pointer into an [Arena].
//
// The value of a pointer is one plus the number of values allocated before
// it, so the zero value is nil.
type Pointer[T any] uint32

// Nil returns whether this pointer is nil.
func (p Pointer[T]) Nil() bool {
	return p == 0
}

// Index returns the zero-based allocation index of this pointer.
//
// Panics if p is nil.
func (p Pointer[T]) Index() int {
	if p.Nil() {
		panic("arena: Index() called on nil pointer")
	}
	return int(p) - 1
}

// In looks up this pointer in the given arena.
//
// a must be the arena that allocated p.
func (p Pointer[T]) In(a *Arena[T]) *T {
	return a.Deref(p)
}

// Arena is an append-only collection of T that hands out [Pointer]s.
//
// Values are stored in a table of chunks whose sizes double, so a value never
// moves once allocated and a *T returned by [Arena.Deref] stays valid for
// the lifetime of the arena. Lookup is O(1).
//
// A zero Arena is empty and ready to use.
type Arena[T any] struct {
	// Invariants:
	// 1. cap(chunks[0]) == firstChunkLen.
	// 2. cap(chunks[n]) == 2*cap(chunks[n-1]).
	// 3. Every chunk except the last is full.
	chunks [][]T
	len    int
}

// New allocates value on the arena and returns a pointer to it.
func (a *Arena[T]) New(value T) Pointer[T] {
	if a.chunks == nil {
		a.chunks = [][]T{make([]T, 0, firstChunkLen)}
	}

	last := &a.chunks[len(a.chunks)-1]
	if len(*last) == cap(*last) {
		a.chunks = append(a.chunks, make([]T, 0, 2*cap(*last)))
		last = &a.chunks[len(a.chunks)-1]
	}

	*last = append(*last, value)
	a.len++
	return Pointer[T](a.len)
}

// Deref returns the value p points to.
//
// Panics if p is nil or out of range.
func (a *Arena[T]) Deref(p Pointer[T]) *T {
	chunk, idx := a.locate(p.Index())
	return &a.chunks[chunk][idx]
}

// Len returns the number of values allocated so far.
func (a *Arena[T]) Len() int {
	return a.len
}

// All returns an iterator over every pointer in allocation order, along with
// its value.
func (a *Arena[T]) All() iter.Seq2[Pointer[T], *T] {
	return func(yield func(Pointer[T], *T) bool) {
		var n int
		for c := range a.chunks {
			for i := range a.chunks[c] {
				n++
				if !yield(Pointer[T](n), &a.chunks[c][i]) {
					return
				}
			}
		}
	}
}

// String implements [fmt.Stringer]. Chunk boundaries are shown as |.
func (a *Arena[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for c, chunk := range a.chunks {
		if c != 0 {
			b.WriteByte('|')
		}
		for i, v := range chunk {
			if i != 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, v)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// locate converts an allocation index into chunk coordinates, performing a
// bounds check.
func (a *Arena[T]) locate(idx int) (chunk, offset int) {
	if idx < 0 || idx >= a.len {
		panic(fmt.Sprintf("arena: pointer out of range: %#x", idx+1))
	}

	// Chunk n starts at firstChunkLen * (2^n - 1). Adding firstChunkLen to the
	// index turns those starts into powers of two, so the chunk is given by
	// the position of the high bit.
	chunk = bits.Len(uint(idx)+firstChunkLen) - firstChunkShift - 1
	offset = idx - (firstChunkLen<<chunk - firstChunkLen)
	return chunk, offset
}
