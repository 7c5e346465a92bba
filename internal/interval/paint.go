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

// Package interval provides interval maps keyed by integer points.
package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Entry is a maximal run of points in a [Paint] that share a value.
type Entry[K Endpoint, V any] struct {
	Start, End K // The interval range, inclusive.
	Value      V
}

// Contains returns whether an entry contains a given point.
func (e Entry[K, V]) Contains(point K) bool {
	return e.Start <= point && point <= e.End
}

// Paint is a map from points to values, built by painting intervals over
// one another: each point maps to the value of the last interval inserted
// that contains it.
//
// When intervals form a tree (every pair is either nested or disjoint) and
// are inserted parents-first, looking up a point yields the innermost
// interval containing it.
//
// A zero value is ready to use.
type Paint[K Endpoint, V any] struct {
	// Keys in this map are the ends of entries in the map.
	tree    btree.Map[K, *Entry[K, V]]
	scratch []*Entry[K, V]
}

// Len returns the number of disjoint entries in the map.
func (m *Paint[K, V]) Len() int {
	return m.tree.Len()
}

// Get returns the entry containing point.
//
// If there is none, returns false.
func (m *Paint[K, V]) Get(point K) (Entry[K, V], bool) {
	iter := m.tree.Iter()
	found := iter.Seek(point)

	if !found || point < iter.Value().Start {
		// It is implicit already that point <= end.
		return Entry[K, V]{}, false
	}

	return *iter.Value(), true
}

// Entries returns an iterator over the entries in this map, in order.
func (m *Paint[K, V]) Entries() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		iter := m.tree.Iter()
		for more := iter.First(); more; more = iter.Next() {
			if !yield(*iter.Value()) {
				return
			}
		}
	}
}

// Insert paints value over [start, end]. Both endpoints are inclusive.
func (m *Paint[K, V]) Insert(start, end K, value V) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}

	iter := m.tree.Iter()
	for more := iter.Seek(start); more; more = iter.Next() {
		if end < iter.Value().Start {
			break
		}
		m.scratch = append(m.scratch, iter.Value())
	}

	for _, e := range m.scratch {
		m.tree.Delete(e.End)
		if e.Start < start {
			m.tree.Set(start-1, &Entry[K, V]{Start: e.Start, End: start - 1, Value: e.Value})
		}
		if e.End > end {
			m.tree.Set(e.End, &Entry[K, V]{Start: end + 1, End: e.End, Value: e.Value})
		}
	}
	clear(m.scratch)
	m.scratch = m.scratch[:0]

	m.tree.Set(end, &Entry[K, V]{Start: start, End: end, Value: value})
}

// Format implements [fmt.Formatter].
func (m *Paint[K, V]) Format(s fmt.State, v rune) {
	fmt.Fprint(s, "{")
	first := true
	m.tree.Scan(func(end K, entry *Entry[K, V]) bool {
		if !first {
			fmt.Fprint(s, ", ")
		}
		first = false

		if entry.Start == end {
			fmt.Fprintf(s, "%#v: ", entry.Start)
		} else {
			fmt.Fprintf(s, "[%#v, %#v]: ", entry.Start, end)
		}
		fmt.Fprintf(s, fmt.FormatString(s, v), entry.Value)

		return true
	})
	fmt.Fprint(s, "}")
}
