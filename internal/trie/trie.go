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

// Package trie provides a string-keyed map with longest-prefix lookup.
package trie

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Trie implements a map from strings to V, except lookups return the key
// which is the longest prefix of a given query.
//
// The zero value is empty and ready to use.
type Trie[V any] struct {
	root node[V]
	len  int
}

type node[V any] struct {
	next  map[rune]*node[V]
	value V
	has   bool
}

// Len returns the number of keys in the trie.
func (t *Trie[V]) Len() int {
	return t.len
}

// Get returns the value corresponding to the longest prefix of key present
// in the trie. The match is exact when len(key) == len(prefix).
//
// If no key in the trie is a prefix of key, returns "" and the zero value of V.
func (t *Trie[V]) Get(key string) (prefix string, value V) {
	for p, v := range t.Prefixes(key) {
		prefix, value = p, v
	}
	return prefix, value
}

// Prefixes returns an iterator over every key in the trie that is a prefix
// of key, from shortest to longest.
func (t *Trie[V]) Prefixes(key string) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		n := &t.root
		if n.has && !yield("", n.value) {
			return
		}
		for i, r := range key {
			n = n.next[r]
			if n == nil {
				return
			}
			if n.has && !yield(key[:i+len(string(r))], n.value) {
				return
			}
		}
	}
}

// Insert adds a new value to this trie, replacing any value already stored
// under key.
func (t *Trie[V]) Insert(key string, value V) {
	n := &t.root
	for _, r := range key {
		if n.next == nil {
			n.next = make(map[rune]*node[V])
		}
		next := n.next[r]
		if next == nil {
			next = new(node[V])
			n.next[r] = next
		}
		n = next
	}
	if !n.has {
		t.len++
	}
	n.value, n.has = value, true
}

// Dump returns a human-readable rendering of the trie, for debugging.
func (t *Trie[V]) Dump() string {
	var b strings.Builder
	t.root.dump(&b, 0)
	return b.String()
}

func (n *node[V]) dump(b *strings.Builder, depth int) {
	keys := make([]rune, 0, len(n.next))
	for r := range n.next {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	for _, r := range keys {
		next := n.next[r]
		fmt.Fprintf(b, "%s%q", strings.Repeat("  ", depth), r)
		if next.has {
			fmt.Fprintf(b, " -> %v", next.value)
		}
		b.WriteByte('\n')
		next.dump(b, depth+1)
	}
}
