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

package ast

import (
	"github.com/rsyntax/rsyntax/internal/arena"
)

// NodeAt returns the innermost node whose span contains offset.
//
// Empty nodes contain no offsets, so they are never returned. Returns the
// zero node if no node contains offset, which happens for offsets in
// trivia outside of any statement.
//
// The lookup index is built on first use.
func (t *Tree) NodeAt(offset int) Node {
	t.indexOnce.Do(func() {
		// Nodes are painted in preorder, so a child's span is painted over its
		// parent's.
		for n := range t.Root().Walk() {
			start, end := n.Offsets()
			if start < end {
				t.index.Insert(start, end-1, n.id)
			}
		}
	})

	entry, ok := t.index.Get(offset)
	if !ok {
		return Node{}
	}
	return t.wrap(entry.Value)
}

// parentIndex returns the parent of every node, indexed by node pointer.
func (t *Tree) parentIndex() []arena.Pointer[rawNode] {
	t.parentsOnce.Do(func() {
		t.parents = make([]arena.Pointer[rawNode], t.nodes.Len()+1)
		for p, raw := range t.nodes.All() {
			for _, child := range t.children[raw.first : raw.first+raw.count] {
				t.parents[child] = p
			}
		}
	})
	return t.parents
}
