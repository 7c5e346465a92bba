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
	"fmt"
	"iter"

	"github.com/rsyntax/rsyntax/internal/arena"
	"github.com/rsyntax/rsyntax/source"
	"github.com/rsyntax/rsyntax/token"
)

// Node is a node of a syntax tree.
//
// Node is a pointer-like value: it refers to storage inside a [Tree], and
// the zero value behaves like a nil pointer.
type Node struct {
	tree *Tree
	id   arena.Pointer[rawNode]
}

// IsZero returns whether this is the zero node.
func (n Node) IsZero() bool {
	return n.tree == nil
}

// Tree returns the tree this node belongs to.
func (n Node) Tree() *Tree {
	return n.tree
}

// ID returns a number that uniquely identifies this node within its tree.
// IDs count up from one in order of creation.
//
// Returns zero for the zero node.
func (n Node) ID() int {
	return int(n.id)
}

// Kind returns this node's kind.
//
// Returns [KindUnknown] for the zero node.
func (n Node) Kind() Kind {
	if n.IsZero() {
		return KindUnknown
	}
	return n.raw().kind
}

// Is returns whether this node has one of the given kinds.
func (n Node) Is(kinds ...Kind) bool {
	k := n.Kind()
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

// Token returns the token wrapped by a leaf node.
//
// Returns the zero token if this node is not a leaf.
func (n Node) Token() token.Token {
	if n.IsZero() || !n.Kind().IsLeaf() {
		return token.Zero
	}
	return n.raw().tok.In(n.tree.stream)
}

// Span implements [source.Spanner].
func (n Node) Span() source.Span {
	if n.IsZero() {
		return source.Span{}
	}
	start, end := n.Offsets()
	return n.tree.File().Span(start, end)
}

// Offsets returns the start and end rune offsets of this node.
func (n Node) Offsets() (start, end int) {
	if n.IsZero() {
		return 0, 0
	}
	raw := n.raw()
	return int(raw.start), int(raw.end)
}

// Text returns the source text this node spans.
func (n Node) Text() string {
	return n.Span().Text()
}

// NumChildren returns the number of children of this node.
func (n Node) NumChildren() int {
	if n.IsZero() {
		return 0
	}
	return int(n.raw().count)
}

// Child returns the ith child of this node.
//
// Returns the zero node if i is out of range; negative indices count from
// the end.
func (n Node) Child(i int) Node {
	count := n.NumChildren()
	if i < 0 {
		i += count
	}
	if i < 0 || i >= count {
		return Node{}
	}
	return n.tree.wrap(n.tree.children[int(n.raw().first)+i])
}

// Children returns an iterator over the children of this node, in source
// order.
func (n Node) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if n.IsZero() {
			return
		}
		raw := n.raw()
		for _, id := range n.tree.children[raw.first : raw.first+raw.count] {
			if !yield(n.tree.wrap(id)) {
				return
			}
		}
	}
}

// ChildOf returns the first child with one of the given kinds, or the zero
// node if there is none.
func (n Node) ChildOf(kinds ...Kind) Node {
	for child := range n.Children() {
		if child.Is(kinds...) {
			return child
		}
	}
	return Node{}
}

// Tokens returns an iterator over the tokens wrapped by the leaves under
// this node, in source order. This includes synthetic tokens.
func (n Node) Tokens() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for node := range n.Walk() {
			if node.Kind().IsLeaf() && !yield(node.Token()) {
				return
			}
		}
	}
}

// Parent returns the parent of this node.
//
// Returns the zero node for the root, and for nodes of an incomplete tree
// that have not been attached to a parent yet.
func (n Node) Parent() Node {
	if n.IsZero() {
		return Node{}
	}
	p := n.tree.parentIndex()[n.id]
	if p.Nil() {
		return Node{}
	}
	return n.tree.wrap(p)
}

// String implements [fmt.Stringer].
func (n Node) String() string {
	if n.IsZero() {
		return "Node(<zero>)"
	}
	start, end := n.Offsets()
	return fmt.Sprintf("%v@%d:%d", n.Kind(), start, end)
}

func (n Node) raw() *rawNode {
	return n.tree.nodes.Deref(n.id)
}
