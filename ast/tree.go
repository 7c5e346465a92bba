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
	"sync"

	"github.com/rsyntax/rsyntax/internal/arena"
	"github.com/rsyntax/rsyntax/internal/interval"
	"github.com/rsyntax/rsyntax/source"
	"github.com/rsyntax/rsyntax/token"
)

// Tree is the arena that owns every node of one syntax tree.
//
// Nodes are appended with [Tree.NewLeaf], [Tree.NewNode] and [Tree.NewEmpty],
// and the tree is completed with [Tree.SetRoot]. After that, a Tree is
// immutable and may be read from multiple goroutines.
type Tree struct {
	stream *token.Stream
	nodes  arena.Arena[rawNode]

	// The children of every node, as contiguous runs. A node's children are
	// children[first:first+count].
	children []arena.Pointer[rawNode]
	root     arena.Pointer[rawNode]

	parentsOnce sync.Once
	parents     []arena.Pointer[rawNode]

	indexOnce sync.Once
	index     interval.Paint[int, arena.Pointer[rawNode]]
}

// rawNode is the storage for a node.
type rawNode struct {
	kind Kind
	// The wrapped token, for leaves.
	tok token.ID

	first, count int32
	// The span of this node, computed when it is created.
	start, end int32
}

// NewTree returns a new, empty tree over the tokens of stream.
func NewTree(stream *token.Stream) *Tree {
	return &Tree{stream: stream}
}

// Stream returns the token stream this tree was built from.
func (t *Tree) Stream() *token.Stream {
	return t.stream
}

// File returns the file this tree was parsed from.
func (t *Tree) File() *source.File {
	return t.stream.File()
}

// Root returns the root of this tree, which is always a [GlobalScope].
//
// Returns the zero node if [Tree.SetRoot] has not been called yet.
func (t *Tree) Root() Node {
	if t.root.Nil() {
		return Node{}
	}
	return t.wrap(t.root)
}

// Len returns the number of nodes in this tree.
func (t *Tree) Len() int {
	return t.nodes.Len()
}

// Comments returns an iterator over the comment tokens of this tree's file.
func (t *Tree) Comments() iter.Seq[token.Token] {
	return t.stream.Comments()
}

// NewLeaf creates a leaf node of the given kind wrapping tok.
//
// Panics if kind is not a leaf kind, or tok belongs to a different stream.
func (t *Tree) NewLeaf(kind Kind, tok token.Token) Node {
	if !kind.IsLeaf() {
		panic(fmt.Sprintf("rsyntax/ast: NewLeaf called with non-leaf kind %v", kind))
	}
	if tok.Stream() != t.stream {
		panic(fmt.Sprintf("rsyntax/ast: NewLeaf called with foreign token %v", tok))
	}

	start, end := tok.Offsets()
	return t.wrap(t.nodes.New(rawNode{
		kind:  kind,
		tok:   tok.ID(),
		start: int32(start),
		end:   int32(end),
	}))
}

// NewNode creates a node of the given kind with the given children, in
// order. Zero nodes among children are ignored.
//
// Panics if kind is a leaf kind, if no children remain after dropping zero
// nodes, or if any child belongs to another tree.
func (t *Tree) NewNode(kind Kind, children ...Node) Node {
	if kind.IsLeaf() || kind == KindUnknown {
		panic(fmt.Sprintf("rsyntax/ast: NewNode called with kind %v", kind))
	}

	first := len(t.children)
	start, end := int32(-1), int32(-1)
	for _, child := range children {
		if child.IsZero() {
			continue
		}
		if child.tree != t {
			panic("rsyntax/ast: NewNode called with a node from another tree")
		}

		raw := child.raw()
		if start < 0 {
			start, end = raw.start, raw.end
		} else {
			start, end = min(start, raw.start), max(end, raw.end)
		}
		t.children = append(t.children, child.id)
	}
	if start < 0 {
		panic(fmt.Sprintf("rsyntax/ast: NewNode called without children for %v", kind))
	}

	return t.wrap(t.nodes.New(rawNode{
		kind:  kind,
		first: int32(first),
		count: int32(len(t.children) - first),
		start: start,
		end:   end,
	}))
}

// NewEmpty creates a childless node with an empty span at offset.
//
// Panics if kind cannot be empty, as reported by [Kind.MayBeEmpty].
func (t *Tree) NewEmpty(kind Kind, offset int) Node {
	if !kind.MayBeEmpty() {
		panic(fmt.Sprintf("rsyntax/ast: NewEmpty called with kind %v", kind))
	}
	return t.wrap(t.nodes.New(rawNode{
		kind:  kind,
		first: int32(len(t.children)),
		start: int32(offset),
		end:   int32(offset),
	}))
}

// SetRoot completes this tree with the given root.
//
// Panics if root is not a [GlobalScope] of this tree, or if the root has
// already been set.
func (t *Tree) SetRoot(root Node) {
	if root.tree != t || root.Kind() != GlobalScope {
		panic(fmt.Sprintf("rsyntax/ast: invalid tree root %v", root))
	}
	if !t.root.Nil() {
		panic("rsyntax/ast: tree root set twice")
	}
	t.root = root.id
}

func (t *Tree) wrap(p arena.Pointer[rawNode]) Node {
	return Node{tree: t, id: p}
}
