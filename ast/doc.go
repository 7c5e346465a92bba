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

// Package ast is the concrete syntax tree of an R file.
//
// The tree is lossless with respect to syntax: every significant token of the
// file belongs to exactly one leaf of the tree, in source order. Trivia
// (whitespace, comments and insignificant line breaks) is not part of the
// tree, but is still reachable through the [token.Stream] it was parsed from.
//
// # Tree Storage
//
// All nodes of a tree live in a single [Tree], which acts as an arena. A
// [Node] is a thin pointer-like value referring to a slot in that arena. It
// is intended to be passed by value, and the zero Node (for which
// [Node.IsZero] is true) plays the role of a nil pointer.
//
// Trees are built bottom-up: a node's children must exist before the node
// itself. Once built, a tree is immutable. Parent links are not stored in
// the nodes; [Node.Parent] consults an index that is computed on first use.
//
// # Spans
//
// The span of every node is the union of the spans of its children, and the
// span of a leaf is the span of its token. A node with no children (an empty
// argument list, for example) has an empty span at the offset where it
// appears.
package ast
