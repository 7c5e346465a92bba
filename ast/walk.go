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

import "iter"

// Walk returns an iterator over this node and all of its descendants, in
// preorder (which is also source order).
func (n Node) Walk() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		n.walk(yield)
	}
}

func (n Node) walk(yield func(Node) bool) bool {
	if n.IsZero() {
		return true
	}
	if !yield(n) {
		return false
	}
	for child := range n.Children() {
		if !child.walk(yield) {
			return false
		}
	}
	return true
}

// Inspect traverses the tree rooted at n in preorder, calling visit with
// each node and its depth below n. If visit returns false, the children of
// that node are skipped.
func Inspect(n Node, visit func(node Node, depth int) bool) {
	inspect(n, 0, visit)
}

func inspect(n Node, depth int, visit func(Node, int) bool) {
	if n.IsZero() || !visit(n, depth) {
		return
	}
	for child := range n.Children() {
		inspect(child, depth+1, visit)
	}
}
