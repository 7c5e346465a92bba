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

package parser

import (
	"github.com/rsyntax/rsyntax/ast"
	"github.com/rsyntax/rsyntax/report"
	"github.com/rsyntax/rsyntax/source"
)

// DefaultMaxDepth is the nesting limit used when [Options.MaxDepth] is zero.
const DefaultMaxDepth = 512

// Options configures the parser.
//
// The zero value selects the defaults.
type Options struct {
	// The maximum depth of recursion while parsing nested syntax, such as
	// parentheses, blocks and chains of prefix operators. Syntax nested more
	// deeply than this is diagnosed and left unparsed inside an
	// [ast.ErrorNode].
	MaxDepth int
}

// Parse lexes and parses file with the default options.
//
// See [Options.Parse].
func Parse(file *source.File, errs *report.Report) *ast.Tree {
	return Options{}.Parse(file, errs)
}

// Parse lexes and parses file, appending any diagnostics to errs.
//
// Parse never fails: the returned tree is always complete and rooted at an
// [ast.GlobalScope]. When Parse returns, errs is sorted.
func (o Options) Parse(file *source.File, errs *report.Report) *ast.Tree {
	stream := Lex(file, errs)

	p := &parser{
		Tree:     ast.NewTree(stream),
		Report:   errs,
		c:        stream.Cursor(),
		maxDepth: o.MaxDepth,
	}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}

	p.SetRoot(p.parseFile())
	errs.Sort()
	return p.Tree
}

// ParseFile parses text as a file with the given path, returning the tree
// along with a fresh report.
func ParseFile(path, text string) (*ast.Tree, *report.Report) {
	errs := new(report.Report)
	tree := Parse(source.NewFile(path, text), errs)
	return tree, errs
}
