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

// Package dump renders syntax trees in human-readable forms.
//
// The text form produced by [String] is canonical: it is stable across runs
// and is the format golden tests compare against. Each node occupies one
// line, consisting of four spaces of indentation per level of depth, the
// node's kind, two spaces, and a bracketed display value.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/rsyntax/rsyntax/ast"
	"github.com/rsyntax/rsyntax/token"
)

// Indent is the indentation for one level of depth.
const Indent = "    "

// Printer renders trees in the canonical text form.
//
// A zero Printer is ready to use.
type Printer struct {
	// If set, kind names are passed through this function before being
	// written, for example to colorize them. The result must not contain
	// line breaks.
	StyleKind func(kind ast.Kind, name string) string
}

// String renders the tree rooted at n in the canonical text form.
func String(n ast.Node) string {
	var b strings.Builder
	_ = Printer{}.Print(&b, n)
	return b.String()
}

// Print writes the tree rooted at n to w.
func (p Printer) Print(w io.Writer, n ast.Node) error {
	var b strings.Builder
	ast.Inspect(n, func(node ast.Node, depth int) bool {
		for range depth {
			b.WriteString(Indent)
		}
		name := node.Kind().String()
		if p.StyleKind != nil {
			name = p.StyleKind(node.Kind(), name)
		}
		b.WriteString(name)
		b.WriteString("  [")
		b.WriteString(Display(node))
		b.WriteString("]\n")
		return true
	})
	_, err := io.WriteString(w, b.String())
	return err
}

// Display returns the value shown in brackets after a node's kind.
func Display(n ast.Node) string {
	switch k := n.Kind(); k {
	case ast.KindUnknown:
		return ""
	case ast.GlobalScope:
		return "Global"
	case ast.Scope, ast.KeywordExpressionStatement:
		return ""
	case ast.MissingArgument:
		return "{Missing}"
	case ast.ExpressionStatement, ast.Expression, ast.Variable:
		return escape(n.Text())
	case ast.TokenOperator:
		return withOffsets(operator(n))
	case ast.ErrorNode:
		start, end := n.Offsets()
		return fmt.Sprintf("%s [%d...%d]", escape(n.Text()), start, end)
	default:
		if k.IsLeaf() {
			return withOffsets(n.Token())
		}
		return k.String()
	}
}

// operator returns the operator token of a [ast.TokenOperator].
func operator(n ast.Node) token.Token {
	return n.ChildOf(ast.TokenNode).Token()
}

func withOffsets(tok token.Token) string {
	start, end := tok.Offsets()
	return fmt.Sprintf("%s [%d...%d]", escape(tok.Text()), start, end)
}

var escaper = strings.NewReplacer("\r", `\r`, "\n", `\n`)

func escape(text string) string {
	return escaper.Replace(text)
}
