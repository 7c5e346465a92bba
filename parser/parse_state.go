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
	"github.com/rsyntax/rsyntax/internal/taxa"
	"github.com/rsyntax/rsyntax/report"
	"github.com/rsyntax/rsyntax/token"
	"github.com/rsyntax/rsyntax/token/keyword"
)

// parser is an R parser.
type parser struct {
	*ast.Tree
	*report.Report

	c *token.Cursor

	depth, maxDepth int

	// The last token diagnosed as unexpected but left for an enclosing
	// construct to skip. It is not diagnosed a second time.
	reported token.Token

	// How newlines are treated, innermost last. The bottom of the stack is
	// implicitly modeGlobal.
	modes []mode
}

// mode determines whether newlines terminate statements.
type mode byte

const (
	modeGlobal mode = iota // Newlines are significant.
	modeBrace              // Newlines are significant, except before else.
	modeParen              // Newlines are insignificant.
)

func (p *parser) mode() mode {
	if len(p.modes) == 0 {
		return modeGlobal
	}
	return p.modes[len(p.modes)-1]
}

func (p *parser) push(m mode) {
	p.modes = append(p.modes, m)
	p.c.SkipNewlines = m == modeParen
}

func (p *parser) pop() {
	p.modes = p.modes[:len(p.modes)-1]
	p.c.SkipNewlines = p.mode() == modeParen
}

// peek returns the next significant token.
func (p *parser) peek() token.Token {
	return p.c.Peek()
}

// next consumes the next significant token.
func (p *parser) next() token.Token {
	return p.c.Next()
}

// at returns whether the next significant token is the given keyword.
func (p *parser) at(kw keyword.Keyword) bool {
	return p.peek().Keyword() == kw
}

// eatNewlines skips past newlines regardless of the current mode.
func (p *parser) eatNewlines() {
	for {
		tok := p.c.PeekSkippable()
		if tok.IsZero() || (tok.Kind() != token.Newline && !tok.Kind().IsSkippable()) {
			return
		}
		p.c.NextSkippable()
	}
}

// newlineBefore returns whether a line break separates tok from the previous
// significant token.
func newlineBefore(tok token.Token) bool {
	for prev := tok.Prev(); !prev.IsZero(); prev = prev.Prev() {
		switch k := prev.Kind(); {
		case k == token.Newline:
			return true
		case !k.IsSkippable():
			return false
		}
	}
	return false
}

func (p *parser) leaf(tok token.Token) ast.Node {
	return p.NewLeaf(ast.TokenNode, tok)
}

func start(tok token.Token) int {
	start, _ := tok.Offsets()
	return start
}

// synthesize mints a zero-length token for kw just before tok.
func (p *parser) synthesize(kw keyword.Keyword, before token.Token) token.Token {
	kind := token.Operator
	switch {
	case kw.IsPunctuation():
		kind = token.Punct
	case kw.IsReservedWord():
		kind = token.Keyword
	}
	return p.Stream().NewSynthetic(start(before), kind, kw)
}

// expect consumes kw, or diagnoses its absence and returns a synthetic token
// in its place.
func (p *parser) expect(kw keyword.Keyword, where taxa.Place) token.Token {
	if p.at(kw) {
		return p.next()
	}
	got := p.peek()
	p.Error(ErrExpected{Want: kw, Where: where, Got: got})
	return p.synthesize(kw, got)
}

// closeDelim consumes the partner of open, or diagnoses it as unmatched and
// returns a synthetic closer.
//
// If open is itself synthetic, its absence was already diagnosed and a
// missing closer is not diagnosed again.
func (p *parser) closeDelim(open token.Token) token.Token {
	want := open.Keyword().Partner()
	if p.at(want) {
		return p.next()
	}
	got := p.peek()
	if !open.IsSynthetic() {
		p.Error(ErrUnmatched{Open: open, Got: got})
	}
	return p.synthesize(want, got)
}

// skipBalanced consumes tokens up to the next boundary and returns leaves
// for them. Brackets are kept balanced: a boundary only counts when it is not
// nested inside a bracket that was skipped.
//
// End-of-file is always a boundary, and so is a line break when newlines are
// significant. Otherwise, stop decides what is a boundary. If force is set,
// the first token is consumed even if it is a boundary.
func (p *parser) skipBalanced(force bool, stop func(token.Token) bool) []ast.Node {
	var nodes []ast.Node
	var depth int
	for {
		tok := p.c.PeekSkippable()
		switch k := tok.Kind(); {
		case tok.IsZero(), k == token.EOF:
			return nodes
		case k.IsSkippable():
			p.c.NextSkippable()
			continue
		case k == token.Newline:
			if depth == 0 && p.mode() != modeParen && !force {
				return nodes
			}
			p.c.NextSkippable()
			continue
		}

		kw := tok.Keyword()
		if depth == 0 && !force && stop(tok) {
			return nodes
		}
		force = false

		switch {
		case kw.IsOpen():
			depth++
		case kw.IsClose() && depth > 0:
			depth--
		}
		nodes = append(nodes, p.leaf(p.c.NextSkippable()))
	}
}

// errorNode wraps nodes in an [ast.ErrorNode], which is empty and placed at
// the next token if there are none.
func (p *parser) errorNode(nodes []ast.Node) ast.Node {
	if len(nodes) == 0 {
		return p.NewEmpty(ast.ErrorNode, start(p.peek()))
	}
	return p.NewNode(ast.ErrorNode, nodes...)
}

// junk diagnoses and skips unexpected tokens before a closing delimiter, so
// that the delimiter can still be matched. Returns the zero node if the next
// token is a plausible end for the construct.
//
// A token on a new line is taken to start something new, on the assumption
// that the delimiter was never closed.
func (p *parser) junk(where taxa.Place, want taxa.Set) ast.Node {
	stop := func(tok token.Token) bool {
		kw := tok.Keyword()
		return kw.IsClose() || kw == keyword.Semi || newlineBefore(tok)
	}
	if tok := p.peek(); tok.Kind() == token.EOF || stop(tok) {
		return ast.Node{}
	}

	p.Error(ErrUnexpected{What: p.peek(), Where: where, Want: want})
	return p.errorNode(p.skipBalanced(false, stop))
}

// enter records one level of nesting. Returns false if that would exceed the
// nesting limit, in which case the caller must not call leave.
func (p *parser) enter() bool {
	if p.depth >= p.maxDepth {
		return false
	}
	p.depth++
	return true
}

func (p *parser) leave() {
	p.depth--
}

// tooDeep diagnoses syntax nested past the limit, and skips the rest of the
// innermost construct.
func (p *parser) tooDeep(force bool) ast.Node {
	nodes := p.skipBalanced(force, func(tok token.Token) bool {
		kw := tok.Keyword()
		return kw.IsClose() || kw == keyword.Comma || kw == keyword.Semi
	})
	node := p.errorNode(nodes)
	span := node.Span()
	if span.Len() == 0 {
		span = p.peek().Span()
	}
	p.Error(ErrTooDeep{Span: span, Limit: p.maxDepth})
	return node
}
