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
	"github.com/rsyntax/rsyntax/token"
	"github.com/rsyntax/rsyntax/token/keyword"
)

// parseExpression parses an expression and wraps it in an [ast.Expression].
func (p *parser) parseExpression(where taxa.Place) ast.Node {
	return p.NewNode(ast.Expression, p.parseBinary(0, where))
}

// parseBinary parses an expression containing no binary operators that bind
// more loosely than min, by precedence climbing.
func (p *parser) parseBinary(min int, where taxa.Place) ast.Node {
	left := p.parseUnary(where)
	for {
		prec, right, ok := infix(p.peek())
		if !ok || prec < min {
			return left
		}

		op := p.next()
		// A line break after a binary operator never ends the expression.
		p.eatNewlines()

		next := prec + 1
		if right {
			next = prec
		}
		// Right-associative chains such as a^b^c nest here.
		var rhs ast.Node
		if p.enter() {
			rhs = p.parseBinary(next, taxa.Operator.After())
			p.leave()
		} else {
			rhs = p.tooDeep(false)
		}
		left = p.NewNode(ast.TokenOperator, left, p.leaf(op), rhs)
	}
}

// parseUnary parses a prefix operator application or a postfix chain.
func (p *parser) parseUnary(where taxa.Place) ast.Node {
	if !p.enter() {
		return p.tooDeep(false)
	}
	defer p.leave()

	if prec, ok := prefix(p.peek()); ok {
		op := p.next()
		p.eatNewlines()
		operand := p.parseBinary(prec, taxa.Operator.After())
		return p.NewNode(ast.TokenOperator, p.leaf(op), operand)
	}

	return p.parsePostfix(p.parsePrimary(where))
}

// parsePostfix applies calls, indexing, and member accesses to left for as
// long as they follow it.
func (p *parser) parsePostfix(left ast.Node) ast.Node {
	for tok := p.peek(); isPostfix(tok); tok = p.peek() {
		switch tok.Keyword() {
		case keyword.LParen:
			open, args, closer := p.parseDelimitedArgs(taxa.Call)
			left = p.NewNode(ast.FunctionCall, left, open, args, closer)

		case keyword.LBracket, keyword.LBracket2:
			open, args, closer := p.parseDelimitedArgs(taxa.Index)
			left = p.NewNode(ast.Indexer, left, open, args, closer)

		default:
			op := p.next()
			p.eatNewlines()
			left = p.NewNode(ast.TokenOperator, left, p.leaf(op), p.parseMember(op))
		}
	}
	return left
}

// parseMember parses the name after $, @, ::, or :::.
func (p *parser) parseMember(op token.Token) ast.Node {
	tok := p.peek()
	switch tok.Kind() {
	case token.Ident:
		return p.NewLeaf(ast.Variable, p.next())
	case token.String:
		return p.NewLeaf(ast.StringValue, p.next())
	}

	return p.missingOperand(tok, taxa.Classify(op).After(), taxa.Ident.AsSet())
}

// parsePrimary parses an operand: a name, literal, group, block, or function
// definition.
func (p *parser) parsePrimary(where taxa.Place) ast.Node {
	tok := p.peek()

	if kind := valueKind(tok); kind != ast.KindUnknown {
		return p.NewLeaf(kind, p.next())
	}

	switch kw := tok.Keyword(); {
	case kw == keyword.LParen:
		return p.parseGroup()
	case kw == keyword.LBrace:
		return p.parseScope()
	case kw == keyword.Function, kw == keyword.Backslash:
		return p.parseFunction()
	case kw.IsControl():
		return p.NewNode(ast.KeywordExpressionStatement, p.parseControl()...)
	}

	return p.missingOperand(tok, where, taxa.Expr.AsSet())
}

// missingOperand diagnoses tok where an operand was expected. The returned
// [ast.ErrorNode] is empty if tok ends the expression, and otherwise wraps
// tok. An unconsumed tok is recorded in p.reported.
func (p *parser) missingOperand(tok token.Token, where taxa.Place, want taxa.Set) ast.Node {
	p.Error(ErrUnexpected{What: tok, Where: where, Want: want})

	switch kw := tok.Keyword(); {
	case tok.Kind() == token.EOF, tok.Kind() == token.Newline,
		kw.IsClose(), kw == keyword.Semi, kw == keyword.Comma:
		p.reported = tok
		return p.errorNode(nil)
	}
	return p.NewNode(ast.ErrorNode, p.leaf(p.next()))
}

// valueKind returns the kind of leaf for a name or literal token, or
// [ast.KindUnknown] if tok is neither.
func valueKind(tok token.Token) ast.Kind {
	switch tok.Kind() {
	case token.Ident:
		return ast.Variable
	case token.String:
		return ast.StringValue
	case token.Number:
		if IsComplex(tok.Text()) {
			return ast.ComplexValue
		}
		return ast.NumericalValue
	case token.Keyword:
		switch tok.Keyword() {
		case keyword.True, keyword.False:
			return ast.LogicalValue
		case keyword.Null:
			return ast.NullValue
		case keyword.NA, keyword.NAInteger, keyword.NAReal, keyword.NACharacter:
			return ast.MissingValue
		case keyword.Inf, keyword.NaN:
			return ast.NumericalValue
		}
	}
	return ast.KindUnknown
}

// parseGroup parses a parenthesized expression.
func (p *parser) parseGroup() ast.Node {
	open := p.next()
	p.push(modeParen)
	defer p.pop()

	expr := p.parseExpression(taxa.Group.In())
	junk := p.junk(taxa.Group.In(), taxa.RParen.AsSet())
	return p.NewNode(ast.Group, p.leaf(open), expr, junk, p.leaf(p.closeDelim(open)))
}

// parseFunction parses a function definition, introduced by function or \.
func (p *parser) parseFunction() ast.Node {
	kw := p.next()

	var open, args, closer ast.Node
	if p.at(keyword.LParen) {
		open, args, closer = p.parseDelimitedArgs(taxa.Params)
	} else {
		got := p.peek()
		p.Error(ErrExpected{Want: keyword.LParen, Where: taxa.Classify(kw).After(), Got: got})
		open = p.leaf(p.synthesize(keyword.LParen, got))
		args = p.NewEmpty(ast.ArgumentList, start(got))
		closer = p.leaf(p.synthesize(keyword.RParen, got))
	}

	body := p.parseBody(taxa.Params.After())
	return p.NewNode(ast.FunctionDefinition, p.leaf(kw), open, args, closer, body)
}
