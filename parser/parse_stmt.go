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

// parseFile parses the whole stream into a [ast.GlobalScope].
func (p *parser) parseFile() ast.Node {
	stmts := p.parseStatements(taxa.TopLevel)
	if len(stmts) == 0 {
		return p.NewEmpty(ast.GlobalScope, 0)
	}
	return p.NewNode(ast.GlobalScope, stmts...)
}

// parseStatements parses statements until end-of-file, or until a } when
// parsing a block.
func (p *parser) parseStatements(in taxa.Noun) []ast.Node {
	var stmts []ast.Node
	for {
		p.eatNewlines()
		tok := p.peek()
		if tok.Kind() == token.EOF || (in == taxa.Block && tok.Keyword() == keyword.RBrace) {
			return stmts
		}

		stmt := p.parseStatement(in.In(), true)
		stmts = append(stmts, stmt)
		p.terminate(stmt)
	}
}

// parseStatement parses a single statement. If semi is set, a trailing ; is
// made part of it.
func (p *parser) parseStatement(where taxa.Place, semi bool) ast.Node {
	if !p.enter() {
		return p.tooDeep(true)
	}
	defer p.leave()

	tok := p.peek()
	switch {
	case tok.Keyword().IsControl():
		nodes := p.parseControl()
		if semi && p.at(keyword.Semi) {
			nodes = append(nodes, p.leaf(p.next()))
		}
		return p.NewNode(ast.KeywordExpressionStatement, nodes...)

	case startsExpr(tok):
		expr := p.parseExpression(where)
		var end ast.Node
		if semi && p.at(keyword.Semi) {
			end = p.leaf(p.next())
		}
		return p.NewNode(ast.ExpressionStatement, expr, end)
	}

	if tok != p.reported {
		d := p.Error(ErrUnexpected{What: tok, Where: where, Want: taxa.Statement.AsSet()})
		if tok.Keyword() == keyword.Else {
			d.With(report.Help("at the top level, `else` must be on the same line as the end of the `if` body"))
		}
	}

	nodes := p.skipBalanced(true, func(tok token.Token) bool {
		kw := tok.Keyword()
		return kw == keyword.Semi || (p.mode() == modeBrace && kw == keyword.RBrace)
	})
	if semi && p.at(keyword.Semi) {
		nodes = append(nodes, p.leaf(p.next()))
	}
	return p.errorNode(nodes)
}

// terminate checks that a statement is followed by a line break, a ;, or the
// end of its scope.
func (p *parser) terminate(stmt ast.Node) {
	tok := p.peek()
	if tok.Kind() == token.EOF || tok.Kind() == token.Newline || tok.Keyword().IsClose() {
		return
	}
	if last := stmt.Child(-1); last.Kind() == ast.TokenNode && last.Token().Keyword() == keyword.Semi {
		return
	}
	if !stmt.Kind().IsStatement() || tok == p.reported {
		return
	}
	p.Error(ErrMissingTerminator{Prev: stmt, Next: tok})
}

// parseControl parses the tokens of an if, for, while, repeat, break, next,
// or return construct.
func (p *parser) parseControl() []ast.Node {
	kw := p.next()
	nodes := []ast.Node{p.leaf(kw)}

	switch kw.Keyword() {
	case keyword.If:
		nodes = append(nodes, p.parseCondition(taxa.KeywordIf)...)
		nodes = append(nodes, p.parseBody(taxa.Condition.After()))
		if elseTok := p.parseElse(); !elseTok.IsZero() {
			nodes = append(nodes, p.leaf(elseTok), p.parseBody(taxa.KeywordElse.After()))
		}

	case keyword.While:
		nodes = append(nodes, p.parseCondition(taxa.KeywordWhile)...)
		nodes = append(nodes, p.parseBody(taxa.Condition.After()))

	case keyword.For:
		nodes = append(nodes, p.parseForHeader()...)
		nodes = append(nodes, p.parseBody(taxa.ForHeader.After()))

	case keyword.Repeat:
		nodes = append(nodes, p.parseBody(taxa.KeywordRepeat.After()))

	case keyword.Return:
		if !p.at(keyword.LParen) {
			break
		}
		open := p.next()
		p.push(modeParen)
		nodes = append(nodes, p.leaf(open))
		if !p.at(keyword.RParen) {
			nodes = append(nodes, p.parseExpression(taxa.KeywordReturn.In()))
			nodes = append(nodes, p.junk(taxa.KeywordReturn.In(), taxa.RParen.AsSet()))
		}
		nodes = append(nodes, p.leaf(p.closeDelim(open)))
		p.pop()
	}

	return nodes
}

// parseCondition parses the parenthesized condition of an if or while.
func (p *parser) parseCondition(owner taxa.Noun) []ast.Node {
	open := p.expect(keyword.LParen, owner.After())
	p.push(modeParen)
	defer p.pop()

	cond := p.parseExpression(taxa.Condition.In())
	junk := p.junk(taxa.Condition.In(), taxa.RParen.AsSet())
	return []ast.Node{p.leaf(open), cond, junk, p.leaf(p.closeDelim(open))}
}

// parseForHeader parses (var in seq).
func (p *parser) parseForHeader() []ast.Node {
	open := p.expect(keyword.LParen, taxa.KeywordFor.After())
	p.push(modeParen)
	defer p.pop()

	var name ast.Node
	if tok := p.peek(); tok.Kind() == token.Ident {
		name = p.NewLeaf(ast.Variable, p.next())
	} else {
		p.Error(ErrUnexpected{What: tok, Where: taxa.ForHeader.In(), Want: taxa.ForVar.AsSet()})
		if tok.Keyword() == keyword.In || tok.Keyword().IsClose() || tok.Kind() == token.EOF {
			name = p.errorNode(nil)
		} else {
			name = p.NewNode(ast.ErrorNode, p.leaf(p.next()))
		}
	}

	in := p.expect(keyword.In, taxa.ForVar.After())
	seq := p.parseExpression(taxa.ForHeader.In())
	junk := p.junk(taxa.ForHeader.In(), taxa.RParen.AsSet())
	return []ast.Node{p.leaf(open), name, p.leaf(in), seq, junk, p.leaf(p.closeDelim(open))}
}

// parseElse consumes an else, if one follows. Returns the zero token
// otherwise.
//
// At the top level, a line break ends an if statement, so an else on the
// next line does not belong to it.
func (p *parser) parseElse() token.Token {
	mark := p.c.Mark()
	if p.mode() != modeGlobal {
		p.eatNewlines()
	}
	if p.at(keyword.Else) {
		return p.next()
	}
	p.c.Rewind(mark)
	return token.Zero
}

// parseBody parses the body of a function or control construct: either a
// block, or a single statement wrapped in a [ast.SimpleScope].
func (p *parser) parseBody(where taxa.Place) ast.Node {
	p.eatNewlines()

	tok := p.peek()
	switch {
	case tok.Keyword() == keyword.LBrace:
		return p.parseScope()
	case tok.Keyword().IsControl(), startsExpr(tok):
		return p.NewNode(ast.SimpleScope, p.parseStatement(taxa.Body.In(), false))
	}

	p.Error(ErrUnexpected{What: tok, Where: where, Want: taxa.Body.AsSet()})
	return p.NewNode(ast.SimpleScope, p.errorNode(nil))
}

// parseScope parses a brace-delimited block.
func (p *parser) parseScope() ast.Node {
	open := p.next()
	p.push(modeBrace)
	stmts := p.parseStatements(taxa.Block)
	p.pop()
	closer := p.closeDelim(open)

	nodes := make([]ast.Node, 0, len(stmts)+2)
	nodes = append(nodes, p.leaf(open))
	nodes = append(nodes, stmts...)
	nodes = append(nodes, p.leaf(closer))
	return p.NewNode(ast.Scope, nodes...)
}

// startsExpr returns whether tok can begin an expression.
func startsExpr(tok token.Token) bool {
	switch tok.Kind() {
	case token.Ident, token.Number, token.String:
		return true
	case token.Keyword:
		kw := tok.Keyword()
		return kw.IsConstant() || kw.IsControl() || kw == keyword.Function
	}

	if _, ok := prefix(tok); ok {
		return true
	}
	switch tok.Keyword() {
	case keyword.LParen, keyword.LBrace, keyword.Backslash:
		return true
	default:
		return false
	}
}
