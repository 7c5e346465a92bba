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

// parseDelimitedArgs parses an argument list between the bracket at the
// cursor and its partner. Returns the leaves for both brackets along with
// the [ast.ArgumentList].
func (p *parser) parseDelimitedArgs(in taxa.Noun) (open, args, closer ast.Node) {
	tok := p.next()
	p.push(modeParen)
	defer p.pop()

	args = p.parseArgs(tok.Keyword().Partner(), in)
	return p.leaf(tok), args, p.leaf(p.closeDelim(tok))
}

// parseArgs parses comma-separated arguments up to, but not including, the
// closer.
//
// Empty arguments are permitted anywhere, as in f(, x, ): each comma without
// an argument before it produces an [ast.MissingArgument], and so does a
// trailing comma.
func (p *parser) parseArgs(closer keyword.Keyword, in taxa.Noun) ast.Node {
	var args []ast.Node
	var comma bool
	for {
		tok := p.peek()
		if tok.Keyword() == keyword.Comma {
			args = append(args, p.NewNode(ast.MissingArgument, p.leaf(p.next())))
			comma = true
			continue
		}
		if endsArgs(tok) {
			if comma {
				args = append(args, p.NewEmpty(ast.MissingArgument, start(tok)))
			}
			break
		}

		arg := p.parseArg(in)
		args = append(args, arg)
		comma = arg.Child(-1).Token().Keyword() == keyword.Comma
		if comma {
			continue
		}

		// Without a comma, the argument must be the last one. A token on
		// a new line is assumed to begin a new statement, because the closer
		// is probably missing.
		next := p.peek()
		if endsArgs(next) || newlineBefore(next) {
			break
		}
		p.Error(ErrUnexpected{
			What:  next,
			Where: in.In(),
			Want:  taxa.NewSet(taxa.Comma, taxa.FromKeyword(closer)),
		})
	}

	if len(args) == 0 {
		return p.NewEmpty(ast.ArgumentList, start(p.peek()))
	}
	return p.NewNode(ast.ArgumentList, args...)
}

// parseArg parses a single argument and its trailing comma, if any.
func (p *parser) parseArg(in taxa.Noun) ast.Node {
	var comma ast.Node
	trailer := func() ast.Node {
		if p.at(keyword.Comma) {
			return p.leaf(p.next())
		}
		return ast.Node{}
	}

	if tok := p.peek(); (tok.Kind() == token.Ident || tok.Kind() == token.String) &&
		p.c.PeekN(2).Keyword() == keyword.Equals {
		name := p.leaf(p.next())
		eq := p.leaf(p.next())

		var value ast.Node
		if next := p.peek(); next.Keyword() != keyword.Comma && !endsArgs(next) {
			value = p.parseExpression(taxa.ArgName.After())
		}
		comma = trailer()
		return p.NewNode(ast.NamedArgument, name, eq, value, comma)
	}

	expr := p.parseExpression(in.In())
	comma = trailer()
	return p.NewNode(ast.ExpressionArgument, expr, comma)
}

// endsArgs returns whether tok ends an argument list, whether or not it is
// the expected closer.
func endsArgs(tok token.Token) bool {
	kw := tok.Keyword()
	return tok.Kind() == token.EOF || kw.IsClose() || kw == keyword.Semi
}
