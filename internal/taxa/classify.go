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

package taxa

import (
	"github.com/rsyntax/rsyntax/token"
	"github.com/rsyntax/rsyntax/token/keyword"
)

// Classify attempts to classify a token for use in a diagnostic.
func Classify(tok token.Token) Noun {
	if tok.IsZero() {
		return Unknown
	}

	switch tok.Kind() {
	case token.Space:
		return Whitespace
	case token.Newline:
		return Newline
	case token.Comment:
		return Comment
	case token.Ident:
		return Ident
	case token.Number:
		return Number
	case token.String:
		return String
	case token.EOF:
		return EOF
	case token.Unrecognized:
		return Unrecognized
	}

	if n := FromKeyword(tok.Keyword()); n != Unknown {
		return n
	}
	switch {
	case tok.Keyword().IsConstant():
		return Constant
	case tok.Keyword().IsOperator():
		return Operator
	}
	return Unknown
}

// FromKeyword returns the noun naming a keyword that has one of its own.
func FromKeyword(kw keyword.Keyword) Noun {
	switch kw {
	case keyword.Semi:
		return Semicolon
	case keyword.Comma:
		return Comma
	case keyword.Equals:
		return Equals
	case keyword.LParen:
		return LParen
	case keyword.RParen:
		return RParen
	case keyword.LBracket:
		return LBracket
	case keyword.RBracket:
		return RBracket
	case keyword.LBracket2:
		return LBracket2
	case keyword.RBracket2:
		return RBracket2
	case keyword.LBrace:
		return LBrace
	case keyword.RBrace:
		return RBrace
	case keyword.If:
		return KeywordIf
	case keyword.Else:
		return KeywordElse
	case keyword.For:
		return KeywordFor
	case keyword.While:
		return KeywordWhile
	case keyword.Repeat:
		return KeywordRepeat
	case keyword.Function:
		return KeywordFunction
	case keyword.Break:
		return KeywordBreak
	case keyword.Next:
		return KeywordNext
	case keyword.Return:
		return KeywordReturn
	case keyword.In:
		return KeywordIn
	default:
		return Unknown
	}
}
