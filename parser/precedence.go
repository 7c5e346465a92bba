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
	"github.com/rsyntax/rsyntax/token"
	"github.com/rsyntax/rsyntax/token/keyword"
)

// Binding strengths of R's operators, loosest first.
//
// The grammar is, roughly:
//
//	Expr  := Expr BinOp Expr | PrefixOp Expr | Postfix
//	BinOp := ? | = | <- <<- := | -> ->> | ~ | '|' '||' | & && |
//	         < > <= >= == != | + - | * / | %any% |> | : | ^
//	PrefixOp := ? | ~ | ! | - +
//	Postfix := Primary (:: Name | ::: Name | $ Name | @ Name
//	           | ( Args ) | [ Args ] | [[ Args ]])*
//
// Postfix operators bind tighter than all of these and are handled outside
// of the table.
const (
	precHelp   = iota // ?
	precEquals        // =
	precAssign        // <- <<- :=

	// As in R's own grammar (see ?Syntax), = binds more loosely than <-,
	// and -> and ->> associate to the left, unlike the other assignments.
	precRightArrow // -> ->>
	precTilde      // ~
	precOr         // | ||
	precAnd        // & &&
	precNot        // unary !
	precCompare    // < > <= >= == !=
	precAdd        // + -
	precMul        // * /
	precSpecial    // %any% |>
	precRange      // :
	precSign       // unary + -
	precPower      // ^ **
)

// infix returns the binding strength of tok as a binary operator, and
// whether it associates to the right.
//
// Returns ok == false if tok is not a binary operator.
func infix(tok token.Token) (prec int, right, ok bool) {
	if tok.Kind() != token.Operator {
		return 0, false, false
	}

	switch tok.Keyword() {
	case keyword.Question:
		return precHelp, false, true
	case keyword.Equals:
		return precEquals, true, true
	case keyword.Assign, keyword.SuperAssign, keyword.Walrus:
		return precAssign, true, true
	case keyword.RightAssign, keyword.RightSuperAssign:
		return precRightArrow, false, true
	case keyword.Tilde:
		return precTilde, false, true
	case keyword.Or, keyword.OrOr:
		return precOr, false, true
	case keyword.And, keyword.AndAnd:
		return precAnd, false, true
	case keyword.Less, keyword.Greater, keyword.LessEq, keyword.GreaterEq,
		keyword.EqEq, keyword.NotEq:
		return precCompare, false, true
	case keyword.Plus, keyword.Minus:
		return precAdd, false, true
	case keyword.Star, keyword.Slash:
		return precMul, false, true
	case keyword.Special, keyword.Pipe:
		return precSpecial, false, true
	case keyword.Colon:
		return precRange, false, true
	case keyword.Caret, keyword.StarStar:
		return precPower, true, true
	default:
		return 0, false, false
	}
}

// prefix returns the binding strength of tok as a prefix operator. The
// operand of a prefix operator extends over all operators that bind at
// least as tightly.
//
// Returns ok == false if tok is not a prefix operator.
func prefix(tok token.Token) (prec int, ok bool) {
	if tok.Kind() != token.Operator {
		return 0, false
	}

	switch tok.Keyword() {
	case keyword.Question:
		return precHelp, true
	case keyword.Tilde:
		return precTilde, true
	case keyword.Bang:
		return precNot, true
	case keyword.Plus, keyword.Minus:
		return precSign, true
	default:
		return 0, false
	}
}

// isPostfix returns whether tok continues a postfix chain.
func isPostfix(tok token.Token) bool {
	switch tok.Keyword() {
	case keyword.LParen, keyword.LBracket, keyword.LBracket2,
		keyword.Dollar, keyword.At, keyword.ColonColon, keyword.ColonColonColon:
		return true
	default:
		return false
	}
}
