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

// Package keyword provides [Keyword], an enum of all special "grammar particles"
// (i.e., literal tokens with special meaning in the grammar such as reserved
// words, operators and punctuation) recognized by the R lexer.
package keyword

import "fmt"

// Keyword is a special literal token in R source.
//
// The zero value is [Unknown], which is used for identifiers, literals and
// everything else that is not a fixed piece of text.
type Keyword byte

const (
	Unknown Keyword = iota

	// Reserved words.
	If
	Else
	For
	While
	Repeat
	Function
	Break
	Next
	Return
	In
	True
	False
	Null
	NA
	NAInteger
	NAReal
	NACharacter
	Inf
	NaN

	// Operators.
	Assign           // <-
	SuperAssign      // <<-
	RightAssign      // ->
	RightSuperAssign // ->>
	Equals           // =
	Walrus           // :=
	Plus             // +
	Minus            // -
	Star             // *
	Slash            // /
	Caret            // ^
	StarStar         // **, an alias for ^.
	Less             // <
	Greater          // >
	LessEq           // <=
	GreaterEq        // >=
	EqEq             // ==
	NotEq            // !=
	Bang             // !
	And              // &
	AndAnd           // &&
	Or               // |
	OrOr             // ||
	Tilde            // ~
	Question         // ?
	Colon            // :
	ColonColon       // ::
	ColonColonColon  // :::
	Dollar           // $
	At               // @
	Pipe             // |>
	Backslash        // \, the lambda shorthand.
	Special          // %any%, matched by the lexer rather than by text.

	// Punctuation.
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBracket2 // [[
	RBracket2 // ]]
	LBrace    // {
	RBrace    // }
	Comma     // ,
	Semi      // ;

	total int = iota
)

// names is the source text of each keyword.
var names = [...]string{
	Unknown: "",

	If:          "if",
	Else:        "else",
	For:         "for",
	While:       "while",
	Repeat:      "repeat",
	Function:    "function",
	Break:       "break",
	Next:        "next",
	Return:      "return",
	In:          "in",
	True:        "TRUE",
	False:       "FALSE",
	Null:        "NULL",
	NA:          "NA",
	NAInteger:   "NA_integer_",
	NAReal:      "NA_real_",
	NACharacter: "NA_character_",
	Inf:         "Inf",
	NaN:         "NaN",

	Assign:           "<-",
	SuperAssign:      "<<-",
	RightAssign:      "->",
	RightSuperAssign: "->>",
	Equals:           "=",
	Walrus:           ":=",
	Plus:             "+",
	Minus:            "-",
	Star:             "*",
	Slash:            "/",
	Caret:            "^",
	StarStar:         "**",
	Less:             "<",
	Greater:          ">",
	LessEq:           "<=",
	GreaterEq:        ">=",
	EqEq:             "==",
	NotEq:            "!=",
	Bang:             "!",
	And:              "&",
	AndAnd:           "&&",
	Or:               "|",
	OrOr:             "||",
	Tilde:            "~",
	Question:         "?",
	Colon:            ":",
	ColonColon:       "::",
	ColonColonColon:  ":::",
	Dollar:           "$",
	At:               "@",
	Pipe:             "|>",
	Backslash:        "\\",
	Special:          "%%",

	LParen:    "(",
	RParen:    ")",
	LBracket:  "[",
	RBracket:  "]",
	LBracket2: "[[",
	RBracket2: "]]",
	LBrace:    "{",
	RBrace:    "}",
	Comma:     ",",
	Semi:      ";",
}

var words = func() map[string]Keyword {
	m := make(map[string]Keyword)
	for k := range Keyword(total) {
		if k.IsReservedWord() {
			m[k.String()] = k
		}
	}
	return m
}()

// Lookup looks up a reserved word by its exact text.
//
// Returns [Unknown] if text is not a reserved word.
func Lookup(text string) Keyword {
	return words[text]
}

// String implements [fmt.Stringer].
//
// For [Special], this returns "%%", the shortest such operator.
func (k Keyword) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("keyword.Keyword(%d)", int(k))
}

// GoString implements [fmt.GoStringer].
func (k Keyword) GoString() string {
	if k == Unknown {
		return "keyword.Unknown"
	}
	return fmt.Sprintf("keyword.Keyword(%q)", k.String())
}
