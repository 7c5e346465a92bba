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

package token

import "fmt"

const (
	Unrecognized Kind = iota // Unrecognized garbage in the input file.

	Space   // Non-newline contiguous whitespace.
	Newline // A single line break: \n, \r\n, or \r.
	Comment // A single comment, from # to the end of the line.
	Ident   // An identifier, possibly backtick-quoted.
	Keyword // A reserved word, such as if or TRUE.
	Number  // A numeric literal.
	String  // A string literal, including raw strings.
	Operator
	Punct // Brackets, commas and semicolons.
	EOF   // The zero-length end-of-file sentinel.
)

// Kind identifies what kind of token a particular [Token] is.
type Kind byte

// IsSkippable returns whether this is a token that is never examined during
// syntactic analysis.
//
// Newlines are not skippable: whether they are significant depends on the
// grammar, see [Cursor.SkipNewlines].
func (t Kind) IsSkippable() bool {
	return t == Space || t == Comment || t == Unrecognized
}

// IsTrivia returns whether this token carries no syntax at all.
func (t Kind) IsTrivia() bool {
	return t == Space || t == Comment || t == Newline
}

// String implements [fmt.Stringer].
func (t Kind) String() string {
	switch t {
	case Unrecognized:
		return "Unrecognized"
	case Space:
		return "Space"
	case Newline:
		return "Newline"
	case Comment:
		return "Comment"
	case Ident:
		return "Ident"
	case Keyword:
		return "Keyword"
	case Number:
		return "Number"
	case String:
		return "String"
	case Operator:
		return "Operator"
	case Punct:
		return "Punct"
	case EOF:
		return "EOF"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(t))
	}
}
