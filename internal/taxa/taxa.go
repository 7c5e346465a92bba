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

// Package taxa (plural of taxon, an element of a taxonomy) provides support
// for naming R syntax productions in diagnostics.
package taxa

import "fmt"

// Noun is a syntactic element within the grammar that can be referred to
// within a diagnostic.
type Noun int

const (
	Unknown Noun = iota
	Unrecognized
	TopLevel
	EOF
	Newline

	Statement
	Block
	Expr
	Operand
	Group
	Call
	Index
	FuncDef
	Params
	Args
	ArgName
	Condition
	ForHeader
	ForVar
	Body

	Whitespace
	Comment
	Ident
	Number
	String
	Constant
	Operator

	Semicolon
	Comma
	Equals
	LParen
	RParen
	LBracket
	RBracket
	LBracket2
	RBracket2
	LBrace
	RBrace

	KeywordIf
	KeywordElse
	KeywordFor
	KeywordWhile
	KeywordRepeat
	KeywordFunction
	KeywordBreak
	KeywordNext
	KeywordReturn
	KeywordIn

	// total is the total number of known [Noun] values.
	total int = iota
)

// String implements [fmt.Stringer].
func (n Noun) String() string {
	if n >= 0 && int(n) < len(names) {
		return names[n]
	}
	return fmt.Sprintf("taxa.Noun(%d)", int(n))
}

// GoString implements [fmt.GoStringer].
func (n Noun) GoString() string {
	return fmt.Sprintf("taxa.Noun(%q)", n.String())
}

// In is a shorthand for the "in" preposition.
func (n Noun) In() Place {
	return Place{n, "in"}
}

// After is a shorthand for the "after" preposition.
func (n Noun) After() Place {
	return Place{n, "after"}
}

// AsSet returns a singleton set containing this Noun.
func (n Noun) AsSet() Set {
	return NewSet(n)
}

// Place is a location within the grammar that can be referred to within a
// diagnostic.
//
// It corresponds to a prepositional phrase in English.
type Place struct {
	subject     Noun
	preposition string
}

// Subject returns this place's subject.
func (p Place) Subject() Noun {
	return p.subject
}

// String implements [fmt.Stringer].
func (p Place) String() string {
	return p.preposition + " " + p.subject.String()
}
