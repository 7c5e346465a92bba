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

package keyword

type property uint16

const (
	valid property = 1 << iota

	word
	operator
	punct

	constant
	binary
	prefix
	open
	close //nolint:predeclared
	control
)

func (k Keyword) properties() property {
	if int(k) < len(properties) {
		return properties[k]
	}
	return 0
}

// properties is a table of keyword properties, stored as bitsets.
var properties = [...]property{
	If:          valid | word | control,
	Else:        valid | word,
	For:         valid | word | control,
	While:       valid | word | control,
	Repeat:      valid | word | control,
	Function:    valid | word,
	Break:       valid | word | control,
	Next:        valid | word | control,
	Return:      valid | word | control,
	In:          valid | word,
	True:        valid | word | constant,
	False:       valid | word | constant,
	Null:        valid | word | constant,
	NA:          valid | word | constant,
	NAInteger:   valid | word | constant,
	NAReal:      valid | word | constant,
	NACharacter: valid | word | constant,
	Inf:         valid | word | constant,
	NaN:         valid | word | constant,

	Assign:           valid | operator | binary,
	SuperAssign:      valid | operator | binary,
	RightAssign:      valid | operator | binary,
	RightSuperAssign: valid | operator | binary,
	Equals:           valid | operator | binary,
	Walrus:           valid | operator | binary,
	Plus:             valid | operator | binary | prefix,
	Minus:            valid | operator | binary | prefix,
	Star:             valid | operator | binary,
	Slash:            valid | operator | binary,
	Caret:            valid | operator | binary,
	StarStar:         valid | operator | binary,
	Less:             valid | operator | binary,
	Greater:          valid | operator | binary,
	LessEq:           valid | operator | binary,
	GreaterEq:        valid | operator | binary,
	EqEq:             valid | operator | binary,
	NotEq:            valid | operator | binary,
	Bang:             valid | operator | prefix,
	And:              valid | operator | binary,
	AndAnd:           valid | operator | binary,
	Or:               valid | operator | binary,
	OrOr:             valid | operator | binary,
	Tilde:            valid | operator | binary | prefix,
	Question:         valid | operator | binary | prefix,
	Colon:            valid | operator | binary,
	ColonColon:       valid | operator,
	ColonColonColon:  valid | operator,
	Dollar:           valid | operator,
	At:               valid | operator,
	Pipe:             valid | operator | binary,
	Backslash:        valid | operator,
	Special:          valid | operator | binary,

	LParen:    valid | punct | open,
	RParen:    valid | punct | close,
	LBracket:  valid | punct | open,
	RBracket:  valid | punct | close,
	LBracket2: valid | punct | open,
	RBracket2: valid | punct | close,
	LBrace:    valid | punct | open,
	RBrace:    valid | punct | close,
	Comma:     valid | punct,
	Semi:      valid | punct,
}

// pairs maps each bracket to its partner.
var pairs = [...]Keyword{
	LParen:    RParen,
	RParen:    LParen,
	LBracket:  RBracket,
	RBracket:  LBracket,
	LBracket2: RBracket2,
	RBracket2: LBracket2,
	LBrace:    RBrace,
	RBrace:    LBrace,
}
