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

import (
	"iter"

	"github.com/rsyntax/rsyntax/internal/trie"
)

var opTrie = func() *trie.Trie[Keyword] {
	trie := new(trie.Trie[Keyword])
	for k := range All() {
		// ]] is context-sensitive and %...% is variable-length, so the lexer
		// handles both itself.
		if (k.IsOperator() || k.IsPunctuation()) && k != RBracket2 && k != Special {
			trie.Insert(k.String(), k)
		}
	}
	return trie
}()

// Prefix returns the longest prefix of text which is an operator or
// punctuation, along with its length in bytes.
//
// Returns [Unknown] and 0 if there is none.
func Prefix(text string) (Keyword, int) {
	prefix, kw := opTrie.Get(text)
	return kw, len(prefix)
}

// All returns an iterator over every valid keyword.
func All() iter.Seq[Keyword] {
	return func(yield func(Keyword) bool) {
		for k := range Keyword(total) {
			if k.IsValid() && !yield(k) {
				return
			}
		}
	}
}

// IsValid returns whether this is a valid keyword value (not including
// [Unknown]).
func (k Keyword) IsValid() bool {
	return k.properties()&valid != 0
}

// IsReservedWord returns whether this keyword is a reserved word.
func (k Keyword) IsReservedWord() bool {
	return k.properties()&word != 0
}

// IsOperator returns whether this keyword is an operator.
func (k Keyword) IsOperator() bool {
	return k.properties()&operator != 0
}

// IsPunctuation returns whether this keyword is a bracket, comma or
// semicolon.
func (k Keyword) IsPunctuation() bool {
	return k.properties()&punct != 0
}

// IsConstant returns whether this reserved word denotes a constant value,
// such as TRUE or NA.
func (k Keyword) IsConstant() bool {
	return k.properties()&constant != 0
}

// IsBinary returns whether this keyword can be an infix operator.
func (k Keyword) IsBinary() bool {
	return k.properties()&binary != 0
}

// IsPrefix returns whether this keyword can be a prefix operator.
func (k Keyword) IsPrefix() bool {
	return k.properties()&prefix != 0
}

// IsControl returns whether this reserved word begins a control flow
// construct.
func (k Keyword) IsControl() bool {
	return k.properties()&control != 0
}

// IsOpen returns whether this is an opening bracket.
func (k Keyword) IsOpen() bool {
	return k.properties()&open != 0
}

// IsClose returns whether this is a closing bracket.
func (k Keyword) IsClose() bool {
	return k.properties()&close != 0
}

// Partner returns the matching bracket of an opening or closing bracket.
//
// Returns [Unknown] for anything else.
func (k Keyword) Partner() Keyword {
	if int(k) < len(pairs) {
		return pairs[k]
	}
	return Unknown
}
