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

// lexString lexes a quoted string literal.
//
// Strings may span lines. An unterminated string ends at the end of the line
// it starts on, so that one stray quote does not swallow the rest of the
// file.
func lexString(l *lexer) {
	lexQuoted(l, token.String)
}

// lexQuotedName lexes a backtick-quoted name, which is an identifier.
func lexQuotedName(l *lexer) {
	lexQuoted(l, token.Ident)
}

func lexQuoted(l *lexer, kind token.Kind) {
	start := l.cursor
	quote := l.runes[l.cursor]
	l.cursor++

	for !l.done() {
		r := l.runes[l.cursor]
		l.cursor++
		switch r {
		case '\\':
			if !l.done() {
				l.cursor++
			}
		case quote:
			l.push(kind, keyword.Unknown)
			return
		}
	}

	l.cursor = l.endOfLine(start)
	tok := l.push(kind, keyword.Unknown)
	l.Error(ErrUnterminated{Token: tok})
}

// lexRawString lexes a raw string literal such as r"(...)" or R'--[...]--'.
//
// Returns false without consuming anything if the text at the cursor is not
// the start of a raw string.
func lexRawString(l *lexer) bool {
	start := l.cursor
	quote := l.peekAt(1)

	i := start + 2
	for i < len(l.runes) && l.runes[i] == '-' {
		i++
	}
	if i >= len(l.runes) {
		return false
	}
	open := l.runes[i]
	if open != '(' && open != '[' && open != '{' {
		return false
	}
	dashes := i - (start + 2)

	// Search for the closer: the matching delimiter, the same number of
	// dashes, and the same quote.
	closer := make([]rune, 0, dashes+2)
	closer = append(closer, rune(closeRawDelim(byte(open))))
	for range dashes {
		closer = append(closer, '-')
	}
	closer = append(closer, quote)

	for j := i + 1; j+len(closer) <= len(l.runes); j++ {
		if hasRunePrefix(l.runes[j:], closer) {
			l.cursor = j + len(closer)
			l.push(token.String, keyword.Unknown)
			return true
		}
	}

	l.cursor = l.endOfLine(start)
	tok := l.push(token.String, keyword.Unknown)
	l.Error(ErrUnterminated{Token: tok})
	return true
}

// closeRawDelim returns the closing delimiter of a raw string.
func closeRawDelim(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	default:
		return open
	}
}

func hasRunePrefix(runes, prefix []rune) bool {
	if len(runes) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if runes[i] != r {
			return false
		}
	}
	return true
}
