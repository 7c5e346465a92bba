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

// lexNumber lexes a numeric literal: decimal or hexadecimal, with an
// optional exponent and an optional L or i suffix.
//
// Malformed literals are still lexed as a single number, with a diagnostic.
func lexNumber(l *lexer) {
	var reason string
	if l.peek() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X') {
		l.cursor += 2
		digits := l.takeWhile(isHexDigit)
		if l.peek() == '.' {
			l.cursor++
			digits += l.takeWhile(isHexDigit)
		}
		if digits == 0 {
			reason = "missing hexadecimal digits after `0x`"
		}
		if p := l.peek(); p == 'p' || p == 'P' {
			if !lexExponent(l) {
				reason = "missing digits in binary exponent"
			}
		}
	} else {
		l.takeWhile(isDigit)
		if l.peek() == '.' {
			l.cursor++
			l.takeWhile(isDigit)
		}
		if e := l.peek(); e == 'e' || e == 'E' {
			if !lexExponent(l) {
				reason = "missing digits in exponent"
			}
		}
	}

	if s := l.peek(); s == 'L' || s == 'i' {
		l.cursor++
	}

	tok := l.push(token.Number, keyword.Unknown)
	if reason != "" {
		l.Error(ErrInvalidNumber{Token: tok, Reason: reason})
	}
}

// lexExponent consumes an exponent marker, an optional sign, and digits.
// Returns false if there were no digits.
func lexExponent(l *lexer) bool {
	l.cursor++
	if s := l.peek(); s == '+' || s == '-' {
		l.cursor++
	}
	return l.takeWhile(isDigit) > 0
}

// IsComplex returns whether a numeric literal's text denotes a complex
// number, such as 2i.
func IsComplex(text string) bool {
	return len(text) > 0 && text[len(text)-1] == 'i'
}
