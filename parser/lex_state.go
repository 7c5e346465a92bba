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
	"github.com/rsyntax/rsyntax/report"
	"github.com/rsyntax/rsyntax/token"
	"github.com/rsyntax/rsyntax/token/keyword"
)

// lexer is an R lexer.
type lexer struct {
	*token.Stream // Embedded so we don't have to call Stream() everywhere.
	*report.Report

	runes []rune
	// cursor is the rune offset of the next unlexed rune; prev is where the
	// last token ended.
	cursor, prev int
	count        int

	// The open brackets, innermost last.
	brackets []keyword.Keyword
}

// done returns whether or not we're done lexing runes.
func (l *lexer) done() bool {
	return l.cursor >= len(l.runes)
}

// peek returns the next rune, or -1 if l.done().
func (l *lexer) peek() rune {
	return l.peekAt(0)
}

// peekAt returns the rune n places after the next one, or -1 if there is
// none.
func (l *lexer) peekAt(n int) rune {
	if i := l.cursor + n; i < len(l.runes) {
		return l.runes[i]
	}
	return -1
}

// window returns up to the next n runes as a string.
func (l *lexer) window(n int) string {
	return string(l.runes[l.cursor:min(l.cursor+n, len(l.runes))])
}

// takeWhile consumes runes while they match f, and returns how many were
// consumed.
func (l *lexer) takeWhile(f func(rune) bool) int {
	start := l.cursor
	for !l.done() && f(l.runes[l.cursor]) {
		l.cursor++
	}
	return l.cursor - start
}

// endOfLine returns the offset of the first line break at or after offset,
// or the end of the file.
func (l *lexer) endOfLine(offset int) int {
	for offset < len(l.runes) && !isLineBreak(l.runes[offset]) {
		offset++
	}
	return offset
}

// push mints a token spanning from the end of the last token to the cursor.
func (l *lexer) push(kind token.Kind, kw keyword.Keyword) token.Token {
	tok := l.Push(l.cursor-l.prev, kind, kw)
	l.prev = l.cursor
	l.count++
	return tok
}

// close pops open off of the bracket stack, if it is the innermost open
// bracket.
func (l *lexer) close(open keyword.Keyword) {
	if n := len(l.brackets); n > 0 && l.brackets[n-1] == open {
		l.brackets = l.brackets[:n-1]
	}
}

// mustProgress returns a progress checker for this lexer.
func (l *lexer) mustProgress() mustProgress {
	return mustProgress{l, -1}
}

// mustProgress is a helper for ensuring that the lexer makes progress
// in each loop iteration. This is intended for turning infinite loops into
// panics.
type mustProgress struct {
	l    *lexer
	prev int
}

// check panics if the lexer has not produced new tokens since it was last
// called.
func (mp *mustProgress) check() {
	if mp.prev == mp.l.count {
		panic("rsyntax/parser: lexer failed to make progress")
	}
	mp.prev = mp.l.count
}
