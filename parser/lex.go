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
	"unicode"

	"github.com/rsyntax/rsyntax/report"
	"github.com/rsyntax/rsyntax/source"
	"github.com/rsyntax/rsyntax/token"
	"github.com/rsyntax/rsyntax/token/keyword"
)

// Lex performs lexical analysis on file, and appends any diagnostics that
// results in to errs.
//
// The returned stream is frozen. Its natural tokens cover the file's text
// exactly and end with a zero-length [token.EOF].
//
// [Parse] calls this function itself; it is exported for tools that only need
// tokens.
func Lex(file *source.File, errs *report.Report) *token.Stream {
	l := &lexer{
		Stream: token.NewStream(file),
		Report: errs,
		runes:  file.Runes(),
	}
	lex(l)
	return l.Stream
}

func lex(l *lexer) {
	if l.peek() == '\uFEFF' {
		// A leading byte-order mark is not an error, but it is not
		// whitespace either.
		l.cursor++
		l.push(token.Unrecognized, keyword.Unknown)
	}

	// This is the main loop of the lexer. Each iteration examines the next
	// rune to determine what kind of token starts there.
	mp := l.mustProgress()
	for !l.done() {
		mp.check()

		r := l.peek()
		switch {
		case r == '\n':
			l.cursor++
			l.push(token.Newline, keyword.Unknown)
		case r == '\r':
			l.cursor++
			if l.peek() == '\n' {
				l.cursor++
			}
			l.push(token.Newline, keyword.Unknown)

		case isSpace(r):
			l.takeWhile(isSpace)
			l.push(token.Space, keyword.Unknown)

		case r == '#':
			l.takeWhile(func(r rune) bool { return !isLineBreak(r) })
			l.push(token.Comment, keyword.Unknown)

		case r == '"', r == '\'':
			lexString(l)
		case r == '`':
			lexQuotedName(l)

		case isDigit(r), r == '.' && isDigit(l.peekAt(1)):
			lexNumber(l)

		case isIdentStart(r):
			lexIdent(l)

		case r == '%':
			lexSpecial(l)

		case r == ']':
			lexCloseBracket(l)

		default:
			kw, n := keyword.Prefix(l.window(3))
			if kw == keyword.Unknown {
				l.takeWhile(func(r rune) bool { return !startsToken(r) })
				tok := l.push(token.Unrecognized, keyword.Unknown)
				l.Error(ErrUnrecognized{Token: tok})
				continue
			}

			// Every operator and punctuation mark is ASCII, so its length in
			// bytes is its length in runes.
			l.cursor += n
			if kw.IsPunctuation() {
				l.push(token.Punct, kw)
			} else {
				l.push(token.Operator, kw)
			}

			switch {
			case kw.IsOpen():
				l.brackets = append(l.brackets, kw)
			case kw.IsClose():
				l.close(kw.Partner())
			}
		}
	}

	l.push(token.EOF, keyword.Unknown)
	l.Freeze()
}

// lexIdent lexes an identifier or reserved word, or a raw string literal
// if the identifier is an r prefix.
func lexIdent(l *lexer) {
	start := l.cursor
	l.takeWhile(isIdentContinue)
	text := string(l.runes[start:l.cursor])

	if (text == "r" || text == "R") && (l.peek() == '"' || l.peek() == '\'') {
		l.cursor = start
		if lexRawString(l) {
			return
		}
		l.cursor = start + 1
	}

	if kw := keyword.Lookup(text); kw != keyword.Unknown {
		l.push(token.Keyword, kw)
		return
	}
	l.push(token.Ident, keyword.Unknown)
}

// lexSpecial lexes a user-defined %op% operator.
func lexSpecial(l *lexer) {
	for i := l.cursor + 1; i < len(l.runes) && !isLineBreak(l.runes[i]); i++ {
		if l.runes[i] == '%' {
			l.cursor = i + 1
			l.push(token.Operator, keyword.Special)
			return
		}
	}

	l.cursor++
	tok := l.push(token.Unrecognized, keyword.Unknown)
	l.Error(ErrUnterminated{Token: tok})
}

// lexCloseBracket lexes a ] or ]]. The latter is only produced when the
// innermost open bracket is a [[, so that x[y[1]] closes with two ]s.
func lexCloseBracket(l *lexer) {
	if n := len(l.brackets); n > 0 && l.brackets[n-1] == keyword.LBracket2 && l.peekAt(1) == ']' {
		l.cursor += 2
		l.push(token.Punct, keyword.RBracket2)
		l.close(keyword.LBracket2)
		return
	}

	l.cursor++
	l.push(token.Punct, keyword.RBracket)
	l.close(keyword.LBracket)
}

func isSpace(r rune) bool {
	return !isLineBreak(r) && r != '\uFEFF' && unicode.IsSpace(r)
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isIdentStart(r rune) bool {
	return r == '.' || r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// startsToken returns whether r is the first rune of some token other than
// an unrecognized one.
func startsToken(r rune) bool {
	switch {
	case isSpace(r), isLineBreak(r), isDigit(r), isIdentStart(r):
		return true
	case r == '#', r == '"', r == '\'', r == '`', r == '%', r == ']':
		return true
	}
	kw, _ := keyword.Prefix(string(r))
	return kw != keyword.Unknown
}
