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
	"fmt"

	"github.com/rsyntax/rsyntax/internal/taxa"
	"github.com/rsyntax/rsyntax/report"
	"github.com/rsyntax/rsyntax/source"
	"github.com/rsyntax/rsyntax/token"
	"github.com/rsyntax/rsyntax/token/keyword"
)

// Diagnostic tags produced by this package.
const (
	TagUnrecognized         report.Tag = "unrecognized-token"
	TagUnterminatedString   report.Tag = "unterminated-string"
	TagUnterminatedOperator report.Tag = "unterminated-operator"
	TagUnterminatedName     report.Tag = "unterminated-name"
	TagInvalidNumber        report.Tag = "invalid-number"
	TagUnexpected           report.Tag = "unexpected-token"
	TagExpected             report.Tag = "expected-token"
	TagUnmatched            report.Tag = "unmatched-delimiter"
	TagMissingTerminator    report.Tag = "missing-terminator"
	TagTooDeep              report.Tag = "nesting-too-deep"
)

// ErrUnrecognized diagnoses a run of characters that do not start any token.
type ErrUnrecognized struct {
	Token token.Token // The offending token.
}

// Error implements [error].
func (e ErrUnrecognized) Error() string {
	return "unrecognized token"
}

// Diagnose implements [report.Diagnose].
func (e ErrUnrecognized) Diagnose(d *report.Diagnostic) {
	d.With(
		TagUnrecognized,
		report.Message("%s", e.Error()),
		report.Snippet(e.Token),
		report.Debug("%v, %v, %q", e.Token.ID(), e.Token.Span(), e.Token.Text()),
	)
}

// ErrUnterminated diagnoses a quoted token that has no closing delimiter.
type ErrUnterminated struct {
	Token token.Token // The token, which ends at the end of its first line.
}

func (e ErrUnterminated) parts() (what string, tag report.Tag, closer string) {
	switch text := e.Token.Text(); {
	case e.Token.Kind() == token.Ident:
		return "backtick-quoted name", TagUnterminatedName, "`"
	case e.Token.Kind() == token.String:
		return "string literal", TagUnterminatedString, rawCloser(text)
	default:
		return "`%` operator", TagUnterminatedOperator, "%"
	}
}

// Error implements [error].
func (e ErrUnterminated) Error() string {
	what, _, _ := e.parts()
	return "unterminated " + what
}

// Diagnose implements [report.Diagnose].
func (e ErrUnterminated) Diagnose(d *report.Diagnostic) {
	_, tag, closer := e.parts()
	d.With(
		tag,
		report.Message("%s", e.Error()),
		report.Snippet(e.Token, "expected to be terminated by `%s`", closer),
	)
	if tag == TagUnterminatedOperator {
		d.With(report.Note("user-defined operators must begin and end with `%%` on the same line"))
	}
}

// rawCloser returns the delimiter that closes the string literal starting
// with text.
func rawCloser(text string) string {
	if text == "" {
		return `"`
	}
	if text[0] != 'r' && text[0] != 'R' || len(text) < 2 {
		return text[:1]
	}
	// r"---( closes with )---".
	quote := text[1]
	i := 2
	for i < len(text) && text[i] == '-' {
		i++
	}
	if i >= len(text) {
		return string(quote)
	}
	return string(closeRawDelim(text[i])) + text[2:i] + string(quote)
}

// ErrInvalidNumber diagnoses a malformed numeric literal.
type ErrInvalidNumber struct {
	Token  token.Token // The offending literal.
	Reason string      // What is wrong with it.
}

// Error implements [error].
func (e ErrInvalidNumber) Error() string {
	return "invalid numeric literal"
}

// Diagnose implements [report.Diagnose].
func (e ErrInvalidNumber) Diagnose(d *report.Diagnostic) {
	d.With(
		TagInvalidNumber,
		report.Message("%s", e.Error()),
		report.Snippet(e.Token, "%s", e.Reason),
	)
}

// ErrUnexpected diagnoses a token that the parser does not know how to handle
// in its current position.
type ErrUnexpected struct {
	// The unexpected thing; usually a token.
	What source.Spanner
	// The context we're in.
	Where taxa.Place
	// What we wanted. May be empty.
	Want taxa.Set
	// If set, this is highlighted as "previous <Where> is here".
	Prev source.Spanner
}

func (e ErrUnexpected) got() taxa.Noun {
	if tok, ok := e.What.(token.Token); ok {
		return taxa.Classify(tok)
	}
	return taxa.Unknown
}

// Error implements [error].
func (e ErrUnexpected) Error() string {
	msg := fmt.Sprintf("unexpected %v", e.got())
	if e.Where.Subject() != taxa.Unknown {
		msg += " " + e.Where.String()
	}
	if e.Want.Len() > 0 {
		msg += ", expected " + e.Want.Join("or")
	}
	return msg
}

// Diagnose implements [report.Diagnose].
func (e ErrUnexpected) Diagnose(d *report.Diagnostic) {
	snippet := report.Snippet(e.What)
	if e.Want.Len() > 0 {
		snippet = report.Snippet(e.What, "expected %s", e.Want.Join("or"))
	}

	d.With(
		TagUnexpected,
		report.Message("%s", e.Error()),
		snippet,
	)
	if e.Prev != nil {
		d.With(report.Snippet(e.Prev, "previous %v is here", e.Where.Subject()))
	}
	if tok, ok := e.What.(token.Token); ok {
		d.With(report.Debug("token: %v, kind: %v, keyword: %#v", tok.ID(), tok.Kind(), tok.Keyword()))
	}
}

// ErrExpected diagnoses a required token that is absent. The parser inserts
// a zero-length synthetic token in its place.
type ErrExpected struct {
	Want  keyword.Keyword // The missing token.
	Where taxa.Place      // Where it was expected.
	Got   token.Token     // The token found instead.
}

// Error implements [error].
func (e ErrExpected) Error() string {
	return fmt.Sprintf("expected %v %v, found %v",
		taxa.FromKeyword(e.Want), e.Where, taxa.Classify(e.Got))
}

// Diagnose implements [report.Diagnose].
func (e ErrExpected) Diagnose(d *report.Diagnostic) {
	d.With(
		TagExpected,
		report.Message("%s", e.Error()),
		report.Snippet(e.Got, "expected %v", taxa.FromKeyword(e.Want)),
	)
}

// ErrUnmatched diagnoses an opening delimiter for which no closing delimiter
// was found.
type ErrUnmatched struct {
	Open token.Token // The opening delimiter.
	Got  token.Token // The token found where the closer was expected.
}

// Error implements [error].
func (e ErrUnmatched) Error() string {
	return fmt.Sprintf("encountered unmatched `%s` delimiter", e.Open.Text())
}

// Diagnose implements [report.Diagnose].
func (e ErrUnmatched) Diagnose(d *report.Diagnostic) {
	closer := e.Open.Keyword().Partner()
	d.With(
		TagUnmatched,
		report.Message("%s", e.Error()),
		report.Snippet(e.Open, "expected a closing `%v`", closer),
	)
	if !e.Got.IsZero() && e.Got.Kind() != token.EOF {
		d.With(report.Snippet(e.Got, "found %v instead", taxa.Classify(e.Got)))
	}
}

// ErrMissingTerminator diagnoses two statements on the same line with
// nothing separating them.
type ErrMissingTerminator struct {
	Prev source.Spanner // The statement that should have been terminated.
	Next token.Token    // The start of the next statement.
}

// Error implements [error].
func (e ErrMissingTerminator) Error() string {
	return fmt.Sprintf("unexpected %v after statement", taxa.Classify(e.Next))
}

// Diagnose implements [report.Diagnose].
func (e ErrMissingTerminator) Diagnose(d *report.Diagnostic) {
	d.With(
		TagMissingTerminator,
		report.Message("%s", e.Error()),
		report.Snippet(e.Next, "expected a line break or `;`"),
		report.Snippet(e.Prev, "previous statement is here"),
		report.Help("statements on the same line must be separated by `;`"),
	)
}

// ErrTooDeep diagnoses syntax nested past the configured limit.
type ErrTooDeep struct {
	Span  source.Span // The portion that was not parsed.
	Limit int
}

// Error implements [error].
func (e ErrTooDeep) Error() string {
	return "syntax is nested too deeply"
}

// Diagnose implements [report.Diagnose].
func (e ErrTooDeep) Diagnose(d *report.Diagnostic) {
	d.With(
		TagTooDeep,
		report.Message("%s", e.Error()),
		report.Snippet(e.Span, "this is not parsed"),
		report.Note("the maximum nesting depth is %d", e.Limit),
	)
}
