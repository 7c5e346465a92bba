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

package report

import (
	"fmt"

	"github.com/rsyntax/rsyntax/source"
)

// Level represents the severity of a diagnostic message.
type Level int8

const (
	// Red. Indicates input that could not be parsed as written.
	Error Level = 1 + iota
	// Yellow. Indicates something that probably should not be ignored.
	Warning
	// Cyan. This is the diagnostics version of "info".
	Remark

	noteLevel // Used internally within the diagnostic renderer.
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	case noteLevel:
		return "note"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Tag is a diagnostic tag: a machine-readable identification for a diagnostic.
//
// Tags should be lowercase identifiers separated by dashes, e.g. my-error-tag.
// If a package generates diagnostics with tags, it should expose those tags as
// constants.
type Tag string

// Apply implements [DiagnosticOption].
func (t Tag) Apply(d *Diagnostic) {
	if d.tag != "" {
		panic("rsyntax/report: set diagnostic tag more than once")
	}
	d.tag = t
}

// Diagnose is a value that can be rendered as a diagnostic.
type Diagnose interface {
	// Diagnose writes out this value to the given diagnostic.
	//
	// This function should not set the level; that is set by the
	// [Report] method that was called.
	Diagnose(*Diagnostic)
}

// Diagnostic is a single message about some source code.
//
// To construct a diagnostic, create one using a function like
// [Report.Errorf], then call [Diagnostic.With] to apply options to it. You
// should at minimum apply [Message] and at least one [Snippet].
type Diagnostic struct {
	tag     Tag
	message string
	level   Level

	// A list of annotated source code spans in the diagnostic.
	annotations        []Annotation
	notes, help, debug []string
}

// Annotation is an annotated source code span within a [Diagnostic].
type Annotation struct {
	source.Span

	// A message to show under this snippet. May be empty.
	Message string

	// Whether this is the primary snippet, which is rendered in the color of
	// the diagnostic's level.
	Primary bool
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
//
// Nil values passed to [Diagnostic.With] are ignored.
type DiagnosticOption interface {
	Apply(*Diagnostic)
}

// Tag returns this diagnostic's tag.
func (d *Diagnostic) Tag() Tag {
	return d.tag
}

// Is checks whether this diagnostic has a particular tag.
func (d *Diagnostic) Is(tag Tag) bool {
	return d.tag == tag
}

// Message returns this diagnostic's message.
func (d *Diagnostic) Message() string {
	return d.message
}

// Level returns this diagnostic's level.
func (d *Diagnostic) Level() Level {
	return d.level
}

// Primary returns this diagnostic's primary span, if it has one.
//
// If it doesn't have one, it returns the zero span.
func (d *Diagnostic) Primary() source.Span {
	for _, a := range d.annotations {
		if a.Primary {
			return a.Span
		}
	}
	return source.Span{}
}

// Annotations returns the annotated spans of this diagnostic, primary first.
func (d *Diagnostic) Annotations() []Annotation {
	return d.annotations
}

// Notes returns the notes attached to this diagnostic.
func (d *Diagnostic) Notes() []string {
	return d.notes
}

// Help returns the help lines attached to this diagnostic.
func (d *Diagnostic) Help() []string {
	return d.help
}

// With applies the given options to this diagnostic.
//
// Nil values are ignored.
func (d *Diagnostic) With(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option.Apply(d)
		}
	}
	return d
}

// Message returns a DiagnosticOption that sets the main diagnostic message.
func Message(format string, args ...any) DiagnosticOption {
	return message(fmt.Sprintf(format, args...))
}

// Snippet returns a DiagnosticOption that adds a new snippet to a diagnostic.
//
// Any additional arguments to this function are passed to [fmt.Sprintf] to
// produce a message to go with the span.
//
// The first annotation added is the primary annotation, and will be rendered
// differently from the others.
//
// If at is nil or has a zero span, this function returns nil.
func Snippet(at source.Spanner, args ...any) DiagnosticOption {
	span := source.GetSpan(at)
	if span.IsZero() {
		return nil
	}

	a := Annotation{Span: span}
	if len(args) > 0 {
		format, ok := args[0].(string)
		if !ok {
			panic("rsyntax/report: expected string as first Snippet argument")
		}
		a.Message = fmt.Sprintf(format, args[1:]...)
	}
	return annotation(a)
}

// Note returns a DiagnosticOption that provides the user with context about the
// diagnostic, after the annotations.
func Note(format string, args ...any) DiagnosticOption {
	return note(fmt.Sprintf(format, args...))
}

// Help returns a DiagnosticOption that provides the user with a helpful prose
// suggestion for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return help(fmt.Sprintf(format, args...))
}

// Debug returns a DiagnosticOption that appends debugging information to a
// diagnostic that is not intended to be shown to normal users.
func Debug(format string, args ...any) DiagnosticOption {
	return debug(fmt.Sprintf(format, args...))
}

type (
	annotation Annotation
	message    string
	note       string
	help       string
	debug      string
)

func (a annotation) Apply(d *Diagnostic) {
	a.Primary = len(d.annotations) == 0
	d.annotations = append(d.annotations, Annotation(a))
}

func (m message) Apply(d *Diagnostic) {
	if d.message != "" {
		panic("rsyntax/report: set diagnostic message more than once")
	}
	d.message = string(m)
}

func (n note) Apply(d *Diagnostic)  { d.notes = append(d.notes, string(n)) }
func (n help) Apply(d *Diagnostic)  { d.help = append(d.help, string(n)) }
func (n debug) Apply(d *Diagnostic) { d.debug = append(d.debug, string(n)) }
