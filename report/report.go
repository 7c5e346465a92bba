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
	"iter"
	"slices"
	"strings"
)

// Report is a collection of diagnostics.
//
// A zero Report is empty and ready to use.
type Report struct {
	// The diagnostics in this report, in the order they were pushed until
	// [Report.Sort] is called.
	Diagnostics []Diagnostic
}

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err Diagnose) *Diagnostic {
	d := r.push(Error)
	err.Diagnose(d)
	return d
}

// Errorf creates a new error diagnostic with the given message.
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(Error).With(Message(format, args...))
}

// Warnf creates a new warning diagnostic with the given message.
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(Warning).With(Message(format, args...))
}

// Remarkf creates a new remark diagnostic with the given message.
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.push(Remark).With(Message(format, args...))
}

// Len returns the number of diagnostics in this report.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Diagnostics)
}

// HasErrors returns whether this report contains any diagnostics at the
// [Error] level.
func (r *Report) HasErrors() bool {
	for d := range r.All() {
		if d.Level() == Error {
			return true
		}
	}
	return false
}

// All returns an iterator over the diagnostics in this report.
func (r *Report) All() iter.Seq[*Diagnostic] {
	return func(yield func(*Diagnostic) bool) {
		if r == nil {
			return
		}
		for i := range r.Diagnostics {
			if !yield(&r.Diagnostics[i]) {
				return
			}
		}
	}
}

// Tagged returns an iterator over the diagnostics with the given tag.
func (r *Report) Tagged(tag Tag) iter.Seq[*Diagnostic] {
	return func(yield func(*Diagnostic) bool) {
		for d := range r.All() {
			if d.Is(tag) && !yield(d) {
				return
			}
		}
	}
}

// Sort sorts the diagnostics in this report by the start of their primary
// spans. Diagnostics without a span sort first. The sort is stable.
func (r *Report) Sort() {
	slices.SortStableFunc(r.Diagnostics, func(a, b Diagnostic) int {
		sa, sb := a.Primary(), b.Primary()
		switch {
		case sa.IsZero() && sb.IsZero():
			return 0
		case sa.IsZero():
			return -1
		case sb.IsZero():
			return 1
		}
		if c := sa.Start - sb.Start; c != 0 {
			return c
		}
		return sa.End - sb.End
	})
}

// push is the core "make me a diagnostic" function.
func (r *Report) push(level Level) *Diagnostic {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{level: level})
	return &r.Diagnostics[len(r.Diagnostics)-1]
}

// Record is a flat, serializable view of a [Diagnostic].
type Record struct {
	Level   string   `yaml:"level"`
	Tag     string   `yaml:"tag,omitempty"`
	Message string   `yaml:"message"`
	Path    string   `yaml:"path,omitempty"`
	Line    int      `yaml:"line,omitempty"`
	Column  int      `yaml:"column,omitempty"`
	Start   int      `yaml:"start"`
	End     int      `yaml:"end"`
	Notes   []string `yaml:"notes,omitempty"`
	Help    []string `yaml:"help,omitempty"`
}

// Records converts every diagnostic in this report into a [Record].
func (r *Report) Records() []Record {
	records := make([]Record, 0, r.Len())
	for d := range r.All() {
		span := d.Primary()
		rec := Record{
			Level:   d.Level().String(),
			Tag:     string(d.Tag()),
			Message: d.Message(),
			Notes:   d.Notes(),
			Help:    d.Help(),
		}
		if !span.IsZero() {
			loc := span.StartLoc()
			rec.Path = span.Path()
			rec.Line, rec.Column = loc.Line, loc.Column
			rec.Start, rec.End = span.Start, span.End
		}
		records = append(records, rec)
	}
	return records
}

// String implements [fmt.Stringer], rendering the report compactly.
func (r *Report) String() string {
	text, _, _ := Renderer{Compact: true, ShowRemarks: true}.RenderString(r)
	return text
}

// AsError wraps a [Report] as an [error].
type AsError struct {
	Report *Report
}

// Error implements [error].
func (e *AsError) Error() string {
	text, errs, warns := Renderer{Compact: true}.RenderString(e.Report)
	if text == "" {
		return fmt.Sprintf("%d errors, %d warnings", errs, warns)
	}
	return strings.TrimSuffix(text, "\n")
}
