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
	"io"
	"strconv"
	"strings"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool

	// Upgrades all warnings to errors.
	WarningsAreErrors bool

	// If set, remark diagnostics will be printed.
	ShowRemarks bool

	// If set, rendering a diagnostic will show the debug footer.
	ShowDebug bool
}

// Render renders a diagnostic report.
//
// In addition to returning the rendering result, returns the number of errors
// and warnings rendered. The error return is an error when writing to out.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount, warningCount int, err error) {
	for d := range report.All() {
		level := r.effective(d.Level())
		if !r.ShowRemarks && level == Remark {
			continue
		}

		if _, err = fmt.Fprintln(out, r.Diagnostic(d)); err != nil {
			return errorCount, warningCount, err
		}
		if !r.Compact {
			if _, err = fmt.Fprintln(out); err != nil {
				return errorCount, warningCount, err
			}
		}

		switch level {
		case Error:
			errorCount++
		case Warning:
			warningCount++
		}
	}
	if r.Compact {
		return errorCount, warningCount, nil
	}

	c := newStyleSheet(r)
	pluralize := func(count int, what string) string {
		if count == 1 {
			return "1 " + what
		}
		return fmt.Sprint(count, " ", what, "s")
	}

	switch {
	case errorCount > 0 && warningCount > 0:
		_, err = fmt.Fprint(out, c.bError, "encountered ", pluralize(errorCount, "error"),
			" and ", pluralize(warningCount, "warning"), c.reset, "\n")
	case errorCount > 0:
		_, err = fmt.Fprint(out, c.bError, "encountered ", pluralize(errorCount, "error"), c.reset, "\n")
	case warningCount > 0:
		_, err = fmt.Fprint(out, c.bWarning, "encountered ", pluralize(warningCount, "warning"), c.reset, "\n")
	}
	return errorCount, warningCount, err
}

// RenderString is a helper for calling [Renderer.Render] with a [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount, warningCount int) {
	var buf strings.Builder
	e, w, _ := r.Render(report, &buf)
	return buf.String(), e, w
}

// Diagnostic renders a single diagnostic to a string.
func (r Renderer) Diagnostic(d *Diagnostic) string {
	c := newStyleSheet(r)
	level := r.effective(d.Level())
	primary := d.Primary()

	// For the compact style, we imitate the Go compiler.
	if r.Compact {
		if primary.IsZero() {
			return fmt.Sprintf("%s%s: %s%s", c.ColorForLevel(level), level, d.Message(), c.reset)
		}
		loc := primary.StartLoc()
		return fmt.Sprintf(
			"%s%s: %s:%d:%d: %s%s",
			c.ColorForLevel(level),
			level,
			primary.Path(),
			loc.Line,
			loc.Column,
			d.Message(),
			c.reset,
		)
	}

	// Otherwise, we imitate the Rust compiler.
	var out strings.Builder
	fmt.Fprint(&out, c.BoldForLevel(level), level, ": ", d.Message(), c.reset)

	var greatestLine int
	for _, a := range d.annotations {
		greatestLine = max(greatestLine, a.StartLoc().Line)
	}
	width := len(strconv.Itoa(greatestLine))
	bar := strings.Repeat(" ", width)

	if !primary.IsZero() {
		loc := primary.StartLoc()
		fmt.Fprintf(&out, "\n%s%s--> %s%s:%d:%d", bar, c.nAccent, c.reset, primary.Path(), loc.Line, loc.Column)
	}

	for _, a := range d.annotations {
		r.snippet(&out, c, level, a, width)
	}

	if len(d.annotations) > 0 && (len(d.notes) > 0 || len(d.help) > 0 || (r.ShowDebug && len(d.debug) > 0)) {
		fmt.Fprintf(&out, "\n%s %s|%s", bar, c.nAccent, c.reset)
	}
	footer := func(kind string, lines []string) {
		for _, line := range lines {
			fmt.Fprintf(&out, "\n%s %s= %s%s:%s %s", bar, c.nAccent, c.bAccent, kind, c.reset, line)
		}
	}
	footer("note", d.notes)
	footer("help", d.help)
	if r.ShowDebug {
		footer("debug", d.debug)
	}

	return out.String()
}

// snippet renders one annotated source line with an underline beneath the
// annotated span. Spans covering several lines are underlined up to the end
// of their first line.
func (r Renderer) snippet(out *strings.Builder, c styleSheet, level Level, a Annotation, width int) {
	start := a.StartLoc()
	lineStart, _ := a.File.LineOffsets(start.Line)
	line := a.File.Line(start.Line)
	lineRunes := []rune(line)

	n := len(lineRunes)
	s := min(a.Start-lineStart, n)
	e := max(min(a.End-lineStart, n), s)

	var rendered strings.Builder
	col := stringWidth(0, string(lineRunes[:s]), &rendered)
	w := stringWidth(col, string(lineRunes[s:e]), &rendered)
	underline := max(w-col, 1)
	stringWidth(w, string(lineRunes[e:]), &rendered)

	bar := strings.Repeat(" ", width)
	fmt.Fprintf(out, "\n%s %s|%s", bar, c.nAccent, c.reset)
	fmt.Fprintf(out, "\n%s%*d |%s %s", c.nAccent, width, start.Line, c.reset, strings.TrimRight(rendered.String(), " "))

	mark, color := "-", c.nAccent
	if a.Primary {
		mark, color = "^", c.BoldForLevel(level)
	}
	fmt.Fprintf(out, "\n%s %s|%s %s%s%s", bar, c.nAccent, c.reset, strings.Repeat(" ", col), color, strings.Repeat(mark, underline))
	if a.Message != "" {
		fmt.Fprint(out, " ", a.Message)
	}
	fmt.Fprint(out, c.reset)
}

// effective returns the level a diagnostic is rendered at.
func (r Renderer) effective(l Level) Level {
	if l == Warning && r.WarningsAreErrors {
		return Error
	}
	return l
}
