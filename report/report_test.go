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

package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsyntax/rsyntax/report"
	"github.com/rsyntax/rsyntax/source"
)

type unclosed struct {
	span source.Span
}

func (u unclosed) Diagnose(d *report.Diagnostic) {
	d.With(
		report.Tag("unmatched-delimiter"),
		report.Message("encountered unmatched `(` delimiter"),
		report.Snippet(u.span, "unclosed here"),
		report.Help("add a closing `)`"),
	)
}

func TestRenderCompact(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.R", "x <- (1 + \ny\n")
	r := new(report.Report)
	r.Error(unclosed{file.Span(5, 6)})
	r.Warnf("something odd").With(report.Snippet(file.Span(11, 12)))
	r.Remarkf("just so you know")

	text, errs, warns := report.Renderer{Compact: true}.RenderString(r)
	assert.Equal(t, 1, errs)
	assert.Equal(t, 1, warns)
	assert.Equal(t,
		"error: test.R:1:6: encountered unmatched `(` delimiter\n"+
			"warning: test.R:2:1: something odd\n",
		text,
	)

	text, errs, warns = report.Renderer{Compact: true, ShowRemarks: true, WarningsAreErrors: true}.RenderString(r)
	assert.Equal(t, 2, errs)
	assert.Equal(t, 0, warns)
	assert.Contains(t, text, "error: test.R:2:1: something odd\n")
	assert.Contains(t, text, "remark: just so you know\n")
}

func TestRenderFancy(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.R", "x <- (1 + \ny\n")
	r := new(report.Report)
	r.Error(unclosed{file.Span(5, 6)})

	text, _, _ := report.Renderer{}.RenderString(r)
	assert.Equal(t, ""+
		"error: encountered unmatched `(` delimiter\n"+
		" --> test.R:1:6\n"+
		"  |\n"+
		"1 | x <- (1 +\n"+
		"  |      ^ unclosed here\n"+
		"  |\n"+
		"  = help: add a closing `)`\n"+
		"\n"+
		"encountered 1 error\n",
		text,
	)
}

func TestRenderWidth(t *testing.T) {
	t.Parallel()

	// Wide characters and tabs shift the underline.
	file := source.NewFile("wide.R", "\t日本 <- $\n")
	r := new(report.Report)
	r.Errorf("unexpected `$`").With(report.Snippet(file.Span(7, 8)))

	text, _, _ := report.Renderer{}.RenderString(r)
	assert.Contains(t, text, "1 |     日本 <- $\n")
	assert.Contains(t, text, "  | "+strings.Repeat(" ", 12)+"^\n")
}

func TestSort(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.R", "abcdef")
	r := new(report.Report)
	r.Errorf("third").With(report.Snippet(file.Span(4, 5)))
	r.Errorf("first")
	r.Errorf("second").With(report.Snippet(file.Span(1, 2)))
	r.Errorf("fourth").With(report.Snippet(file.Span(4, 6)))
	r.Sort()

	var got []string
	for d := range r.All() {
		got = append(got, d.Message())
	}
	assert.Equal(t, []string{"first", "second", "third", "fourth"}, got)
}

func TestRecords(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.R", "x <- (1 + \ny\n")
	r := new(report.Report)
	r.Error(unclosed{file.Span(5, 6)})

	records := r.Records()
	require.Len(t, records, 1)
	assert.Equal(t, report.Record{
		Level:   "error",
		Tag:     "unmatched-delimiter",
		Message: "encountered unmatched `(` delimiter",
		Path:    "test.R",
		Line:    1,
		Column:  6,
		Start:   5,
		End:     6,
		Help:    []string{"add a closing `)`"},
	}, records[0])

	assert.True(t, r.HasErrors())
	var err error = &report.AsError{Report: r}
	assert.Equal(t, "error: test.R:1:6: encountered unmatched `(` delimiter", err.Error())
}

func TestOptionsPanic(t *testing.T) {
	t.Parallel()

	r := new(report.Report)
	assert.Panics(t, func() { r.Errorf("a").With(report.Message("b")) })
	assert.Panics(t, func() { r.Errorf("a").With(report.Tag("x"), report.Tag("y")) })
}
