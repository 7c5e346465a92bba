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

package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsyntax/rsyntax/parser"
	"github.com/rsyntax/rsyntax/report"
	"github.com/rsyntax/rsyntax/source"
	"github.com/rsyntax/rsyntax/token"
	"github.com/rsyntax/rsyntax/token/keyword"
)

// lexed renders every natural token as kind:text, skipping spaces.
func lexed(t *testing.T, text string) ([]string, *report.Report) {
	t.Helper()
	errs := new(report.Report)
	stream := parser.Lex(source.NewFile("test.R", text), errs)

	var out []string
	for tok := range stream.All() {
		if tok.Kind() == token.Space {
			continue
		}
		out = append(out, fmt.Sprintf("%v:%s", tok.Kind(), tok.Text()))
	}
	return out, errs
}

func TestLexKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want []string
	}{
		{
			text: "x <- 1L",
			want: []string{"Ident:x", "Operator:<-", "Number:1L", "EOF:"},
		},
		{
			text: "a %in% b",
			want: []string{"Ident:a", "Operator:%in%", "Ident:b", "EOF:"},
		},
		{
			text: "x[[y[1]]]",
			want: []string{"Ident:x", "Punct:[[", "Ident:y", "Punct:[", "Number:1", "Punct:]", "Punct:]]", "EOF:"},
		},
		{
			text: "x[a[[1]]]",
			want: []string{"Ident:x", "Punct:[", "Ident:a", "Punct:[[", "Number:1", "Punct:]]", "Punct:]", "EOF:"},
		},
		{
			text: "x]]",
			want: []string{"Ident:x", "Punct:]", "Punct:]", "EOF:"},
		},
		{
			text: "0x1Fp2 1e-3 .5 2i 0xA.8",
			want: []string{"Number:0x1Fp2", "Number:1e-3", "Number:.5", "Number:2i", "Number:0xA.8", "EOF:"},
		},
		{
			text: `r"(a"b)" R'[x]' r"-{y}-"`,
			want: []string{`String:r"(a"b)"`, `String:R'[x]'`, `String:r"-{y}-"`, "EOF:"},
		},
		{
			text: "`my var` <- \"a\\\"b\" ; 'c'",
			want: []string{"Ident:`my var`", "Operator:<-", `String:"a\"b"`, "Punct:;", "String:'c'", "EOF:"},
		},
		{
			text: "if (TRUE) NULL else NA_integer_",
			want: []string{"Keyword:if", "Punct:(", "Keyword:TRUE", "Punct:)", "Keyword:NULL", "Keyword:else", "Keyword:NA_integer_", "EOF:"},
		},
		{
			text: "# hi\r\nx\ry",
			want: []string{"Comment:# hi", "Newline:\r\n", "Ident:x", "Newline:\r", "Ident:y", "EOF:"},
		},
		{
			text: `\(x) x |> f() -> y ->> z <<- a ::: b ** 2`,
			want: []string{
				`Operator:\`, "Punct:(", "Ident:x", "Punct:)", "Ident:x", "Operator:|>", "Ident:f", "Punct:(", "Punct:)",
				"Operator:->", "Ident:y", "Operator:->>", "Ident:z", "Operator:<<-", "Ident:a", "Operator::::", "Ident:b",
				"Operator:**", "Number:2", "EOF:",
			},
		},
		{
			text: ".x _y r x.1",
			want: []string{"Ident:.x", "Ident:_y", "Ident:r", "Ident:x.1", "EOF:"},
		},
		{
			text: "\uFEFFx",
			want: []string{"Unrecognized:\uFEFF", "Ident:x", "EOF:"},
		},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			got, errs := lexed(t, test.text)
			assert.Equal(t, test.want, got)
			assert.Zero(t, errs.Len(), "%v", errs)
		})
	}
}

func TestLexDiagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text  string
		tag   report.Tag
		token string // The text of the diagnosed token.
	}{
		{text: `x <- "abc`, tag: parser.TagUnterminatedString, token: `"abc`},
		{text: "x <- 'abc\ny", tag: parser.TagUnterminatedString, token: `'abc`},
		{text: `r"(abc"`, tag: parser.TagUnterminatedString, token: `r"(abc"`},
		{text: "`abc", tag: parser.TagUnterminatedName, token: "`abc"},
		{text: "a %in b", tag: parser.TagUnterminatedOperator, token: "%"},
		{text: "0x", tag: parser.TagInvalidNumber, token: "0x"},
		{text: "1e+", tag: parser.TagInvalidNumber, token: "1e+"},
		{text: "0x1p", tag: parser.TagInvalidNumber, token: "0x1p"},
		{text: "x § y", tag: parser.TagUnrecognized, token: "§"},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			errs := new(report.Report)
			parser.Lex(source.NewFile("test.R", test.text), errs)
			require.Equal(t, 1, errs.Len(), "%v", errs)

			d := errs.Diagnostics[0]
			assert.Equal(t, report.Error, d.Level())
			assert.Equal(t, test.tag, d.Tag())
			assert.Equal(t, test.token, d.Primary().Text())
		})
	}
}

// TestLexCoverage checks that the natural tokens of a stream partition the
// text, no matter how malformed it is.
func TestLexCoverage(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"x",
		"x <- function(a, b = 2) { a + b }\n",
		"\"unterminated\nstring",
		"`name",
		"%%%",
		"]]]]][[[[",
		"r\"---(\"",
		"1e 0x 0xp 1.2.3",
		"§¶ é 中文 <- 1",
		"\r\r\n\n",
		"\uFEFF\uFEFF",
		"a$b@c::d:::e",
	}

	for _, text := range inputs {
		t.Run(fmt.Sprintf("%q", text), func(t *testing.T) {
			t.Parallel()

			stream := parser.Lex(source.NewFile("test.R", text), new(report.Report))
			assert.Equal(t, text, stream.Text())

			var b strings.Builder
			var offset int
			var last token.Token
			for tok := range stream.All() {
				start, end := tok.Offsets()
				assert.Equal(t, offset, start, "gap before %v", tok)
				assert.False(t, tok.IsSynthetic())
				if tok.Kind() != token.EOF {
					assert.Less(t, start, end, "empty token %v", tok)
				}
				b.WriteString(tok.Text())
				offset = end
				last = tok
			}
			assert.Equal(t, text, b.String())
			assert.Equal(t, token.EOF, last.Kind())
			assert.Equal(t, len([]rune(text)), offset)
		})
	}
}

func TestLexKeywords(t *testing.T) {
	t.Parallel()

	stream := parser.Lex(source.NewFile("test.R", "x[[1]] <- y %o% z"), new(report.Report))
	var kws []keyword.Keyword
	for tok := range stream.All() {
		if kw := tok.Keyword(); kw != keyword.Unknown {
			kws = append(kws, kw)
		}
	}
	assert.Equal(t, []keyword.Keyword{
		keyword.LBracket2, keyword.RBracket2, keyword.Assign, keyword.Special,
	}, kws)
}
