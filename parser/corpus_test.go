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
	"testing"

	"github.com/rsyntax/rsyntax/ast/dump"
	"github.com/rsyntax/rsyntax/internal/corpora"
	"github.com/rsyntax/rsyntax/parser"
	"github.com/rsyntax/rsyntax/report"
)

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:       "testdata",
		Refresh:    "RSYNTAX_REFRESH",
		Extensions: []string{"R"},
		Outputs: []corpora.Output{
			{Extension: "tree"},
			{Extension: "stderr"},
		},
		Test: func(t *testing.T, path, text string) []string {
			tree, errs := parser.ParseFile(path, text)
			stderr, _, _ := report.Renderer{Compact: true}.RenderString(errs)
			return []string{dump.String(tree.Root()), stderr}
		},
	}
	corpus.Run(t)
}
