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

package dump_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rsyntax/rsyntax/ast"
	"github.com/rsyntax/rsyntax/ast/dump"
	"github.com/rsyntax/rsyntax/parser"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text, want string
	}{
		{
			text: "x <- function(a) { return(1) }",
			want: `GlobalScope  [Global]
    ExpressionStatement  [x <- function(a) { return(1) }]
        Expression  [x <- function(a) { return(1) }]
            TokenOperator  [<- [2...4]]
                Variable  [x]
                TokenNode  [<- [2...4]]
                FunctionDefinition  [FunctionDefinition]
                    TokenNode  [function [5...13]]
                    TokenNode  [( [13...14]]
                    ArgumentList  [ArgumentList]
                        ExpressionArgument  [ExpressionArgument]
                            Expression  [a]
                                Variable  [a]
                    TokenNode  [) [15...16]]
                    Scope  []
                        TokenNode  [{ [17...18]]
                        KeywordExpressionStatement  []
                            TokenNode  [return [19...25]]
                            TokenNode  [( [25...26]]
                            Expression  [1]
                                NumericalValue  [1 [26...27]]
                            TokenNode  [) [27...28]]
                        TokenNode  [} [29...30]]
`,
		},
		{
			text: "x <- function(a) return(1)",
			want: `GlobalScope  [Global]
    ExpressionStatement  [x <- function(a) return(1)]
        Expression  [x <- function(a) return(1)]
            TokenOperator  [<- [2...4]]
                Variable  [x]
                TokenNode  [<- [2...4]]
                FunctionDefinition  [FunctionDefinition]
                    TokenNode  [function [5...13]]
                    TokenNode  [( [13...14]]
                    ArgumentList  [ArgumentList]
                        ExpressionArgument  [ExpressionArgument]
                            Expression  [a]
                                Variable  [a]
                    TokenNode  [) [15...16]]
                    SimpleScope  [SimpleScope]
                        KeywordExpressionStatement  []
                            TokenNode  [return [17...23]]
                            TokenNode  [( [23...24]]
                            Expression  [1]
                                NumericalValue  [1 [24...25]]
                            TokenNode  [) [25...26]]
`,
		},
		{
			text: "x <- 'a\nb'",
			want: `GlobalScope  [Global]
    ExpressionStatement  [x <- 'a\nb']
        Expression  [x <- 'a\nb']
            TokenOperator  [<- [2...4]]
                Variable  [x]
                TokenNode  [<- [2...4]]
                StringValue  ['a\nb' [5...10]]
`,
		},
		{
			text: "f(, TRUE)",
			want: `GlobalScope  [Global]
    ExpressionStatement  [f(, TRUE)]
        Expression  [f(, TRUE)]
            FunctionCall  [FunctionCall]
                Variable  [f]
                TokenNode  [( [1...2]]
                ArgumentList  [ArgumentList]
                    MissingArgument  [{Missing}]
                        TokenNode  [, [2...3]]
                    ExpressionArgument  [ExpressionArgument]
                        Expression  [TRUE]
                            LogicalValue  [TRUE [4...8]]
                TokenNode  [) [8...9]]
`,
		},
		{
			text: "",
			want: "GlobalScope  [Global]\n",
		},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			tree, _ := parser.ParseFile("test.R", test.text)
			assert.Equal(t, test.want, dump.String(tree.Root()))
		})
	}
}

func TestSubtree(t *testing.T) {
	t.Parallel()

	tree, _ := parser.ParseFile("test.R", "a + b")
	op := tree.Root().Child(0).Child(0).Child(0)
	assert.Equal(t, `TokenOperator  [+ [2...3]]
    Variable  [a]
    TokenNode  [+ [2...3]]
    Variable  [b]
`, dump.String(op))
	assert.Empty(t, dump.String(ast.Node{}))
}

func TestSynthetic(t *testing.T) {
	t.Parallel()

	tree, errs := parser.ParseFile("test.R", "(1")
	assert.True(t, errs.HasErrors())
	assert.Equal(t, `GlobalScope  [Global]
    ExpressionStatement  [(1]
        Expression  [(1]
            Group  [Group]
                TokenNode  [( [0...1]]
                Expression  [1]
                    NumericalValue  [1 [1...2]]
                TokenNode  [) [2...2]]
`, dump.String(tree.Root()))
}

func TestStyleKind(t *testing.T) {
	t.Parallel()

	tree, _ := parser.ParseFile("test.R", "x")
	var b strings.Builder
	p := dump.Printer{StyleKind: func(kind ast.Kind, name string) string {
		if kind.IsLeaf() {
			return "*" + name + "*"
		}
		return name
	}}
	require.NoError(t, p.Print(&b, tree.Root()))
	assert.Equal(t, `GlobalScope  [Global]
    ExpressionStatement  [x]
        Expression  [x]
            *Variable*  [x]
`, b.String())
}

type yamlNode struct {
	Kind      string     `yaml:"kind"`
	Span      []int      `yaml:"span"`
	Token     string     `yaml:"token"`
	Text      string     `yaml:"text"`
	Synthetic bool       `yaml:"synthetic"`
	Children  []yamlNode `yaml:"children"`
}

func TestYAML(t *testing.T) {
	t.Parallel()

	tree, _ := parser.ParseFile("test.R", "x <- (1")
	data, err := dump.YAML(tree.Root())
	require.NoError(t, err)

	var root yamlNode
	require.NoError(t, yaml.Unmarshal(data, &root))
	assert.Equal(t, "GlobalScope", root.Kind)
	assert.Equal(t, []int{0, 7}, root.Span)
	require.Len(t, root.Children, 1)

	op := root.Children[0].Children[0].Children[0]
	assert.Equal(t, "TokenOperator", op.Kind)
	require.Len(t, op.Children, 3)
	assert.Equal(t, yamlNode{
		Kind:  "TokenNode",
		Span:  []int{2, 4},
		Token: "Operator",
		Text:  "<-",
	}, op.Children[1])

	group := op.Children[2]
	assert.Equal(t, "Group", group.Kind)
	closer := group.Children[len(group.Children)-1]
	assert.True(t, closer.Synthetic)
	assert.Equal(t, ")", closer.Text)
	assert.Equal(t, []int{7, 7}, closer.Span)
}
