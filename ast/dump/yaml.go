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

package dump

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rsyntax/rsyntax/ast"
)

// YAML renders the tree rooted at n as a YAML document.
//
// Every node becomes a mapping with its kind and span; leaves also record
// their token's text and kind, and other nodes list their children.
func YAML(n ast.Node) ([]byte, error) {
	return yaml.Marshal(YAMLNode(n))
}

// YAMLNode converts the tree rooted at n into a [yaml.Node], for embedding in
// larger documents.
func YAMLNode(n ast.Node) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	if n.IsZero() {
		node.Tag = "!!null"
		node.Kind = yaml.ScalarNode
		return node
	}

	start, end := n.Offsets()
	add(node, "kind", scalar(n.Kind().String()))
	add(node, "span", &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			scalar(fmt.Sprint(start)),
			scalar(fmt.Sprint(end)),
		},
	})

	if n.Kind().IsLeaf() {
		tok := n.Token()
		add(node, "token", scalar(tok.Kind().String()))
		text := scalar(tok.Text())
		text.Style = yaml.DoubleQuotedStyle
		add(node, "text", text)
		if tok.IsSynthetic() {
			add(node, "synthetic", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"})
		}
		return node
	}

	if n.NumChildren() > 0 {
		children := &yaml.Node{Kind: yaml.SequenceNode}
		for child := range n.Children() {
			children.Content = append(children.Content, YAMLNode(child))
		}
		add(node, "children", children)
	}
	return node
}

func add(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar(key), value)
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value}
}
