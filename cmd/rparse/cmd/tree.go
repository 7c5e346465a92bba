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

package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rsyntax/rsyntax"
	"github.com/rsyntax/rsyntax/ast"
	"github.com/rsyntax/rsyntax/ast/dump"
	"github.com/rsyntax/rsyntax/config"
)

var (
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	leafStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	scopeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

func (a *app) treeCommand() *cobra.Command {
	var (
		format string
		color  bool
	)
	cmd := &cobra.Command{
		Use:   "tree [paths...]",
		Short: "Print the syntax tree of each file",
		Long: `Prints the concrete syntax tree of each file, one node per line.

Diagnostics are printed to standard error. Syntax errors do not cause a
non-zero exit status; use check for that.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.overrideOutput(cmd, format, color); err != nil {
				return err
			}
			results, err := a.parse(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.cfg.Output.Format == config.FormatYAML {
				err = writeTreesYAML(out, results)
			} else {
				err = a.writeTrees(out, results)
			}
			if err != nil {
				return err
			}

			for _, r := range results {
				if _, _, err := a.renderer().Render(r.Report, cmd.ErrOrStderr()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, "output format: text or yaml")
	cmd.Flags().BoolVar(&color, "color", false, "colorize node kinds")
	return cmd
}

func (a *app) writeTrees(out io.Writer, results []rsyntax.Result) error {
	var p dump.Printer
	if a.cfg.Output.Color {
		p.StyleKind = styleKind
	}
	for _, r := range results {
		if len(results) > 1 {
			if _, err := fmt.Fprintf(out, "# %s\n", r.Path()); err != nil {
				return err
			}
		}
		if err := p.Print(out, r.Tree.Root()); err != nil {
			return err
		}
	}
	return nil
}

func writeTreesYAML(out io.Writer, results []rsyntax.Result) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	for _, r := range results {
		doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "path"},
			{Kind: yaml.ScalarNode, Value: r.Path()},
			{Kind: yaml.ScalarNode, Value: "tree"},
			dump.YAMLNode(r.Tree.Root()),
		}}
		if err := enc.Encode(doc); err != nil {
			return err
		}
	}
	return enc.Close()
}

func styleKind(kind ast.Kind, name string) string {
	switch {
	case kind == ast.ErrorNode:
		return errorStyle.Render(name)
	case kind.IsValue():
		return valueStyle.Render(name)
	case kind.IsLeaf():
		return leafStyle.Render(name)
	case kind.IsScope():
		return scopeStyle.Render(name)
	default:
		return name
	}
}
