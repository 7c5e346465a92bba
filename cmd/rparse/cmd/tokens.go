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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rsyntax/rsyntax/token/keyword"
)

func (a *app) tokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [paths...]",
		Short: "Print the tokens of each file",
		Long: `Prints every token of each file, including whitespace and comments, as

  KIND  KEYWORD  [START...END]  "TEXT"

Offsets count characters, not bytes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.parse(cmd, args)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range results {
				if len(results) > 1 {
					fmt.Fprintf(w, "# %s\n", r.Path())
				}
				for tok := range r.Tree.Stream().All() {
					kw := "-"
					if k := tok.Keyword(); k != keyword.Unknown {
						kw = k.String()
					}
					start, end := tok.Offsets()
					fmt.Fprintf(w, "%v\t%s\t[%d...%d]\t%q\n", tok.Kind(), kw, start, end, tok.Text())
				}
			}
			return w.Flush()
		},
	}
}
