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

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rsyntax/rsyntax/config"
	"github.com/rsyntax/rsyntax/report"
)

// fileReport is the YAML form of one file's diagnostics.
type fileReport struct {
	Path        string          `yaml:"path"`
	Diagnostics []report.Record `yaml:"diagnostics"`
}

func (a *app) checkCommand() *cobra.Command {
	var (
		format string
		color  bool
	)
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report syntax errors",
		Long: `Parses each file and prints its diagnostics. Exits with status 1 if any
file contains a syntax error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.overrideOutput(cmd, format, color); err != nil {
				return err
			}
			results, err := a.parse(cmd, args)
			if err != nil {
				return err
			}

			var failed int
			out := cmd.OutOrStdout()
			if a.cfg.Output.Format == config.FormatYAML {
				reports := make([]fileReport, 0, len(results))
				for _, r := range results {
					reports = append(reports, fileReport{Path: r.Path(), Diagnostics: r.Report.Records()})
					if r.Report.HasErrors() {
						failed++
					}
				}
				data, err := yaml.Marshal(reports)
				if err != nil {
					return err
				}
				if _, err := out.Write(data); err != nil {
					return err
				}
			} else {
				for _, r := range results {
					errs, _, err := a.renderer().Render(r.Report, out)
					if err != nil {
						return err
					}
					if errs > 0 {
						failed++
					}
				}
			}

			if failed > 0 {
				a.logger.Info("check failed", "files", len(results), "failed", failed)
				return fmt.Errorf("%w in %d of %d files", ErrDiagnostics, failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, "output format: text or yaml")
	cmd.Flags().BoolVar(&color, "color", false, "colorize diagnostics")
	return cmd
}
