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

// Package cmd implements the rparse command line.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rsyntax/rsyntax"
	"github.com/rsyntax/rsyntax/config"
	"github.com/rsyntax/rsyntax/report"
)

// ErrDiagnostics is returned by commands that found syntax errors. The
// errors themselves have already been printed.
var ErrDiagnostics = errors.New("syntax errors found")

// The config file read when --config is not given, if it exists.
const defaultConfig = "rparse.toml"

// app holds the state shared by all subcommands.
type app struct {
	cfgFile string
	verbose bool
	jobs    int

	cfg    *config.Config
	logger *slog.Logger
}

// New returns a fresh root command.
func New() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:   "rparse",
		Short: "Parse R source files",
		Long: `rparse parses R source files into lossless concrete syntax trees.

Paths may be doublestar globs, such as src/**/*.R. A path of - or no path
at all reads from standard input.

Commands:
  tree    - print the syntax tree of each file
  tokens  - print the tokens of each file
  check   - report syntax errors`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./"+defaultConfig+" if present)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.IntVarP(&a.jobs, "jobs", "j", 0, "number of files to parse in parallel (default: one per CPU)")

	root.AddCommand(a.treeCommand(), a.tokensCommand(), a.checkCommand())
	return root
}

// Execute runs the root command with the process's arguments.
func Execute() error {
	root := New()
	err := root.Execute()
	if err != nil && !errors.Is(err, ErrDiagnostics) {
		fmt.Fprintf(root.ErrOrStderr(), "rparse: %v\n", err)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadOrDefault(defaultConfig)
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("jobs") {
		if a.jobs < 0 {
			return fmt.Errorf("--jobs must not be negative, got %d", a.jobs)
		}
		a.cfg.Batch.Parallelism = a.jobs
	}

	level := a.cfg.LogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// parse parses the files named by args.
func (a *app) parse(cmd *cobra.Command, args []string) ([]rsyntax.Result, error) {
	paths, opener, err := inputs(cmd, args)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("parsing", slog.Int("files", len(paths)), slog.Int("parallelism", a.cfg.Batch.Parallelism))

	p := rsyntax.Parser{
		Opener:         opener,
		MaxParallelism: a.cfg.Batch.Parallelism,
		Options:        a.cfg.ParserOptions(),
		Logger:         a.logger,
	}
	return p.Parse(cmd.Context(), paths...)
}

func (a *app) renderer() report.Renderer {
	return report.Renderer{
		Compact:  a.cfg.Output.Compact,
		Colorize: a.cfg.Output.Color,
	}
}

// overrideOutput applies the --format and --color flags of a subcommand.
func (a *app) overrideOutput(cmd *cobra.Command, format string, color bool) error {
	if cmd.Flags().Changed("format") {
		a.cfg.Output.Format = format
	}
	if cmd.Flags().Changed("color") {
		a.cfg.Output.Color = color
	}
	return a.cfg.Validate()
}
