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

package rsyntax

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/rsyntax/rsyntax/ast"
	"github.com/rsyntax/rsyntax/parser"
	"github.com/rsyntax/rsyntax/report"
	"github.com/rsyntax/rsyntax/source"
)

// Parser parses R source files, possibly many at a time.
type Parser struct {
	// Resolves paths into files. This field is required.
	Opener source.Opener

	// The maximum number of files to parse at once. If unspecified or set to
	// a non-positive value, min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// is used.
	MaxParallelism int

	// Options for the parser proper.
	Options parser.Options

	// If not nil, a debug record is logged for every file parsed.
	Logger *slog.Logger
}

// Result is the outcome of parsing one file.
type Result struct {
	File   *source.File
	Tree   *ast.Tree
	Report *report.Report
}

// Path returns the path of the parsed file.
func (r Result) Path() string {
	return r.File.Path()
}

// Err returns the result's report as an error if it contains any errors, and
// nil otherwise.
func (r Result) Err() error {
	if r.Report == nil || !r.Report.HasErrors() {
		return nil
	}
	return &report.AsError{Report: r.Report}
}

// Parse opens and parses the given paths. The results are in the same order
// as paths.
//
// The returned error is non-nil only if a file could not be opened, or if
// ctx is cancelled; syntax errors are recorded in each [Result.Report].
func (p *Parser) Parse(ctx context.Context, paths ...string) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	if p.Opener == nil {
		panic("rsyntax: Parser.Opener is required")
	}

	par := p.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}
	sem := semaphore.NewWeighted(int64(par))

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			file, err := p.Opener.Open(path)
			if err != nil {
				return fmt.Errorf("rsyntax: %w", err)
			}
			results[i] = p.parse(ctx, file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ParseFile parses a single file that has already been loaded.
func (p *Parser) ParseFile(ctx context.Context, file *source.File) Result {
	return p.parse(ctx, file)
}

func (p *Parser) parse(ctx context.Context, file *source.File) Result {
	errs := new(report.Report)
	tree := p.Options.Parse(file, errs)

	if p.Logger != nil {
		p.Logger.DebugContext(ctx, "parsed file",
			slog.String("path", file.Path()),
			slog.Int("runes", file.Len()),
			slog.Int("tokens", tree.Stream().Len()),
			slog.Int("nodes", tree.Len()),
			slog.Int("diagnostics", errs.Len()),
		)
	}
	return Result{File: file, Tree: tree, Report: errs}
}
