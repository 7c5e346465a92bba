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

// Package rsyntax parses R source files into lossless concrete syntax trees.
//
// The heavy lifting is done by the [parser] package, which turns a single
// [source.File] into an [ast.Tree] and a [report.Report] of diagnostics.
// Parsing never fails: malformed input yields a best-effort tree containing
// [ast.ErrorNode]s, together with diagnostics describing what went wrong.
//
// This package provides [Parser], which loads files through a
// [source.Opener] and parses many of them in parallel. A minimal Parser that
// reads files from the working directory looks like this:
//
//	p := rsyntax.Parser{
//		Opener: &source.FS{FS: os.DirFS(".")},
//	}
//	results, err := p.Parse(ctx, "analysis.R", "plots.R")
//
// Syntax errors never cause Parse to return an error; they are recorded in
// each [Result]. Only failures to load a file do.
package rsyntax
