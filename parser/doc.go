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

// Package parser implements a tolerant lexer and recursive-descent parser for
// R source.
//
// Parsing never fails: any text, however malformed, produces a token stream
// covering it exactly and an [ast.Tree] rooted at an [ast.GlobalScope].
// Problems are recorded as diagnostics in a [report.Report], and the tree
// contains [ast.ErrorNode]s and zero-length synthetic tokens where the parser
// had to recover.
//
// The entry points are [Lex], which only tokenizes, and [Parse], which
// tokenizes and then builds a tree.
package parser
