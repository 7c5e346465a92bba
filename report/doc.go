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

/*
Package report provides the diagnostics framework used by the parser: it
offers diagnostic construction and rendering.

Diagnostics are collected into a [Report], which is a helpful builder over a
slice of [Diagnostic]s. Each [Diagnostic] consists of a message, a
machine-readable [Tag], a [Level], and source spans to show the user, plus
optional notes and help text.

Reports can be rendered using a [Renderer], which renders either one line per
diagnostic in the style of the Go compiler, or annotated source snippets in
the style of the Rust compiler.

# Defining Diagnostics

Generally, to define a diagnostic, define a Go type that implements
[Diagnose] and pass it to [Report.Error]. This keeps the wording of a
diagnostic the same everywhere it is emitted. For one-off diagnostics,
[Report.Errorf] and friends are fine.

# Diagnostics Style Guide

 1. Errors are for inputs the parser cannot make sense of. Warnings are for
    things not strictly forbidden but probably bad. Remarks are warnings that
    are not shown to the user by default.

 2. Messages do not begin with a capital letter and do not end in
    punctuation. The words "error", "warning", "remark", "help", and "note"
    are never capitalized.

 3. The first span in a diagnostic (the primary span) should be precisely
    the code that resulted in the error.

 4. Try not to emit multiple diagnostics for the same error.

 5. When referring to the language's semantics rather than the parser's, use
    the language's name: "R does not allow...".
*/
package report
