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

// Package token provides a compact representation of the token stream of an
// R source file.
//
// # Natural and Synthetic Tokens
//
// This package distinguishes between natural [Token]s, created by the lexer
// and together covering every character of the input, and synthetic
// [Token]s, which the parser mints to stand in for tokens that are missing
// from the input, such as an unclosed `)`.
//
// Synthetic tokens do not appear in the natural sequence (so [Stream.Cursor]
// won't find them) and always have zero length: their [source.Span] is an
// empty span at the offset where the missing token was expected.
package token
