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

package taxa

// names is an array of user-visible names of all of the productions in this
// package.
var names = [...]string{
	Unknown:      "<unknown>",
	Unrecognized: "unrecognized token",
	TopLevel:     "file scope",
	EOF:          "end-of-file",
	Newline:      "line break",

	Statement: "statement",
	Block:     "block",
	Expr:      "expression",
	Operand:   "operand",
	Group:     "parenthesized expression",
	Call:      "function call",
	Index:     "index expression",
	FuncDef:   "function definition",
	Params:    "parameter list",
	Args:      "argument list",
	ArgName:   "argument name",
	Condition: "condition",
	ForHeader: "`for` loop header",
	ForVar:    "`for` loop variable",
	Body:      "body",

	Whitespace: "whitespace",
	Comment:    "comment",
	Ident:      "identifier",
	Number:     "number",
	String:     "string literal",
	Constant:   "constant",
	Operator:   "operator",

	Semicolon: "`;`",
	Comma:     "`,`",
	Equals:    "`=`",
	LParen:    "`(`",
	RParen:    "`)`",
	LBracket:  "`[`",
	RBracket:  "`]`",
	LBracket2: "`[[`",
	RBracket2: "`]]`",
	LBrace:    "`{`",
	RBrace:    "`}`",

	KeywordIf:       "`if`",
	KeywordElse:     "`else`",
	KeywordFor:      "`for`",
	KeywordWhile:    "`while`",
	KeywordRepeat:   "`repeat`",
	KeywordFunction: "`function`",
	KeywordBreak:    "`break`",
	KeywordNext:     "`next`",
	KeywordReturn:   "`return`",
	KeywordIn:       "`in`",
}
