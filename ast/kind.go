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

package ast

import "fmt"

// Kind is the syntactic category of a [Node].
type Kind byte

const (
	KindUnknown Kind = iota

	GlobalScope // The root of every tree.
	Scope       // A brace-delimited block: { statements... }
	SimpleScope // A body without braces, holding exactly one statement.

	ExpressionStatement        // An expression used as a statement.
	KeywordExpressionStatement // if, for, while, repeat, break, next, or return.

	Expression    // The root of an expression in statement or argument position.
	Group         // A parenthesized expression.
	TokenOperator // A unary or binary operator application.
	FunctionCall  // f(args...)
	Indexer       // x[args...] or x[[args...]]

	Variable       // A reference to a name.
	NumericalValue // A number such as 1, 0x1F or 2L.
	ComplexValue   // A number with the i suffix.
	StringValue    // A string literal.
	LogicalValue   // TRUE or FALSE.
	NullValue      // NULL.
	MissingValue   // NA and its typed variants.

	FunctionDefinition // function(params) body
	ArgumentList       // The arguments of a call, index or function definition.
	ExpressionArgument // An unnamed argument.
	NamedArgument      // name = value
	MissingArgument    // An argument left empty, as in f(a, , b).

	TokenNode // A keyword, operator or punctuation token.
	ErrorNode // Tokens that could not be parsed.

	kindTotal
)

var kindNames = [...]string{
	KindUnknown:                "KindUnknown",
	GlobalScope:                "GlobalScope",
	Scope:                      "Scope",
	SimpleScope:                "SimpleScope",
	ExpressionStatement:        "ExpressionStatement",
	KeywordExpressionStatement: "KeywordExpressionStatement",
	Expression:                 "Expression",
	Group:                      "Group",
	TokenOperator:              "TokenOperator",
	FunctionCall:               "FunctionCall",
	Indexer:                    "Indexer",
	Variable:                   "Variable",
	NumericalValue:             "NumericalValue",
	ComplexValue:               "ComplexValue",
	StringValue:                "StringValue",
	LogicalValue:               "LogicalValue",
	NullValue:                  "NullValue",
	MissingValue:               "MissingValue",
	FunctionDefinition:         "FunctionDefinition",
	ArgumentList:               "ArgumentList",
	ExpressionArgument:         "ExpressionArgument",
	NamedArgument:              "NamedArgument",
	MissingArgument:            "MissingArgument",
	TokenNode:                  "TokenNode",
	ErrorNode:                  "ErrorNode",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k < kindTotal {
		return kindNames[k]
	}
	return fmt.Sprintf("ast.Kind(%d)", int(k))
}

// IsLeaf returns whether nodes of this kind wrap exactly one token.
func (k Kind) IsLeaf() bool {
	switch k {
	case Variable, NumericalValue, ComplexValue, StringValue,
		LogicalValue, NullValue, MissingValue, TokenNode:
		return true
	default:
		return false
	}
}

// IsValue returns whether this is the kind of a literal value leaf.
func (k Kind) IsValue() bool {
	return k.IsLeaf() && k != TokenNode && k != Variable
}

// IsScope returns whether this kind holds a sequence of statements.
func (k Kind) IsScope() bool {
	return k == GlobalScope || k == Scope || k == SimpleScope
}

// IsStatement returns whether this is the kind of a statement.
func (k Kind) IsStatement() bool {
	return k == ExpressionStatement || k == KeywordExpressionStatement
}

// IsArgument returns whether this is the kind of an element of an
// [ArgumentList].
func (k Kind) IsArgument() bool {
	return k == ExpressionArgument || k == NamedArgument || k == MissingArgument
}

// MayBeEmpty returns whether a non-leaf node of this kind may have no
// children.
func (k Kind) MayBeEmpty() bool {
	return k == GlobalScope || k == ArgumentList || k == MissingArgument || k == ErrorNode
}
