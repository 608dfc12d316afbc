/*
 * Copyright 2026 The Tabulab Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package expr implements the formula language core: tokenizer, parser,
AST, evaluator, structural validator and output type inferencer.

Formulas are spreadsheet style expressions computed per row of a table,
with bracketed column references and an uppercase function library:

	IF([Revenue] > 1000, "High", SUM([Cost]) * 1.1)

# Pipeline

	Tokenize  - total scanner, never fails, unknown characters are skipped
	Parse     - precedence climbing, produces the closed Node union
	Evaluate  - walks a Node against a row, yields float64, string or nil

Each stage is usable on its own; the root formula package composes them
into the public compile/evaluate/validate/infer surface.

# Node Types

The AST is a closed union of seven pointer types:

	NumberLiteral - numeric constant
	StringLiteral - string constant
	ColumnRef     - bracketed or bare column reference
	BinaryOp      - arithmetic, comparison and concatenation operators
	UnaryOp       - numeric negation and NOT
	FunctionCall  - uppercase builtin call, including infix AND / OR
	Conditional   - the three argument IF form

# Operator Precedence

From loosest to tightest binding:

 1. OR
 2. AND
 3. Comparison (=, <>, <, >, <=, >=)
 4. Addition, subtraction, concatenation (+, -, &)
 5. Multiplication, division, modulo (*, /, %)
 6. Power (^, left associative)
 7. Unary minus, NOT
 8. Parentheses, literals, references, calls

# Value Domain

Evaluation results are always float64, string or nil. Comparisons and
the logical builtins yield 1 or 0. Inputs coerce leniently: ToNumber
strips currency and percent decoration and turns anything unparseable
into 0, so evaluation is total over well formed trees. Failures that do
surface as errors (unknown columns, bad arities) are downgraded to nil
by the public API.

# Usage

	node, err := expr.ParseString("[Price] * [Qty]")
	if err != nil {
		log.Fatal(err)
	}
	ev := expr.NewEvaluator(nil, false, nil)
	result, err := ev.Evaluate(node, &expr.EvalContext{Row: row, Columns: columns})
*/
package expr
