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
Package formula implements a small spreadsheet-like expression language
for computing values over tabular rows, such as

	IF([Revenue] > 1000, "High", SUM([Cost]) * 1.1)

Formulas reference columns by bracketed name or id, call an uppercase
builtin library (math, text, date, logical, conditional and whole-table
aggregation functions), and produce a number, a string or null.

The package is organized as a pipeline: expr holds the tokenizer,
parser, AST, evaluator, validator and type inferencer; functions holds
the closed builtin registry; coerce holds the lenient value coercions;
types holds the row and column model. This package composes them into
the external surface:

	eng := formula.New()

	values, err := eng.ComputeColumn("[Price] * [Qty]", rows, columns)

	check := eng.ValidateFormula("[Price] * [Qty]", columns)

	kind := eng.InferFormulaType("[Price] * [Qty]", columns, rows)

The surface is deliberately total. Compile returns an inert literal
zero alongside any syntax error, evaluation downgrades every internal
failure to null, and ComputeColumn always yields exactly one value per
input row. Collaborators persist only formula source text and recompile
on load; there is no serialized AST format.
*/
package formula
