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


package formula

import (
	"time"

	"github.com/tabulab/formula/expr"
	"github.com/tabulab/formula/logger"
	"github.com/tabulab/formula/types"
)

// Engine is the public face of the formula language. It bundles the
// parser, evaluator, validator and type inferencer behind the handful
// of operations collaborators need, with totality guarantees the inner
// layers do not give: Compile always returns a usable AST and the
// evaluate paths never fail, they yield null.
//
// An Engine is immutable after New and safe for concurrent use.
type Engine struct {
	log       logger.Logger
	debug     bool
	clock     func() time.Time
	evaluator *expr.Evaluator
}

// New creates an engine. By default diagnostics are discarded, debug
// tracing is off and TODAY/NOW read the wall clock.
func New(options ...Option) *Engine {
	e := &Engine{
		log:   logger.NewDiscard(),
		clock: time.Now,
	}
	for _, opt := range options {
		opt(e)
	}
	e.evaluator = expr.NewEvaluator(e.clock, e.debug, e.log)
	return e
}

// Compile parses formula source into an AST. It never fails outright:
// on a syntax error the returned AST is an inert literal zero, so a
// caller that ignores the error still holds something it can evaluate,
// and the error carries the diagnostic for display.
func (e *Engine) Compile(source string) (expr.Node, error) {
	node, err := expr.ParseString(source)
	if err != nil {
		if e.debug {
			e.log.Debug("formula: compile failed: %v", err)
		}
		return &expr.NumberLiteral{Value: 0}, err
	}
	return node, nil
}

// EvaluateFormula computes a compiled formula against one row. It is
// total: every internal failure, including a panic, becomes null.
// allRows may be nil when whole-table aggregation is meaningless in
// the calling context.
func (e *Engine) EvaluateFormula(node expr.Node, row types.Row, columns []types.Column, allRows []types.Row) (result types.Value) {
	defer func() {
		if r := recover(); r != nil {
			if e.debug {
				e.log.Debug("formula: evaluation panic downgraded to null: %v", r)
			}
			result = nil
		}
	}()

	value, err := e.evaluator.Evaluate(node, &expr.EvalContext{
		Row:     row,
		Columns: columns,
		AllRows: allRows,
	})
	if err != nil {
		if e.debug {
			e.log.Debug("formula: evaluation failed, yielding null: %v", err)
		}
		return nil
	}
	return value
}

// EvaluateFormulaString compiles and evaluates in one step. A compile
// error yields null, like every other failure on this path.
func (e *Engine) EvaluateFormulaString(source string, row types.Row, columns []types.Column, allRows []types.Row) types.Value {
	node, err := expr.ParseString(source)
	if err != nil {
		if e.debug {
			e.log.Debug("formula: compile failed: %v", err)
		}
		return nil
	}
	return e.EvaluateFormula(node, row, columns, allRows)
}

// ComputeColumn evaluates a formula once per row with the whole table
// in scope, producing the computed column. The result always has
// exactly one slot per input row: rows that fail yield null in place,
// and a formula that does not even compile yields all nulls plus the
// compile error.
func (e *Engine) ComputeColumn(source string, rows []types.Row, columns []types.Column) ([]types.Value, error) {
	values := make([]types.Value, len(rows))
	node, err := e.Compile(source)
	if err != nil {
		return values, err
	}
	for i, row := range rows {
		values[i] = e.EvaluateFormula(node, row, columns, rows)
	}
	return values, nil
}

// ValidationResult reports whether a formula is usable against a
// column set, with a display-ready message when it is not.
type ValidationResult struct {
	Valid bool
	Error string
}

// ValidateFormula checks a formula without evaluating it: first that
// it parses, then that every column reference resolves. Authoring
// surfaces call this on every keystroke, so it touches no row data.
func (e *Engine) ValidateFormula(source string, columns []types.Column) ValidationResult {
	node, err := expr.ParseString(source)
	if err != nil {
		return ValidationResult{Error: err.Error()}
	}
	if err := expr.ValidateColumns(node, columns); err != nil {
		return ValidationResult{Error: err.Error()}
	}
	return ValidationResult{Valid: true}
}

// InferFormulaType classifies the output type of a formula by
// evaluating it against up to ten sample rows. Type is advisory
// metadata for display formatting; an uncompilable formula classifies
// as string.
func (e *Engine) InferFormulaType(source string, columns []types.Column, sampleRows []types.Row) types.ColumnType {
	node, err := expr.ParseString(source)
	if err != nil {
		return types.ColumnString
	}
	return e.evaluator.InferType(node, columns, sampleRows)
}

// FormulaColumns lists the column names a formula references, in
// first-appearance order. Collaborators use it to order computed
// column dependencies; an uncompilable formula references nothing.
func (e *Engine) FormulaColumns(source string) []string {
	node, err := expr.ParseString(source)
	if err != nil {
		return nil
	}
	return expr.CollectColumns(node)
}

// The package-level entry points delegate to a shared default engine,
// for callers that need no configuration.
var defaultEngine = New()

// Compile parses formula source with the default engine.
func Compile(source string) (expr.Node, error) {
	return defaultEngine.Compile(source)
}

// EvaluateFormulaString compiles and evaluates with the default engine.
func EvaluateFormulaString(source string, row types.Row, columns []types.Column, allRows []types.Row) types.Value {
	return defaultEngine.EvaluateFormulaString(source, row, columns, allRows)
}

// ComputeColumn computes a column with the default engine.
func ComputeColumn(source string, rows []types.Row, columns []types.Column) ([]types.Value, error) {
	return defaultEngine.ComputeColumn(source, rows, columns)
}

// ValidateFormula validates a formula with the default engine.
func ValidateFormula(source string, columns []types.Column) ValidationResult {
	return defaultEngine.ValidateFormula(source, columns)
}

// InferFormulaType classifies a formula with the default engine.
func InferFormulaType(source string, columns []types.Column, sampleRows []types.Row) types.ColumnType {
	return defaultEngine.InferFormulaType(source, columns, sampleRows)
}
