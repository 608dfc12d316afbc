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

package functions

import (
	"strings"
	"time"

	"github.com/tabulab/formula/types"
)

// FunctionType partitions the registry by category.
type FunctionType string

const (
	TypeAggregation FunctionType = "aggregation"
	TypeConditional FunctionType = "conditional"
	TypeString      FunctionType = "string"
	TypeMath        FunctionType = "math"
	TypeDateTime    FunctionType = "datetime"
	TypeConversion  FunctionType = "conversion"
	TypeLogical     FunctionType = "logical"
)

// FunctionContext carries the evaluation state a builtin may consult:
// the current row, column metadata, the optional full row set, and the
// injected clock that keeps TODAY/NOW testable.
type FunctionContext struct {
	Row     types.Row
	Columns []types.Column
	AllRows []types.Row
	Now     func() time.Time
}

// Clock returns the context's time source, falling back to the wall
// clock when none was injected.
func (ctx *FunctionContext) Clock() time.Time {
	if ctx != nil && ctx.Now != nil {
		return ctx.Now()
	}
	return time.Now()
}

// Function is the contract every builtin implements.
type Function interface {
	// GetName returns the canonical upper-case name.
	GetName() string
	// GetType returns the function's category.
	GetType() FunctionType
	// GetDescription returns a short human-readable description.
	GetDescription() string
	// Validate checks the argument list before execution.
	Validate(args []interface{}) error
	// Execute runs the function over already-evaluated arguments.
	Execute(ctx *FunctionContext, args []interface{}) (interface{}, error)
}

// AggregateFunction is implemented by the whole-table builtins. The
// evaluator re-evaluates the argument expression once per row and
// hands the collected results to Aggregate.
type AggregateFunction interface {
	Function
	Aggregate(values []interface{}) (interface{}, error)
}

// The registry is closed: the set of functions is versioned with the
// language itself, so there is no public Register and no mutation
// after init. Names are stored upper-case; Lookup is case-insensitive.
var registry = map[string]Function{}

func register(fn Function) {
	name := strings.ToUpper(fn.GetName())
	if _, exists := registry[name]; exists {
		panic("functions: duplicate registration of " + name)
	}
	registry[name] = fn
}

// Lookup returns the builtin for name, if any.
func Lookup(name string) (Function, bool) {
	fn, ok := registry[strings.ToUpper(name)]
	return fn, ok
}

// IsRegistered reports whether name is a recognized function. The
// tokenizer uses it to tell function identifiers from bare column
// references.
func IsRegistered(name string) bool {
	_, ok := registry[strings.ToUpper(name)]
	return ok
}

// Names lists every registered function name, unordered.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	return out
}

func init() {
	// Aggregation
	register(NewSumFunction())
	register(NewAvgFunction())
	register(NewCountFunction())
	register(NewMinFunction())
	register(NewMaxFunction())
	register(NewDistinctFunction())

	// Conditional
	register(NewIfFunction())
	register(NewSwitchFunction())
	register(NewCoalesceFunction())

	// Text
	register(NewConcatenateFunction("CONCATENATE"))
	register(NewConcatenateFunction("CONCAT"))
	register(NewLeftFunction())
	register(NewRightFunction())
	register(NewMidFunction())
	register(NewLenFunction())
	register(NewUpperFunction())
	register(NewLowerFunction())
	register(NewTrimFunction())
	register(NewReplaceFunction())
	register(NewSubstituteFunction())

	// Math
	register(NewRoundFunction())
	register(NewFloorFunction())
	register(NewCeilFunction("CEIL"))
	register(NewCeilFunction("CEILING"))
	register(NewAbsFunction())
	register(NewPowerFunction("POWER"))
	register(NewPowerFunction("POW"))
	register(NewSqrtFunction())
	register(NewModFunction())
	register(NewLogFunction())
	register(NewLog10Function())
	register(NewExpFunction())

	// Date
	register(NewYearFunction())
	register(NewMonthFunction())
	register(NewDayFunction())
	register(NewTodayFunction())
	register(NewNowFunction())
	register(NewDateDiffFunction())

	// Type conversion
	register(NewTextFunction())
	register(NewValueFunction())
	register(NewIntFunction())
	register(NewFloatFunction())

	// Logical
	register(NewAndFunction())
	register(NewOrFunction())
	register(NewNotFunction())
	register(NewTrueFunction())
	register(NewFalseFunction())
}
