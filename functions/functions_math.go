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
	"math"

	"github.com/tabulab/formula/coerce"
)

// scale returns the power-of-ten factor for an optional decimal-places
// argument (default 0 places).
func scale(args []interface{}) float64 {
	if len(args) < 2 {
		return 1
	}
	return math.Pow(10, coerce.ToNumber(args[1]))
}

// RoundFunction rounds to an optional number of decimal places.
type RoundFunction struct {
	*BaseFunction
}

func NewRoundFunction() *RoundFunction {
	return &RoundFunction{
		BaseFunction: NewBaseFunction("ROUND", TypeMath, "Round to a number of decimal places", 1, 2),
	}
}

func (f *RoundFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *RoundFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	p := scale(args)
	return math.Round(coerce.ToNumber(args[0])*p) / p, nil
}

// FloorFunction rounds down to an optional number of decimal places.
type FloorFunction struct {
	*BaseFunction
}

func NewFloorFunction() *FloorFunction {
	return &FloorFunction{
		BaseFunction: NewBaseFunction("FLOOR", TypeMath, "Round down to a number of decimal places", 1, 2),
	}
}

func (f *FloorFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *FloorFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	p := scale(args)
	return math.Floor(coerce.ToNumber(args[0])*p) / p, nil
}

// CeilFunction rounds up to an optional number of decimal places.
// Registered twice, as CEIL and CEILING.
type CeilFunction struct {
	*BaseFunction
}

func NewCeilFunction(name string) *CeilFunction {
	return &CeilFunction{
		BaseFunction: NewBaseFunction(name, TypeMath, "Round up to a number of decimal places", 1, 2),
	}
}

func (f *CeilFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *CeilFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	p := scale(args)
	return math.Ceil(coerce.ToNumber(args[0])*p) / p, nil
}

// AbsFunction returns the absolute value.
type AbsFunction struct {
	*BaseFunction
}

func NewAbsFunction() *AbsFunction {
	return &AbsFunction{
		BaseFunction: NewBaseFunction("ABS", TypeMath, "Absolute value", 1, 1),
	}
}

func (f *AbsFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *AbsFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return math.Abs(coerce.ToNumber(args[0])), nil
}

// PowerFunction raises base to exponent. Registered as POWER and POW.
type PowerFunction struct {
	*BaseFunction
}

func NewPowerFunction(name string) *PowerFunction {
	return &PowerFunction{
		BaseFunction: NewBaseFunction(name, TypeMath, "Raise a number to a power", 2, 2),
	}
}

func (f *PowerFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *PowerFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return math.Pow(coerce.ToNumber(args[0]), coerce.ToNumber(args[1])), nil
}

// SqrtFunction returns the square root.
type SqrtFunction struct {
	*BaseFunction
}

func NewSqrtFunction() *SqrtFunction {
	return &SqrtFunction{
		BaseFunction: NewBaseFunction("SQRT", TypeMath, "Square root", 1, 1),
	}
}

func (f *SqrtFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *SqrtFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return math.Sqrt(coerce.ToNumber(args[0])), nil
}

// ModFunction returns the floating point remainder.
type ModFunction struct {
	*BaseFunction
}

func NewModFunction() *ModFunction {
	return &ModFunction{
		BaseFunction: NewBaseFunction("MOD", TypeMath, "Remainder of a division", 2, 2),
	}
}

func (f *ModFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *ModFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return math.Mod(coerce.ToNumber(args[0]), coerce.ToNumber(args[1])), nil
}

// LogFunction returns the natural logarithm.
type LogFunction struct {
	*BaseFunction
}

func NewLogFunction() *LogFunction {
	return &LogFunction{
		BaseFunction: NewBaseFunction("LOG", TypeMath, "Natural logarithm", 1, 1),
	}
}

func (f *LogFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *LogFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return math.Log(coerce.ToNumber(args[0])), nil
}

// Log10Function returns the base-10 logarithm.
type Log10Function struct {
	*BaseFunction
}

func NewLog10Function() *Log10Function {
	return &Log10Function{
		BaseFunction: NewBaseFunction("LOG10", TypeMath, "Base-10 logarithm", 1, 1),
	}
}

func (f *Log10Function) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *Log10Function) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return math.Log10(coerce.ToNumber(args[0])), nil
}

// ExpFunction returns e raised to the argument.
type ExpFunction struct {
	*BaseFunction
}

func NewExpFunction() *ExpFunction {
	return &ExpFunction{
		BaseFunction: NewBaseFunction("EXP", TypeMath, "e raised to a power", 1, 1),
	}
}

func (f *ExpFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *ExpFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return math.Exp(coerce.ToNumber(args[0])), nil
}
