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

import "github.com/tabulab/formula/coerce"

// AndFunction is the n-ary conjunction. Every argument is evaluated
// before dispatch reaches here, so there is no short circuit; the
// result is 1 or 0.
type AndFunction struct {
	*BaseFunction
}

func NewAndFunction() *AndFunction {
	return &AndFunction{
		BaseFunction: NewBaseFunction("AND", TypeLogical, "True when every argument is truthy", 1, -1),
	}
}

func (f *AndFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *AndFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	for _, arg := range args {
		if !coerce.ToBool(arg) {
			return float64(0), nil
		}
	}
	return float64(1), nil
}

// OrFunction is the n-ary disjunction, also short-circuit free.
type OrFunction struct {
	*BaseFunction
}

func NewOrFunction() *OrFunction {
	return &OrFunction{
		BaseFunction: NewBaseFunction("OR", TypeLogical, "True when any argument is truthy", 1, -1),
	}
}

func (f *OrFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *OrFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	for _, arg := range args {
		if coerce.ToBool(arg) {
			return float64(1), nil
		}
	}
	return float64(0), nil
}

// NotFunction inverts truthiness. NOT(x) in source text parses to a
// unary node, so this entry mainly classifies the identifier for the
// tokenizer; the implementation matches the evaluator's unary path.
type NotFunction struct {
	*BaseFunction
}

func NewNotFunction() *NotFunction {
	return &NotFunction{
		BaseFunction: NewBaseFunction("NOT", TypeLogical, "Invert truthiness", 1, 1),
	}
}

func (f *NotFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *NotFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	if coerce.ToBool(args[0]) {
		return float64(0), nil
	}
	return float64(1), nil
}

// TrueFunction returns 1. TRUE literals fold to 1 in the tokenizer;
// the registry entry keeps the logical category complete for direct
// dispatch.
type TrueFunction struct {
	*BaseFunction
}

func NewTrueFunction() *TrueFunction {
	return &TrueFunction{
		BaseFunction: NewBaseFunction("TRUE", TypeLogical, "The value 1", 0, 0),
	}
}

func (f *TrueFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *TrueFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return float64(1), nil
}

// FalseFunction returns 0, the counterpart of TrueFunction.
type FalseFunction struct {
	*BaseFunction
}

func NewFalseFunction() *FalseFunction {
	return &FalseFunction{
		BaseFunction: NewBaseFunction("FALSE", TypeLogical, "The value 0", 0, 0),
	}
}

func (f *FalseFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *FalseFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return float64(0), nil
}
