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

// TextFunction renders a value as text.
type TextFunction struct {
	*BaseFunction
}

func NewTextFunction() *TextFunction {
	return &TextFunction{
		BaseFunction: NewBaseFunction("TEXT", TypeConversion, "Render a value as text", 1, 1),
	}
}

func (f *TextFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *TextFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return coerce.ToText(args[0]), nil
}

// ValueFunction parses a value as a number.
type ValueFunction struct {
	*BaseFunction
}

func NewValueFunction() *ValueFunction {
	return &ValueFunction{
		BaseFunction: NewBaseFunction("VALUE", TypeConversion, "Parse a value as a number", 1, 1),
	}
}

func (f *ValueFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *ValueFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return coerce.ToNumber(args[0]), nil
}

// IntFunction truncates a value to its integer part.
type IntFunction struct {
	*BaseFunction
}

func NewIntFunction() *IntFunction {
	return &IntFunction{
		BaseFunction: NewBaseFunction("INT", TypeConversion, "Truncate a value to an integer", 1, 1),
	}
}

func (f *IntFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *IntFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return math.Trunc(coerce.ToNumber(args[0])), nil
}

// FloatFunction parses a value as a floating point number.
type FloatFunction struct {
	*BaseFunction
}

func NewFloatFunction() *FloatFunction {
	return &FloatFunction{
		BaseFunction: NewBaseFunction("FLOAT", TypeConversion, "Parse a value as a float", 1, 1),
	}
}

func (f *FloatFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *FloatFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return coerce.ToNumber(args[0]), nil
}
