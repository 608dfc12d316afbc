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

// IfFunction exists so the tokenizer classifies IF as a function name.
// The parser gives IF a dedicated non-strict conditional node, so this
// Execute only runs if a caller dispatches IF directly; it is the
// strict equivalent.
type IfFunction struct {
	*BaseFunction
}

func NewIfFunction() *IfFunction {
	return &IfFunction{
		BaseFunction: NewBaseFunction("IF", TypeConditional, "Choose between two values", 3, 3),
	}
}

func (f *IfFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *IfFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	if coerce.ToBool(args[0]) {
		return args[1], nil
	}
	return args[2], nil
}

// SwitchFunction compares a subject against (case, result) pairs in
// order and returns the first matching result. An odd trailing
// argument is the default.
type SwitchFunction struct {
	*BaseFunction
}

func NewSwitchFunction() *SwitchFunction {
	return &SwitchFunction{
		BaseFunction: NewBaseFunction("SWITCH", TypeConditional, "Select a result by matching a subject", 3, -1),
	}
}

func (f *SwitchFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *SwitchFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	subject := args[0]
	rest := args[1:]
	for i := 0; i+1 < len(rest); i += 2 {
		if looseEqual(subject, rest[i]) {
			return rest[i+1], nil
		}
	}
	if len(rest)%2 == 1 {
		return rest[len(rest)-1], nil
	}
	return nil, nil
}

// looseEqual mirrors the evaluator's "=" semantics: numeric when
// either side is a number, exact text match otherwise.
func looseEqual(left, right interface{}) bool {
	_, leftNum := left.(float64)
	_, rightNum := right.(float64)
	if leftNum || rightNum {
		return coerce.ToNumber(left) == coerce.ToNumber(right)
	}
	return coerce.ToText(left) == coerce.ToText(right)
}

// CoalesceFunction returns the first argument that is neither null
// nor the empty string.
type CoalesceFunction struct {
	*BaseFunction
}

func NewCoalesceFunction() *CoalesceFunction {
	return &CoalesceFunction{
		BaseFunction: NewBaseFunction("COALESCE", TypeConditional, "First non-empty argument", 1, -1),
	}
}

func (f *CoalesceFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *CoalesceFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	for _, arg := range args {
		if arg == nil {
			continue
		}
		if s, ok := arg.(string); ok && s == "" {
			continue
		}
		return arg, nil
	}
	return nil, nil
}
