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

	"github.com/tabulab/formula/coerce"
)

// ConcatenateFunction joins the text forms of all arguments.
// Registered as CONCATENATE and CONCAT.
type ConcatenateFunction struct {
	*BaseFunction
}

func NewConcatenateFunction(name string) *ConcatenateFunction {
	return &ConcatenateFunction{
		BaseFunction: NewBaseFunction(name, TypeString, "Join text values", 1, -1),
	}
}

func (f *ConcatenateFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *ConcatenateFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	var result strings.Builder
	for _, arg := range args {
		result.WriteString(coerce.ToText(arg))
	}
	return result.String(), nil
}

// LeftFunction returns the first n characters (default 1).
type LeftFunction struct {
	*BaseFunction
}

func NewLeftFunction() *LeftFunction {
	return &LeftFunction{
		BaseFunction: NewBaseFunction("LEFT", TypeString, "Leading characters of text", 1, 2),
	}
}

func (f *LeftFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *LeftFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	runes := []rune(coerce.ToText(args[0]))
	n := 1
	if len(args) > 1 {
		n = int(coerce.ToNumber(args[1]))
	}
	if n < 0 {
		n = 0
	}
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:n]), nil
}

// RightFunction returns the last n characters (default 1).
type RightFunction struct {
	*BaseFunction
}

func NewRightFunction() *RightFunction {
	return &RightFunction{
		BaseFunction: NewBaseFunction("RIGHT", TypeString, "Trailing characters of text", 1, 2),
	}
}

func (f *RightFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *RightFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	runes := []rune(coerce.ToText(args[0]))
	n := 1
	if len(args) > 1 {
		n = int(coerce.ToNumber(args[1]))
	}
	if n < 0 {
		n = 0
	}
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[len(runes)-n:]), nil
}

// MidFunction extracts length characters starting at a 1-based index.
type MidFunction struct {
	*BaseFunction
}

func NewMidFunction() *MidFunction {
	return &MidFunction{
		BaseFunction: NewBaseFunction("MID", TypeString, "Characters from the middle of text", 3, 3),
	}
}

func (f *MidFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *MidFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	runes := []rune(coerce.ToText(args[0]))
	start := int(coerce.ToNumber(args[1])) - 1 // 1-based per spreadsheet convention
	length := int(coerce.ToNumber(args[2]))
	if start < 0 {
		start = 0
	}
	if start >= len(runes) || length <= 0 {
		return "", nil
	}
	end := start + length
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end]), nil
}

// LenFunction returns the character count of text.
type LenFunction struct {
	*BaseFunction
}

func NewLenFunction() *LenFunction {
	return &LenFunction{
		BaseFunction: NewBaseFunction("LEN", TypeString, "Length of text", 1, 1),
	}
}

func (f *LenFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *LenFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return float64(len([]rune(coerce.ToText(args[0])))), nil
}

// UpperFunction upper-cases text.
type UpperFunction struct {
	*BaseFunction
}

func NewUpperFunction() *UpperFunction {
	return &UpperFunction{
		BaseFunction: NewBaseFunction("UPPER", TypeString, "Upper-case text", 1, 1),
	}
}

func (f *UpperFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *UpperFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return strings.ToUpper(coerce.ToText(args[0])), nil
}

// LowerFunction lower-cases text.
type LowerFunction struct {
	*BaseFunction
}

func NewLowerFunction() *LowerFunction {
	return &LowerFunction{
		BaseFunction: NewBaseFunction("LOWER", TypeString, "Lower-case text", 1, 1),
	}
}

func (f *LowerFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *LowerFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return strings.ToLower(coerce.ToText(args[0])), nil
}

// TrimFunction strips surrounding whitespace.
type TrimFunction struct {
	*BaseFunction
}

func NewTrimFunction() *TrimFunction {
	return &TrimFunction{
		BaseFunction: NewBaseFunction("TRIM", TypeString, "Strip surrounding whitespace", 1, 1),
	}
}

func (f *TrimFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *TrimFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return strings.TrimSpace(coerce.ToText(args[0])), nil
}

// ReplaceFunction replaces length characters starting at a 1-based
// index with new text.
type ReplaceFunction struct {
	*BaseFunction
}

func NewReplaceFunction() *ReplaceFunction {
	return &ReplaceFunction{
		BaseFunction: NewBaseFunction("REPLACE", TypeString, "Replace a character range in text", 4, 4),
	}
}

func (f *ReplaceFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *ReplaceFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	runes := []rune(coerce.ToText(args[0]))
	start := int(coerce.ToNumber(args[1])) - 1 // 1-based per spreadsheet convention
	length := int(coerce.ToNumber(args[2]))
	replacement := coerce.ToText(args[3])
	if start < 0 {
		start = 0
	}
	if start > len(runes) {
		start = len(runes)
	}
	end := start + length
	if length < 0 || end > len(runes) {
		end = len(runes)
	}
	return string(runes[:start]) + replacement + string(runes[end:]), nil
}

// SubstituteFunction replaces every occurrence of old text with new text.
type SubstituteFunction struct {
	*BaseFunction
}

func NewSubstituteFunction() *SubstituteFunction {
	return &SubstituteFunction{
		BaseFunction: NewBaseFunction("SUBSTITUTE", TypeString, "Replace occurrences of text", 3, 3),
	}
}

func (f *SubstituteFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *SubstituteFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return strings.ReplaceAll(coerce.ToText(args[0]), coerce.ToText(args[1]), coerce.ToText(args[2])), nil
}
