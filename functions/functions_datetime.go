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
	"fmt"
	"math"
	"time"

	"github.com/tabulab/formula/coerce"
)

func toTimeArg(fnName string, arg interface{}) (time.Time, error) {
	t, ok := coerce.ToTime(arg)
	if !ok {
		return time.Time{}, fmt.Errorf("function %s: cannot interpret %v as a date", fnName, arg)
	}
	return t, nil
}

// YearFunction extracts the year from a date value.
type YearFunction struct {
	*BaseFunction
}

func NewYearFunction() *YearFunction {
	return &YearFunction{
		BaseFunction: NewBaseFunction("YEAR", TypeDateTime, "Year component of a date", 1, 1),
	}
}

func (f *YearFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *YearFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	t, err := toTimeArg("YEAR", args[0])
	if err != nil {
		return nil, err
	}
	return float64(t.Year()), nil
}

// MonthFunction extracts the month (1-12) from a date value.
type MonthFunction struct {
	*BaseFunction
}

func NewMonthFunction() *MonthFunction {
	return &MonthFunction{
		BaseFunction: NewBaseFunction("MONTH", TypeDateTime, "Month component of a date", 1, 1),
	}
}

func (f *MonthFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *MonthFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	t, err := toTimeArg("MONTH", args[0])
	if err != nil {
		return nil, err
	}
	return float64(t.Month()), nil
}

// DayFunction extracts the day of month from a date value.
type DayFunction struct {
	*BaseFunction
}

func NewDayFunction() *DayFunction {
	return &DayFunction{
		BaseFunction: NewBaseFunction("DAY", TypeDateTime, "Day component of a date", 1, 1),
	}
}

func (f *DayFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *DayFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	t, err := toTimeArg("DAY", args[0])
	if err != nil {
		return nil, err
	}
	return float64(t.Day()), nil
}

// TodayFunction returns the current date as text. It reads the
// context clock, which tests replace with a fixed instant.
type TodayFunction struct {
	*BaseFunction
}

func NewTodayFunction() *TodayFunction {
	return &TodayFunction{
		BaseFunction: NewBaseFunction("TODAY", TypeDateTime, "Current date", 0, 0),
	}
}

func (f *TodayFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *TodayFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return ctx.Clock().Format("2006-01-02"), nil
}

// NowFunction returns the current date and time as text.
type NowFunction struct {
	*BaseFunction
}

func NewNowFunction() *NowFunction {
	return &NowFunction{
		BaseFunction: NewBaseFunction("NOW", TypeDateTime, "Current date and time", 0, 0),
	}
}

func (f *NowFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *NowFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return ctx.Clock().Format("2006-01-02 15:04:05"), nil
}

// DateDiffFunction returns the floored whole-day count from the first
// date to the second.
type DateDiffFunction struct {
	*BaseFunction
}

func NewDateDiffFunction() *DateDiffFunction {
	return &DateDiffFunction{
		BaseFunction: NewBaseFunction("DATEDIFF", TypeDateTime, "Whole days between two dates", 2, 2),
	}
}

func (f *DateDiffFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *DateDiffFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	start, err := toTimeArg("DATEDIFF", args[0])
	if err != nil {
		return nil, err
	}
	end, err := toTimeArg("DATEDIFF", args[1])
	if err != nil {
		return nil, err
	}
	return math.Floor(end.Sub(start).Hours() / 24), nil
}
