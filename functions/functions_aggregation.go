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

// The aggregation builtins receive one value per row of the table,
// already produced by re-evaluating their argument expression with
// each row substituted. NULL slots (rows whose argument failed or was
// absent) are ignored by every aggregate.

// SumFunction sums the numeric form of the values.
type SumFunction struct {
	*BaseFunction
}

func NewSumFunction() *SumFunction {
	return &SumFunction{
		BaseFunction: NewBaseFunction("SUM", TypeAggregation, "Sum of the values", 1, 1),
	}
}

func (f *SumFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *SumFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return f.Aggregate(args)
}

func (f *SumFunction) Aggregate(values []interface{}) (interface{}, error) {
	sum := 0.0
	for _, v := range values {
		if v == nil {
			continue
		}
		sum += coerce.ToNumber(v)
	}
	return sum, nil
}

// AvgFunction averages the numeric form of the non-null values.
type AvgFunction struct {
	*BaseFunction
}

func NewAvgFunction() *AvgFunction {
	return &AvgFunction{
		BaseFunction: NewBaseFunction("AVG", TypeAggregation, "Average of the values", 1, 1),
	}
}

func (f *AvgFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *AvgFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return f.Aggregate(args)
}

func (f *AvgFunction) Aggregate(values []interface{}) (interface{}, error) {
	sum := 0.0
	count := 0
	for _, v := range values {
		if v == nil {
			continue
		}
		sum += coerce.ToNumber(v)
		count++
	}
	if count == 0 {
		return nil, nil
	}
	return sum / float64(count), nil
}

// CountFunction counts the non-null values.
type CountFunction struct {
	*BaseFunction
}

func NewCountFunction() *CountFunction {
	return &CountFunction{
		BaseFunction: NewBaseFunction("COUNT", TypeAggregation, "Count of non-null values", 1, 1),
	}
}

func (f *CountFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *CountFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return f.Aggregate(args)
}

func (f *CountFunction) Aggregate(values []interface{}) (interface{}, error) {
	count := 0
	for _, v := range values {
		if v != nil {
			count++
		}
	}
	return float64(count), nil
}

// MinFunction returns the smallest numeric value.
type MinFunction struct {
	*BaseFunction
}

func NewMinFunction() *MinFunction {
	return &MinFunction{
		BaseFunction: NewBaseFunction("MIN", TypeAggregation, "Smallest of the values", 1, 1),
	}
}

func (f *MinFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *MinFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return f.Aggregate(args)
}

func (f *MinFunction) Aggregate(values []interface{}) (interface{}, error) {
	var min float64
	found := false
	for _, v := range values {
		if v == nil {
			continue
		}
		n := coerce.ToNumber(v)
		if !found || n < min {
			min = n
			found = true
		}
	}
	if !found {
		return nil, nil
	}
	return min, nil
}

// MaxFunction returns the largest numeric value.
type MaxFunction struct {
	*BaseFunction
}

func NewMaxFunction() *MaxFunction {
	return &MaxFunction{
		BaseFunction: NewBaseFunction("MAX", TypeAggregation, "Largest of the values", 1, 1),
	}
}

func (f *MaxFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *MaxFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return f.Aggregate(args)
}

func (f *MaxFunction) Aggregate(values []interface{}) (interface{}, error) {
	var max float64
	found := false
	for _, v := range values {
		if v == nil {
			continue
		}
		n := coerce.ToNumber(v)
		if !found || n > max {
			max = n
			found = true
		}
	}
	if !found {
		return nil, nil
	}
	return max, nil
}

// DistinctFunction counts the distinct non-null values, keyed by
// their text form.
type DistinctFunction struct {
	*BaseFunction
}

func NewDistinctFunction() *DistinctFunction {
	return &DistinctFunction{
		BaseFunction: NewBaseFunction("DISTINCT", TypeAggregation, "Count of distinct values", 1, 1),
	}
}

func (f *DistinctFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *DistinctFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return f.Aggregate(args)
}

func (f *DistinctFunction) Aggregate(values []interface{}) (interface{}, error) {
	seen := make(map[string]struct{})
	for _, v := range values {
		if v == nil {
			continue
		}
		seen[coerce.ToText(v)] = struct{}{}
	}
	return float64(len(seen)), nil
}
