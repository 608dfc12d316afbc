package expr

import (
	"github.com/tabulab/formula/coerce"
	"github.com/tabulab/formula/types"
)

// typeSampleLimit caps how many sample rows the inferencer evaluates.
const typeSampleLimit = 10

// InferType evaluates node against up to the first ten sample rows
// and classifies the output type heuristically. The sample set doubles
// as the full row set so aggregate formulas classify against realistic
// output. Rows that fail or yield null are skipped; with nothing left
// the answer is string.
//
// The numeric check runs before the boolean check, so a formula whose
// outputs happen to be the numbers 0 and 1 classifies as number, not
// boolean. Existing dashboards rely on that ordering.
func (ev *Evaluator) InferType(node Node, columns []types.Column, sampleRows []types.Row) types.ColumnType {
	sample := sampleRows
	if len(sample) > typeSampleLimit {
		sample = sample[:typeSampleLimit]
	}

	var results []types.Value
	for _, row := range sample {
		ctx := &EvalContext{Row: row, Columns: columns, AllRows: sample}
		value, err := ev.Evaluate(node, ctx)
		if err != nil || value == nil {
			continue
		}
		results = append(results, value)
	}

	if len(results) == 0 {
		return types.ColumnString
	}

	allNumeric := true
	for _, v := range results {
		if _, ok := v.(float64); !ok {
			allNumeric = false
			break
		}
	}
	if allNumeric {
		return types.ColumnNumber
	}

	allBoolish := true
	for _, v := range results {
		if s := coerce.ToText(v); s != "0" && s != "1" {
			allBoolish = false
			break
		}
	}
	if allBoolish {
		return types.ColumnBoolean
	}

	allDates := true
	for _, v := range results {
		if _, ok := coerce.ToTime(v); !ok {
			allDates = false
			break
		}
	}
	if allDates {
		return types.ColumnDate
	}

	return types.ColumnString
}
