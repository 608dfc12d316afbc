package expr

import (
	"testing"
	"time"

	exprlang "github.com/expr-lang/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabulab/formula/types"
)

var salesColumns = []types.Column{
	{ID: "c1", Name: "Revenue", Type: types.ColumnNumber},
	{ID: "c2", Name: "Cost", Type: types.ColumnNumber},
	{ID: "c3", Name: "Region", Type: types.ColumnString},
	{ID: "c4", Name: "x", Type: types.ColumnNumber},
	{ID: "c5", Name: "y", Type: types.ColumnNumber},
}

func evalString(t *testing.T, source string, ctx *EvalContext) types.Value {
	t.Helper()
	node, err := ParseString(source)
	require.NoError(t, err, "formula should parse: %s", source)
	if ctx == nil {
		ctx = &EvalContext{Row: types.Row{}, Columns: salesColumns}
	}
	result, err := NewEvaluator(nil, false, nil).Evaluate(node, ctx)
	require.NoError(t, err, "formula should evaluate: %s", source)
	return result
}

func TestEvaluatePrecedence(t *testing.T) {
	assert.Equal(t, 14.0, evalString(t, "2+3*4", nil))
	assert.Equal(t, 20.0, evalString(t, "(2+3)*4", nil))
	// Power is left-associative: (2^3)^2, not 2^(3^2).
	assert.Equal(t, 64.0, evalString(t, "2^3^2", nil))
}

func TestEvaluateComparisons(t *testing.T) {
	tests := []struct {
		source   string
		expected float64
	}{
		{"5 = 5.0", 1},
		{"'a' <> 'b'", 1},
		{"'a' = 'A'", 0},
		{"'10' = 10", 1},
		{"3 <= 3", 1},
		{"3 < 3", 0},
		{"'2' > '10'", 0},
		{"2 <> 2", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, evalString(t, tt.source, nil), tt.source)
	}
}

func TestEvaluateLenientNumbers(t *testing.T) {
	ctx := &EvalContext{
		Row:     types.Row{"c1": "$1,200.50", "c3": "abc"},
		Columns: salesColumns,
	}
	assert.Equal(t, 1200.5, evalString(t, "[Revenue] + 0", ctx))
	// Unparseable text coerces to 0, never NaN.
	assert.Equal(t, 1.0, evalString(t, "[Region] + 1", ctx))
	assert.Equal(t, 1.0, evalString(t, `"abc" + 1`, nil))
	assert.Equal(t, 50.0, evalString(t, `"50%" + 0`, nil))
}

func TestEvaluateConcat(t *testing.T) {
	assert.Equal(t, "foobar", evalString(t, `"foo" & "bar"`, nil))
	ctx := &EvalContext{Row: types.Row{"c1": 12.0}, Columns: salesColumns}
	assert.Equal(t, "rev: 12", evalString(t, `"rev: " & [Revenue]`, ctx))
	// Null renders as empty text.
	assert.Equal(t, "x", evalString(t, `"x" & [Cost]`, ctx))
}

func TestEvaluateConditional(t *testing.T) {
	big := &EvalContext{Row: types.Row{"c4": 10}, Columns: salesColumns}
	small := &EvalContext{Row: types.Row{"c4": 1}, Columns: salesColumns}
	source := `IF([x] > 5, "big", "small")`
	assert.Equal(t, "big", evalString(t, source, big))
	assert.Equal(t, "small", evalString(t, source, small))
}

func TestEvaluateConditionalIsNonStrict(t *testing.T) {
	// The untaken branch must not run; its divide by zero would
	// otherwise produce +Inf instead of the string.
	result := evalString(t, `IF(1 > 0, "safe", 1/0 & "")`, nil)
	assert.Equal(t, "safe", result)
}

func TestEvaluateColumnResolution(t *testing.T) {
	row := types.Row{"c1": 7.0}
	ctx := &EvalContext{Row: row, Columns: salesColumns}

	// By ID, by name, and case-insensitively.
	assert.Equal(t, 7.0, evalString(t, "[c1]", ctx))
	assert.Equal(t, 7.0, evalString(t, "[Revenue]", ctx))
	assert.Equal(t, 7.0, evalString(t, "[revenue]", ctx))
	// Bare identifier syntax resolves the same way.
	assert.Equal(t, 7.0, evalString(t, "Revenue", ctx))

	node, err := ParseString("[Nope] + 1")
	require.NoError(t, err)
	_, err = NewEvaluator(nil, false, nil).Evaluate(node, ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nope")
}

func TestEvaluateMissingCellIsNull(t *testing.T) {
	ctx := &EvalContext{Row: types.Row{}, Columns: salesColumns}
	result := evalString(t, "[Revenue]", ctx)
	assert.Nil(t, result)
	// Null coerces to 0 in arithmetic.
	assert.Equal(t, 1.0, evalString(t, "[Revenue] + 1", ctx))
}

func TestEvaluateAggregatesOverAllRows(t *testing.T) {
	allRows := []types.Row{{"c5": 1}, {"c5": 2}, {"c5": 3}}
	ctx := &EvalContext{Row: allRows[0], Columns: salesColumns, AllRows: allRows}

	assert.Equal(t, 6.0, evalString(t, "SUM([y])", ctx))
	assert.Equal(t, 2.0, evalString(t, "AVG([y])", ctx))
	assert.Equal(t, 3.0, evalString(t, "COUNT([y])", ctx))
	assert.Equal(t, 1.0, evalString(t, "MIN([y])", ctx))
	assert.Equal(t, 3.0, evalString(t, "MAX([y])", ctx))
	// The argument is a full expression re-evaluated per row.
	assert.Equal(t, 12.0, evalString(t, "SUM([y] * 2)", ctx))
}

func TestEvaluateAggregateFallsBackToCurrentRow(t *testing.T) {
	ctx := &EvalContext{Row: types.Row{"c5": 5}, Columns: salesColumns}
	assert.Equal(t, 5.0, evalString(t, "SUM([y])", ctx))
}

func TestEvaluateNestedAggregate(t *testing.T) {
	// The inner aggregate still sees the whole table from inside the
	// outer one's per-row pass.
	allRows := []types.Row{{"c5": 1}, {"c5": 2}, {"c5": 3}}
	ctx := &EvalContext{Row: allRows[0], Columns: salesColumns, AllRows: allRows}
	// Per row: y - AVG(y) summed over all rows is 0.
	assert.Equal(t, 0.0, evalString(t, "SUM([y] - AVG([y]))", ctx))
}

func TestEvaluateDistinct(t *testing.T) {
	allRows := []types.Row{{"c3": "a"}, {"c3": "b"}, {"c3": "a"}, {"c3": nil}}
	ctx := &EvalContext{Row: allRows[0], Columns: salesColumns, AllRows: allRows}
	assert.Equal(t, 2.0, evalString(t, "DISTINCT([Region])", ctx))
	assert.Equal(t, 2.0, evalString(t, "COUNT([Region])", ctx))
}

func TestEvaluateLogicalFunctions(t *testing.T) {
	tests := []struct {
		source   string
		expected float64
	}{
		{"AND(1, 1, 1)", 1},
		{"AND(1, 0, 1)", 0},
		{"OR(0, 0)", 0},
		{"OR(0, 2)", 1},
		{"1 = 1 AND(2 > 1)", 1},
		{"0 = 1 OR(2 > 1)", 1},
		{"NOT(1 > 2)", 1},
		{"NOT(TRUE)", 0},
		{"-(3 + 2)", -5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, evalString(t, tt.source, nil), tt.source)
	}
}

func TestEvaluateClockInjection(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	clock := func() time.Time { return fixed }
	ev := NewEvaluator(clock, false, nil)

	node, err := ParseString("TODAY()")
	require.NoError(t, err)
	result, err := ev.Evaluate(node, &EvalContext{Row: types.Row{}, Columns: salesColumns})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14", result)

	node, err = ParseString("NOW()")
	require.NoError(t, err)
	result, err = ev.Evaluate(node, &EvalContext{Row: types.Row{}, Columns: salesColumns})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14 15:09:26", result)
}

func TestEvaluateDivisionByZero(t *testing.T) {
	result := evalString(t, "1 / 0", nil)
	num, ok := result.(float64)
	require.True(t, ok)
	assert.True(t, num > 0 && num*2 == num, "expected +Inf")
	// Modulo by zero is NaN, also not an error.
	result = evalString(t, "1 % 0", nil)
	num, ok = result.(float64)
	require.True(t, ok)
	assert.NotEqual(t, num, num, "expected NaN")
}

func TestEvaluateRepeatedCompilationsAgree(t *testing.T) {
	source := `IF([Revenue] > 1000, "High", SUM([Cost]) * 1.1)`
	allRows := []types.Row{{"c1": 500, "c2": 10}, {"c1": 2000, "c2": 20}}
	ev := NewEvaluator(nil, false, nil)

	first, err := ParseString(source)
	require.NoError(t, err)
	second, err := ParseString(source)
	require.NoError(t, err)

	for _, row := range allRows {
		ctx := &EvalContext{Row: row, Columns: salesColumns, AllRows: allRows}
		a, errA := ev.Evaluate(first, ctx)
		b, errB := ev.Evaluate(second, ctx)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, a, b)
	}
}

// TestArithmeticAgreesWithExprLang checks plain float arithmetic
// against the expr-lang engine on sources both languages accept.
func TestArithmeticAgreesWithExprLang(t *testing.T) {
	sources := []string{
		"2.0 + 3.0 * 4.0",
		"(2.5 + 3.5) * 4.0",
		"10.0 / 4.0",
		"7.5 - 2.25",
		"2.0 ^ 10.0",
		"-3.5 + 1.0",
		"1.5 * (2.0 - 0.5) / 3.0",
	}

	ev := NewEvaluator(nil, false, nil)
	for _, source := range sources {
		node, err := ParseString(source)
		require.NoError(t, err, source)
		got, err := ev.Evaluate(node, &EvalContext{Row: types.Row{}, Columns: nil})
		require.NoError(t, err, source)

		want, err := exprlang.Eval(source, nil)
		require.NoError(t, err, source)
		assert.InDelta(t, want.(float64), got.(float64), 1e-9, source)
	}
}
