package expr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, source string) Node {
	t.Helper()
	node, err := ParseString(source)
	require.NoError(t, err, "formula should parse: %s", source)
	return node
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		rendered string
	}{
		{"multiplication binds tighter", "1 + 2 * 3", "(1 + (2 * 3))"},
		{"parens override", "(1 + 2) * 3", "((1 + 2) * 3)"},
		{"comparison above addition", "1 + 2 > 2", "((1 + 2) > 2)"},
		{"concat at additive level", `[A] & "x" & "y"`, `(([A] & "x") & "y")`},
		{"power binds left", "2 ^ 3 ^ 2", "((2 ^ 3) ^ 2)"},
		{"modulo with division", "10 % 3 / 2", "((10 % 3) / 2)"},
		{"unary minus", "-[A] * 2", "(-[A] * 2)"},
		{"double negation", "--5", "--5"},
		{"not wraps parens", "NOT(1 > 2)", "NOT((1 > 2))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := mustParse(t, tt.source)
			assert.Equal(t, tt.rendered, node.String())
		})
	}
}

func TestParseInfixLogical(t *testing.T) {
	// Infix AND and OR carry their own parenthesized argument lists;
	// the left side folds in as the first argument, so chains re-wrap
	// left-associatively.
	node := mustParse(t, "[A] > 1 AND([B] < 2) AND([C] = 3)")

	call, ok := node.(*FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "AND", call.Name)
	require.Len(t, call.Args, 2)

	inner, ok := call.Args[0].(*FunctionCall)
	require.True(t, ok, "left operand should be the earlier AND call")
	assert.Equal(t, "AND", inner.Name)
	assert.Len(t, inner.Args, 2)
}

func TestParseOrBindsLooserThanAnd(t *testing.T) {
	node := mustParse(t, "[A] = 1 OR([B] = 2 AND([C] = 3))")

	call, ok := node.(*FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "OR", call.Name)
	require.Len(t, call.Args, 2)

	right, ok := call.Args[1].(*FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "AND", right.Name)
}

func TestParsePrefixLogicalCalls(t *testing.T) {
	// The same names also work as ordinary variadic calls.
	node := mustParse(t, "AND([A] > 1, [B] < 2, [C] = 3)")
	call, ok := node.(*FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "AND", call.Name)
	assert.Len(t, call.Args, 3)
}

func TestParseConditional(t *testing.T) {
	node := mustParse(t, `IF([Revenue] > 1000, "High", "Low")`)
	cond, ok := node.(*Conditional)
	require.True(t, ok, "IF should produce a Conditional, not a FunctionCall")
	assert.IsType(t, &BinaryOp{}, cond.Condition)
	assert.IsType(t, &StringLiteral{}, cond.WhenTrue)
	assert.IsType(t, &StringLiteral{}, cond.WhenFalse)
}

func TestParseConditionalArity(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"two arguments", `IF([A] > 1, "x")`},
		{"four arguments", `IF([A] > 1, "x", "y", "z")`},
		{"no arguments", "IF()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.source)
			require.Error(t, err, "IF arity is fixed at three")
			var syntaxErr *SyntaxError
			assert.ErrorAs(t, err, &syntaxErr)
		})
	}
}

func TestParseFunctionCalls(t *testing.T) {
	node := mustParse(t, "ROUND(SUM([Cost]) / COUNT([Cost]), 2)")
	call, ok := node.(*FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "ROUND", call.Name)
	assert.Len(t, call.Args, 2)
}

func TestParseEmptyArgumentList(t *testing.T) {
	node := mustParse(t, "NOW()")
	call, ok := node.(*FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "NOW", call.Name)
	assert.Empty(t, call.Args)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"empty formula", ""},
		{"dangling operator", "1 +"},
		{"unbalanced paren", "(1 + 2"},
		{"trailing garbage", "1 + 2 3"},
		{"lone comma", ","},
		{"missing argument", "SUM(,)"},
		{"bare NOT without parens", "NOT 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.source)
			assert.Error(t, err)
		})
	}
}

func TestParseDepthGuard(t *testing.T) {
	source := strings.Repeat("(", 300) + "1" + strings.Repeat(")", 300)
	_, err := ParseString(source)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nested too deeply")
}

func TestParseBooleanLiterals(t *testing.T) {
	node := mustParse(t, "TRUE")
	num, ok := node.(*NumberLiteral)
	require.True(t, ok)
	assert.Equal(t, 1.0, num.Value)
}
