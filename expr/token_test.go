package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Value
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []string
	}{
		{"simple arithmetic", "1 + 2", []string{"1", "+", "2", ""}},
		{"decimal number", "3.14 * 2", []string{"3.14", "*", "2", ""}},
		{"column reference", "[Revenue] - [Cost]", []string{"Revenue", "-", "Cost", ""}},
		{"bracket name with spaces", "[Unit Price]", []string{"Unit Price", ""}},
		{"double quoted string", `"hello"`, []string{"hello", ""}},
		{"single quoted string", "'world'", []string{"world", ""}},
		{"escaped quote", `"say \"hi\""`, []string{`say "hi"`, ""}},
		{"two char operators", "1 <> 2 <= 3 >= 4", []string{"1", "<>", "2", "<=", "3", ">=", "4", ""}},
		{"concat operator", `[A] & "x"`, []string{"A", "&", "x", ""}},
		{"function call", "SUM([Cost])", []string{"SUM", "(", "Cost", ")", ""}},
		{"lowercase function folds upper", "sum([Cost])", []string{"SUM", "(", "Cost", ")", ""}},
		{"bare word is a column", "Revenue + 1", []string{"Revenue", "+", "1", ""}},
		{"whitespace only", " \t\n", []string{""}},
		{"empty source", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.source)
			assert.Equal(t, tt.expected, values(tokens))
			assert.Equal(t, TokenEOF, tokens[len(tokens)-1].Kind)
		})
	}
}

func TestTokenizeKinds(t *testing.T) {
	tokens := Tokenize(`IF([Revenue] > 1000, "High", SUM([Cost]) * 1.1)`)
	expected := []TokenKind{
		TokenFunction, TokenLParen, TokenColumnRef, TokenOperator, TokenNumber,
		TokenComma, TokenString, TokenComma, TokenFunction, TokenLParen,
		TokenColumnRef, TokenRParen, TokenOperator, TokenNumber, TokenRParen,
		TokenEOF,
	}
	assert.Equal(t, expected, kinds(tokens))
}

func TestTokenizeBooleanLiterals(t *testing.T) {
	// TRUE and FALSE become number tokens, not function tokens,
	// so they work bare without parentheses.
	tokens := Tokenize("TRUE = false")
	require.Len(t, tokens, 4)
	assert.Equal(t, TokenNumber, tokens[0].Kind)
	assert.Equal(t, "1", tokens[0].Value)
	assert.Equal(t, TokenNumber, tokens[2].Kind)
	assert.Equal(t, "0", tokens[2].Value)
}

func TestTokenizeSkipsUnknownCharacters(t *testing.T) {
	// The scanner is total: bytes it does not understand vanish
	// instead of failing the whole formula.
	tokens := Tokenize("1 @ # + 2")
	assert.Equal(t, []string{"1", "+", "2", ""}, values(tokens))
}

func TestTokenizeUnterminatedString(t *testing.T) {
	tokens := Tokenize(`"never closed`)
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenString, tokens[0].Kind)
	assert.Equal(t, "never closed", tokens[0].Value)
}

func TestTokenizeNumberForms(t *testing.T) {
	// No exponent or sign forms; the minus outside is an operator.
	tokens := Tokenize("-1.5")
	assert.Equal(t, []TokenKind{TokenOperator, TokenNumber, TokenEOF}, kinds(tokens))
}
