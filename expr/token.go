package expr

import (
	"strings"

	"github.com/tabulab/formula/functions"
)

// TokenKind classifies a lexical unit.
type TokenKind int

const (
	// TokenNumber is a numeric literal.
	TokenNumber TokenKind = iota
	// TokenString is a quoted string literal.
	TokenString
	// TokenColumnRef is a column reference, bracketed or bare.
	TokenColumnRef
	// TokenFunction is a registered function name.
	TokenFunction
	// TokenOperator is an arithmetic, comparison or concat operator.
	TokenOperator
	// TokenLParen is "(".
	TokenLParen
	// TokenRParen is ")".
	TokenRParen
	// TokenComma is ",".
	TokenComma
	// TokenEOF terminates every token sequence.
	TokenEOF
)

// String returns the kind's display name, used in syntax errors.
func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenColumnRef:
		return "column reference"
	case TokenFunction:
		return "function"
	case TokenOperator:
		return "operator"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenComma:
		return "','"
	case TokenEOF:
		return "end of formula"
	default:
		return "unknown"
	}
}

// Token is one classified lexical unit. Pos is the byte offset of the
// token's first character in the source, used only for diagnostics.
type Token struct {
	Kind  TokenKind
	Value string
	Pos   int
}

// Tokenize converts formula source into an ordered token sequence. It
// is total: unrecognized characters are skipped, never reported, so a
// half-typed formula still tokenizes. Authoring surfaces depend on
// that leniency.
func Tokenize(source string) []Token {
	var tokens []Token
	i := 0

	for i < len(source) {
		ch := source[i]
		start := i

		// Whitespace
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			i++
			continue
		}

		// Number: digits with an optional fraction. No exponent, no
		// leading sign; minus is a unary operator downstream.
		if isDigit(ch) {
			for i < len(source) && isDigit(source[i]) {
				i++
			}
			if i+1 < len(source) && source[i] == '.' && isDigit(source[i+1]) {
				i++
				for i < len(source) && isDigit(source[i]) {
					i++
				}
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Value: source[start:i], Pos: start})
			continue
		}

		// String literal: ' or " delimited, backslash escapes the
		// next character. An unterminated literal takes the rest of
		// the source.
		if ch == '\'' || ch == '"' {
			quote := ch
			i++
			var sb strings.Builder
			for i < len(source) && source[i] != quote {
				if source[i] == '\\' && i+1 < len(source) {
					i++
				}
				sb.WriteByte(source[i])
				i++
			}
			if i < len(source) {
				i++ // closing quote
			}
			tokens = append(tokens, Token{Kind: TokenString, Value: sb.String(), Pos: start})
			continue
		}

		// Bracketed column reference: raw text, no escapes.
		if ch == '[' {
			i++
			nameStart := i
			for i < len(source) && source[i] != ']' {
				i++
			}
			name := source[nameStart:i]
			if i < len(source) {
				i++ // closing bracket
			}
			tokens = append(tokens, Token{Kind: TokenColumnRef, Value: name, Pos: start})
			continue
		}

		// Punctuation
		switch ch {
		case '(':
			tokens = append(tokens, Token{Kind: TokenLParen, Value: "(", Pos: start})
			i++
			continue
		case ')':
			tokens = append(tokens, Token{Kind: TokenRParen, Value: ")", Pos: start})
			i++
			continue
		case ',':
			tokens = append(tokens, Token{Kind: TokenComma, Value: ",", Pos: start})
			i++
			continue
		}

		// Two-character operators before their single-character prefixes.
		if i+1 < len(source) {
			twoChar := source[i : i+2]
			if twoChar == "<>" || twoChar == "<=" || twoChar == ">=" {
				tokens = append(tokens, Token{Kind: TokenOperator, Value: twoChar, Pos: start})
				i += 2
				continue
			}
		}

		if isSingleCharOperator(ch) {
			tokens = append(tokens, Token{Kind: TokenOperator, Value: string(ch), Pos: start})
			i++
			continue
		}

		// Identifier: function name, boolean literal, or bare column
		// reference, decided against the registry.
		if isLetter(ch) || ch == '_' {
			for i < len(source) && (isLetter(source[i]) || isDigit(source[i]) || source[i] == '_') {
				i++
			}
			word := source[start:i]
			upper := strings.ToUpper(word)
			switch {
			// Boolean literals fold to numbers here and never
			// survive as their own token kind, so they win over
			// their registry entries.
			case upper == "TRUE":
				tokens = append(tokens, Token{Kind: TokenNumber, Value: "1", Pos: start})
			case upper == "FALSE":
				tokens = append(tokens, Token{Kind: TokenNumber, Value: "0", Pos: start})
			case functions.IsRegistered(upper):
				tokens = append(tokens, Token{Kind: TokenFunction, Value: upper, Pos: start})
			default:
				tokens = append(tokens, Token{Kind: TokenColumnRef, Value: word, Pos: start})
			}
			continue
		}

		// Anything else is silently dropped.
		i++
	}

	tokens = append(tokens, Token{Kind: TokenEOF, Pos: len(source)})
	return tokens
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isSingleCharOperator(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '%', '^', '&', '=', '<', '>':
		return true
	default:
		return false
	}
}
