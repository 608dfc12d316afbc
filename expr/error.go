package expr

import "fmt"

// SyntaxError reports the token the parser could not accept. It is
// raised only by Parse and caught exactly once, at the Compile
// boundary; no partial AST ever escapes alongside it.
type SyntaxError struct {
	Message string
	Kind    TokenKind
	Value   string
	Pos     int
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("syntax error: %s (found %s %q at position %d)", e.Message, e.Kind, e.Value, e.Pos)
	}
	return fmt.Sprintf("syntax error: %s (at %s, position %d)", e.Message, e.Kind, e.Pos)
}

func syntaxErrorf(tok Token, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Kind:    tok.Kind,
		Value:   tok.Value,
		Pos:     tok.Pos,
	}
}
