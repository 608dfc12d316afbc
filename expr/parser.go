package expr

import "strconv"

// maxParseDepth bounds recursion so pathological input surfaces as a
// SyntaxError instead of exhausting the stack.
const maxParseDepth = 200

// Parse consumes a token sequence and produces an AST, or a
// *SyntaxError naming the offending token and position. The grammar
// is precedence-climbing recursive descent:
//
//	Expr        := Or
//	Or          := And ( "OR" "(" Expr ("," Expr)* ")" )*
//	And         := Comparison ( "AND" "(" Expr ("," Expr)* ")" )*
//	Comparison  := AddSub ( ("=" | "<>" | "<" | ">" | "<=" | ">=") AddSub )*
//	AddSub      := MulDiv ( ("+" | "-" | "&") MulDiv )*
//	MulDiv      := Power ( ("*" | "/" | "%") Power )*
//	Power       := Unary ( "^" Unary )*
//	Unary       := "-" Unary | "NOT" "(" Expr ")" | Primary
//	Primary     := Number | String | ColumnRef
//	             | "IF" "(" Expr "," Expr "," Expr ")"
//	             | FunctionName "(" [Expr ("," Expr)*] ")"
//	             | "(" Expr ")"
//
// AND and OR are infix sugar: the already-parsed left side folds in
// as argument 0 of an ordinary function call, so "a AND(b)" and the
// n-ary "AND(a, b)" share one AST shape, and chains like
// "a AND(b) AND(c)" re-wrap left-associatively. "^" is likewise
// left-associative, deliberately so.
func Parse(tokens []Token) (Node, error) {
	p := &parser{tokens: tokens}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Kind != TokenEOF {
		return nil, syntaxErrorf(tok, "unexpected token after expression")
	}
	return node, nil
}

// ParseString tokenizes and parses formula source in one step.
func ParseString(source string) (Node, error) {
	return Parse(Tokenize(source))
}

type parser struct {
	tokens []Token
	pos    int
	depth  int
}

func (p *parser) current() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return Token{Kind: TokenEOF, Pos: -1}
}

func (p *parser) advance() Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok := p.current()
	if tok.Kind != kind {
		return tok, syntaxErrorf(tok, "expected %s", kind)
	}
	return p.advance(), nil
}

func (p *parser) parseExpr() (Node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxParseDepth {
		return nil, syntaxErrorf(p.current(), "formula is nested too deeply")
	}
	return p.parseOr()
}

func (p *parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.isInfixFunction("OR") {
		left, err = p.parseInfixFunction("OR", left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *parser) parseAnd() (Node, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.isInfixFunction("AND") {
		left, err = p.parseInfixFunction("AND", left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// isInfixFunction reports whether the current token starts an infix
// AND/OR continuation, which always carries a parenthesized argument
// list of its own.
func (p *parser) isInfixFunction(name string) bool {
	tok := p.current()
	if tok.Kind != TokenFunction || tok.Value != name {
		return false
	}
	return p.pos+1 < len(p.tokens) && p.tokens[p.pos+1].Kind == TokenLParen
}

// parseInfixFunction folds the existing left parse tree in as the
// first argument of an AND/OR call.
func (p *parser) parseInfixFunction(name string, left Node) (Node, error) {
	p.advance() // function name
	p.advance() // "("
	args := []Node{left}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		tok := p.current()
		if tok.Kind == TokenComma {
			p.advance()
			continue
		}
		if tok.Kind == TokenRParen {
			p.advance()
			return &FunctionCall{Name: name, Args: args}, nil
		}
		return nil, syntaxErrorf(tok, "expected ',' or ')' in %s arguments", name)
	}
}

func (p *parser) parseComparison() (Node, error) {
	left, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.current()
		if tok.Kind != TokenOperator {
			return left, nil
		}
		switch tok.Value {
		case "=", "<>", "<", ">", "<=", ">=":
			p.advance()
			right, err := p.parseAddSub()
			if err != nil {
				return nil, err
			}
			left = &BinaryOp{Operator: tok.Value, Left: left, Right: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseAddSub() (Node, error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.current()
		if tok.Kind != TokenOperator || (tok.Value != "+" && tok.Value != "-" && tok.Value != "&") {
			return left, nil
		}
		p.advance()
		right, err := p.parseMulDiv()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Operator: tok.Value, Left: left, Right: right}
	}
}

func (p *parser) parseMulDiv() (Node, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.current()
		if tok.Kind != TokenOperator || (tok.Value != "*" && tok.Value != "/" && tok.Value != "%") {
			return left, nil
		}
		p.advance()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Operator: tok.Value, Left: left, Right: right}
	}
}

// parsePower is left-associative: 2^3^2 is (2^3)^2. Unusual next to
// other spreadsheet languages, but existing formulas rely on it.
func (p *parser) parsePower() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.current()
		if tok.Kind != TokenOperator || tok.Value != "^" {
			return left, nil
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Operator: "^", Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (Node, error) {
	tok := p.current()
	if tok.Kind == TokenOperator && tok.Value == "-" {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Operator: "-", Operand: operand}, nil
	}
	if tok.Kind == TokenFunction && tok.Value == "NOT" {
		p.advance()
		if _, err := p.expect(TokenLParen); err != nil {
			return nil, err
		}
		operand, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return &UnaryOp{Operator: "NOT", Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	tok := p.current()

	switch tok.Kind {
	case TokenNumber:
		p.advance()
		value, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, syntaxErrorf(tok, "invalid number literal")
		}
		return &NumberLiteral{Value: value}, nil

	case TokenString:
		p.advance()
		return &StringLiteral{Value: tok.Value}, nil

	case TokenColumnRef:
		p.advance()
		return &ColumnRef{Name: tok.Value}, nil

	case TokenFunction:
		if tok.Value == "IF" {
			return p.parseConditional()
		}
		return p.parseFunctionCall()

	case TokenLParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return inner, nil
	}

	return nil, syntaxErrorf(tok, "unexpected token")
}

// parseConditional handles IF through a dedicated branch: exactly
// three arguments, so an arity mistake is a parse error rather than an
// evaluation error.
func (p *parser) parseConditional() (Node, error) {
	p.advance() // IF
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}
	condition, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenComma); err != nil {
		return nil, err
	}
	whenTrue, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenComma); err != nil {
		return nil, err
	}
	whenFalse, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	return &Conditional{Condition: condition, WhenTrue: whenTrue, WhenFalse: whenFalse}, nil
}

func (p *parser) parseFunctionCall() (Node, error) {
	name := p.advance().Value
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}

	var args []Node
	if p.current().Kind == TokenRParen {
		p.advance()
		return &FunctionCall{Name: name, Args: args}, nil
	}

	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok := p.current()
		if tok.Kind == TokenComma {
			p.advance()
			continue
		}
		if tok.Kind == TokenRParen {
			p.advance()
			return &FunctionCall{Name: name, Args: args}, nil
		}
		return nil, syntaxErrorf(tok, "expected ',' or ')' in %s arguments", name)
	}
}
