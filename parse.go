package calc

// ToPostfix reorders infix tokens into postfix order with the shunting-yard
// algorithm. Numbers and variables go straight to the output. An operator
// first moves every stacked operator of greater or equal precedence to the
// output, so all operators, including ^, associate to the left. Parentheses
// do not appear in the result.
//
// The error is a *BracketError if parentheses do not balance and a
// *TokenError if a token is not valid in infix text. A nil ops means the
// default operators.
func ToPostfix(toks []Token, ops *Registry) ([]Token, error) {
	ops = orDefault(ops)
	out := make([]Token, 0, len(toks))
	// stack holds TokenOpen and TokenOp tokens.
	var stack []Token
	for _, tok := range toks {
		switch tok.Kind {
		case TokenNum, TokenVar:
			out = append(out, tok)
		case TokenOpen:
			stack = append(stack, tok)
		case TokenClose:
			for {
				if len(stack) == 0 {
					return nil, &BracketError{Col: tok.Col, Open: false}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenOpen {
					break
				}
				out = append(out, top)
			}
		case TokenOp:
			if !ops.IsOperator(tok.Op) {
				return nil, &TokenError{Col: tok.Col, Token: tok.Text}
			}
			prec := ops.Precedence(tok.Op)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == TokenOpen || ops.Precedence(top.Op) < prec {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		default:
			return nil, &TokenError{Col: tok.Col, Token: tok.Text}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokenOpen {
			return nil, &BracketError{Col: top.Col, Open: true}
		}
		out = append(out, top)
	}
	return out, nil
}

// InfixToPostfix tokenizes infix text and returns the same expression in
// postfix notation, e.g. "2 3 4 * +" for "2 + 3 * 4".
func InfixToPostfix(src string, ops *Registry) (string, error) {
	ops = orDefault(ops)
	toks, err := Tokenize(src, ops)
	if err != nil {
		return "", err
	}
	p, err := ToPostfix(toks, ops)
	if err != nil {
		return "", err
	}
	return Join(p), nil
}
