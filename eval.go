package calc

// Evaluator evaluates postfix tokens with a stack machine. It is not safe to
// use an Evaluator concurrently.
type Evaluator struct {
	ops   *Registry
	vars  *Vars
	stack []float64
}

// NewEvaluator creates an evaluator using the given operators and variables.
// Evaluation defines variables in vars. A nil ops means the default operators,
// and a nil vars means a new empty set.
func NewEvaluator(ops *Registry, vars *Vars) *Evaluator {
	if vars == nil {
		vars = NewVars()
	}
	return &Evaluator{ops: orDefault(ops), vars: vars}
}

// push pushes a value onto the stack.
func (e *Evaluator) push(x float64) {
	e.stack = append(e.stack, x)
}

// pop removes the top from the stack and returns it.
func (e *Evaluator) pop() float64 {
	x := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return x
}

// Eval evaluates tokens in postfix order. Numbers push their values.
// Variables push their values, first defining undefined variables as 0. An
// operator pops b, then a, and pushes a op b. The single value remaining at
// the end is the result.
//
// The error is an *OperandError if an operator has fewer than two values, an
// *ExpressionError if other than one value remains, a *TokenError for
// parentheses or other tokens invalid in postfix order, or any error from
// Registry.Apply.
func (e *Evaluator) Eval(toks []Token) (float64, error) {
	e.stack = e.stack[:0]
	for _, tok := range toks {
		switch tok.Kind {
		case TokenNum:
			e.push(tok.Num)
		case TokenVar:
			if !e.vars.Has(tok.Text) {
				e.vars.Set(tok.Text, 0)
			}
			e.push(e.vars.Get(tok.Text))
		case TokenOp:
			if !e.ops.IsOperator(tok.Op) {
				return 0, &TokenError{Col: tok.Col, Token: tok.Text}
			}
			if len(e.stack) < 2 {
				return 0, &OperandError{Col: tok.Col, Operator: tok.Op, Have: len(e.stack)}
			}
			b := e.pop()
			a := e.pop()
			r, err := e.ops.apply(tok.Op, a, b, tok.Col)
			if err != nil {
				return 0, err
			}
			e.push(r)
		default:
			return 0, &TokenError{Col: tok.Col, Token: tok.Text}
		}
	}
	if len(e.stack) != 1 {
		return 0, &ExpressionError{Len: len(e.stack)}
	}
	return e.pop(), nil
}

// EvalPostfix splits postfix text into fields and evaluates them.
func (e *Evaluator) EvalPostfix(src string) (float64, error) {
	toks, err := Fields(src, e.ops)
	if err != nil {
		return 0, err
	}
	return e.Eval(toks)
}
