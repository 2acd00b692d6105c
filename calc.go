package calc

import (
	"strconv"
	"strings"
)

// Mode is the notation a Calculator reads.
type Mode int8

const (
	// Postfix reads reverse Polish notation, e.g. "2 3 +".
	Postfix Mode = iota
	// Infix reads standard notation, e.g. "2 + 3".
	Infix
)

func (m Mode) String() string {
	switch m {
	case Postfix:
		return "POSTFIX"
	case Infix:
		return "INFIX"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode parses a mode name: "post" or "postfix" for Postfix and "infix"
// for Infix, in any case.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "post", "postfix":
		return Postfix, true
	case "infix":
		return Infix, true
	default:
		return 0, false
	}
}

// Calculator is a calculator session. It owns its operators and variables and
// remembers the current notation. The zero value is not usable; use New. It is
// not safe to use a Calculator concurrently.
type Calculator struct {
	ops  *Registry
	vars *Vars
	eval *Evaluator
	mode Mode
}

// New creates a calculator with the default operators, no variables, and
// Postfix mode, then applies options in order.
func New(opts ...Option) *Calculator {
	c := Calculator{
		ops:  NewRegistry(),
		vars: NewVars(),
		mode: Postfix,
	}
	c.eval = NewEvaluator(c.ops, c.vars)
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(&c)
	}
	return &c
}

// Mode returns the current notation.
func (c *Calculator) Mode() Mode {
	return c.mode
}

// SetMode changes the notation used by later calls to Evaluate and Assign.
func (c *Calculator) SetMode(m Mode) {
	c.mode = m
}

// Evaluate evaluates an expression in the current notation.
func (c *Calculator) Evaluate(src string) (float64, error) {
	if c.mode == Infix {
		toks, err := Tokenize(src, c.ops)
		if err != nil {
			return 0, err
		}
		toks, err = ToPostfix(toks, c.ops)
		if err != nil {
			return 0, err
		}
		return c.eval.Eval(toks)
	}
	return c.eval.EvalPostfix(src)
}

// Assign evaluates a statement like "x = 5 + 3", stores the result in the
// variable, and returns it. The text after the first "=" is an expression in
// the current notation. The variable is unchanged if anything fails.
//
// The error is a *NameError if the left side is not a valid name and an
// *AssignError if there is no "=" or nothing after it.
func (c *Calculator) Assign(src string) (float64, error) {
	k := strings.IndexByte(src, '=')
	if k < 0 {
		return 0, &AssignError{Text: src}
	}
	name := strings.TrimSpace(src[:k])
	expr := strings.TrimSpace(src[k+1:])
	if !ValidName(name) {
		return 0, &NameError{Name: name}
	}
	if expr == "" {
		return 0, &AssignError{Name: name, Text: src}
	}
	r, err := c.Evaluate(expr)
	if err != nil {
		return 0, err
	}
	c.vars.Set(name, r)
	return r, nil
}

// ToPostfix converts infix text to postfix text regardless of the mode.
func (c *Calculator) ToPostfix(src string) (string, error) {
	return InfixToPostfix(src, c.ops)
}

// EvalPostfix evaluates postfix text regardless of the mode.
func (c *Calculator) EvalPostfix(src string) (float64, error) {
	return c.eval.EvalPostfix(src)
}

// Register adds or replaces an operator. Later expressions may use it.
func (c *Calculator) Register(symbol rune, prec int, op BinaryOperator) {
	c.ops.Register(symbol, prec, op)
}

// Operators returns the calculator's operator registry.
func (c *Calculator) Operators() *Registry {
	return c.ops
}

// Var returns the value of a variable, or 0 if it is undefined.
func (c *Calculator) Var(name string) float64 {
	return c.vars.Get(name)
}

// HasVar returns whether a variable is defined.
func (c *Calculator) HasVar(name string) bool {
	return c.vars.Has(name)
}

// Vars returns a copy of all variables.
func (c *Calculator) Vars() map[string]float64 {
	return c.vars.All()
}

// ClearVars removes all variables.
func (c *Calculator) ClearVars() {
	c.vars.Clear()
}
