package calc

// Option is an option used when creating a calculator.
type Option interface {
	apply(*Calculator)
}

type (
	modeopt Mode
	varopt  struct {
		name string
		val  float64
	}
	varsopt map[string]float64
	opopt   struct {
		sym  rune
		prec int
		op   BinaryOperator
	}
)

func (o modeopt) apply(c *Calculator) {
	c.mode = Mode(o)
}

func (o varopt) apply(c *Calculator) {
	c.vars.Set(o.name, o.val)
}

func (o varsopt) apply(c *Calculator) {
	for k, v := range o {
		c.vars.Set(k, v)
	}
}

func (o opopt) apply(c *Calculator) {
	c.ops.Register(o.sym, o.prec, o.op)
}

// WithMode sets the initial notation.
func WithMode(m Mode) Option {
	return modeopt(m)
}

// SetVar sets the value of a variable in the calculator.
func SetVar(name string, val float64) Option {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the calculator.
func SetVars(vars map[string]float64) Option {
	return varsopt(vars)
}

// WithOperator registers an operator in addition to the defaults, or replaces
// a default operator with the same symbol.
func WithOperator(symbol rune, prec int, op BinaryOperator) Option {
	return opopt{symbol, prec, op}
}
