package calc

import (
	"errors"
	"math"
	"math/big"
	"sort"

	"github.com/zephyrtronium/bigfloat"
)

// BinaryOperator is the operation behind an operator symbol.
type BinaryOperator interface {
	// Apply computes a op b. If the operation is undefined because b is zero,
	// Apply returns ErrDivisionByZero. Any other error is returned unchanged
	// to the caller of Registry.Apply.
	Apply(a, b float64) (float64, error)
}

type binary struct {
	f func(a, b float64) float64
}

func (o binary) Apply(a, b float64) (float64, error) {
	return o.f(a, b), nil
}

// Binary wraps a function of two variables which cannot fail into a
// BinaryOperator.
func Binary(f func(a, b float64) float64) BinaryOperator {
	return binary{f}
}

type dividing struct {
	f func(a, b float64) float64
}

func (o dividing) Apply(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return o.f(a, b), nil
}

// Dividing wraps a function of two variables into a BinaryOperator which
// fails with ErrDivisionByZero whenever the right operand is zero. f is never
// called with b == 0.
func Dividing(f func(a, b float64) float64) BinaryOperator {
	return dividing{f}
}

// entry is a registered operator.
type entry struct {
	prec int
	op   BinaryOperator
}

// Registry maps operator symbols to their precedence and operation. Higher
// precedence binds tighter. The zero value is an empty registry. A Registry
// is not safe for concurrent use while operators are being registered.
type Registry struct {
	ops map[rune]entry
}

var defaultops = []struct {
	sym  rune
	prec int
	op   BinaryOperator
}{
	{'+', 1, Binary(func(a, b float64) float64 { return a + b })},
	{'-', 1, Binary(func(a, b float64) float64 { return a - b })},
	{'*', 2, Binary(func(a, b float64) float64 { return a * b })},
	{'/', 2, Dividing(func(a, b float64) float64 { return a / b })},
	{'%', 2, Dividing(math.Mod)},
	{'^', 3, Binary(pow)},
}

// NewRegistry creates a registry holding the default operators: + and - at
// precedence 1, *, / and % at precedence 2, and ^ at precedence 3.
func NewRegistry() *Registry {
	r := &Registry{ops: make(map[rune]entry, len(defaultops))}
	for _, d := range defaultops {
		r.Register(d.sym, d.prec, d.op)
	}
	return r
}

// Register adds an operator, replacing any existing operator with the same
// symbol. Symbols should be punctuation; letters, digits, and '.' would
// change how numbers and names are split.
func (r *Registry) Register(symbol rune, prec int, op BinaryOperator) {
	if r.ops == nil {
		r.ops = make(map[rune]entry)
	}
	r.ops[symbol] = entry{prec: prec, op: op}
}

// orDefault returns ops, or a registry of the default operators if ops is nil.
func orDefault(ops *Registry) *Registry {
	if ops == nil {
		return NewRegistry()
	}
	return ops
}

// IsOperator returns whether symbol is registered.
func (r *Registry) IsOperator(symbol rune) bool {
	_, ok := r.ops[symbol]
	return ok
}

// Precedence returns the precedence of symbol, or 0 if it is not registered.
func (r *Registry) Precedence(symbol rune) int {
	return r.ops[symbol].prec
}

// Symbols returns the registered operator symbols in ascending order.
func (r *Registry) Symbols() []rune {
	v := make([]rune, 0, len(r.ops))
	for k := range r.ops {
		v = append(v, k)
	}
	sort.Slice(v, func(i, j int) bool { return v[i] < v[j] })
	return v
}

// Apply computes a op b for the operator registered to symbol. The error is
// an *OperatorError if symbol is not registered, a *DivisionByZeroError if
// the operator rejects a zero divisor, and a *DomainError if the result is
// not finite.
func (r *Registry) Apply(symbol rune, a, b float64) (float64, error) {
	return r.apply(symbol, a, b, 0)
}

// apply is Apply with a source position for errors.
func (r *Registry) apply(symbol rune, a, b float64, col int) (float64, error) {
	e, ok := r.ops[symbol]
	if !ok || e.op == nil {
		return 0, &OperatorError{Col: col, Operator: symbol}
	}
	x, err := e.op.Apply(a, b)
	if err != nil {
		if errors.Is(err, ErrDivisionByZero) {
			return 0, &DivisionByZeroError{Col: col, Operator: symbol}
		}
		return 0, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, &DomainError{Col: col, Operator: symbol, X: a, Y: b}
	}
	return x, nil
}

// pow computes a^b. Integral exponents and non-positive bases use math.Pow
// directly. Other results are recomputed with 64 bits of mantissa, which
// usually fixes the last-place errors math.Pow can make. The recomputed value
// is used only when it is within a few units in the last place of math.Pow's.
func pow(a, b float64) float64 {
	r := math.Pow(a, b)
	if a <= 0 || b == math.Trunc(b) || r == 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return r
	}
	// bigfloat loses the result near the ends of the float64 range.
	if math.Abs(math.Log(r)) > 700 {
		return r
	}
	x := new(big.Float).SetPrec(64).SetFloat64(a)
	y := new(big.Float).SetPrec(64).SetFloat64(b)
	z := new(big.Float).SetPrec(64)
	bigfloat.Pow(z, x, y)
	f, _ := z.Float64()
	if math.Abs(f-r) > 4*(r-math.Nextafter(r, 0)) {
		return r
	}
	return f
}
