package calc_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("x")
	f.Add("2 3 +")
	f.Add("1 0 /")
	f.Add("(2 + 3) * -4 ^ x")
	f.Fuzz(func(t *testing.T, s string) {
		for _, m := range []calc.Mode{calc.Postfix, calc.Infix} {
			r, err := calc.New(calc.WithMode(m)).Evaluate(s)
			if err != nil {
				continue
			}
			if math.IsInf(r, 0) || math.IsNaN(r) {
				t.Errorf("%q in %v: non-finite result %g", s, m, r)
			}
		}
	})
}
