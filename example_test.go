package calc_test

import (
	"fmt"
	"math"

	"github.com/zephyrtronium/calc"
)

func ExampleCalculator() {
	c := calc.New(calc.WithMode(calc.Infix))

	x, _ := c.Assign("x = 5 + 3")
	y, _ := c.Evaluate("x * (2 - 0.5)")
	p, _ := c.ToPostfix("x * (2 - 0.5)")
	fmt.Println(x, y, p)

	c.SetMode(calc.Postfix)
	z, _ := c.Evaluate("x 2 ^")
	fmt.Println(z)

	_, err := c.Evaluate("x 0 /")
	fmt.Println(err)

	// Output:
	// 8 12 x 2 0.5 - *
	// 64
	// 5: division by zero in '/'
}

func ExampleRegistry_Register() {
	ops := calc.NewRegistry()
	ops.Register('@', 3, calc.Binary(math.Hypot))

	p, _ := calc.InfixToPostfix("1 + 3 @ 4", ops)
	r, _ := calc.NewEvaluator(ops, calc.NewVars()).EvalPostfix(p)
	fmt.Println(p)
	fmt.Println(r)

	// Output:
	// 1 3 4 @ +
	// 6
}
