package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/zephyrtronium/calc"
)

const banner = `calc: infix and postfix arithmetic

Operators, loosest first: + -, * / %, ^ (power). All associate to the left.
Variables start with a letter and contain letters and digits.
Type HELP for commands. An empty line exits.
`

const help = `Commands:
  POST, POSTFIX  read postfix notation: 2 3 4 * +
  INFIX          read infix notation: 2 + 3 * 4
  VARS           list variables
  CLEAR          remove all variables
  HELP           show this message
  <empty line>   exit

A line containing = assigns a variable, e.g. x = 5 + 3 in infix mode or
x = 5 3 + in postfix mode. Undefined variables read as 0.
`

// repl routes input lines to a calculator and prints the results.
type repl struct {
	calc *calc.Calculator
	out  io.Writer
	// interactive enables the prompt.
	interactive bool
}

func (r *repl) banner() {
	fmt.Fprint(r.out, banner)
	fmt.Fprintln(r.out, "Current mode:", r.calc.Mode())
	fmt.Fprintln(r.out)
}

// run processes lines from in until an empty line or EOF.
func (r *repl) run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		if r.interactive {
			fmt.Fprint(r.out, "> ")
		}
		if !sc.Scan() {
			if r.interactive {
				fmt.Fprintln(r.out)
			}
			return sc.Err()
		}
		if !r.line(sc.Text()) {
			return nil
		}
	}
}

// line processes one line of input. It returns false if the session should
// end.
func (r *repl) line(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		fmt.Fprintln(r.out, "Goodbye!")
		return false
	}
	switch strings.ToUpper(s) {
	case "POST", "POSTFIX":
		r.calc.SetMode(calc.Postfix)
		fmt.Fprintln(r.out, "Mode changed to POSTFIX (reverse Polish notation)")
		return true
	case "INFIX":
		r.calc.SetMode(calc.Infix)
		fmt.Fprintln(r.out, "Mode changed to INFIX (standard notation)")
		return true
	case "HELP":
		fmt.Fprint(r.out, help)
		return true
	case "CLEAR":
		r.calc.ClearVars()
		fmt.Fprintln(r.out, "All variables cleared")
		return true
	case "VARS":
		r.vars()
		return true
	}
	if k := strings.IndexByte(s, '='); k >= 0 {
		x, err := r.calc.Assign(s)
		if err != nil {
			fmt.Fprintln(r.out, "ERROR:", err)
			return true
		}
		fmt.Fprintf(r.out, "%s = %s\n", strings.TrimSpace(s[:k]), format(x))
		return true
	}
	x, err := r.calc.Evaluate(s)
	if err != nil {
		fmt.Fprintln(r.out, "ERROR:", err)
		return true
	}
	fmt.Fprintln(r.out, "Result:", format(x))
	return true
}

func (r *repl) vars() {
	vars := r.calc.Vars()
	if len(vars) == 0 {
		fmt.Fprintln(r.out, "No variables")
		return
	}
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(r.out, "%s = %s\n", k, format(vars[k]))
	}
}

// format formats a result. Integers have no decimal point; other values have
// up to six decimal places with trailing zeros removed.
func format(x float64) string {
	if x == math.Trunc(x) && math.Abs(x) < 1<<63 {
		return strconv.FormatInt(int64(x), 10)
	}
	s := strconv.FormatFloat(x, 'f', 6, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
