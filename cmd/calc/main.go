package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
)

func main() {
	log.SetFlags(0)
	var (
		mode  string
		with  []string
		quiet bool
	)
	addwith := func(s string) error {
		if !strings.Contains(s, "=") {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, s)
		return nil
	}
	flag.StringVar(&mode, "mode", "postfix", "initial notation, postfix or infix")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&quiet, "q", false, "do not print the banner")
	flag.Parse()

	m, ok := calc.ParseMode(mode)
	if !ok {
		log.Fatalf("unknown mode %q", mode)
	}
	c := calc.New(calc.WithMode(m))
	for _, d := range with {
		if _, err := c.Assign(d); err != nil {
			log.Fatalf("setting %s: %v", d, err)
		}
	}

	r := &repl{calc: c, out: os.Stdout}
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			if !r.line(arg) {
				break
			}
		}
		return
	}
	r.interactive = term.IsTerminal(int(os.Stdin.Fd()))
	if r.interactive && !quiet {
		r.banner()
	}
	if err := r.run(os.Stdin); err != nil {
		log.Fatal(err)
	}
}
