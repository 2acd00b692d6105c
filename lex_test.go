package calc

import (
	"errors"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	num := func(text string, x float64, col int) Token {
		return Token{Kind: TokenNum, Text: text, Num: x, Col: col}
	}
	name := func(text string, col int) Token {
		return Token{Kind: TokenVar, Text: text, Col: col}
	}
	op := func(r rune, col int) Token {
		return Token{Kind: TokenOp, Text: string(r), Op: r, Col: col}
	}
	open := func(col int) Token { return Token{Kind: TokenOpen, Text: "(", Col: col} }
	close := func(col int) Token { return Token{Kind: TokenClose, Text: ")", Col: col} }
	cases := []struct {
		name string
		src  string
		toks []Token
	}{
		{"empty", "", nil},
		{"spaces", " \t ", nil},
		{"int", "42", []Token{num("42", 42, 1)}},
		{"real", "2.5", []Token{num("2.5", 2.5, 1)}},
		{"name", "x1", []Token{name("x1", 1)}},
		{"add", "2 + 3", []Token{num("2", 2, 1), op('+', 3), num("3", 3, 5)}},
		{"nospace", "2*x", []Token{num("2", 2, 1), op('*', 2), name("x", 3)}},
		{"parens", "(x1+y)", []Token{open(1), name("x1", 2), op('+', 4), name("y", 5), close(6)}},
		{"all-ops", "1+2-3*4/5%6^7", []Token{
			num("1", 1, 1), op('+', 2), num("2", 2, 3), op('-', 4), num("3", 3, 5),
			op('*', 6), num("4", 4, 7), op('/', 8), num("5", 5, 9), op('%', 10),
			num("6", 6, 11), op('^', 12), num("7", 7, 13),
		}},
		{"ignore-space", "1 2", []Token{num("12", 12, 1)}},
		{"neg", "-5", []Token{num("-5", -5, 1)}},
		{"neg-space", "- 5", []Token{num("-5", -5, 1)}},
		{"neg-real", "-0.5", []Token{num("-0.5", -0.5, 1)}},
		{"sub-neg", "3--5", []Token{num("3", 3, 1), op('-', 2), num("-5", -5, 3)}},
		{"sub", "x-5", []Token{name("x", 1), op('-', 2), num("5", 5, 3)}},
		{"sub-space", "2 -5", []Token{num("2", 2, 1), op('-', 3), num("5", 5, 4)}},
		{"pow-neg", "2^-1", []Token{num("2", 2, 1), op('^', 2), num("-1", -1, 3)}},
		{"paren-neg", "(-1)", []Token{open(1), num("-1", -1, 2), close(4)}},
		{"neg-name", "-x", []Token{op('-', 1), name("x", 2)}},
		{"close-sub", "(1)-2", []Token{open(1), num("1", 1, 2), close(3), op('-', 4), num("2", 2, 5)}},
	}
	ops := NewRegistry()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src, ops)
			if err != nil {
				t.Fatalf("tokenizing %q: %v", c.src, err)
			}
			if !reflect.DeepEqual(toks, c.toks) {
				t.Errorf("tokenizing %q: want %v, got %v", c.src, c.toks, toks)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		src string
		tok string
		col int
	}{
		{"&", "&", 1},
		{"2 & 3", "2&3", 1},
		{"1 + $", "$", 5},
		{"1.2.3", "1.2.3", 1},
		{"1.", "1.", 1},
		{".5", ".5", 1},
		{"2x", "2x", 1},
		{"1e5", "1e5", 1},
		{"x_y", "x_y", 1},
		{"π", "π", 1},
		{"(-5x)", "-5x", 2},
	}
	ops := NewRegistry()
	for _, c := range cases {
		toks, err := Tokenize(c.src, ops)
		var terr *TokenError
		if !errors.As(err, &terr) {
			t.Errorf("tokenizing %q: expected *TokenError, got %v (%v)", c.src, err, toks)
			continue
		}
		if terr.Token != c.tok || terr.Pos() != c.col {
			t.Errorf("tokenizing %q: want %q at %d, got %q at %d", c.src, c.tok, c.col, terr.Token, terr.Pos())
		}
		if toks != nil {
			t.Errorf("tokenizing %q: got tokens %v with error", c.src, toks)
		}
	}
}

func TestTokenizeRegistered(t *testing.T) {
	ops := NewRegistry()
	if _, err := Tokenize("2&3", ops); err == nil {
		t.Fatal("unregistered & tokenized")
	}
	ops.Register('&', 2, Binary(func(a, b float64) float64 { return a }))
	toks, err := Tokenize("2&3", ops)
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Kind: TokenNum, Text: "2", Num: 2, Col: 1},
		{Kind: TokenOp, Text: "&", Op: '&', Col: 2},
		{Kind: TokenNum, Text: "3", Num: 3, Col: 3},
	}
	if !reflect.DeepEqual(toks, want) {
		t.Errorf("want %v, got %v", want, toks)
	}
}

func TestFields(t *testing.T) {
	cases := []struct {
		name string
		src  string
		toks []Token
	}{
		{"empty", "", nil},
		{"spaces", "  \n ", nil},
		{"add", "2 3 +", []Token{
			{Kind: TokenNum, Text: "2", Num: 2, Col: 1},
			{Kind: TokenNum, Text: "3", Num: 3, Col: 3},
			{Kind: TokenOp, Text: "+", Op: '+', Col: 5},
		}},
		{"neg", "-5 x  *", []Token{
			{Kind: TokenNum, Text: "-5", Num: -5, Col: 1},
			{Kind: TokenVar, Text: "x", Col: 4},
			{Kind: TokenOp, Text: "*", Op: '*', Col: 7},
		}},
		{"minus", "\t-", []Token{{Kind: TokenOp, Text: "-", Op: '-', Col: 2}}},
		{"exp", "1e3", []Token{{Kind: TokenNum, Text: "1e3", Num: 1000, Col: 1}}},
		{"frac", ".5", []Token{{Kind: TokenNum, Text: ".5", Num: 0.5, Col: 1}}},
		{"plus", "+2", []Token{{Kind: TokenNum, Text: "+2", Num: 2, Col: 1}}},
		{"inf", "Inf", []Token{{Kind: TokenVar, Text: "Inf", Col: 1}}},
		{"nan", "NaN", []Token{{Kind: TokenVar, Text: "NaN", Col: 1}}},
	}
	ops := NewRegistry()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Fields(c.src, ops)
			if err != nil {
				t.Fatalf("splitting %q: %v", c.src, err)
			}
			if !reflect.DeepEqual(toks, c.toks) {
				t.Errorf("splitting %q: want %v, got %v", c.src, c.toks, toks)
			}
		})
	}
}

func TestFieldsErrors(t *testing.T) {
	cases := []struct {
		src string
		tok string
		col int
	}{
		{"(", "(", 1},
		{"1 )", ")", 3},
		{"2 &", "&", 3},
		{"++", "++", 1},
		{"1e400", "1e400", 1},
		{"2x", "2x", 1},
		{"1 2+", "2+", 3},
		{"1_0", "1_0", 1},
		{"2 1_000.5 +", "1_000.5", 3},
	}
	ops := NewRegistry()
	for _, c := range cases {
		_, err := Fields(c.src, ops)
		var terr *TokenError
		if !errors.As(err, &terr) {
			t.Errorf("splitting %q: expected *TokenError, got %v", c.src, err)
			continue
		}
		if terr.Token != c.tok || terr.Col != c.col {
			t.Errorf("splitting %q: want %q at %d, got %q at %d", c.src, c.tok, c.col, terr.Token, terr.Col)
		}
	}
}

func TestJoin(t *testing.T) {
	toks, err := Tokenize("(a + -2.5) * b", NewRegistry())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Join(toks), "( a + -2.5 ) * b"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
	if got := Join(nil); got != "" {
		t.Errorf("empty join gave %q", got)
	}
}

func TestNilRegistry(t *testing.T) {
	toks, err := Tokenize("2 ^ 3", nil)
	if err != nil {
		t.Fatal(err)
	}
	p, err := ToPostfix(toks, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := Join(p); got != "2 3 ^" {
		t.Errorf("want %q, got %q", "2 3 ^", got)
	}
	if got, err := InfixToPostfix("1 + 2 * 3", nil); err != nil || got != "1 2 3 * +" {
		t.Errorf("want %q, got %q, %v", "1 2 3 * +", got, err)
	}
	if _, err := Fields("1 2 %", nil); err != nil {
		t.Error(err)
	}
	r, err := NewEvaluator(nil, nil).EvalPostfix("7 2 %")
	if err != nil || r != 1 {
		t.Errorf("want 1, got %g, %v", r, err)
	}
}
