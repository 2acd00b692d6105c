package calc

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is one classified piece of an expression. Tokens are values and are
// never modified after lexing.
type Token struct {
	// Kind is the token's type.
	Kind TokenKind
	// Text is the token as written, or "-" followed by the digits for a
	// negative number folded from a unary minus.
	Text string
	// Num is the value of a TokenNum.
	Num float64
	// Op is the symbol of a TokenOp.
	Op rune
	// Col is the position of the token's first rune, starting from 1.
	Col int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Col)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is a number literal.
	TokenNum
	// TokenVar is a variable name.
	TokenVar
	// TokenOp is a registered operator.
	TokenOp
	// TokenOpen is (.
	TokenOpen
	// TokenClose is ).
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenVar:
		return "Var"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type lexer struct {
	src io.RuneScanner
	ops *Registry
	buf strings.Builder
	// col is the number of runes read.
	col int
	// prev is the kind of the last token lexed.
	prev TokenKind
}

func lex(src io.RuneScanner, ops *Registry) *lexer {
	return &lexer{src: src, ops: ops}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

func (l *lexer) emit(tok Token) (Token, error) {
	l.prev = tok.Kind
	return tok, nil
}

// operand returns whether the next infix token is in operand position, i.e.
// at the start of input or following an operator or open parenthesis.
func (l *lexer) operand() bool {
	return l.prev == TokenNone || l.prev == TokenOp || l.prev == TokenOpen
}

// boundary returns whether r is lexed as a token by itself in infix text.
func (l *lexer) boundary(r rune) bool {
	return r == '(' || r == ')' || l.ops.IsOperator(r)
}

// digitNext reports whether the next rune other than whitespace is a digit.
// Whitespace is not significant in infix text, so it is consumed.
func (l *lexer) digitNext() (bool, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}
		if unicode.IsSpace(r) {
			continue
		}
		l.unreadRune()
		return '0' <= r && r <= '9', nil
	}
}

// infix scans the next token from infix text. Whitespace is ignored
// everywhere, including inside numbers and names. At the end of input, the
// error is io.EOF.
func (l *lexer) infix() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		col := l.col
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '(':
			return l.emit(Token{Kind: TokenOpen, Text: "(", Col: col})
		case r == ')':
			return l.emit(Token{Kind: TokenClose, Text: ")", Col: col})
		case r == '-' && l.operand():
			// A minus sign before a number in operand position negates the
			// literal rather than being subtraction.
			neg, err := l.digitNext()
			if err != nil {
				return Token{}, err
			}
			if neg {
				l.buf.WriteRune(r)
				return l.scanInfix(col)
			}
			if l.ops.IsOperator(r) {
				return l.emit(Token{Kind: TokenOp, Text: "-", Op: r, Col: col})
			}
			l.buf.WriteRune(r)
			return l.scanInfix(col)
		case l.ops.IsOperator(r):
			return l.emit(Token{Kind: TokenOp, Text: string(r), Op: r, Col: col})
		default:
			l.buf.WriteRune(r)
			return l.scanInfix(col)
		}
	}
}

// scanInfix scans the rest of a maximal run of runes which are not operators
// or parentheses and classifies it.
func (l *lexer) scanInfix(col int) (Token, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, err
		}
		if unicode.IsSpace(r) {
			continue
		}
		if l.boundary(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	s := l.buf.String()
	switch {
	case isInfixNum(s):
		x, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(x, 0) {
			return Token{}, &TokenError{Col: col, Token: s}
		}
		return l.emit(Token{Kind: TokenNum, Text: s, Num: x, Col: col})
	case ValidName(s):
		return l.emit(Token{Kind: TokenVar, Text: s, Col: col})
	default:
		return Token{}, &TokenError{Col: col, Token: s}
	}
}

// postfix scans the next whitespace-separated token from postfix text. At the
// end of input, the error is io.EOF.
func (l *lexer) postfix() (Token, error) {
	defer l.buf.Reset()
	var col int
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		if !unicode.IsSpace(r) {
			col = l.col
			l.buf.WriteRune(r)
			break
		}
	}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, err
		}
		if unicode.IsSpace(r) {
			break
		}
		l.buf.WriteRune(r)
	}
	s := l.buf.String()
	if x, ok := postfixNum(s); ok {
		return l.emit(Token{Kind: TokenNum, Text: s, Num: x, Col: col})
	}
	if ValidName(s) {
		return l.emit(Token{Kind: TokenVar, Text: s, Col: col})
	}
	if r, n := utf8.DecodeRuneInString(s); n == len(s) && l.ops.IsOperator(r) {
		return l.emit(Token{Kind: TokenOp, Text: s, Op: r, Col: col})
	}
	return Token{}, &TokenError{Col: col, Token: s}
}

// isInfixNum returns whether s is an optionally negative decimal number with
// digits on both sides of any decimal point.
func isInfixNum(s string) bool {
	s = strings.TrimPrefix(s, "-")
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		return false
	}
	if i == len(s) {
		return true
	}
	if s[i] != '.' {
		return false
	}
	i++
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	return j > i && j == len(s)
}

// postfixNum parses s as a finite number. Text beginning with a letter, like
// Inf or NaN, is never a number, and neither is text with digit separators.
func postfixNum(s string) (float64, bool) {
	if s == "" || isLetter(s[0]) || strings.ContainsRune(s, '_') {
		return 0, false
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, false
	}
	return x, true
}

// Tokenize splits infix text into tokens. Whitespace is ignored. Operators
// registered in ops and parentheses are tokens by themselves; every run of
// other characters must be a number or a variable name. A minus sign at the
// start, after an operator, or after ( followed by digits is part of the
// number. A nil ops means the default operators.
func Tokenize(src string, ops *Registry) ([]Token, error) {
	return scanall(src, ops, (*lexer).infix)
}

// Fields splits postfix text into tokens at whitespace. Each field must be a
// number, a variable name, or a single registered operator symbol. A nil ops
// means the default operators.
func Fields(src string, ops *Registry) ([]Token, error) {
	return scanall(src, ops, (*lexer).postfix)
}

func scanall(src string, ops *Registry, next func(*lexer) (Token, error)) ([]Token, error) {
	l := lex(strings.NewReader(src), orDefault(ops))
	var toks []Token
	for {
		tok, err := next(l)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// Join formats tokens as space-separated text, which Fields accepts.
func Join(toks []Token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}
