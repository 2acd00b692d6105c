package calc

import (
	"errors"
	"strconv"
)

// ErrDivisionByZero is returned by a BinaryOperator when its right operand is
// zero and the operation is undefined there. A Registry reports it as a
// *DivisionByZeroError, which unwraps to ErrDivisionByZero.
var ErrDivisionByZero = errors.New("division by zero")

// TokenError indicates a piece of input that is not a number, a variable
// name, a parenthesis, or a registered operator. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the text that was not understood.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// BracketError indicates unbalanced parentheses. It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Open is true if the unmatched parenthesis is "(" and false if it is ")".
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "mismatched parentheses: ( with no )")
	}
	return errpos(err.Col, "mismatched parentheses: ) with no (")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperandError indicates an operator applied when fewer than two values are
// available. It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator symbol.
	Operator rune
	// Have is the number of values that were available.
	Have int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "insufficient operands for "+strconv.QuoteRune(err.Operator)+": have "+strconv.Itoa(err.Have)+", need 2")
}

func (err *OperandError) Pos() int {
	return err.Col
}

// ExpressionError indicates that evaluation finished with other than exactly
// one value, i.e. the expression was empty or had too many operands.
type ExpressionError struct {
	// Len is the number of values left when the input ran out.
	Len int
}

func (err *ExpressionError) Error() string {
	if err.Len == 0 {
		return "invalid expression: no value"
	}
	return "invalid expression: too many operands (" + strconv.Itoa(err.Len) + " values left)"
}

// OperatorError indicates an operator symbol that is not in the registry. It
// implements InputError. Col is 0 if the error did not come from input text.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the symbol that was not registered.
	Operator rune
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.QuoteRune(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// DivisionByZeroError indicates a division or modulo with a zero divisor. It
// implements InputError and unwraps to ErrDivisionByZero.
type DivisionByZeroError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that was applied.
	Operator rune
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero in "+strconv.QuoteRune(err.Operator))
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

func (err *DivisionByZeroError) Unwrap() error {
	return ErrDivisionByZero
}

// DomainError indicates an operator whose result is not a finite number, e.g.
// an overflow or a fractional power of a negative number. It implements
// InputError.
type DomainError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that was applied.
	Operator rune
	// X and Y are the left and right operands.
	X, Y float64
}

func (err *DomainError) Error() string {
	x := strconv.FormatFloat(err.X, 'g', -1, 64)
	y := strconv.FormatFloat(err.Y, 'g', -1, 64)
	return errpos(err.Col, x+" "+string(err.Operator)+" "+y+" is not a finite number")
}

func (err *DomainError) Pos() int {
	return err.Col
}

// NameError indicates an assignment to something that is not a valid
// variable name.
type NameError struct {
	// Name is the invalid name.
	Name string
}

func (err *NameError) Error() string {
	return "invalid variable name " + strconv.Quote(err.Name) + ": names must start with a letter and contain only letters and digits"
}

// AssignError indicates an assignment with nothing to assign. If Name is
// empty, the statement had no "=" at all.
type AssignError struct {
	// Name is the variable being assigned.
	Name string
	// Text is the whole statement.
	Text string
}

func (err *AssignError) Error() string {
	if err.Name == "" {
		return "invalid assignment " + strconv.Quote(err.Text) + ": no ="
	}
	return "right side of assignment to " + err.Name + " cannot be empty"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error caused by a
// specific token of the input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*DomainError)(nil)
)
