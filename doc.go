// Package calc implements a calculator for infix and postfix arithmetic.
//
// Text is split into tokens once, converted from infix to postfix order with
// the shunting-yard algorithm when needed, and evaluated on a stack of
// float64 values. "2 + 3 * 4" and "2 3 4 * +" mean the same thing. All binary
// operators associate to the left, including ^, so "2^3^2" is 64.
//
// Names like x or total2 are variables. Reading a variable that has never been
// assigned defines it as 0.
//
// Operators live in a Registry, so a Calculator can learn new ones at run
// time. Every failure caused by bad input is reported as an error value; a
// Calculator stays usable after any of them.
//
package calc
