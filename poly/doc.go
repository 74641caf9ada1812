// Package poly implements polynomials over any ring of the F_p² tower.
//
// Coefficients are stored constant term first:
//
//	f := poly.New(one, one, zero, one) // x^3 + x + 1
//	f.Evaluate(x)
//
// [Weierstrass] and [Square] build the two sides of y² = x³ + ax + b.
package poly
