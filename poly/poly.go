package poly

import (
	"fmt"
	"slices"
	"strings"

	"github.com/f3rmion/fp2/algebra"
)

// Polynomial is c₀ + c₁x + c₂x² + ... over T. Trailing zero coefficients
// are kept as given.
type Polynomial[T algebra.Ring[T]] struct {
	coefficients []T // constant term first
}

// New returns the polynomial with the given coefficients, constant term
// first. The slice is copied.
func New[T algebra.Ring[T]](coefficients ...T) *Polynomial[T] {
	return &Polynomial[T]{coefficients: slices.Clone(coefficients)}
}

// Weierstrass returns x³ + ax + b.
func Weierstrass[T algebra.Ring[T]](a, b T) *Polynomial[T] {
	zero, one := a.Zero(), a.Identity()
	return New(b, a, zero, one)
}

// Square returns x².
func Square[T algebra.Ring[T]]() *Polynomial[T] {
	var t T
	return New(t.Zero(), t.Zero(), t.Identity())
}

// Coefficients returns a copy of the coefficients, constant term first.
func (p *Polynomial[T]) Coefficients() []T {
	return slices.Clone(p.coefficients)
}

// Degree returns len(coefficients)-1, counting trailing zeros. The empty
// polynomial has degree -1.
func (p *Polynomial[T]) Degree() int {
	return len(p.coefficients) - 1
}

// Evaluate returns Σ cᵢ·xⁱ. The power of x is built by successive
// multiplication alongside the sum.
func (p *Polynomial[T]) Evaluate(x T) T {
	sum := x.Zero()
	power := x.Identity()
	for _, c := range p.coefficients {
		sum = sum.Add(c.Mul(power))
		power = power.Mul(x)
	}
	return sum
}

// Format renders the polynomial in the variable v, highest power first,
// omitting zero terms, for example "x^3 + 2x + 1". The zero polynomial is
// "0".
func (p *Polynomial[T]) Format(v string) string {
	var (
		terms []string
		zero  T
	)
	zero = zero.Zero()
	one := zero.Identity()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		c := p.coefficients[i]
		if c == zero {
			continue
		}
		var coeff string
		if c != one || i == 0 {
			coeff = fmt.Sprint(c)
		}
		switch i {
		case 0:
			terms = append(terms, coeff)
		case 1:
			terms = append(terms, coeff+v)
		default:
			terms = append(terms, fmt.Sprintf("%s%s^%d", coeff, v, i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

// String formats the polynomial in x.
func (p *Polynomial[T]) String() string {
	return p.Format("x")
}
