package curve

import (
	"fmt"

	"github.com/f3rmion/fp2/algebra"
)

// Curve is y² = x³ + A·x + B.
type Curve[T Coordinate[T]] struct {
	A, B T
}

// New returns the curve y² = x³ + a·x + b.
func New[T Coordinate[T]](a, b T) Curve[T] {
	return Curve[T]{A: a, B: b}
}

// IsOnCurve reports whether p satisfies the curve equation. O is on every
// curve.
func (c Curve[T]) IsOnCurve(p Point[T]) bool {
	x, y, ok := p.Coordinates()
	if !ok {
		return true
	}
	return y.Mul(y) == x.Mul(x).Mul(x).Add(c.A.Mul(x)).Add(c.B)
}

// Discriminant returns -16(4A³ + 27B²).
func (c Curve[T]) Discriminant() T {
	four, sixteen, twentySeven := algebra.Small[T](4), algebra.Small[T](16), algebra.Small[T](27)
	a3 := c.A.Mul(c.A).Mul(c.A)
	b2 := c.B.Mul(c.B)
	return sixteen.Mul(four.Mul(a3).Add(twentySeven.Mul(b2))).Neg()
}

// IsSingular reports whether the discriminant vanishes, in which case the
// equation does not define an elliptic curve.
func (c Curve[T]) IsSingular() bool {
	d := c.Discriminant()
	return d == d.Zero()
}

// Add returns p + q.
func (c Curve[T]) Add(p, q Point[T]) (Point[T], error) {
	return p.Add(q, c.A)
}

// Double returns 2p.
func (c Curve[T]) Double(p Point[T]) (Point[T], error) {
	return p.Double(c.A)
}

// Neg returns -p.
func (c Curve[T]) Neg(p Point[T]) Point[T] {
	return p.Neg()
}

// ScalarMul returns n·p by double-and-add, most significant bit first.
// 0·p is O. Unlike [Point.Double], doubling a point of order two yields O
// here rather than an error.
func (c Curve[T]) ScalarMul(n uint64, p Point[T]) (Point[T], error) {
	res := Infinity[T]()
	for i := 63; i >= 0; i-- {
		var err error
		if res == res.Neg() {
			res = Infinity[T]()
		} else if res, err = res.Double(c.A); err != nil {
			return Point[T]{}, fmt.Errorf("scalar multiple %d: %w", n, err)
		}
		if n>>uint(i)&1 == 1 {
			if res, err = c.addSafe(res, p); err != nil {
				return Point[T]{}, fmt.Errorf("scalar multiple %d: %w", n, err)
			}
		}
	}
	return res, nil
}

// addSafe is Add with p + p = O for points of order two.
func (c Curve[T]) addSafe(p, q Point[T]) (Point[T], error) {
	if p == q && p == p.Neg() {
		return Infinity[T](), nil
	}
	return p.Add(q, c.A)
}

// Order returns the smallest n > 0 with n·p = O. ok is false if no such
// n ≤ limit exists. p must lie on the curve.
func (c Curve[T]) Order(p Point[T], limit uint64) (n uint64, ok bool) {
	if p.IsInfinity() {
		return 1, limit >= 1
	}
	neg := p.Neg()
	acc := p
	for n = 1; n < limit; n++ {
		// acc = n·p
		if acc == neg {
			return n + 1, true
		}
		next, err := acc.Add(p, c.A)
		if err != nil {
			return 0, false
		}
		acc = next
	}
	return 0, false
}

// String returns the curve equation, omitting zero terms and a unit
// coefficient on x, for example "y^2 = x^3 + x + 1".
func (c Curve[T]) String() string {
	var zero T
	zero = zero.Zero()
	eq := "y^2 = x^3"
	switch c.A {
	case zero:
	case zero.Identity():
		eq += " + x"
	default:
		eq += fmt.Sprintf(" + %vx", c.A)
	}
	if c.B != zero {
		eq += fmt.Sprintf(" + %v", c.B)
	}
	return eq
}
