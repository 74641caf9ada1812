package curve

import (
	"errors"
	"fmt"

	"github.com/f3rmion/fp2/algebra"
)

// ErrNotAddable is returned when the group law needs an inverse that does
// not exist.
var ErrNotAddable = errors.New("points are not addable")

// Coordinate is the constraint on point coordinates: a comparable field
// value type. It does not need a characteristic, so fields whose
// characteristic exceeds 64 bits qualify.
type Coordinate[T any] interface {
	comparable
	algebra.Zero[T]
	algebra.Identity[T]
	algebra.Inverse[T]

	Add(b T) T
	Sub(b T) T
	Mul(b T) T
	Neg() T
}

// Point is an affine point (x, y) or the point at infinity. The zero value
// is the point at infinity.
type Point[T Coordinate[T]] struct {
	x, y   T
	affine bool
}

// NewPoint returns the affine point (x, y). It does not check curve
// membership.
func NewPoint[T Coordinate[T]](x, y T) Point[T] {
	return Point[T]{x: x, y: y, affine: true}
}

// Infinity returns the point at infinity O.
func Infinity[T Coordinate[T]]() Point[T] {
	return Point[T]{}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point[T]) IsInfinity() bool {
	return !p.affine
}

// Coordinates returns the affine coordinates of p. ok is false for the
// point at infinity.
func (p Point[T]) Coordinates() (x, y T, ok bool) {
	return p.x, p.y, p.affine
}

// Equal reports whether p and q are the same point.
func (p Point[T]) Equal(q Point[T]) bool {
	return p == q
}

// Neg returns -p: O for O, (x, -y) otherwise.
func (p Point[T]) Neg() Point[T] {
	if !p.affine {
		return p
	}
	return Point[T]{x: p.x, y: p.y.Neg(), affine: true}
}

// Add returns p + q on the curve with coefficient a.
//
// Equal x with different y gives O. Equal points are doubled along the
// tangent, distinct x use the chord.
func (p Point[T]) Add(q Point[T], a T) (Point[T], error) {
	if !p.affine {
		return q, nil
	}
	if !q.affine {
		return p, nil
	}
	x1, y1, x2, y2 := p.x, p.y, q.x, q.y

	var m T
	if x1 == x2 {
		if y1 != y2 {
			return Infinity[T](), nil
		}
		two, three := algebra.Small[T](2), algebra.Small[T](3)
		den, err := two.Mul(y1).Inverse()
		if err != nil {
			return Point[T]{}, fmt.Errorf("doubling %v: %w: %w", p, ErrNotAddable, err)
		}
		m = three.Mul(x1).Mul(x1).Add(a).Mul(den)
	} else {
		den, err := x2.Sub(x1).Inverse()
		if err != nil {
			return Point[T]{}, fmt.Errorf("adding %v and %v: %w: %w", p, q, ErrNotAddable, err)
		}
		m = y2.Sub(y1).Mul(den)
	}

	mm := m.Mul(m)
	x3 := mm.Sub(x1).Sub(x2)
	// m·(x1 - x3) - y1, expanded so x3 is not reused
	y3 := m.Mul(x1.Add(x1).Add(x2).Sub(mm)).Sub(y1)
	return NewPoint(x3, y3), nil
}

// Double returns p + p on the curve with coefficient a.
func (p Point[T]) Double(a T) (Point[T], error) {
	return p.Add(p, a)
}

// String returns "O" for the point at infinity and "(x, y)" otherwise.
func (p Point[T]) String() string {
	if !p.affine {
		return "O"
	}
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}
