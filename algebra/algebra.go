package algebra

import (
	"errors"
)

// ErrNoInverse is returned by [Inverse] implementations when the receiver
// is the additive identity.
var ErrNoInverse = errors.New("zero has no multiplicative inverse")

// Zero exposes the additive identity of T.
type Zero[T any] interface {
	// Zero returns the additive identity.
	Zero() T
}

// Identity exposes the multiplicative identity of T.
type Identity[T any] interface {
	// Identity returns the multiplicative identity.
	Identity() T
}

// Characteristic exposes the prime characteristic of a ring or field.
//
// A quadratic extension has the characteristic of its base ring, not its
// square.
type Characteristic interface {
	// Characteristic returns the smallest n > 0 with n·1 = 0.
	Characteristic() uint64
}

// Inverse exposes the multiplicative inverse.
type Inverse[T any] interface {
	// Inverse returns the multiplicative inverse of the receiver.
	// Returns ErrNoInverse if and only if the receiver is zero.
	Inverse() (T, error)
}

// Ring is the constraint satisfied by every level of the tower: a
// comparable value type with ring arithmetic and the Zero, Identity and
// Characteristic capabilities.
type Ring[T any] interface {
	comparable
	Zero[T]
	Identity[T]
	Characteristic

	// Add returns the receiver plus b.
	Add(b T) T
	// Sub returns the receiver minus b.
	Sub(b T) T
	// Mul returns the receiver times b.
	Mul(b T) T
	// Neg returns the additive inverse of the receiver.
	Neg() T
}

// Field is a [Ring] whose nonzero elements are invertible.
type Field[T any] interface {
	Ring[T]
	Inverse[T]
}

// Small returns n·1 in T, built by adding the identity to itself n times.
// Small(0) is the additive identity.
func Small[T interface {
	Zero[T]
	Identity[T]
	Add(b T) T
}](n uint) T {
	var t T
	one := t.Identity()
	res := t.Zero()
	for range n {
		res = res.Add(one)
	}
	return res
}

// IsZero reports whether x is the additive identity of T.
func IsZero[T interface {
	comparable
	Zero[T]
}](x T) bool {
	return x == x.Zero()
}
