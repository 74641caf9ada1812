package primefield

import (
	"iter"
	"math/bits"
	"strconv"

	"github.com/f3rmion/fp2/algebra"
)

// Modulus supplies the prime p of a field at the type level.
// Implementations must be zero-sized and return the same value every call.
type Modulus interface {
	Modulus() uint64
}

// Predefined moduli. Each is a prime congruent to 3 mod 4, so x²+1 is
// irreducible over the field and the quadratic extension is a field.
type (
	P7  struct{}
	P11 struct{}
	P19 struct{}
	P23 struct{}
	P31 struct{}
	P43 struct{}
	P47 struct{}
)

func (P7) Modulus() uint64  { return 7 }
func (P11) Modulus() uint64 { return 11 }
func (P19) Modulus() uint64 { return 19 }
func (P23) Modulus() uint64 { return 23 }
func (P31) Modulus() uint64 { return 31 }
func (P43) Modulus() uint64 { return 43 }
func (P47) Modulus() uint64 { return 47 }

// Element is a residue class modulo the prime reported by M.
// It implements [algebra.Field].
type Element[M Modulus] struct {
	value uint64
}

func isField[T algebra.Field[T]]() {}

var (
	_ = isField[Element[P7]]
	_ = isField[Element[P47]]
)

func modulus[M Modulus]() uint64 {
	var m M
	return m.Modulus()
}

// New returns v mod p.
func New[M Modulus](v uint64) Element[M] {
	return Element[M]{value: v % modulus[M]()}
}

// FromInt returns v mod p for any signed integer, negatives included.
func FromInt[M Modulus](v int64) Element[M] {
	p := modulus[M]()
	if v >= 0 {
		return Element[M]{value: uint64(v) % p}
	}
	// -v may overflow for math.MinInt64, so negate after the unsigned cast.
	r := (-uint64(v)) % p
	if r == 0 {
		return Element[M]{}
	}
	return Element[M]{value: p - r}
}

// All yields every element of the field in increasing order of value.
func All[M Modulus]() iter.Seq[Element[M]] {
	return func(yield func(Element[M]) bool) {
		p := modulus[M]()
		for v := uint64(0); v < p; v++ {
			if !yield(Element[M]{value: v}) {
				return
			}
		}
	}
}

// Value returns the canonical representative in [0, p).
func (x Element[M]) Value() uint64 {
	return x.value
}

// Add returns x + y mod p.
func (x Element[M]) Add(y Element[M]) Element[M] {
	p := modulus[M]()
	sum, carry := bits.Add64(x.value, y.value, 0)
	if carry != 0 || sum >= p {
		sum -= p
	}
	return Element[M]{value: sum}
}

// Sub returns x - y mod p.
func (x Element[M]) Sub(y Element[M]) Element[M] {
	diff, borrow := bits.Sub64(x.value, y.value, 0)
	if borrow != 0 {
		diff += modulus[M]()
	}
	return Element[M]{value: diff}
}

// Mul returns x * y mod p. The product is formed in 128 bits.
func (x Element[M]) Mul(y Element[M]) Element[M] {
	hi, lo := bits.Mul64(x.value, y.value)
	// hi < p because both factors are below p.
	return Element[M]{value: bits.Rem64(hi, lo, modulus[M]())}
}

// Neg returns -x mod p.
func (x Element[M]) Neg() Element[M] {
	if x.value == 0 {
		return x
	}
	return Element[M]{value: modulus[M]() - x.value}
}

// Equal reports whether x and y are the same residue.
func (x Element[M]) Equal(y Element[M]) bool {
	return x.value == y.value
}

// IsZero reports whether x is zero.
func (x Element[M]) IsZero() bool {
	return x.value == 0
}

// Zero returns 0.
func (Element[M]) Zero() Element[M] {
	return Element[M]{}
}

// Identity returns 1.
func (Element[M]) Identity() Element[M] {
	return New[M](1)
}

// Characteristic returns p.
func (Element[M]) Characteristic() uint64 {
	return modulus[M]()
}

// ModPow returns x^n mod p by repeated squaring. x^0 is 1, including 0^0.
func (x Element[M]) ModPow(n uint64) Element[M] {
	res := x.Identity()
	base := x
	for n > 0 {
		if n&1 == 1 {
			res = res.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return res
}

// Inverse returns x^(p-2), the multiplicative inverse by Fermat's little
// theorem. Returns algebra.ErrNoInverse if x is zero.
func (x Element[M]) Inverse() (Element[M], error) {
	if x.value == 0 {
		return Element[M]{}, algebra.ErrNoInverse
	}
	return x.ModPow(modulus[M]() - 2), nil
}

// String returns the decimal value of x.
func (x Element[M]) String() string {
	return strconv.FormatUint(x.value, 10)
}
