package quadext

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/f3rmion/fp2/algebra"
)

// Element is real + imag·i over the base ring T.
// It implements [algebra.Field] whenever T implements [algebra.Ring].
type Element[T algebra.Ring[T]] struct {
	real, imag T
}

// New returns real + imag·i.
func New[T algebra.Ring[T]](real, imag T) Element[T] {
	return Element[T]{real: real, imag: imag}
}

// FromBase embeds a base ring element as real + 0i.
func FromBase[T algebra.Ring[T]](real T) Element[T] {
	return Element[T]{real: real, imag: real.Zero()}
}

// All yields every real + imag·i with both parts drawn from base. The
// real part varies slowest.
func All[T algebra.Ring[T]](base iter.Seq[T]) iter.Seq[Element[T]] {
	return func(yield func(Element[T]) bool) {
		for re := range base {
			for im := range base {
				if !yield(Element[T]{real: re, imag: im}) {
					return
				}
			}
		}
	}
}

// Real returns the real part.
func (x Element[T]) Real() T { return x.real }

// Imag returns the imaginary part.
func (x Element[T]) Imag() T { return x.imag }

// Add returns x + y component-wise.
func (x Element[T]) Add(y Element[T]) Element[T] {
	return Element[T]{real: x.real.Add(y.real), imag: x.imag.Add(y.imag)}
}

// Sub returns x - y component-wise.
func (x Element[T]) Sub(y Element[T]) Element[T] {
	return Element[T]{real: x.real.Sub(y.real), imag: x.imag.Sub(y.imag)}
}

// Mul returns (a+bi)(c+di) = (ac-bd) + (bc+ad)i.
func (x Element[T]) Mul(y Element[T]) Element[T] {
	return mul(x.real, x.imag, y.real, y.imag)
}

func mul[T algebra.Ring[T]](a, b, c, d T) Element[T] {
	return Element[T]{
		real: a.Mul(c).Sub(b.Mul(d)),
		imag: b.Mul(c).Add(a.Mul(d)),
	}
}

// Neg returns -x component-wise.
func (x Element[T]) Neg() Element[T] {
	return Element[T]{real: x.real.Neg(), imag: x.imag.Neg()}
}

// Conjugate returns real - imag·i.
func (x Element[T]) Conjugate() Element[T] {
	return Element[T]{real: x.real, imag: x.imag.Neg()}
}

// IsZero reports whether both parts are zero.
func (x Element[T]) IsZero() bool {
	zero := x.real.Zero()
	return x.real == zero && x.imag == zero
}

// Zero returns 0 + 0i.
func (Element[T]) Zero() Element[T] {
	var t T
	return Element[T]{real: t.Zero(), imag: t.Zero()}
}

// Identity returns 1 + 0i.
func (Element[T]) Identity() Element[T] {
	var t T
	return Element[T]{real: t.Identity(), imag: t.Zero()}
}

// Characteristic returns the characteristic of the base ring.
func (Element[T]) Characteristic() uint64 {
	var t T
	return t.Characteristic()
}

// ModPow returns x^n by repeated squaring on the (real, imag) pair. x^0 is
// the identity.
func (x Element[T]) ModPow(n uint64) Element[T] {
	return x.pow(0, n)
}

// pow returns x^(hi·2⁶⁴ + lo), least significant bit first.
func (x Element[T]) pow(hi, lo uint64) Element[T] {
	var t T
	resRe, resIm := t.Identity(), t.Zero()
	a, b := x.real, x.imag
	n := bits.Len64(lo)
	if hi != 0 {
		n = 64 + bits.Len64(hi)
	}
	for i := range n {
		word := lo
		if i >= 64 {
			word = hi
		}
		if word>>(i%64)&1 == 1 {
			r := mul(resRe, resIm, a, b)
			resRe, resIm = r.real, r.imag
		}
		sq := mul(a, b, a, b)
		a, b = sq.real, sq.imag
	}
	return Element[T]{real: resRe, imag: resIm}
}

// Inverse returns x^(p²-2) where p is the base characteristic. Every
// nonzero element of F_p² satisfies x^(p²-1) = 1, so this is x⁻¹.
// Returns algebra.ErrNoInverse if both parts are zero.
//
// The exponent is formed in 128 bits, so every p below 2⁶⁴ works.
func (x Element[T]) Inverse() (Element[T], error) {
	if x.IsZero() {
		return Element[T]{}, algebra.ErrNoInverse
	}
	p := x.Characteristic()
	hi, lo := bits.Mul64(p, p)
	lo, borrow := bits.Sub64(lo, 2, 0)
	hi -= borrow
	return x.pow(hi, lo), nil
}

// String formats x as its real part when imag is zero, as "{imag}i" when
// real is zero and as "({real} + {imag}i)" otherwise.
func (x Element[T]) String() string {
	zero := x.real.Zero()
	switch {
	case x.imag == zero:
		return fmt.Sprint(x.real)
	case x.real == zero:
		return fmt.Sprintf("%vi", x.imag)
	default:
		return fmt.Sprintf("(%v + %vi)", x.real, x.imag)
	}
}
