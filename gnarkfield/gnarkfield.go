package gnarkfield

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/field/koalabear"
	"github.com/f3rmion/fp2/algebra"
	"github.com/f3rmion/fp2/curve"
)

// koalaModulus is the KoalaBear prime 2³¹ - 2²⁴ + 1.
var koalaModulus = koalabear.Modulus().Uint64()

// KoalaBear is an element of the KoalaBear prime field.
// It implements [algebra.Field] by wrapping gnark-crypto's koalabear.Element.
type KoalaBear struct {
	inner koalabear.Element
}

func isField[T algebra.Field[T]]() {}

var _ = isField[KoalaBear]

// NewKoalaBear returns v mod p.
func NewKoalaBear(v uint64) KoalaBear {
	var e KoalaBear
	e.inner.SetUint64(v)
	return e
}

// Add returns e + b.
func (e KoalaBear) Add(b KoalaBear) KoalaBear {
	var r KoalaBear
	r.inner.Add(&e.inner, &b.inner)
	return r
}

// Sub returns e - b.
func (e KoalaBear) Sub(b KoalaBear) KoalaBear {
	var r KoalaBear
	r.inner.Sub(&e.inner, &b.inner)
	return r
}

// Mul returns e * b.
func (e KoalaBear) Mul(b KoalaBear) KoalaBear {
	var r KoalaBear
	r.inner.Mul(&e.inner, &b.inner)
	return r
}

// Neg returns -e.
func (e KoalaBear) Neg() KoalaBear {
	var r KoalaBear
	r.inner.Neg(&e.inner)
	return r
}

// Zero returns 0.
func (KoalaBear) Zero() KoalaBear {
	return KoalaBear{}
}

// Identity returns 1.
func (KoalaBear) Identity() KoalaBear {
	var r KoalaBear
	r.inner.SetOne()
	return r
}

// Characteristic returns 2³¹ - 2²⁴ + 1.
func (KoalaBear) Characteristic() uint64 {
	return koalaModulus
}

// Inverse returns e⁻¹, or algebra.ErrNoInverse if e is zero.
func (e KoalaBear) Inverse() (KoalaBear, error) {
	if e.inner.IsZero() {
		return KoalaBear{}, algebra.ErrNoInverse
	}
	var r KoalaBear
	r.inner.Inverse(&e.inner)
	return r, nil
}

// Uint64 returns the canonical value of e in [0, p).
func (e KoalaBear) Uint64() uint64 {
	var b big.Int
	return e.inner.BigInt(&b).Uint64()
}

// String returns the decimal value of e.
func (e KoalaBear) String() string {
	return e.inner.String()
}

// BN254 is an element of the base field of the BN254 curve.
// It implements [curve.Coordinate] by wrapping gnark-crypto's fp.Element.
type BN254 struct {
	inner fp.Element
}

func isCoordinate[T curve.Coordinate[T]]() {}

var _ = isCoordinate[BN254]

// NewBN254 returns v mod p.
func NewBN254(v uint64) BN254 {
	var e BN254
	e.inner.SetUint64(v)
	return e
}

// NewBN254FromBig returns v mod p.
func NewBN254FromBig(v *big.Int) BN254 {
	var e BN254
	e.inner.SetBigInt(v)
	return e
}

// Add returns e + b.
func (e BN254) Add(b BN254) BN254 {
	var r BN254
	r.inner.Add(&e.inner, &b.inner)
	return r
}

// Sub returns e - b.
func (e BN254) Sub(b BN254) BN254 {
	var r BN254
	r.inner.Sub(&e.inner, &b.inner)
	return r
}

// Mul returns e * b.
func (e BN254) Mul(b BN254) BN254 {
	var r BN254
	r.inner.Mul(&e.inner, &b.inner)
	return r
}

// Neg returns -e.
func (e BN254) Neg() BN254 {
	var r BN254
	r.inner.Neg(&e.inner)
	return r
}

// Zero returns 0.
func (BN254) Zero() BN254 {
	return BN254{}
}

// Identity returns 1.
func (BN254) Identity() BN254 {
	var r BN254
	r.inner.SetOne()
	return r
}

// Inverse returns e⁻¹, or algebra.ErrNoInverse if e is zero.
func (e BN254) Inverse() (BN254, error) {
	if e.inner.IsZero() {
		return BN254{}, algebra.ErrNoInverse
	}
	var r BN254
	r.inner.Inverse(&e.inner)
	return r, nil
}

// String returns the decimal value of e.
func (e BN254) String() string {
	return e.inner.String()
}

// Modulus returns the BN254 base field prime.
func Modulus() *big.Int {
	return fp.Modulus()
}

// G1Curve returns the BN254 G1 curve y² = x³ + 3.
func G1Curve() curve.Curve[BN254] {
	return curve.New(BN254{}, NewBN254(3))
}

// FromG1 converts a gnark-crypto G1 point in affine form.
// gnark-crypto encodes the point at infinity as (0, 0).
func FromG1(p *bn254.G1Affine) curve.Point[BN254] {
	if p.IsInfinity() {
		return curve.Infinity[BN254]()
	}
	return curve.NewPoint(BN254{inner: p.X}, BN254{inner: p.Y})
}

// G1Generator returns the standard generator of BN254 G1, (1, 2).
func G1Generator() curve.Point[BN254] {
	_, _, g1, _ := bn254.Generators()
	return FromG1(&g1)
}
