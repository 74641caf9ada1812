// Package gnarkfield adapts field elements from gnark-crypto to the
// capability interfaces of this module.
//
// Two fields are provided:
//
//   - [KoalaBear]: the 31-bit prime field p = 2³¹ - 2²⁴ + 1. It implements
//     [algebra.Field], so it can serve as the base ring of the tower, as
//     polynomial coefficients and as curve coordinates.
//   - [BN254]: the 254-bit base field of the BN254 pairing curve. Its
//     characteristic does not fit the uint64 returned by
//     [algebra.Characteristic], so it implements [curve.Coordinate] only.
//
// Both are value types wrapping the gnark-crypto Montgomery
// representation, which is canonical, so == compares field values.
//
// # Cross-Checking
//
// The generic implementations in primefield and curve are tested against
// these wrappers: KoalaBear arithmetic is compared with
// primefield.Element over the same modulus, and the generic group law is
// compared with gnark-crypto's BN254 G1 arithmetic on y² = x³ + 3 via
// [G1Curve] and [FromG1].
//
// Note that p ≡ 1 (mod 4) for KoalaBear, so quadext over KoalaBear is a
// ring with zero divisors, not a field.
package gnarkfield
