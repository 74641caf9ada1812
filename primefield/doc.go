// Package primefield implements the prime field F_p, the foundation of the
// F_p² tower.
//
// The modulus is part of the type. A [Modulus] is a zero-sized type whose
// only job is to report p, so Element[P7] and Element[P11] are distinct
// types and cannot be mixed by accident:
//
//	x := primefield.New[primefield.P7](5)
//	y := primefield.New[primefield.P7](4)
//	fmt.Println(x.Mul(y)) // 6
//
// Elements hold their value canonically in [0, p). The zero value of
// Element[M] is the additive identity, so a declared but unassigned element
// is valid.
//
// # Custom Moduli
//
// Any type with a Modulus() uint64 method can be used:
//
//	type P103 struct{}
//
//	func (P103) Modulus() uint64 { return 103 }
//
// Arithmetic is exact for every modulus below 2⁶⁴; products are formed in
// 128 bits before reduction.
//
// # Validation
//
// The types never check that p is prime or that x²+1 is irreducible over
// F_p. [CheckModulus] reports those conditions for callers that want to
// enforce them.
package primefield
