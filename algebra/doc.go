// Package algebra defines the capability interfaces shared by every level
// of the F_p² tower built in this module.
//
// Rather than a type hierarchy, each algebraic property is its own small
// interface:
//
//   - [Zero]: the additive identity of a type
//   - [Identity]: the multiplicative identity of a type
//   - [Characteristic]: the prime characteristic of a ring or field
//   - [Inverse]: the multiplicative inverse, or [ErrNoInverse] for zero
//
// The composite constraints [Ring] and [Field] bundle these capabilities
// with the arithmetic operators so that generic code can be written once
// and instantiated over both the prime field and its quadratic extension:
//
//	func square[T algebra.Ring[T]](x T) T {
//		return x.Mul(x)
//	}
//
// # Value Semantics
//
// Unlike pointer-receiver field APIs, every implementation in this module is
// an immutable value type. Operations return a new value and never modify
// their receiver, and equality is the built-in == operator:
//
//	z := x.Add(y) // x and y are unchanged
//
// Zero, Identity and Characteristic are methods only because Go interfaces
// have no static members. They never depend on the receiver's value, so
// calling them on the zero value of the type is the idiomatic form:
//
//	var zero T
//	one := zero.Identity()
//
// # Small Integers
//
// Coefficient types offer no integer literal conversion. [Small] builds
// n·1 by repeated addition of the identity, which is how the curve package
// obtains the constants 2 and 3 in its slope formulas.
package algebra
