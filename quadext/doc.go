// Package quadext implements the quadratic extension T[x]/(x²+1) of a base
// ring T. Elements are written real + imag·i with i² = -1.
//
// Over F_p with p ≡ 3 (mod 4) the extension is the field F_p². For other p
// it is a ring with zero divisors; the type does not check this.
package quadext
