package primefield

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNotPrime reports a modulus that is not prime.
	ErrNotPrime = errors.New("modulus is not prime")
	// ErrSmallCharacteristic reports p = 2 or p = 3, where the short
	// Weierstrass form y² = x³ + ax + b does not cover every elliptic curve.
	ErrSmallCharacteristic = errors.New("short Weierstrass form needs characteristic other than 2 and 3")
	// ErrReducible reports p ≢ 3 (mod 4). Then -1 is a square mod p, x²+1
	// splits and F_p[x]/(x²+1) has zero divisors.
	ErrReducible = errors.New("x^2+1 is reducible over F_p")
)

// IsPrime reports whether p is prime. The test is exact for 64-bit inputs.
func IsPrime(p uint64) bool {
	return new(big.Int).SetUint64(p).ProbablyPrime(0)
}

// CheckModulus reports every reason p is unsuitable as the characteristic of
// the F_p² tower, joined into a single error. It returns nil for primes
// p > 3 with p ≡ 3 (mod 4).
func CheckModulus(p uint64) error {
	var errs []error
	if !IsPrime(p) {
		errs = append(errs, fmt.Errorf("%d: %w", p, ErrNotPrime))
	}
	if p == 2 || p == 3 {
		errs = append(errs, fmt.Errorf("%d: %w", p, ErrSmallCharacteristic))
	}
	if p%4 != 3 {
		errs = append(errs, fmt.Errorf("%d: %w", p, ErrReducible))
	}
	return errors.Join(errs...)
}

// Check runs [CheckModulus] on the modulus of M.
func Check[M Modulus]() error {
	return CheckModulus(modulus[M]())
}
