package solve

import (
	"cmp"
	"encoding/binary"
	"slices"

	"github.com/f3rmion/fp2/curve"
	"github.com/f3rmion/fp2/primefield"
	"golang.org/x/crypto/blake2b"
)

// digestPrefix separates solution set digests from other BLAKE2b uses.
const digestPrefix = "FP2-SOLUTION-SET-BLAKE2B-256-v1"

// Digest returns BLAKE2b-256 of the modulus followed by every pair in
// [Sorted] order, each coordinate written as real then imaginary part in
// 8-byte big-endian form.
func Digest[M primefield.Modulus](s *SolutionSet[Fp2[M]]) [32]byte {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(digestPrefix))

	var buf [8]byte
	put := func(v uint64) {
		binary.BigEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}

	var m M
	put(m.Modulus())
	put(uint64(s.Size()))
	for _, p := range Sorted(s) {
		put(p.X.Real().Value())
		put(p.X.Imag().Value())
		put(p.Y.Real().Value())
		put(p.Y.Imag().Value())
	}

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Sorted returns the pairs of s ordered by x then y, each compared by real
// part then imaginary part.
func Sorted[M primefield.Modulus](s *SolutionSet[Fp2[M]]) []Pair[Fp2[M]] {
	pairs := make([]Pair[Fp2[M]], 0, s.Size())
	for p := range s.All() {
		pairs = append(pairs, p)
	}
	slices.SortFunc(pairs, func(a, b Pair[Fp2[M]]) int {
		return cmp.Or(
			compare(a.X, b.X),
			compare(a.Y, b.Y),
		)
	})
	return pairs
}

func compare[M primefield.Modulus](a, b Fp2[M]) int {
	return cmp.Or(
		cmp.Compare(a.Real().Value(), b.Real().Value()),
		cmp.Compare(a.Imag().Value(), b.Imag().Value()),
	)
}

// Points returns the affine curve points (x, y) for every pair of s in
// [Sorted] order.
func Points[M primefield.Modulus](s *SolutionSet[Fp2[M]]) []curve.Point[Fp2[M]] {
	pairs := Sorted(s)
	pts := make([]curve.Point[Fp2[M]], len(pairs))
	for i, p := range pairs {
		pts[i] = curve.NewPoint(p.X, p.Y)
	}
	return pts
}
