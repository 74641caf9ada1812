package solve

import (
	"context"
	"fmt"
	"slices"

	"github.com/f3rmion/fp2/poly"
	"github.com/f3rmion/fp2/primefield"
	"github.com/f3rmion/fp2/quadext"
	"golang.org/x/sync/errgroup"
)

// Fp2 is the field F_p² = F_p[i]/(i²+1) for the modulus M.
type Fp2[M primefield.Modulus] = quadext.Element[primefield.Element[M]]

// Elements returns every element of F_p², real part varying slowest.
func Elements[M primefield.Modulus]() []Fp2[M] {
	return slices.Collect(quadext.All(primefield.All[M]()))
}

// Enumerate returns every (x, y) in F_p² × F_p² with f(x) = g(y).
func Enumerate[M primefield.Modulus](f, g *poly.Polynomial[Fp2[M]]) *SolutionSet[Fp2[M]] {
	elems := Elements[M]()
	s := &SolutionSet[Fp2[M]]{pairs: make(map[Pair[Fp2[M]]]struct{})}
	for _, x := range elems {
		for _, p := range scanRow(f, g, x, elems) {
			s.pairs[p] = struct{}{}
		}
	}
	return s
}

// EnumerateParallel is [Enumerate] with the candidates for x split between
// workers goroutines. workers below 1 means one worker. It returns the
// context's error if ctx is cancelled before the search finishes.
func EnumerateParallel[M primefield.Modulus](
	ctx context.Context,
	f, g *poly.Polynomial[Fp2[M]],
	workers int,
) (*SolutionSet[Fp2[M]], error) {
	if workers < 1 {
		workers = 1
	}
	elems := Elements[M]()
	workers = min(workers, len(elems))
	found := make([][]Pair[Fp2[M]], workers)

	eg, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		eg.Go(func() error {
			for i := w; i < len(elems); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				found[w] = append(found[w], scanRow(f, g, elems[i], elems)...)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("enumerating solutions: %w", err)
	}

	s := &SolutionSet[Fp2[M]]{pairs: make(map[Pair[Fp2[M]]]struct{})}
	for _, part := range found {
		for _, p := range part {
			s.pairs[p] = struct{}{}
		}
	}
	return s, nil
}

// scanRow returns every (x, y) with f(x) = g(y) for a fixed x.
func scanRow[M primefield.Modulus](f, g *poly.Polynomial[Fp2[M]], x Fp2[M], ys []Fp2[M]) []Pair[Fp2[M]] {
	var row []Pair[Fp2[M]]
	fx := f.Evaluate(x)
	for _, y := range ys {
		if fx == g.Evaluate(y) {
			row = append(row, Pair[Fp2[M]]{X: x, Y: y})
		}
	}
	return row
}
