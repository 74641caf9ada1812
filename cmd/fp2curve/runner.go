package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/f3rmion/fp2/curve"
	"github.com/f3rmion/fp2/poly"
	"github.com/f3rmion/fp2/primefield"
	"github.com/f3rmion/fp2/quadext"
	"github.com/f3rmion/fp2/solve"
	log "github.com/sirupsen/logrus"
)

// errSingular reports a curve whose discriminant vanishes.
var errSingular = errors.New("discriminant -16(4a^3 + 27b^2) is zero, the curve is singular")

// runner runs each subcommand for one compile-time modulus.
type runner interface {
	check(cfg *config, out io.Writer) error
	solve(ctx context.Context, cfg *config, out io.Writer) error
	add(ctx context.Context, cfg *config, p, q [4]uint64, out io.Writer) error
}

var runners = map[uint64]runner{
	7:  fieldRunner[primefield.P7]{},
	11: fieldRunner[primefield.P11]{},
	19: fieldRunner[primefield.P19]{},
	23: fieldRunner[primefield.P23]{},
	31: fieldRunner[primefield.P31]{},
	43: fieldRunner[primefield.P43]{},
	47: fieldRunner[primefield.P47]{},
}

type fieldRunner[M primefield.Modulus] struct{}

// coefficients returns a and b embedded in F_p².
func (fieldRunner[M]) coefficients(cfg *config) (a, b solve.Fp2[M]) {
	return quadext.FromBase(primefield.FromInt[M](cfg.a)), quadext.FromBase(primefield.FromInt[M](cfg.b))
}

// check reports the discriminant of the curve over F_p and fails with
// errSingular when it vanishes.
func (fieldRunner[M]) check(cfg *config, out io.Writer) error {
	c := curve.New(primefield.FromInt[M](cfg.a), primefield.FromInt[M](cfg.b))
	fmt.Fprintf(out, "discriminant of %v over F_%d: %v\n", c, cfg.p, c.Discriminant())
	if c.IsSingular() {
		return fmt.Errorf("%v: %w", c, errSingular)
	}
	return nil
}

func (r fieldRunner[M]) enumerate(ctx context.Context, cfg *config) (*solve.SolutionSet[solve.Fp2[M]], error) {
	a, b := r.coefficients(cfg)
	f := poly.Weierstrass(a, b)
	g := poly.Square[solve.Fp2[M]]()

	start := time.Now()
	var (
		set *solve.SolutionSet[solve.Fp2[M]]
		err error
	)
	if cfg.parallel > 1 {
		set, err = solve.EnumerateParallel(ctx, f, g, cfg.parallel)
	} else {
		set = solve.Enumerate(f, g)
	}
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"p":        cfg.p,
		"size":     set.Size(),
		"workers":  max(cfg.parallel, 1),
		"duration": time.Since(start),
	}).Debug("enumerated solutions")
	return set, nil
}

func (r fieldRunner[M]) solve(ctx context.Context, cfg *config, out io.Writer) error {
	set, err := r.enumerate(ctx, cfg)
	if err != nil {
		return err
	}
	a, b := r.coefficients(cfg)
	fmt.Fprintf(out, "solutions of %s = %s over F_%d^2:\n", poly.Square[solve.Fp2[M]]().Format("y"), poly.Weierstrass(a, b).Format("x"), cfg.p)
	fmt.Fprintln(out, formatSet(set))
	fmt.Fprintf(out, "count: %d\n", set.Size())
	digest := solve.Digest(set)
	fmt.Fprintf(out, "digest: %s\n", hex.EncodeToString(digest[:]))
	return nil
}

func (r fieldRunner[M]) add(ctx context.Context, cfg *config, p, q [4]uint64, out io.Writer) error {
	set, err := r.enumerate(ctx, cfg)
	if err != nil {
		return err
	}
	P, Q := point[M](p), point[M](q)
	for _, pt := range []curve.Point[solve.Fp2[M]]{P, Q} {
		x, y, _ := pt.Coordinates()
		if !set.Contains(solve.Pair[solve.Fp2[M]]{X: x, Y: y}) {
			return fmt.Errorf("%v does not satisfy y^2 = x^3 + ax + b", pt)
		}
	}

	a, _ := r.coefficients(cfg)
	R, err := P.Add(Q, a)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "P = %v, Q = %v\n", P, Q)
	fmt.Fprintf(out, "P + Q = %v\n", R)
	return nil
}

func point[M primefield.Modulus](c [4]uint64) curve.Point[solve.Fp2[M]] {
	x := quadext.New(primefield.New[M](c[0]), primefield.New[M](c[1]))
	y := quadext.New(primefield.New[M](c[2]), primefield.New[M](c[3]))
	return curve.NewPoint(x, y)
}

// formatSet renders the set as "{(x, y), ...}" in sorted order, or "{ }"
// when empty.
func formatSet[M primefield.Modulus](set *solve.SolutionSet[solve.Fp2[M]]) string {
	if set.Size() == 0 {
		return "{ }"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range solve.Sorted(set) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%v, %v)", p.X, p.Y)
	}
	sb.WriteByte('}')
	return sb.String()
}
