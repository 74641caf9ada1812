package poly

import (
	"testing"

	"github.com/f3rmion/fp2/primefield"
	"github.com/f3rmion/fp2/quadext"
)

type f7 = primefield.Element[primefield.P7]

type f49 = quadext.Element[f7]

func n7(v uint64) f7 { return primefield.New[primefield.P7](v) }

func c7(re, im uint64) f49 { return quadext.New(n7(re), n7(im)) }

func elements() []f49 {
	var all []f49
	for x := range quadext.All(primefield.All[primefield.P7]()) {
		all = append(all, x)
	}
	return all
}

func TestEvaluate(t *testing.T) {
	t.Run("ZeroPolynomial", func(t *testing.T) {
		polys := []*Polynomial[f49]{
			New[f49](),
			New(c7(0, 0)),
			New(c7(0, 0), c7(0, 0), c7(0, 0), c7(0, 0)),
		}
		for _, p := range polys {
			for _, x := range elements() {
				if got := p.Evaluate(x); !got.IsZero() {
					t.Errorf("zero polynomial of degree %d at %v = %v", p.Degree(), x, got)
				}
			}
		}
	})

	t.Run("Constant", func(t *testing.T) {
		p := New(c7(3, 4))
		for _, x := range elements() {
			if got := p.Evaluate(x); got != c7(3, 4) {
				t.Errorf("constant at %v = %v", x, got)
			}
		}
	})

	t.Run("MatchesDirect", func(t *testing.T) {
		a, b := c7(1, 0), c7(1, 0)
		f := Weierstrass(a, b)
		for _, x := range elements() {
			want := x.Mul(x).Mul(x).Add(a.Mul(x)).Add(b)
			if got := f.Evaluate(x); got != want {
				t.Errorf("f(%v) = %v, want %v", x, got, want)
			}
		}
	})

	t.Run("TrailingZeros", func(t *testing.T) {
		p := New(c7(1, 1), c7(2, 0))
		q := New(c7(1, 1), c7(2, 0), c7(0, 0), c7(0, 0))
		if q.Degree() != 3 {
			t.Errorf("degree = %d, want 3", q.Degree())
		}
		for _, x := range elements() {
			if p.Evaluate(x) != q.Evaluate(x) {
				t.Errorf("trailing zeros changed value at %v", x)
			}
		}
	})

	t.Run("Linear", func(t *testing.T) {
		p := New(c7(1, 2), c7(3, 0), c7(0, 5))
		q := New(c7(6, 6), c7(0, 1), c7(4, 4))
		sum := New(c7(0, 1), c7(3, 1), c7(4, 2))
		for _, x := range elements() {
			if got := sum.Evaluate(x); got != p.Evaluate(x).Add(q.Evaluate(x)) {
				t.Errorf("(p+q)(%v) = %v", x, got)
			}
		}
	})

	t.Run("PrimeField", func(t *testing.T) {
		p := New(n7(1), n7(0), n7(1)) // x² + 1 has no root mod 7
		for x := range primefield.All[primefield.P7]() {
			if p.Evaluate(x).IsZero() {
				t.Errorf("x^2+1 vanishes at %v", x)
			}
		}
	})
}

func TestCoefficientsCopied(t *testing.T) {
	coeffs := []f49{c7(1, 0), c7(2, 0)}
	p := New(coeffs...)
	coeffs[0] = c7(5, 5)
	if got := p.Coefficients()[0]; got != c7(1, 0) {
		t.Errorf("New did not copy: c0 = %v", got)
	}
	out := p.Coefficients()
	out[1] = c7(6, 6)
	if got := p.Coefficients()[1]; got != c7(2, 0) {
		t.Errorf("Coefficients did not copy: c1 = %v", got)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		p    *Polynomial[f49]
		v    string
		want string
	}{
		{Weierstrass(c7(1, 0), c7(1, 0)), "x", "x^3 + x + 1"},
		{Weierstrass(c7(0, 0), c7(3, 2)), "x", "x^3 + (3 + 2i)"},
		{Weierstrass(c7(0, 2), c7(0, 0)), "x", "x^3 + 2ix"},
		{Square[f49](), "y", "y^2"},
		{New(c7(0, 0), c7(0, 0)), "x", "0"},
		{New(c7(1, 0)), "x", "1"},
		{New(c7(0, 0), c7(4, 0), c7(1, 0)), "t", "t^2 + 4t"},
	}
	for _, c := range cases {
		if got := c.p.Format(c.v); got != c.want {
			t.Errorf("Format(%q) = %q, want %q", c.v, got, c.want)
		}
	}
	if got := Weierstrass(c7(1, 0), c7(1, 0)).String(); got != "x^3 + x + 1" {
		t.Errorf("String() = %q", got)
	}
}
