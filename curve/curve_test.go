package curve

import (
	"errors"
	"testing"

	"github.com/f3rmion/fp2/algebra"
	"github.com/f3rmion/fp2/primefield"
	"github.com/f3rmion/fp2/quadext"
)

type f7 = primefield.Element[primefield.P7]

type f49 = quadext.Element[f7]

func n7(v uint64) f7 { return primefield.New[primefield.P7](v) }

func c7(re, im uint64) f49 { return quadext.New(n7(re), n7(im)) }

func pt(x, y uint64) Point[f7] { return NewPoint(n7(x), n7(y)) }

// points7 returns every affine point of c over F_7.
func points7(c Curve[f7]) []Point[f7] {
	var pts []Point[f7]
	for x := range primefield.All[primefield.P7]() {
		for y := range primefield.All[primefield.P7]() {
			if p := NewPoint(x, y); c.IsOnCurve(p) {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

// points49 returns every affine point of c over F_49.
func points49(c Curve[f49]) []Point[f49] {
	var pts []Point[f49]
	base := primefield.All[primefield.P7]()
	for x := range quadext.All(base) {
		for y := range quadext.All(base) {
			if p := NewPoint(x, y); c.IsOnCurve(p) {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

func TestPoint(t *testing.T) {
	a := n7(1)

	t.Run("Chord", func(t *testing.T) {
		r, err := pt(0, 1).Add(pt(2, 2), a)
		if err != nil {
			t.Fatal(err)
		}
		if !r.Equal(pt(0, 6)) {
			t.Errorf("(0,1)+(2,2) = %v, want (0, 6)", r)
		}
	})

	t.Run("Tangent", func(t *testing.T) {
		r, err := pt(0, 1).Double(a)
		if err != nil {
			t.Fatal(err)
		}
		if !r.Equal(pt(2, 5)) {
			t.Errorf("2(0,1) = %v, want (2, 5)", r)
		}
	})

	t.Run("Identity", func(t *testing.T) {
		p := pt(2, 2)
		o := Infinity[f7]()
		if r, _ := p.Add(o, a); !r.Equal(p) {
			t.Errorf("P + O = %v", r)
		}
		if r, _ := o.Add(p, a); !r.Equal(p) {
			t.Errorf("O + P = %v", r)
		}
		if r, _ := o.Add(o, a); !r.IsInfinity() {
			t.Errorf("O + O = %v", r)
		}
	})

	t.Run("Inverse", func(t *testing.T) {
		p := pt(2, 2)
		if got := p.Neg(); !got.Equal(pt(2, 5)) {
			t.Errorf("-P = %v", got)
		}
		r, err := p.Add(p.Neg(), a)
		if err != nil {
			t.Fatal(err)
		}
		if !r.IsInfinity() {
			t.Errorf("P + (-P) = %v", r)
		}
		if o := Infinity[f7](); !o.Neg().IsInfinity() {
			t.Error("-O != O")
		}
	})

	t.Run("TwoTorsionNotAddable", func(t *testing.T) {
		// (0, 0) lies on y² = x³ + x and has a vertical tangent
		p := pt(0, 0)
		_, err := p.Double(n7(1))
		if !errors.Is(err, ErrNotAddable) {
			t.Errorf("expected ErrNotAddable, got %v", err)
		}
		if !errors.Is(err, algebra.ErrNoInverse) {
			t.Errorf("expected ErrNoInverse, got %v", err)
		}
	})

	t.Run("ZeroValueIsInfinity", func(t *testing.T) {
		var p Point[f7]
		if !p.IsInfinity() || !p.Equal(Infinity[f7]()) {
			t.Error("zero value should be the point at infinity")
		}
		if _, _, ok := p.Coordinates(); ok {
			t.Error("infinity should have no affine coordinates")
		}
	})

	t.Run("String", func(t *testing.T) {
		if got := Infinity[f7]().String(); got != "O" {
			t.Errorf("got %q", got)
		}
		if got := NewPoint(c7(0, 3), c7(2, 1)).String(); got != "(3i, (2 + 1i))" {
			t.Errorf("got %q", got)
		}
	})
}

func TestCurve(t *testing.T) {
	c := New(n7(1), n7(1))

	t.Run("PointCount", func(t *testing.T) {
		// #E(F_7) = 5 for y² = x³ + x + 1
		if got := len(points7(c)); got != 4 {
			t.Errorf("got %d affine points, want 4", got)
		}
	})

	t.Run("ScalarMul", func(t *testing.T) {
		p := pt(0, 1)
		acc := Infinity[f7]()
		for n := range uint64(12) {
			got, err := c.ScalarMul(n, p)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(acc) {
				t.Errorf("%d·P = %v, want %v", n, got, acc)
			}
			if acc, err = c.addSafe(acc, p); err != nil {
				t.Fatal(err)
			}
		}
		if r, _ := c.ScalarMul(5, p); !r.IsInfinity() {
			t.Errorf("5·P = %v, want O", r)
		}
	})

	t.Run("Order", func(t *testing.T) {
		for _, p := range points7(c) {
			if n, ok := c.Order(p, 100); !ok || n != 5 {
				t.Errorf("order of %v = %d, %v; want 5", p, n, ok)
			}
		}
		if n, ok := c.Order(Infinity[f7](), 10); !ok || n != 1 {
			t.Errorf("order of O = %d, %v", n, ok)
		}
		if _, ok := c.Order(pt(0, 1), 3); ok {
			t.Error("order 5 should not be found within limit 3")
		}
	})

	t.Run("TwoTorsion", func(t *testing.T) {
		e := New(n7(1), n7(0))
		p := pt(0, 0)
		if !e.IsOnCurve(p) {
			t.Fatal("(0,0) should be on y^2 = x^3 + x")
		}
		r, err := e.ScalarMul(2, p)
		if err != nil {
			t.Fatal(err)
		}
		if !r.IsInfinity() {
			t.Errorf("2·(0,0) = %v, want O", r)
		}
		if n, ok := e.Order(p, 10); !ok || n != 2 {
			t.Errorf("order = %d, want 2", n)
		}
	})

	t.Run("Discriminant", func(t *testing.T) {
		// -16·31 = -496 = 1 mod 7
		if got := c.Discriminant(); got != n7(1) {
			t.Errorf("discriminant = %v, want 1", got)
		}
		if c.IsSingular() {
			t.Error("y^2 = x^3 + x + 1 is not singular")
		}
		// 4(-3)³ + 27·2² = 0
		if !New(primefield.FromInt[primefield.P7](-3), n7(2)).IsSingular() {
			t.Error("y^2 = x^3 - 3x + 2 is singular")
		}
		if !New(n7(0), n7(0)).IsSingular() {
			t.Error("y^2 = x^3 is singular")
		}
	})

	t.Run("String", func(t *testing.T) {
		cases := []struct {
			c    Curve[f7]
			want string
		}{
			{c, "y^2 = x^3 + x + 1"},
			{New(n7(0), n7(0)), "y^2 = x^3"},
			{New(n7(3), n7(0)), "y^2 = x^3 + 3x"},
			{New(n7(0), n7(1)), "y^2 = x^3 + 1"},
			{New(primefield.FromInt[primefield.P7](-3), n7(2)), "y^2 = x^3 + 4x + 2"},
		}
		for _, tc := range cases {
			if got := tc.c.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		}
	})
}

func TestGroupLawF49(t *testing.T) {
	one := c7(1, 0)
	c := New(one, one)
	pts := points49(c)

	// #E(F_49) = 49 + 1 - (t² - 2·7) with t = 3
	if len(pts) != 54 {
		t.Fatalf("got %d affine points over F_49, want 54", len(pts))
	}

	t.Run("IdentityAndInverse", func(t *testing.T) {
		for _, p := range pts {
			if r, _ := c.Add(p, Infinity[f49]()); !r.Equal(p) {
				t.Errorf("%v + O = %v", p, r)
			}
			if !c.IsOnCurve(p.Neg()) {
				t.Errorf("-%v not on curve", p)
			}
			r, err := c.Add(p, p.Neg())
			if err != nil {
				t.Fatal(err)
			}
			if !r.IsInfinity() {
				t.Errorf("%v + -%v = %v", p, p, r)
			}
		}
	})

	t.Run("ClosureAndCommutativity", func(t *testing.T) {
		for _, p := range pts {
			for _, q := range pts {
				pq, err1 := c.addSafe(p, q)
				qp, err2 := c.addSafe(q, p)
				if err1 != nil || err2 != nil {
					t.Fatalf("%v + %v: %v / %v", p, q, err1, err2)
				}
				if !c.IsOnCurve(pq) {
					t.Errorf("%v + %v = %v not on curve", p, q, pq)
				}
				if !pq.Equal(qp) {
					t.Errorf("%v + %v != %v + %v", p, q, q, p)
				}
			}
		}
	})

	t.Run("Associativity", func(t *testing.T) {
		sample := pts[:8]
		for _, p := range sample {
			for _, q := range sample {
				for _, r := range sample {
					pq, _ := c.addSafe(p, q)
					left, _ := c.addSafe(pq, r)
					qr, _ := c.addSafe(q, r)
					right, _ := c.addSafe(p, qr)
					if !left.Equal(right) {
						t.Errorf("(%v+%v)+%v != %v+(%v+%v)", p, q, r, p, q, r)
					}
				}
			}
		}
	})

	t.Run("Lagrange", func(t *testing.T) {
		for _, p := range pts {
			r, err := c.ScalarMul(55, p)
			if err != nil {
				t.Fatal(err)
			}
			if !r.IsInfinity() {
				t.Errorf("55·%v = %v, want O", p, r)
			}
		}
	})
}
