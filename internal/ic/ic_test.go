package ic

import (
	"math"
	"testing"

	"github.com/san-kum/advect/internal/fv"
)

func mustGrid(t *testing.T, x0, x1 float64, n int) *fv.Grid {
	t.Helper()
	g, err := fv.NewGrid(x0, x1, n)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	return g
}

func TestGaussianShape(t *testing.T) {
	p := NewGaussian(0.5, 0.1, 2.0)

	if got := p.Eval(0.5); math.Abs(got-2.0) > 1e-12 {
		t.Errorf("expected peak amplitude 2.0 at center, got %f", got)
	}
	if got := p.Eval(0.6); math.Abs(got-2.0*math.Exp(-1)) > 1e-12 {
		t.Errorf("expected amplitude/e one width away, got %f", got)
	}
	if p.Eval(0.0) >= p.Eval(0.4) {
		t.Error("expected decay away from center")
	}
}

func TestSquareShape(t *testing.T) {
	p := NewSquare(0.25, 0.75, 1.0)

	tests := []struct {
		x, want float64
	}{
		{0.5, 1.0},
		{0.25, 1.0}, // left edge inclusive
		{0.75, 0.0}, // right edge exclusive
		{0.1, 0.0},
		{0.9, 0.0},
	}

	for _, tt := range tests {
		if got := p.Eval(tt.x); got != tt.want {
			t.Errorf("Eval(%f): expected %f, got %f", tt.x, tt.want, got)
		}
	}
}

func TestTriangleShape(t *testing.T) {
	p := NewTriangle(0.5, 0.25, 1.0)

	if got := p.Eval(0.5); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("expected apex 1.0, got %f", got)
	}
	if got := p.Eval(0.375); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("expected 0.5 halfway down, got %f", got)
	}
	if got := p.Eval(0.75); got != 0 {
		t.Errorf("expected 0 outside base, got %f", got)
	}
}

func TestSineMeanIsZero(t *testing.T) {
	g := mustGrid(t, 0, 1, 64)
	p := NewSine(g.X0(), g.Length(), 1.0, 2)

	s := Sample(p, g)
	if mass := s.Mass(g.Dx()); math.Abs(mass) > 1e-12 {
		t.Errorf("expected zero mean for whole sine periods, got %g", mass)
	}
}

func TestSampleLength(t *testing.T) {
	g := mustGrid(t, 0, 1, 37)
	s := Sample(NewGaussian(0.5, 0.1, 1.0), g)
	if len(s) != 37 {
		t.Errorf("expected 37 samples, got %d", len(s))
	}
}

func TestExactAtZeroTimeEqualsSample(t *testing.T) {
	g := mustGrid(t, 0, 1, 16)
	p := NewTriangle(0.5, 0.25, 1.0)

	s := Sample(p, g)
	e := Exact(p, g, 1.0, 0.0)
	for i := range s {
		if s[i] != e[i] {
			t.Errorf("cell %d: sample %f != exact %f", i, s[i], e[i])
		}
	}
}

func TestExactAfterFullPeriod(t *testing.T) {
	// Advecting for exactly one domain traversal returns the profile.
	g := mustGrid(t, 0, 1, 32)
	p := NewGaussian(0.5, 0.1, 1.0)

	s := Sample(p, g)
	e := Exact(p, g, 1.0, 1.0)
	for i := range s {
		if math.Abs(s[i]-e[i]) > 1e-12 {
			t.Errorf("cell %d: expected %f, got %f", i, s[i], e[i])
		}
	}
}

func TestExactShiftsAgainstSpeed(t *testing.T) {
	g := mustGrid(t, 0, 1, 8)
	p := NewSquare(0.0, 0.25, 1.0)

	// After t=0.25 at speed 1 the pulse occupies [0.25, 0.5).
	e := Exact(p, g, 1.0, 0.25)
	want := fv.State{0, 0, 1, 1, 0, 0, 0, 0}
	for i := range want {
		if math.Abs(e[i]-want[i]) > 1e-12 {
			t.Errorf("cell %d: expected %f, got %f", i, want[i], e[i])
		}
	}
}
