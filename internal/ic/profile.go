// Package ic provides initial-condition profiles for the advection solver.
//
// Each profile is a scalar function on the periodic domain. Because linear
// advection just translates the initial data, every profile doubles as its
// own exact solution: u(x, t) = u0(x - speed*t) with periodic wraparound,
// which the analysis package uses for error norms and convergence studies.
package ic

import "github.com/san-kum/advect/internal/fv"

// Profile evaluates an initial condition at a point of the domain. Eval is
// only called with coordinates already wrapped into [x0, x1).
type Profile interface {
	Eval(x float64) float64
	Name() string
}

// Sample returns the profile evaluated at every cell center.
func Sample(p Profile, g *fv.Grid) fv.State {
	s := make(fv.State, g.N())
	for i := range s {
		s[i] = p.Eval(g.Center(i))
	}
	return s
}

// Exact returns the advected solution at time t, sampled at cell centers.
func Exact(p Profile, g *fv.Grid, speed, t float64) fv.State {
	s := make(fv.State, g.N())
	for i := range s {
		s[i] = p.Eval(g.Wrap(g.Center(i) - speed*t))
	}
	return s
}
