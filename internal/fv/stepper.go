package fv

import "fmt"

// Scheme computes the numerical flux at one cell face from the two adjacent
// cell averages and the signed advection speed. Implementations must be pure:
// no state, no side effects. dx and dt are supplied for schemes whose flux
// depends on them; the stepper guarantees both are positive before calling.
type Scheme interface {
	Flux(uL, uR, speed, dx, dt float64) float64
	Name() string
}

// PeriodicStepper advances a state one time level under periodic boundary
// conditions. N, dx and the flux scheme are fixed at construction; each Step
// call is independent given its inputs.
type PeriodicStepper struct {
	n      int
	dx     float64
	scheme Scheme
	flux   []float64 // scratch, n+1 face values
}

func NewPeriodicStepper(n int, dx float64, scheme Scheme) (*PeriodicStepper, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyGrid, n)
	}
	if dx <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrNonPositiveDx, dx)
	}
	if scheme == nil {
		return nil, ErrNilScheme
	}
	return &PeriodicStepper{
		n:      n,
		dx:     dx,
		scheme: scheme,
		flux:   make([]float64, n+1),
	}, nil
}

func (p *PeriodicStepper) N() int         { return p.n }
func (p *PeriodicStepper) Dx() float64    { return p.dx }
func (p *PeriodicStepper) Scheme() Scheme { return p.scheme }

// Step computes the next time level:
//
//	u_j^{n+1} = u_j^n - (dt/dx) * (F_{j+1} - F_j)
//
// where F_i is the face flux between cells i-1 and i. The boundary faces wrap
// periodically, so F_0 and F_n share the same stencil (u_{n-1}, u_0) and the
// update telescopes: total mass is conserved up to roundoff.
//
// The full flux array is materialized before any cell is written, and the
// result is a fresh allocation, so every update reads values from the
// previous time level only. The input state is never modified.
func (p *PeriodicStepper) Step(state State, dt, speed float64) (State, error) {
	if len(state) != p.n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(state), p.n)
	}
	if dt <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrNonPositiveDt, dt)
	}

	n := p.n
	for i := 0; i <= n; i++ {
		// Face i sits between cell i-1 and cell i, with modulo wraparound
		// standing in for ghost cells.
		uL := state[(i+n-1)%n]
		uR := state[i%n]
		p.flux[i] = p.scheme.Flux(uL, uR, speed, p.dx, dt)
	}

	next := make(State, n)
	r := dt / p.dx
	for j := 0; j < n; j++ {
		next[j] = state[j] - r*(p.flux[j+1]-p.flux[j])
	}
	return next, nil
}
