package fv

import "errors"

// Configuration errors are raised before any computation touches a state.
var (
	// ErrEmptyGrid indicates a cell count below one.
	ErrEmptyGrid = errors.New("fv: grid needs at least one cell")

	// ErrDomainBounds indicates a domain whose upper bound does not exceed its lower bound.
	ErrDomainBounds = errors.New("fv: domain upper bound must exceed lower bound")

	// ErrNonPositiveDx indicates a non-positive cell spacing.
	ErrNonPositiveDx = errors.New("fv: dx must be positive")

	// ErrNonPositiveDt indicates a non-positive time step.
	ErrNonPositiveDt = errors.New("fv: dt must be positive")

	// ErrNilScheme indicates a stepper constructed without a flux scheme.
	ErrNilScheme = errors.New("fv: flux scheme is nil")

	// ErrDimensionMismatch indicates a state whose length differs from the grid.
	ErrDimensionMismatch = errors.New("fv: state length does not match cell count")

	// ErrNonFiniteState indicates NaN or Inf in a computed state, usually an
	// upstream CFL violation rather than a configuration problem.
	ErrNonFiniteState = errors.New("fv: non-finite value in state (NaN or Inf)")
)
