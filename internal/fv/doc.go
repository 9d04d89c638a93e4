// Package fv provides the finite-volume primitives for the advection solver.
//
// The package defines the core types for conservative time-marching of the
// scalar linear advection equation du/dt + c du/dx = 0 on a periodic domain:
//
//   - [State]: vector of cell-averaged solution values
//   - [Grid]: uniform periodic grid (cell count and spacing)
//   - [Scheme]: interface flux strategy evaluated at cell faces
//   - [PeriodicStepper]: one conservative update per call
//
// # Example
//
//	g, _ := fv.NewGrid(0, 1, 100)
//	stepper, _ := fv.NewPeriodicStepper(g.N(), g.Dx(), schemes.NewUpwind())
//	next, _ := stepper.Step(state, dt, speed)
//
// # Thread Safety
//
// A PeriodicStepper reuses an internal flux buffer and is NOT safe for
// concurrent Step calls. Independent runs should each construct their own
// stepper; see the sim package's Ensemble.
package fv
