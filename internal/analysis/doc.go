// Package analysis provides accuracy diagnostics for solver runs.
//
// Linear advection has a closed-form solution (the translated initial
// profile), so a run's error is directly measurable:
//
//   - [Norms]: discrete L1/L2/Linf error against the exact solution
//   - [Study]: grid-refinement convergence study with observed order
//   - [PowerSpectrum]: spatial spectrum of a profile, which makes each
//     scheme's damping of high wavenumbers directly visible
package analysis
