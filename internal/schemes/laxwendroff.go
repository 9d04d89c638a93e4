package schemes

// LaxWendroff couples the averaged flux to a dx/dt-scaled correction term.
// Unlike Upwind its dissipation coefficient is tied to the time step rather
// than the speed, so the flux value changes with dt; the stepper rejects
// dt <= 0 before this is ever evaluated. When |speed| = dx/dt the formula
// degenerates to the upwind flux and the scheme advects exactly; at smaller
// Courant numbers the grid-speed coefficient dominates and the scheme is
// markedly more diffusive than upwind.
type LaxWendroff struct{}

func NewLaxWendroff() *LaxWendroff {
	return &LaxWendroff{}
}

func (*LaxWendroff) Flux(uL, uR, speed, dx, dt float64) float64 {
	return 0.5*speed*(uL+uR) - 0.5*(dx/dt)*(uR-uL)
}

func (*LaxWendroff) Name() string { return "laxwendroff" }
