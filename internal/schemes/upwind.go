package schemes

import "math"

// Upwind is the first-order monotone flux. For speed > 0 it reduces to
// speed*uL, for speed < 0 to speed*uR: information is taken from the side
// it flows in from.
type Upwind struct{}

func NewUpwind() *Upwind {
	return &Upwind{}
}

func (*Upwind) Flux(uL, uR, speed, _, _ float64) float64 {
	return 0.5*speed*(uL+uR) - 0.5*math.Abs(speed)*(uR-uL)
}

func (*Upwind) Name() string { return "upwind" }
