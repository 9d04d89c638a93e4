package fv

import "math"

// Courant returns the Courant number |speed| * dt / dx.
func Courant(speed, dt, dx float64) float64 {
	return math.Abs(speed) * dt / dx
}

// CheckCFL reports whether (speed, dt, dx) satisfies the explicit stability
// bound |speed| * dt / dx <= 1. Advisory only: Step executes regardless, the
// result is just not guaranteed stable past the bound.
func CheckCFL(speed, dt, dx float64) bool {
	return Courant(speed, dt, dx) <= 1
}

// StableDt returns the time step giving the requested Courant number,
// courant * dx / |speed|. Zero speed yields +Inf; callers wanting a finite
// step must then choose dt explicitly.
func StableDt(speed, dx, courant float64) float64 {
	return courant * dx / math.Abs(speed)
}
