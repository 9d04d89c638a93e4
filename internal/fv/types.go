package fv

import "math"

// State holds one cell-averaged value per grid cell, indexed left to right.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Mass returns the discrete integral of the state, sum(u_i) * dx. The
// conservative update preserves it up to roundoff.
func (s State) Mass(dx float64) float64 {
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum * dx
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) MinMax() (float64, float64) {
	if len(s) == 0 {
		return 0, 0
	}
	min, max := s[0], s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// TotalVariation returns sum |u_{i+1} - u_i| including the periodic seam.
func (s State) TotalVariation() float64 {
	n := len(s)
	if n < 2 {
		return 0
	}
	tv := 0.0
	for i := 0; i < n; i++ {
		tv += math.Abs(s[(i+1)%n] - s[i])
	}
	return tv
}
