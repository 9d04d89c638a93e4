package metrics

import (
	"math"

	"github.com/san-kum/advect/internal/fv"
)

// Overshoot measures how far any cell value escapes the [min, max] range of
// the first observed state. A monotone scheme never produces new extrema on
// this problem, so anything above roundoff flags a CFL violation.
type Overshoot struct {
	name         string
	initMin      float64
	initMax      float64
	maxOvershoot float64
	samples      int
}

func NewOvershoot() *Overshoot {
	return &Overshoot{name: "overshoot"}
}

func (o *Overshoot) Name() string { return o.name }

func (o *Overshoot) Observe(x fv.State, t float64) {
	min, max := x.MinMax()

	if o.samples == 0 {
		o.initMin = min
		o.initMax = max
	}
	o.samples++

	if max > o.initMax {
		o.maxOvershoot = math.Max(o.maxOvershoot, max-o.initMax)
	}
	if min < o.initMin {
		o.maxOvershoot = math.Max(o.maxOvershoot, o.initMin-min)
	}
}

func (o *Overshoot) Value() float64 {
	return o.maxOvershoot
}

func (o *Overshoot) Reset() {
	o.initMin = 0
	o.initMax = 0
	o.maxOvershoot = 0
	o.samples = 0
}
