package metrics

import (
	"math"

	"github.com/san-kum/advect/internal/fv"
)

// VariationGrowth records the largest total variation seen relative to the
// first observed state. Both schemes are total-variation diminishing inside
// the CFL bound, so a value above 1 flags an unstable run.
type VariationGrowth struct {
	name      string
	initialTV float64
	maxRatio  float64
	samples   int
}

func NewVariationGrowth() *VariationGrowth {
	return &VariationGrowth{name: "tv_growth"}
}

func (v *VariationGrowth) Name() string { return v.name }

func (v *VariationGrowth) Observe(x fv.State, t float64) {
	tv := x.TotalVariation()

	if v.samples == 0 {
		v.initialTV = tv
	}
	v.samples++

	if v.initialTV == 0 {
		return
	}
	v.maxRatio = math.Max(v.maxRatio, tv/v.initialTV)
}

func (v *VariationGrowth) Value() float64 {
	if v.samples == 0 || v.initialTV == 0 {
		return 1.0
	}
	return v.maxRatio
}

func (v *VariationGrowth) Reset() {
	v.initialTV = 0
	v.maxRatio = 0
	v.samples = 0
}
