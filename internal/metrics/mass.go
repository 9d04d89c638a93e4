package metrics

import (
	"math"

	"github.com/san-kum/advect/internal/fv"
)

// MassDrift tracks the worst relative deviation of total mass from the first
// observed state. A conservative scheme keeps this at roundoff level.
type MassDrift struct {
	name        string
	dx          float64
	initialMass float64
	maxDrift    float64
	samples     int
}

func NewMassDrift(dx float64) *MassDrift {
	return &MassDrift{
		name: "mass_drift",
		dx:   dx,
	}
}

func (m *MassDrift) Name() string { return m.name }

func (m *MassDrift) Observe(x fv.State, t float64) {
	mass := x.Mass(m.dx)

	if m.samples == 0 {
		m.initialMass = mass
	}
	m.samples++

	var drift float64
	if m.initialMass != 0 {
		drift = math.Abs(mass-m.initialMass) / math.Abs(m.initialMass)
	} else {
		drift = math.Abs(mass - m.initialMass)
	}
	m.maxDrift = math.Max(m.maxDrift, drift)
}

func (m *MassDrift) Value() float64 {
	return m.maxDrift
}

func (m *MassDrift) Reset() {
	m.initialMass = 0
	m.maxDrift = 0
	m.samples = 0
}
