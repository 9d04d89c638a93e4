package sim

import (
	"fmt"

	"github.com/san-kum/advect/internal/fv"
)

// Metric accumulates a scalar diagnostic over the states of a run.
type Metric interface {
	Name() string
	Observe(x fv.State, t float64)
	Value() float64
	Reset()
}

// Observer is notified of every state the time loop visits.
type Observer interface {
	OnStep(x fv.State, t float64)
}

type Config struct {
	// Dt is the time step. When zero, it is derived from Courant as
	// dt = Courant * dx / |Speed|.
	Dt float64
	// Courant is the target Courant number for the derived time step.
	Courant float64
	Speed   float64
	// Duration is the simulated time span.
	Duration float64
	// SnapshotEvery keeps every k-th state in the result (1 = all). The
	// initial and final states are always kept.
	SnapshotEvery int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Courant:       0.5,
		Speed:         1.0,
		Duration:      1.0,
		SnapshotEvery: 1,
		ValidateState: true,
	}
}

type Result struct {
	Snapshots  []fv.State
	Times      []float64
	Metrics    map[string]float64
	MassDrift  float64
	StepsTaken int
	Dt         float64
	Errors     []error
}

// Final returns the last retained snapshot.
func (r *Result) Final() fv.State {
	if len(r.Snapshots) == 0 {
		return nil
	}
	return r.Snapshots[len(r.Snapshots)-1]
}

// StepError tags an error with the step index and simulated time it occurred at.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
