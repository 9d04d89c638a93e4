package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/advect/internal/fv"
)

// Simulator owns the time loop around a PeriodicStepper: it derives the time
// step, collects snapshots, feeds metrics and observers, and stops on context
// cancellation or a non-finite state.
type Simulator struct {
	stepper   *fv.PeriodicStepper
	metrics   []Metric
	observers []Observer
}

func New(stepper *fv.PeriodicStepper) *Simulator {
	return &Simulator{
		stepper:   stepper,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)           { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer)       { s.observers = append(s.observers, o) }
func (s *Simulator) Stepper() *fv.PeriodicStepper { return s.stepper }

func (s *Simulator) notify(x fv.State, t float64) {
	for _, m := range s.metrics {
		m.Observe(x, t)
	}
	for _, obs := range s.observers {
		obs.OnStep(x, t)
	}
}

func (s *Simulator) Run(ctx context.Context, x0 fv.State, cfg Config) (*Result, error) {
	dt, err := s.resolveDt(cfg)
	if err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / dt)
	stride := cfg.SnapshotEvery
	if stride < 1 {
		stride = 1
	}

	result := &Result{
		Snapshots: make([]fv.State, 0, steps/stride+2),
		Times:     make([]float64, 0, steps/stride+2),
		Metrics:   make(map[string]float64),
		Errors:    make([]error, 0),
		Dt:        dt,
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	t := 0.0

	result.Snapshots = append(result.Snapshots, x.Clone())
	result.Times = append(result.Times, t)

	initialMass := x.Mass(s.stepper.Dx())

	// Observe every time level exactly once: the initial state here, each
	// accepted state inside the loop. A rejected computed state is never
	// observed.
	s.notify(x, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		next, stepErr := s.stepper.Step(x, dt, cfg.Speed)
		if stepErr != nil {
			result.Errors = append(result.Errors, &StepError{Step: i, Time: t, Wrapped: stepErr})
			return result, stepErr
		}

		if cfg.ValidateState && !next.IsValid() {
			result.Errors = append(result.Errors, &StepError{Step: i, Time: t, Wrapped: fv.ErrNonFiniteState})
			break
		}

		x = next
		t += dt
		result.StepsTaken++

		s.notify(x, t)

		if result.StepsTaken%stride == 0 || result.StepsTaken == steps {
			result.Snapshots = append(result.Snapshots, x.Clone())
			result.Times = append(result.Times, t)
		}
	}

	finalMass := x.Mass(s.stepper.Dx())
	if initialMass != 0 {
		result.MassDrift = math.Abs(finalMass-initialMass) / math.Abs(initialMass)
	} else {
		result.MassDrift = math.Abs(finalMass - initialMass)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback drives the loop without accumulating a Result; the callback
// sees every state and returns false to stop early. Used by the live view.
func (s *Simulator) RunWithCallback(ctx context.Context, x0 fv.State, cfg Config, callback func(x fv.State, t float64) bool) error {
	dt, err := s.resolveDt(cfg)
	if err != nil {
		return err
	}

	x := x0.Clone()
	t := 0.0

	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(x, t) {
			return nil
		}

		next, stepErr := s.stepper.Step(x, dt, cfg.Speed)
		if stepErr != nil {
			return stepErr
		}
		if cfg.ValidateState && !next.IsValid() {
			return &StepError{Time: t, Wrapped: fv.ErrNonFiniteState}
		}
		x = next
		t += dt
	}

	return nil
}

func (s *Simulator) resolveDt(cfg Config) (float64, error) {
	if cfg.Duration <= 0 {
		return 0, fmt.Errorf("sim: duration must be positive, got %g", cfg.Duration)
	}
	dt := cfg.Dt
	if dt == 0 {
		if cfg.Courant <= 0 {
			return 0, fmt.Errorf("sim: need dt or a positive courant number")
		}
		dt = fv.StableDt(cfg.Speed, s.stepper.Dx(), cfg.Courant)
	}
	if dt <= 0 {
		return 0, fmt.Errorf("%w: got %g", fv.ErrNonPositiveDt, dt)
	}
	if math.IsInf(dt, 0) || math.IsNaN(dt) {
		return 0, fmt.Errorf("sim: cannot derive dt from courant %g at speed %g; set dt explicitly", cfg.Courant, cfg.Speed)
	}
	return dt, nil
}
