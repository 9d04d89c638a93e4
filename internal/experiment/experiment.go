package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/advect/internal/fv"
	"github.com/san-kum/advect/internal/ic"
	"github.com/san-kum/advect/internal/sim"
)

// Config names everything needed to reproduce a run.
type Config struct {
	Scheme        string
	Profile       string
	Cells         int
	DomainMin     float64
	DomainMax     float64
	Speed         float64
	Courant       float64
	Dt            float64
	Duration      float64
	SnapshotEvery int
	ProfileParams map[string]float64
}

// Experiment wires a grid, profile, stepper and metrics together and runs
// the simulation once.
type Experiment struct {
	cfg       Config
	grid      *fv.Grid
	profile   ic.Profile
	simulator *sim.Simulator
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(registry *Registry) error {
	g, err := fv.NewGrid(e.cfg.DomainMin, e.cfg.DomainMax, e.cfg.Cells)
	if err != nil {
		return err
	}

	scheme, err := registry.GetScheme(e.cfg.Scheme)
	if err != nil {
		return err
	}

	profile, err := registry.GetProfile(e.cfg.Profile, g, e.cfg.ProfileParams)
	if err != nil {
		return err
	}

	stepper, err := fv.NewPeriodicStepper(g.N(), g.Dx(), scheme)
	if err != nil {
		return err
	}

	e.grid = g
	e.profile = profile
	e.simulator = sim.New(stepper)
	for _, m := range registry.DefaultMetrics(g.Dx()) {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	x0 := ic.Sample(e.profile, e.grid)

	simCfg := sim.Config{
		Dt:            e.cfg.Dt,
		Courant:       e.cfg.Courant,
		Speed:         e.cfg.Speed,
		Duration:      e.cfg.Duration,
		SnapshotEvery: e.cfg.SnapshotEvery,
		ValidateState: true,
	}

	return e.simulator.Run(ctx, x0, simCfg)
}

func (e *Experiment) Grid() *fv.Grid            { return e.grid }
func (e *Experiment) Profile() ic.Profile       { return e.profile }
func (e *Experiment) Simulator() *sim.Simulator { return e.simulator }
