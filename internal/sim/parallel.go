package sim

import (
	"context"
	"sync"

	"github.com/san-kum/advect/internal/fv"
)

// Run pairs a simulator with its own initial state and config. Members share
// nothing, so an Ensemble executes them concurrently.
type Run struct {
	Simulator *Simulator
	Initial   fv.State
	Config    Config
}

// Ensemble executes independent runs in parallel. Each run must use its own
// stepper (the stepper's flux buffer is not shared safely); the registry and
// experiment packages construct them that way.
type Ensemble struct {
	runs []Run
}

func NewEnsemble(runs ...Run) *Ensemble {
	return &Ensemble{runs: runs}
}

func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, len(e.runs))
	errs := make([]error, len(e.runs))

	var wg sync.WaitGroup
	for i := range e.runs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			r := e.runs[idx]
			results[idx], errs[idx] = r.Simulator.Run(ctx, r.Initial, r.Config)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
