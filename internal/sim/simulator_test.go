package sim_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/advect/internal/fv"
	"github.com/san-kum/advect/internal/schemes"
	"github.com/san-kum/advect/internal/sim"
)

// pulse builds a smooth bump on n cells of the unit domain.
func pulse(n int) fv.State {
	dx := 1.0 / float64(n)
	x := make(fv.State, n)
	for i := range x {
		c := (float64(i) + 0.5) * dx
		d := (c - 0.5) / 0.1
		x[i] = math.Exp(-d * d)
	}
	return x
}

var _ = Describe("Simulator", func() {
	const n = 64
	const dx = 1.0 / 64

	var (
		simulator *sim.Simulator
		x0        fv.State
	)

	BeforeEach(func() {
		stepper, err := fv.NewPeriodicStepper(n, dx, schemes.NewUpwind())
		Expect(err).NotTo(HaveOccurred())
		simulator = sim.New(stepper)
		x0 = pulse(n)
	})

	It("collects the initial snapshot plus every stride-th state", func() {
		cfg := sim.Config{
			Dt:            dx, // 64 steps over a unit duration
			Speed:         1.0,
			Duration:      1.0,
			SnapshotEvery: 8,
			ValidateState: true,
		}

		result, err := simulator.Run(context.Background(), x0, cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.StepsTaken).To(Equal(64))
		Expect(result.Snapshots).To(HaveLen(9))
		Expect(result.Times).To(HaveLen(9))
		Expect(result.Times[0]).To(BeZero())
		Expect(result.Times[8]).To(BeNumerically("~", 1.0, 1e-12))
	})

	It("always keeps the final state even off stride", func() {
		cfg := sim.Config{
			Dt:            dx,
			Speed:         1.0,
			Duration:      10 * dx, // 10 steps, stride 4 keeps 4, 8 and 10
			SnapshotEvery: 4,
			ValidateState: true,
		}

		result, err := simulator.Run(context.Background(), x0, cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.StepsTaken).To(Equal(10))
		Expect(result.Snapshots).To(HaveLen(4))
		Expect(result.Final()).To(HaveLen(n))
	})

	It("conserves mass over the run", func() {
		cfg := sim.DefaultConfig()
		result, err := simulator.Run(context.Background(), x0, cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.MassDrift).To(BeNumerically("<", 1e-12))
	})

	It("derives the time step from the courant number", func() {
		cfg := sim.Config{
			Courant:       0.5,
			Speed:         1.0,
			Duration:      1.0,
			ValidateState: true,
		}

		result, err := simulator.Run(context.Background(), x0, cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Dt).To(BeNumerically("~", 0.5*dx, 1e-15))
	})

	It("feeds metrics every time level including the final one", func() {
		counter := &countingMetric{}
		simulator.AddMetric(counter)

		cfg := sim.Config{Dt: dx, Speed: 1.0, Duration: 10 * dx, ValidateState: true}
		result, err := simulator.Run(context.Background(), x0, cfg)
		Expect(err).NotTo(HaveOccurred())

		// Initial state plus one observation per accepted step.
		Expect(result.Metrics).To(HaveKeyWithValue("count", float64(result.StepsTaken+1)))
		Expect(counter.lastT).To(BeNumerically("~", 10*dx, 1e-12))
	})

	It("rejects a non-positive duration", func() {
		cfg := sim.Config{Dt: dx, Speed: 1.0, Duration: 0}
		_, err := simulator.Run(context.Background(), x0, cfg)
		Expect(err).To(HaveOccurred())
	})

	It("rejects a run with neither dt nor a courant number", func() {
		cfg := sim.Config{Speed: 1.0, Duration: 1.0}
		_, err := simulator.Run(context.Background(), x0, cfg)
		Expect(err).To(HaveOccurred())
	})

	It("refuses to derive dt at zero speed", func() {
		cfg := sim.Config{Courant: 0.5, Speed: 0, Duration: 1.0}
		_, err := simulator.Run(context.Background(), x0, cfg)
		Expect(err).To(MatchError(ContainSubstring("set dt explicitly")))
	})

	It("stops on context cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		cfg := sim.Config{Dt: dx, Speed: 1.0, Duration: 1.0}
		result, err := simulator.Run(ctx, x0, cfg)
		Expect(err).To(MatchError(context.Canceled))
		Expect(result).NotTo(BeNil())
		Expect(result.StepsTaken).To(BeZero())
	})

	It("records a step error and stops when the state goes non-finite", func() {
		bad := x0.Clone()
		bad[3] = math.NaN()

		cfg := sim.Config{Dt: dx, Speed: 1.0, Duration: 1.0, ValidateState: true}
		result, err := simulator.Run(context.Background(), bad, cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Errors).To(HaveLen(1))
		Expect(result.Errors[0]).To(MatchError(fv.ErrNonFiniteState))
		Expect(result.StepsTaken).To(BeZero())
	})
})

var _ = Describe("Ensemble", func() {
	const n = 64
	const dx = 1.0 / 64

	newRun := func(scheme fv.Scheme) sim.Run {
		stepper, err := fv.NewPeriodicStepper(n, dx, scheme)
		Expect(err).NotTo(HaveOccurred())
		return sim.Run{
			Simulator: sim.New(stepper),
			Initial:   pulse(n),
			Config:    sim.DefaultConfig(),
		}
	}

	It("runs members concurrently and keeps their order", func() {
		ensemble := sim.NewEnsemble(
			newRun(schemes.NewUpwind()),
			newRun(schemes.NewLaxWendroff()),
		)

		results, err := ensemble.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(2))

		for _, r := range results {
			Expect(r.MassDrift).To(BeNumerically("<", 1e-12))
		}
		// Same stable dt, different schemes, so the runs march in lockstep
		// but produce different states.
		Expect(results[0].Dt).To(Equal(results[1].Dt))
		Expect(results[0].Final()).NotTo(Equal(results[1].Final()))
	})

	It("matches a serial run of the same member", func() {
		run := newRun(schemes.NewUpwind())
		serial, err := run.Simulator.Run(context.Background(), run.Initial, run.Config)
		Expect(err).NotTo(HaveOccurred())

		parallel, err := sim.NewEnsemble(newRun(schemes.NewUpwind())).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(parallel[0].Final()).To(Equal(serial.Final()))
	})

	It("propagates a member failure", func() {
		bad := newRun(schemes.NewUpwind())
		bad.Config.Duration = -1

		_, err := sim.NewEnsemble(bad).Run(context.Background())
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("RunWithCallback", func() {
	It("stops as soon as the callback declines", func() {
		stepper, err := fv.NewPeriodicStepper(64, 1.0/64, schemes.NewUpwind())
		Expect(err).NotTo(HaveOccurred())
		simulator := sim.New(stepper)

		calls := 0
		cfg := sim.Config{Dt: 1.0 / 64, Speed: 1.0, Duration: 1.0, ValidateState: true}
		err = simulator.RunWithCallback(context.Background(), pulse(64), cfg, func(x fv.State, t float64) bool {
			calls++
			return calls < 3
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(3))
	})
})

// countingMetric counts observations and remembers the last observed time.
type countingMetric struct {
	count int
	lastT float64
}

func (c *countingMetric) Name() string { return "count" }

func (c *countingMetric) Observe(x fv.State, t float64) {
	c.count++
	c.lastT = t
}

func (c *countingMetric) Value() float64 { return float64(c.count) }

func (c *countingMetric) Reset() {
	c.count = 0
	c.lastT = 0
}
