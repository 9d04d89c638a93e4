package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/advect/internal/analysis"
	"github.com/san-kum/advect/internal/config"
	"github.com/san-kum/advect/internal/experiment"
	"github.com/san-kum/advect/internal/fv"
	"github.com/san-kum/advect/internal/ic"
	"github.com/san-kum/advect/internal/sim"
	"github.com/san-kum/advect/internal/storage"
	"github.com/san-kum/advect/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir  string
	scheme   string
	cells    int
	xmin     float64
	xmax     float64
	speed    float64
	courant  float64
	dt       float64
	duration float64
	stride   int
	// profile shape
	center    float64
	width     float64
	amplitude float64
	waves     int
	// config file and preset
	configFile string
	preset     string
	// live view
	frameRate int
	// convergence study
	cellList string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "advect",
		Short: "finite-volume linear advection lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".advect", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [profile]",
		Short: "run a simulation and store the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().IntVar(&stride, "snapshot-every", 10, "keep every k-th state")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live [profile]",
		Short: "animate a simulation in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored snapshots",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "dump run snapshots as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [profile] [scheme1] [scheme2] ...",
		Short: "compare flux schemes on the same problem",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareSchemes,
	}
	addSimFlags(compareCmd)

	convergenceCmd := &cobra.Command{
		Use:   "convergence [profile]",
		Short: "grid refinement study with observed order",
		Args:  cobra.ExactArgs(1),
		RunE:  convergenceStudy,
	}
	addSimFlags(convergenceCmd)
	convergenceCmd.Flags().StringVar(&cellList, "cells-list", "32,64,128,256", "comma-separated cell counts")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [run_id]",
		Short: "spatial power spectrum of the final snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  spectrumRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [profile]",
		Short: "list available presets for a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for profile: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [profile]",
		Short: "benchmark stepping throughput",
		Args:  cobra.ExactArgs(1),
		RunE:  benchScheme,
	}
	addSimFlags(benchCmd)

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, exportCSVCmd,
		compareCmd, convergenceCmd, spectrumCmd, presetsCmd, benchCmd)

	return rootCmd
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&scheme, "scheme", "upwind", "flux scheme (upwind, laxwendroff)")
	cmd.Flags().IntVar(&cells, "cells", 200, "number of cells")
	cmd.Flags().Float64Var(&xmin, "xmin", 0.0, "domain lower bound")
	cmd.Flags().Float64Var(&xmax, "xmax", 1.0, "domain upper bound")
	cmd.Flags().Float64Var(&speed, "speed", 1.0, "advection speed")
	cmd.Flags().Float64Var(&courant, "courant", 0.5, "target courant number")
	cmd.Flags().Float64Var(&dt, "dt", 0.0, "explicit timestep (overrides courant)")
	cmd.Flags().Float64Var(&duration, "time", 1.0, "duration")
	cmd.Flags().Float64Var(&center, "center", 0.5, "profile center")
	cmd.Flags().Float64Var(&width, "width", 0.1, "profile width")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 1.0, "profile amplitude")
	cmd.Flags().IntVar(&waves, "waves", 1, "full periods across the domain (sine)")
}

func applyFileAndPreset(cmd *cobra.Command, profile string) error {
	if preset != "" {
		cfg := config.GetPreset(profile, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(profile))
		}
		scheme = cfg.Scheme
		cells = cfg.Cells
		speed = cfg.Speed
		courant = cfg.Courant
		duration = cfg.Duration
		center = cfg.ProfileParams.Center
		width = cfg.ProfileParams.Width
		amplitude = cfg.ProfileParams.Amplitude
		if cfg.ProfileParams.Waves > 0 {
			waves = cfg.ProfileParams.Waves
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("scheme") {
			scheme = cfg.Scheme
		}
		if !cmd.Flags().Changed("cells") {
			cells = cfg.Cells
		}
		if !cmd.Flags().Changed("xmin") {
			xmin = cfg.Domain.Min
		}
		if !cmd.Flags().Changed("xmax") {
			xmax = cfg.Domain.Max
		}
		if !cmd.Flags().Changed("speed") {
			speed = cfg.Speed
		}
		if !cmd.Flags().Changed("courant") {
			courant = cfg.Courant
		}
		if !cmd.Flags().Changed("dt") {
			dt = cfg.Dt
		}
		if !cmd.Flags().Changed("time") {
			duration = cfg.Duration
		}
		if !cmd.Flags().Changed("snapshot-every") && cfg.SnapshotEvery > 0 {
			stride = cfg.SnapshotEvery
		}
		if !cmd.Flags().Changed("center") {
			center = cfg.ProfileParams.Center
		}
		if !cmd.Flags().Changed("width") {
			width = cfg.ProfileParams.Width
		}
		if !cmd.Flags().Changed("amplitude") {
			amplitude = cfg.ProfileParams.Amplitude
		}
		if !cmd.Flags().Changed("waves") && cfg.ProfileParams.Waves > 0 {
			waves = cfg.ProfileParams.Waves
		}
	}

	return nil
}

func profileParams() map[string]float64 {
	return map[string]float64{
		"center":    center,
		"width":     width,
		"amplitude": amplitude,
		"waves":     float64(waves),
	}
}

func experimentConfig(profile string) experiment.Config {
	return experiment.Config{
		Scheme:        scheme,
		Profile:       profile,
		Cells:         cells,
		DomainMin:     xmin,
		DomainMax:     xmax,
		Speed:         speed,
		Courant:       courant,
		Dt:            dt,
		Duration:      duration,
		SnapshotEvery: stride,
		ProfileParams: profileParams(),
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	profile := args[0]

	if err := applyFileAndPreset(cmd, profile); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	exp := experiment.New(experimentConfig(profile))
	if err := exp.Setup(registry); err != nil {
		return err
	}

	if dt > 0 && !fv.CheckCFL(speed, dt, exp.Grid().Dx()) {
		fmt.Printf("warning: courant number %.3f exceeds 1, expect instability\n",
			fv.Courant(speed, dt, exp.Grid().Dx()))
	}

	fmt.Printf("running %s with %s scheme...\n", profile, scheme)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	info := storage.RunInfo{
		Scheme:   scheme,
		Profile:  profile,
		Cells:    cells,
		Dx:       exp.Grid().Dx(),
		Speed:    speed,
		Courant:  fv.Courant(speed, result.Dt, exp.Grid().Dx()),
		Duration: duration,
	}
	runID, err := st.Save(info, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d (dt=%.3g)\n", result.StepsTaken, result.Dt)
	fmt.Printf("mass drift: %.3g\n", result.MassDrift)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}
	for _, e := range result.Errors {
		fmt.Printf("warning: %v\n", e)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	profile := args[0]

	g, err := fv.NewGrid(xmin, xmax, cells)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	p, err := registry.GetProfile(profile, g, profileParams())
	if err != nil {
		return err
	}
	if _, err := registry.GetScheme(scheme); err != nil {
		return err
	}

	return viz.RunLive(g, ic.Sample(p, g), speed, courant, scheme, frameRate)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROFILE\tSCHEME\tTIME\tCELLS\tSPEED\tCOURANT\tMASS DRIFT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.2f\t%.2f\t%.2g\n",
			run.ID,
			run.Profile,
			run.Scheme,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Cells,
			run.Speed,
			run.Courant,
			run.MassDrift,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadSnapshots(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("profile: %s, scheme: %s\n", meta.Profile, meta.Scheme)
	fmt.Printf("snapshots: %d\n\n", len(states))

	picks := []int{0, len(states) / 2, len(states) - 1}
	seen := make(map[int]bool)
	for _, idx := range picks {
		if seen[idx] {
			continue
		}
		seen[idx] = true
		caption := fmt.Sprintf("u(x) at t=%.3f", times[idx])
		fmt.Println(viz.RenderProfile(states[idx], caption))
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	f, err := os.Open(st.SnapshotsPath(args[0]))
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(os.Stdout, f)
	return err
}

func compareSchemes(cmd *cobra.Command, args []string) error {
	profile := args[0]
	schemeNames := args[1:]

	g, err := fv.NewGrid(xmin, xmax, cells)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	p, err := registry.GetProfile(profile, g, profileParams())
	if err != nil {
		return err
	}
	x0 := ic.Sample(p, g)

	runs := make([]sim.Run, 0, len(schemeNames))
	for _, name := range schemeNames {
		s, err := registry.GetScheme(name)
		if err != nil {
			return err
		}
		stepper, err := fv.NewPeriodicStepper(g.N(), g.Dx(), s)
		if err != nil {
			return err
		}
		runs = append(runs, sim.Run{
			Simulator: sim.New(stepper),
			Initial:   x0,
			Config: sim.Config{
				Dt:            dt,
				Courant:       courant,
				Speed:         speed,
				Duration:      duration,
				SnapshotEvery: 1 << 30,
				ValidateState: true,
			},
		})
	}

	results, err := sim.NewEnsemble(runs...).Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("comparing schemes on %s (%d cells, courant %.2f)\n\n", profile, cells, courant)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCHEME\tL1\tL2\tLINF\tMASS DRIFT\tSTEPS")

	for i, name := range schemeNames {
		r := results[i]
		finalTime := r.Times[len(r.Times)-1]
		exact := ic.Exact(p, g, speed, finalTime)
		norms := analysis.ErrorNorms(r.Final(), exact, g.Dx())
		fmt.Fprintf(w, "%s\t%.3e\t%.3e\t%.3e\t%.2e\t%d\n",
			name, norms.L1, norms.L2, norms.LInf, r.MassDrift, r.StepsTaken)
	}

	return w.Flush()
}

func convergenceStudy(cmd *cobra.Command, args []string) error {
	profile := args[0]

	counts, err := parseCellList(cellList)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	s, err := registry.GetScheme(scheme)
	if err != nil {
		return err
	}

	// Validate the profile name once before the study loop.
	probe, err := fv.NewGrid(xmin, xmax, counts[0])
	if err != nil {
		return err
	}
	if _, err := registry.GetProfile(profile, probe, profileParams()); err != nil {
		return err
	}

	studyCfg := analysis.StudyConfig{
		Scheme: s,
		Profile: func(g *fv.Grid) ic.Profile {
			p, _ := registry.GetProfile(profile, g, profileParams())
			return p
		},
		DomainMin: xmin,
		DomainMax: xmax,
		Speed:     speed,
		Courant:   courant,
		Duration:  duration,
		CellList:  counts,
	}

	samples, err := analysis.Study(context.Background(), studyCfg)
	if err != nil {
		return err
	}

	fmt.Printf("convergence of %s on %s (courant %.2f)\n\n", scheme, profile, courant)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CELLS\tDX\tL1\tL2\tLINF\tORDER")

	for _, smp := range samples {
		order := "-"
		if !math.IsNaN(smp.Order) {
			order = fmt.Sprintf("%.2f", smp.Order)
		}
		fmt.Fprintf(w, "%d\t%.3e\t%.3e\t%.3e\t%.3e\t%s\n",
			smp.Cells, smp.Dx, smp.Norms.L1, smp.Norms.L2, smp.Norms.LInf, order)
	}

	return w.Flush()
}

func spectrumRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadSnapshots(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("spatial spectrum: %s (%s, %s)\n\n", meta.ID, meta.Profile, meta.Scheme)

	final := states[len(states)-1]
	ps := analysis.PowerSpectrum(final)

	graph := asciigraph.Plot(ps,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (final snapshot)"),
	)
	fmt.Println(graph)

	return nil
}

func benchScheme(cmd *cobra.Command, args []string) error {
	profile := args[0]

	registry := experiment.NewRegistry()

	cellCounts := []int{100, 1000, 10000}
	courants := []float64{0.25, 0.5, 0.9}

	fmt.Printf("benchmarking %s\n\n", profile)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCHEME\tCELLS\tCOURANT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, name := range []string{"upwind", "laxwendroff"} {
		for _, n := range cellCounts {
			for _, cr := range courants {
				g, err := fv.NewGrid(0, 1, n)
				if err != nil {
					return err
				}
				p, err := registry.GetProfile(profile, g, profileParams())
				if err != nil {
					return err
				}
				s, err := registry.GetScheme(name)
				if err != nil {
					return err
				}
				stepper, err := fv.NewPeriodicStepper(g.N(), g.Dx(), s)
				if err != nil {
					return err
				}

				cfg := sim.Config{
					Courant:       cr,
					Speed:         1.0,
					Duration:      1.0,
					SnapshotEvery: 1 << 30,
					ValidateState: false,
				}

				start := time.Now()
				result, err := sim.New(stepper).Run(context.Background(), ic.Sample(p, g), cfg)
				if err != nil {
					return err
				}
				elapsed := time.Since(start)

				stepsPerSec := float64(result.StepsTaken) / elapsed.Seconds()
				fmt.Fprintf(w, "%s\t%d\t%.2f\t%d\t%v\t%.0f\n",
					name, n, cr, result.StepsTaken, elapsed.Round(time.Microsecond), stepsPerSec)
			}
		}
	}

	return w.Flush()
}

func parseCellList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	counts := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid cell count %q: %w", p, err)
		}
		counts = append(counts, n)
	}
	if len(counts) < 2 {
		return nil, fmt.Errorf("need at least two cell counts, got %v", counts)
	}
	return counts, nil
}
