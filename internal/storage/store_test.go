package storage

import (
	"math"
	"testing"

	"github.com/san-kum/advect/internal/fv"
	"github.com/san-kum/advect/internal/sim"
)

func fakeResult() *sim.Result {
	return &sim.Result{
		Snapshots: []fv.State{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
		},
		Times:      []float64{0, 0.25, 0.5},
		Metrics:    map[string]float64{"mass_drift": 0},
		StepsTaken: 2,
		Dt:         0.25,
	}
}

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	info := RunInfo{
		Scheme:   "upwind",
		Profile:  "square",
		Cells:    4,
		Dx:       0.25,
		Speed:    1.0,
		Courant:  1.0,
		Duration: 0.5,
	}

	runID, err := st.Save(info, fakeResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Scheme != "upwind" || meta.Profile != "square" {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if meta.Cells != 4 {
		t.Errorf("expected 4 cells, got %d", meta.Cells)
	}
	if meta.Steps != 2 {
		t.Errorf("expected 2 steps, got %d", meta.Steps)
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty store, got %d runs", len(runs))
	}

	info := RunInfo{Scheme: "upwind", Profile: "gauss", Cells: 4, Dx: 0.25}
	if _, err := st.Save(info, fakeResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	st := New("/nonexistent/path/advect-test")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("expected no error for missing dir, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadSnapshotsRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	want := fakeResult()
	info := RunInfo{Scheme: "upwind", Profile: "square", Cells: 4, Dx: 0.25}
	runID, err := st.Save(info, want)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	states, times, err := st.LoadSnapshots(runID)
	if err != nil {
		t.Fatalf("load snapshots failed: %v", err)
	}

	if len(states) != len(want.Snapshots) {
		t.Fatalf("expected %d snapshots, got %d", len(want.Snapshots), len(states))
	}
	for i := range states {
		if math.Abs(times[i]-want.Times[i]) > 1e-9 {
			t.Errorf("time %d: expected %f, got %f", i, want.Times[i], times[i])
		}
		for j := range states[i] {
			if math.Abs(states[i][j]-want.Snapshots[i][j]) > 1e-9 {
				t.Errorf("state %d cell %d: expected %f, got %f",
					i, j, want.Snapshots[i][j], states[i][j])
			}
		}
	}
}
