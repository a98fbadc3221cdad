package automation

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/wavesim/internal/storage"
	"github.com/san-kum/wavesim/internal/views"
)

const scenarioYAML = `
name: demo
description: two short recordings
steps:
  - view: pulse
    frames: 4
    fps: 20
    save_as: pulse_a
  - view: superposition
    preset: destructive
    frames: 3
    seek: 1.0
    params:
      spread: 0.08
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sc.Name != "demo" || len(sc.Steps) != 2 {
		t.Fatalf("unexpected scenario: %+v", sc)
	}
	step := sc.Steps[1]
	if step.Preset != "destructive" || step.Seek != 1.0 || step.Params["spread"] != 0.08 {
		t.Errorf("unexpected step: %+v", step)
	}
}

func TestLoadScenarioBadYAML(t *testing.T) {
	if _, err := LoadScenario(writeScenario(t, "steps: [")); err == nil {
		t.Error("expected parse error")
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	st := storage.New(t.TempDir())

	metas, err := RunScenario(context.Background(), sc, nil, st)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("expected 2 recordings, got %d", len(metas))
	}
	if metas[0].ID != "pulse_a" || metas[0].FPS != 20 || metas[0].Frames != 4 {
		t.Errorf("unexpected first recording: %+v", metas[0])
	}
	if metas[1].Params["amplitude_right"] != -80 || metas[1].Params["spread"] != 0.08 {
		t.Errorf("preset and params not applied: %v", metas[1].Params)
	}

	samples, err := st.LoadSamples(metas[1].ID)
	if err != nil {
		t.Fatal(err)
	}
	if n := storage.FrameCount(samples); n != 3 {
		t.Errorf("expected 3 frames, got %d", n)
	}
	if samples[0].Elapsed < 1.0 {
		t.Errorf("seek not applied, first frame at %.3fs", samples[0].Elapsed)
	}
}

func TestRunScenarioStopsOnError(t *testing.T) {
	sc := &Scenario{Name: "bad", Steps: []ScenarioStep{
		{View: "pulse", Frames: 1},
		{View: "sine", Frames: 1, Params: map[string]float64{"tension": 1}},
	}}
	metas, err := RunScenario(context.Background(), sc, nil, storage.New(t.TempDir()))
	if !errors.Is(err, views.ErrUnknownParam) {
		t.Fatalf("expected ErrUnknownParam, got %v", err)
	}
	if len(metas) != 1 {
		t.Errorf("expected the first recording to survive, got %d", len(metas))
	}
}

// At 2.5 s both superposition pulses sit at the middle of the string, so
// the combined peak is the sum of the two amplitudes.
func TestRunSweepSuperposition(t *testing.T) {
	sweep := &ParameterSweep{
		View:     "superposition",
		Param:    "amplitude_right",
		Min:      -40,
		Max:      40,
		NumSteps: 3,
		At:       2.5,
	}
	results, err := RunSweep(context.Background(), sweep, nil)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	want := []float64{70, 110, 150}
	for i, r := range results {
		if math.Abs(r.Peak-want[i]) > 1e-6 {
			t.Errorf("right=%.0f: expected peak %.0f, got %.6f", r.ParamValue, want[i], r.Peak)
		}
		if math.Abs(r.PeakT-0.35) > 1e-3 {
			t.Errorf("right=%.0f: expected peak at 0.35, got %.4f", r.ParamValue, r.PeakT)
		}
	}
	if !(results[0].Area < results[1].Area && results[1].Area < results[2].Area) {
		t.Errorf("area should grow with amplitude: %+v", results)
	}
}

func TestRunSweepReportsClampedValues(t *testing.T) {
	sweep := &ParameterSweep{
		View:     "pulse",
		Param:    "amplitude",
		Min:      0,
		Max:      200,
		NumSteps: 3,
		At:       1.75,
	}
	results, err := RunSweep(context.Background(), sweep, nil)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	tests := []struct {
		param float64
		peak  float64
	}{
		{5, 5},
		{100, 100},
		{150, 150},
	}
	for i, tt := range tests {
		r := results[i]
		if r.ParamValue != tt.param {
			t.Errorf("step %d: expected reported amplitude %.0f, got %.3f", i, tt.param, r.ParamValue)
		}
		if math.Abs(r.Peak-tt.peak) > 1e-6 {
			t.Errorf("step %d: expected peak %.0f, got %.6f", i, tt.peak, r.Peak)
		}
	}
}

func TestRunSweepErrors(t *testing.T) {
	ctx := context.Background()
	if _, err := RunSweep(ctx, &ParameterSweep{View: "pulse", Param: "spread", NumSteps: 1}, nil); !errors.Is(err, ErrSweepSteps) {
		t.Errorf("expected ErrSweepSteps, got %v", err)
	}
	if _, err := RunSweep(ctx, &ParameterSweep{View: "pulse", Param: "spread", Min: 0.02, Max: 0.1, NumSteps: 2, Series: "nope"}, nil); err == nil {
		t.Error("expected unknown series error")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := RunSweep(cancelled, &ParameterSweep{View: "pulse", Param: "spread", Min: 0.02, Max: 0.1, NumSteps: 2}, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
