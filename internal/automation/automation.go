package automation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/wavesim/internal/analysis"
	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/storage"
	"github.com/san-kum/wavesim/internal/views"
)

var ErrSweepSteps = errors.New("automation: sweep needs at least two steps")

// Scenario is a scripted sequence of recordings.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep records one view. Seek skips ahead before the first frame;
// Frames defaults to one second of animation.
type ScenarioStep struct {
	View   string             `yaml:"view"`
	Preset string             `yaml:"preset"`
	Frames int                `yaml:"frames"`
	FPS    int                `yaml:"fps"`
	Seek   float64            `yaml:"seek"`
	Params map[string]float64 `yaml:"params"`
	SaveAs string             `yaml:"save_as"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("automation: parse %s: %w", path, err)
	}

	return &scenario, nil
}

// prepare builds the view for one step on a manual clock with its preset and
// parameter overrides applied.
func prepare(base *config.Config, view, preset string, fps int, params map[string]float64) (*views.Animation, error) {
	cfg := base.Clone()
	cfg.View = view
	if preset != "" && !config.ApplyPreset(cfg, view, preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(view))
	}
	if fps <= 0 {
		fps = cfg.FPS
	}
	anim, err := views.NewAnimation(view, cfg, fps)
	if err != nil {
		return nil, err
	}
	anim.View.Resize(cfg.Width, cfg.Height)
	for k, v := range params {
		if err := anim.View.SetParam(k, v); err != nil {
			return nil, err
		}
	}
	return anim, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// RunScenario records every step into st and returns the saved metadata. On
// failure the recordings saved so far are returned with the error.
func RunScenario(ctx context.Context, scenario *Scenario, base *config.Config, st *storage.Store) ([]storage.RecordingMetadata, error) {
	if base == nil {
		base = config.DefaultConfig()
	}
	results := make([]storage.RecordingMetadata, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		log.Printf("scenario %s: step %d/%d: %s", scenario.Name, i+1, len(scenario.Steps), step.View)

		anim, err := prepare(base, step.View, step.Preset, step.FPS, step.Params)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		anim.Seek(seconds(step.Seek))

		frames := step.Frames
		if frames <= 0 {
			frames = anim.FPS
		}

		var samples []storage.Sample
		err = anim.Run(ctx, frames, func(n int) error {
			samples = append(samples, storage.Capture(anim.View, n)...)
			return nil
		})
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		meta := storage.Metadata(anim.View, anim.FPS, frames, base.Width)
		meta.ID = step.SaveAs
		id, err := st.Save(meta, samples)
		if err != nil {
			return results, fmt.Errorf("step %d save: %w", i+1, err)
		}
		meta.ID = id

		results = append(results, meta)
	}

	return results, nil
}

// ParameterSweep samples one view at a fixed elapsed time for evenly spaced
// values of one parameter.
type ParameterSweep struct {
	View     string
	Param    string
	Min, Max float64
	NumSteps int
	At       float64
	// Series names the curve measured; empty picks the last one, which is
	// the combined curve where a view has one.
	Series string
}

// SweepResult holds the measurement for one parameter value.
type SweepResult struct {
	ParamValue float64 `json:"param_value"`
	Peak       float64 `json:"peak"`
	PeakT      float64 `json:"peak_t"`
	Area       float64 `json:"area"`
}

// RunSweep executes a parameter sweep
func RunSweep(ctx context.Context, sweep *ParameterSweep, base *config.Config) ([]SweepResult, error) {
	if sweep.NumSteps < 2 {
		return nil, ErrSweepSteps
	}
	if base == nil {
		base = config.DefaultConfig()
	}
	results := make([]SweepResult, 0, sweep.NumSteps)
	paramStep := (sweep.Max - sweep.Min) / float64(sweep.NumSteps-1)

	for i := 0; i < sweep.NumSteps; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		paramVal := sweep.Min + float64(i)*paramStep

		anim, err := prepare(base, sweep.View, "", 0, map[string]float64{sweep.Param: paramVal})
		if err != nil {
			return nil, err
		}
		anim.Seek(seconds(sweep.At))

		frame, err := pick(anim.View.Series(), sweep.Series)
		if err != nil {
			return nil, err
		}

		// SetParam clamps to the slider range; report what was measured.
		r := SweepResult{ParamValue: paramValue(anim.View, sweep.Param, paramVal)}
		if p, ok := frame.Frame.Peak(); ok {
			r.Peak, r.PeakT = p.Amplitude, p.Time
		}
		if st, err := analysis.PulseStats(frame.Frame); err == nil {
			r.Area = st.Area
		}
		results = append(results, r)

		log.Printf("sweep %d/%d: %s=%.4f peak=%.3f", i+1, sweep.NumSteps, sweep.Param, r.ParamValue, r.Peak)
	}

	return results, nil
}

func paramValue(v views.View, name string, fallback float64) float64 {
	for _, p := range v.Params() {
		if p.Name == name {
			return p.Value
		}
	}
	return fallback
}

func pick(series []views.Series, name string) (views.Series, error) {
	if len(series) == 0 {
		return views.Series{}, fmt.Errorf("automation: view has no series")
	}
	if name == "" {
		return series[len(series)-1], nil
	}
	for _, s := range series {
		if s.Name == name {
			return s, nil
		}
	}
	return views.Series{}, fmt.Errorf("automation: unknown series: %s", name)
}
