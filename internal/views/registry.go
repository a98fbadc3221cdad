package views

import (
	"fmt"

	"github.com/san-kum/wavesim/internal/clock"
	"github.com/san-kum/wavesim/internal/config"
)

type factory func(cfg *config.Config, now clock.Source) View

var registry = map[string]factory{
	"pulse": func(cfg *config.Config, now clock.Source) View {
		return NewPulse(cfg.Pulse, now)
	},
	"superposition": func(cfg *config.Config, now clock.Source) View {
		return NewSuperposition(cfg.Superposition, now)
	},
	"reflection": func(cfg *config.Config, now clock.Source) View {
		return NewReflection(cfg.Reflection, now)
	},
	"oscillation": func(cfg *config.Config, now clock.Source) View {
		return NewOscillation(cfg.Oscillation, now)
	},
	"sine": func(cfg *config.Config, now clock.Source) View {
		return NewSine(cfg.Sine, now)
	},
}

var order = []string{"pulse", "superposition", "reflection", "oscillation", "sine"}

var descriptions = map[string]string{
	"pulse":         "single Gaussian pulse travelling along a string",
	"superposition": "two pulses meeting from opposite ends",
	"reflection":    "pulse reflected at a free end",
	"oscillation":   "uniform circular motion projected onto a rail",
	"sine":          "oscillator emitting a travelling sinusoid",
}

// New builds the named view from cfg. A nil cfg uses the defaults.
func New(name string, cfg *config.Config, now clock.Source) (View, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown view: %s", name)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return fn(cfg, now), nil
}

// Names lists the views in presentation order.
func Names() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

func Describe(name string) string {
	return descriptions[name]
}
