package views

import (
	"github.com/san-kum/wavesim/internal/clock"
	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/wave"
)

// designHeight is the canvas height the superposition amplitudes are
// expressed against; amplitudes are pixels at that height.
const designHeight = 300.0

const superpositionRestartSpans = 2.0

// Superposition sends one pulse in from each side and draws their sum.
type Superposition struct {
	base
	cfg         config.SuperpositionConfig
	initial     config.SuperpositionConfig
	left, right float64
}

func NewSuperposition(cfg config.SuperpositionConfig, now clock.Source) *Superposition {
	return &Superposition{
		base:    newBase(now, int(designWidth), cfg.Height),
		cfg:     cfg,
		initial: cfg,
	}
}

func (v *Superposition) Name() string { return "superposition" }

// Offsets returns the centers of the left and right pulses. The right
// pulse's center is measured from the right edge.
func (v *Superposition) Offsets() (left, right float64) { return v.left, v.right }

func (v *Superposition) Update() {
	off := v.clock.Elapsed() * v.cfg.Speed * v.cfg.Duration
	if off > superpositionRestartSpans*v.cfg.Duration {
		v.clock.Restart()
		off = 0
	}
	v.left, v.right = off, off
}

func (v *Superposition) pulses() (left, right wave.Pulse) {
	left = wave.Pulse{Amplitude: v.cfg.AmplitudeLeft, Spread: v.cfg.Spread, Center: v.left}
	right = wave.Pulse{Amplitude: v.cfg.AmplitudeRight, Spread: v.cfg.Spread, Center: v.right, Mirrored: true}
	return left, right
}

func (v *Superposition) Series() []Series {
	d := wave.NewDomain(v.cfg.Duration, v.width)
	left, right := v.pulses()
	return []Series{
		{Name: "left", Color: v.cfg.LeftColor, Frame: wave.Sample(d, []wave.Pulse{left}, wave.Identity)},
		{Name: "right", Color: v.cfg.RightColor, Frame: wave.Sample(d, []wave.Pulse{right}, wave.Identity)},
		{Name: "combined", Color: v.cfg.LineColor, Frame: wave.Sample(d, []wave.Pulse{left, right}, wave.Sum)},
	}
}

func (v *Superposition) Draw(s Surface) {
	if s == nil {
		return
	}
	w, h := v.fit(s)
	s.Clear(v.cfg.BackgroundColor)

	yCenter := float64(h) / 2
	pxScale := float64(h) / designHeight
	y := func(a float64) float64 { return yCenter - a*pulseVerticalScale*pxScale }

	hline(s, yCenter, w, Stroke{Color: "gray", Width: 1})

	left, right := v.pulses()
	both := []wave.Pulse{left, right}
	drawDots(s, wave.NewDomain(v.cfg.Duration, w), both, wave.Sum, v.cfg.Dots, y)

	series := v.Series()
	if v.cfg.ShowIndividual {
		s.Polyline(polyline(series[0].Frame, y), Stroke{Color: v.cfg.LeftColor, Width: 1.5})
		s.Polyline(polyline(series[1].Frame, y), Stroke{Color: v.cfg.RightColor, Width: 1.5})
	}
	s.Polyline(polyline(series[2].Frame, y), Stroke{Color: v.cfg.LineColor, Width: 2})
}

func (v *Superposition) Params() []Param {
	return []Param{
		{Name: "amplitude_left", Value: v.cfg.AmplitudeLeft, Min: -120, Max: 120, Step: 5},
		{Name: "amplitude_right", Value: v.cfg.AmplitudeRight, Min: -120, Max: 120, Step: 5},
		{Name: "spread", Value: v.cfg.Spread, Min: 0.01, Max: 0.2, Step: 0.01},
		{Name: "speed", Value: v.cfg.Speed, Min: 0.05, Max: 1, Step: 0.05},
	}
}

func (v *Superposition) SetParam(name string, value float64) error {
	return v.setParam(v.Params(), name, value, func(n string, x float64) {
		switch n {
		case "amplitude_left":
			v.cfg.AmplitudeLeft = x
		case "amplitude_right":
			v.cfg.AmplitudeRight = x
		case "spread":
			v.cfg.Spread = x
		case "speed":
			v.cfg.Speed = x
		}
	})
}

func (v *Superposition) Reset() {
	v.cfg = v.initial
	v.left, v.right = 0, 0
	v.clock.Reset()
}
