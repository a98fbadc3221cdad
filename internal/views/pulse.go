package views

import (
	"math"

	"github.com/san-kum/wavesim/internal/clock"
	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/wave"
)

// designWidth is the canvas width the pulse views were laid out for; dot
// sizes and spacing scale with the real width.
const designWidth = 800.0

const (
	pulseRestartSpans  = 1.5
	pulseVerticalScale = 0.8
)

// Pulse animates a single Gaussian pulse travelling left to right.
type Pulse struct {
	base
	cfg     config.PulseConfig
	initial config.PulseConfig
	offset  float64
}

func NewPulse(cfg config.PulseConfig, now clock.Source) *Pulse {
	return &Pulse{
		base:    newBase(now, int(designWidth), cfg.Height),
		cfg:     cfg,
		initial: cfg,
	}
}

func (v *Pulse) Name() string { return "pulse" }

// Offset returns the current pulse center on the time axis.
func (v *Pulse) Offset() float64 { return v.offset }

func (v *Pulse) Update() {
	off := v.clock.Elapsed() * v.cfg.Speed * v.cfg.Duration
	if off > pulseRestartSpans*v.cfg.Duration {
		v.clock.Restart()
		off = 0
	}
	v.offset = off
}

func (v *Pulse) pulse() wave.Pulse {
	return wave.Pulse{Amplitude: v.cfg.Amplitude, Spread: v.cfg.Spread, Center: v.offset}
}

// lineDomain samples the curve at the configured sample rate, never finer
// than one pixel.
func (v *Pulse) lineDomain() wave.Domain {
	d := wave.NewDomain(v.cfg.Duration, v.width)
	if v.cfg.SampleRate > 0 {
		d.Step = int(float64(v.width) / (v.cfg.Duration * v.cfg.SampleRate))
	}
	return d
}

func (v *Pulse) Series() []Series {
	return []Series{{
		Name:  "pulse",
		Color: v.cfg.LineColor,
		Frame: wave.Sample(v.lineDomain(), []wave.Pulse{v.pulse()}, wave.Identity),
	}}
}

func (v *Pulse) Draw(s Surface) {
	if s == nil {
		return
	}
	w, h := v.fit(s)
	s.Clear(v.cfg.BackgroundColor)

	yOffset := float64(h) / 2
	yScale := float64(h) / (v.cfg.Amplitude * 2)
	y := func(a float64) float64 { return yOffset - a*pulseVerticalScale*yScale }

	pulses := []wave.Pulse{v.pulse()}
	line := wave.Sample(v.lineDomain(), pulses, wave.Identity)
	s.Polyline(polyline(line, y), Stroke{Color: v.cfg.LineColor, Width: 2})

	hline(s, yOffset, w, Stroke{Color: "gray", Width: 1})

	drawDots(s, wave.NewDomain(v.cfg.Duration, w), pulses, wave.Identity, v.cfg.Dots, y)
}

// drawDots marks the combined amplitude every Density pixels, starting one
// stride in from the left edge.
func drawDots(s Surface, d wave.Domain, pulses []wave.Pulse, combine wave.CombineFunc, dots config.DotConfig, y func(float64) float64) {
	scale := float64(d.PixelWidth) / designWidth
	density := int(math.Round(float64(dots.Density) * scale))
	if density < 1 {
		density = 1
	}
	radius := math.Max(1, dots.Radius*scale)
	d.Start, d.Step = density, density
	for _, p := range wave.Sample(d, pulses, combine) {
		s.Disc(Vec{float64(p.Pixel), y(p.Amplitude)}, radius, dots.Color)
	}
}

func (v *Pulse) Params() []Param {
	return []Param{
		{Name: "amplitude", Value: v.cfg.Amplitude, Min: 5, Max: 150, Step: 5},
		{Name: "spread", Value: v.cfg.Spread, Min: 0.01, Max: 0.2, Step: 0.01},
		{Name: "speed", Value: v.cfg.Speed, Min: 0.05, Max: 1, Step: 0.05},
	}
}

func (v *Pulse) SetParam(name string, value float64) error {
	return v.setParam(v.Params(), name, value, func(n string, x float64) {
		switch n {
		case "amplitude":
			v.cfg.Amplitude = x
		case "spread":
			v.cfg.Spread = x
		case "speed":
			v.cfg.Speed = x
		}
	})
}

func (v *Pulse) Reset() {
	v.cfg = v.initial
	v.offset = 0
	v.clock.Reset()
}
