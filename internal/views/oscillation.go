package views

import (
	"math"

	"github.com/san-kum/wavesim/internal/clock"
	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/wave"
)

// Layout of the circular-motion figure, in design pixels.
const (
	oscDesignWidth  = 340.0
	oscDesignHeight = 400.0
	oscTraceSamples = 100
)

// Oscillation projects uniform circular motion onto a horizontal rail.
type Oscillation struct {
	base
	cfg     config.OscillationConfig
	initial config.OscillationConfig
	theta   float64
}

func NewOscillation(cfg config.OscillationConfig, now clock.Source) *Oscillation {
	return &Oscillation{
		base:    newBase(now, int(oscDesignWidth), int(oscDesignHeight)),
		cfg:     cfg,
		initial: cfg,
	}
}

func (v *Oscillation) Name() string { return "oscillation" }

// Angle returns the current phase theta = omega * t.
func (v *Oscillation) Angle() float64 { return v.theta }

// Position returns the oscillator displacement A cos(theta) in design
// pixels.
func (v *Oscillation) Position() float64 {
	return wave.Project(v.cfg.Amplitude, v.theta, wave.Cosine)
}

func (v *Oscillation) Update() {
	v.theta = wave.Angle(v.cfg.Frequency, v.clock.Elapsed())
}

// Series traces the displacement over the last full period.
func (v *Oscillation) Series() []Series {
	period := 2 * math.Pi / v.cfg.Frequency
	now := v.clock.Elapsed()
	frame := make(wave.SampleFrame, oscTraceSamples)
	for i := range frame {
		t := now - period + period*float64(i)/float64(oscTraceSamples-1)
		frame[i] = wave.Point{
			Pixel:     i,
			Time:      t,
			Amplitude: wave.Project(v.cfg.Amplitude, wave.Angle(v.cfg.Frequency, t), wave.Cosine),
		}
	}
	return []Series{{Name: "displacement", Color: "orange", Frame: frame}}
}

func (v *Oscillation) Draw(s Surface) {
	if s == nil {
		return
	}
	w, h := v.fit(s)
	s.Clear("transparent")

	k := math.Min(float64(w)/oscDesignWidth, float64(h)/oscDesignHeight)
	a := v.cfg.Amplitude * k

	center := Vec{float64(w) / 2, float64(h) / 2.4}
	railY := float64(h) / 1.1
	originX := float64(w) / 2

	point := Vec{center.X + a*math.Cos(v.theta), center.Y - a*math.Sin(v.theta)}
	bob := Vec{originX + wave.Project(a, v.theta, wave.Cosine), railY}

	s.Disc(center, 5*k, "red")
	s.Circle(center, a, Stroke{Color: "gray", Width: 2 * k})
	s.Disc(point, 10*k, "red")
	s.Circle(point, 10*k, Stroke{Color: "gray", Width: k})
	s.Line(center, point, Stroke{Color: "red", Width: 2 * k})
	s.Line(point, bob, Stroke{Color: "orange", Width: k, Dash: 5 * k})
	s.Line(Vec{originX, 0}, Vec{originX, float64(h)}, Stroke{Color: "red", Width: k, Dash: 5 * k})
	s.Line(Vec{originX - a - 20*k, railY}, Vec{originX + a + 20*k, railY}, Stroke{Color: "gray", Width: 2 * k})
	s.Disc(bob, 20*k, "orange")
	s.Circle(bob, 20*k, Stroke{Color: "gray", Width: k})
}

func (v *Oscillation) Params() []Param {
	return []Param{
		{Name: "amplitude", Value: v.cfg.Amplitude, Min: 10, Max: 150, Step: 5},
		{Name: "frequency", Value: v.cfg.Frequency, Min: 0.1, Max: 10, Step: 0.1},
	}
}

func (v *Oscillation) SetParam(name string, value float64) error {
	return v.setParam(v.Params(), name, value, func(n string, x float64) {
		switch n {
		case "amplitude":
			v.cfg.Amplitude = x
		case "frequency":
			v.cfg.Frequency = x
		}
	})
}

func (v *Oscillation) Reset() {
	v.cfg = v.initial
	v.theta = 0
	v.clock.Reset()
}
