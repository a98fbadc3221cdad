package views

import (
	"math"

	"github.com/san-kum/wavesim/internal/clock"
	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/wave"
)

// Layout of the wave-source figure, in design pixels.
const (
	sineDesignWidth  = 1200.0
	sineDesignHeight = 340.0
	sinePadding      = 20.0
	sineGap          = 250.0
)

// Sine drives a vertical oscillator from circular motion and emits a
// travelling sinusoid to its right.
type Sine struct {
	base
	cfg     config.SineConfig
	initial config.SineConfig
	theta   float64
}

func NewSine(cfg config.SineConfig, now clock.Source) *Sine {
	return &Sine{
		base:    newBase(now, int(sineDesignWidth), int(sineDesignHeight)),
		cfg:     cfg,
		initial: cfg,
	}
}

func (v *Sine) Name() string { return "sine" }

func (v *Sine) Angle() float64 { return v.theta }

// Wave returns the emitted sinusoid in design pixels.
func (v *Sine) Wave() wave.Travelling {
	return wave.Travelling{Amplitude: v.cfg.Amplitude, Omega: v.cfg.Frequency, Speed: v.cfg.WaveSpeed}
}

func (v *Sine) Update() {
	v.theta = wave.Angle(v.cfg.Frequency, v.clock.Elapsed())
}

func (v *Sine) scale() float64 {
	return math.Min(float64(v.width)/sineDesignWidth, float64(v.height)/sineDesignHeight)
}

// sourceX returns the rail position in surface pixels.
func (v *Sine) sourceX(k float64) float64 {
	return (v.cfg.Amplitude + sinePadding + sineGap) * k
}

// Series samples the emitted wave one design pixel apart, from the source
// to the right edge.
func (v *Sine) Series() []Series {
	k := v.scale()
	length := (float64(v.width) - v.sourceX(k)) / k
	return []Series{{Name: "wave", Color: "orange", Frame: v.Wave().SampleRange(v.theta, length, 1)}}
}

func (v *Sine) Draw(s Surface) {
	if s == nil {
		return
	}
	w, h := v.fit(s)
	s.Clear("transparent")

	k := v.scale()
	a := v.cfg.Amplitude * k
	pad, gap := sinePadding*k, sineGap*k

	center := Vec{a + pad, float64(h) / 2}
	railX := center.X + gap
	originY := float64(h) / 2

	point := Vec{center.X + a*math.Sin(v.theta), center.Y + a*math.Cos(v.theta)}
	bob := Vec{railX, originY + wave.Project(a, v.theta, wave.Cosine)}

	s.Disc(center, 5*k, "red")
	s.Circle(center, a, Stroke{Color: "gray", Width: 2 * k})
	s.Disc(point, 10*k, "red")
	s.Circle(point, 10*k, Stroke{Color: "gray", Width: k})
	s.Line(center, point, Stroke{Color: "red", Width: 2 * k})
	s.Line(point, bob, Stroke{Color: "orange", Width: k, Dash: 5 * k})
	hline(s, center.Y, w, Stroke{Color: "red", Width: k, Dash: 5 * k})
	s.Line(Vec{railX, originY - a - pad}, Vec{railX, originY + a + pad}, Stroke{Color: "gray", Width: 2 * k})
	s.Disc(bob, 20*k, "orange")
	s.Circle(bob, 20*k, Stroke{Color: "gray", Width: k})

	// The wave is evaluated in design pixels so it keeps its shape when the
	// surface is resized.
	src := v.Wave()
	step := math.Max(1, k)
	pts := []Vec{bob}
	for x := railX; x <= float64(w); x += step {
		pts = append(pts, Vec{x, originY + src.At(v.theta, (x-railX)/k)*k})
	}
	s.Polyline(pts, Stroke{Color: "orange", Width: 2 * k})
}

func (v *Sine) Params() []Param {
	return []Param{
		{Name: "amplitude", Value: v.cfg.Amplitude, Min: 10, Max: 150, Step: 5},
		{Name: "frequency", Value: v.cfg.Frequency, Min: 0.1, Max: 10, Step: 0.1},
		{Name: "wave_speed", Value: v.cfg.WaveSpeed, Min: 10, Max: 500, Step: 10},
	}
}

func (v *Sine) SetParam(name string, value float64) error {
	return v.setParam(v.Params(), name, value, func(n string, x float64) {
		switch n {
		case "amplitude":
			v.cfg.Amplitude = x
		case "frequency":
			v.cfg.Frequency = x
		case "wave_speed":
			v.cfg.WaveSpeed = x
		}
	})
}

func (v *Sine) Reset() {
	v.cfg = v.initial
	v.theta = 0
	v.clock.Reset()
}
