package views

import (
	"math"

	"github.com/san-kum/wavesim/internal/clock"
	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/wave"
)

const reflectionVerticalScale = 0.45

// Reflection shows a pulse meeting a free end. Left of the boundary the
// incident pulse, its mirror image and their sum are drawn; right of it the
// incident pulse continues as a dashed ghost.
type Reflection struct {
	base
	cfg                 config.ReflectionConfig
	initial             config.ReflectionConfig
	incident, reflected float64
}

func NewReflection(cfg config.ReflectionConfig, now clock.Source) *Reflection {
	v := &Reflection{
		base:    newBase(now, int(designWidth), cfg.Height),
		cfg:     cfg,
		initial: cfg,
	}
	v.reflected = wave.MirrorCenter(0, v.Boundary())
	return v
}

func (v *Reflection) Name() string { return "reflection" }

// Boundary returns the free end's position on the time axis.
func (v *Reflection) Boundary() float64 {
	return v.cfg.Boundary * v.cfg.Duration
}

// Centers returns the incident and reflected pulse centers.
func (v *Reflection) Centers() (incident, reflected float64) {
	return v.incident, v.reflected
}

func (v *Reflection) Update() {
	r := v.Boundary()
	v.incident = v.clock.Elapsed() * v.cfg.Speed
	v.reflected = wave.MirrorCenter(v.incident, r)
	if wave.Expired(v.reflectedPulse()) {
		v.clock.Restart()
		v.incident = 0
		v.reflected = wave.MirrorCenter(0, r)
	}
}

func (v *Reflection) incidentPulse() wave.Pulse {
	return wave.Pulse{Amplitude: v.cfg.Amplitude, Spread: v.cfg.Spread, Center: v.incident}
}

func (v *Reflection) reflectedPulse() wave.Pulse {
	return v.incidentPulse().Advance(v.reflected)
}

// leftDomain returns the boundary column and the domain left of it,
// boundary included.
func (v *Reflection) leftDomain(w int) (float64, wave.Domain) {
	d := wave.NewDomain(v.cfg.Duration, w)
	bx := d.PixelAt(v.Boundary())
	d.End = int(math.Floor(bx)) + 1
	return bx, d
}

func (v *Reflection) Series() []Series {
	_, d := v.leftDomain(v.width)
	inc, ref := v.incidentPulse(), v.reflectedPulse()
	return []Series{
		{Name: "incident", Color: v.cfg.LineColor, Frame: wave.Sample(d, []wave.Pulse{inc}, wave.Identity)},
		{Name: "reflected", Color: v.cfg.ReflectedLineColor, Frame: wave.Sample(d, []wave.Pulse{ref}, wave.Identity)},
		{Name: "combined", Color: v.cfg.CombinedLineColor, Frame: wave.Sample(d, []wave.Pulse{inc, ref}, wave.Sum)},
	}
}

func (v *Reflection) Draw(s Surface) {
	if s == nil {
		return
	}
	w, h := v.fit(s)
	s.Clear(v.cfg.BackgroundColor)

	yOffset := float64(h) / 2
	yScale := float64(h) / (v.cfg.Amplitude * 2)
	y := func(a float64) float64 { return yOffset - a*reflectionVerticalScale*yScale }
	widthScale := float64(w) / designWidth

	hline(s, yOffset, w, Stroke{Color: "gray", Width: 1})

	bx, _ := v.leftDomain(w)
	s.Line(Vec{bx, 0}, Vec{bx, float64(h)}, Stroke{Color: "red", Width: 2, Dash: 5})

	series := v.Series()
	s.Polyline(polyline(series[1].Frame, y), Stroke{Color: v.cfg.ReflectedLineColor, Width: 1})
	s.Polyline(polyline(series[0].Frame, y), Stroke{Color: v.cfg.LineColor, Width: 1})

	// Ghost of the incident pulse beyond the free end.
	inc := v.incidentPulse()
	d := wave.NewDomain(v.cfg.Duration, w)
	d.Start = int(math.Floor(bx)) + 1
	ghost := append([]Vec{{bx, y(inc.At(d.TimeAt(bx)))}}, polyline(wave.Sample(d, []wave.Pulse{inc}, wave.Identity), y)...)
	s.Polyline(ghost, Stroke{Color: v.cfg.LineColor, Width: 1, Dash: 5})

	s.Polyline(polyline(series[2].Frame, y), Stroke{
		Color:   v.cfg.CombinedLineColor,
		Width:   math.Max(1, 10*widthScale),
		Opacity: 0.6,
	})
}

func (v *Reflection) Params() []Param {
	return []Param{
		{Name: "amplitude", Value: v.cfg.Amplitude, Min: 5, Max: 150, Step: 5},
		{Name: "spread", Value: v.cfg.Spread, Min: 0.01, Max: 0.2, Step: 0.01},
		{Name: "speed", Value: v.cfg.Speed, Min: 0.05, Max: 1, Step: 0.05},
	}
}

func (v *Reflection) SetParam(name string, value float64) error {
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

func (v *Reflection) Reset() {
	v.cfg = v.initial
	v.incident = 0
	v.reflected = wave.MirrorCenter(0, v.Boundary())
	v.clock.Reset()
}
