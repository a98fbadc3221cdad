package wave

import "math"

// Pulse is a single Gaussian bump.
type Pulse struct {
	Amplitude float64
	Spread    float64
	Center    float64
	// Mirrored pulses arrive from the right: they are evaluated at
	// duration - t instead of t.
	Mirrored bool
}

// At returns amplitude * exp(-(t-center)^2 / (2*spread^2)).
func (p Pulse) At(t float64) float64 {
	d := t - p.Center
	return p.Amplitude * math.Exp(-d*d/(2*p.Spread*p.Spread))
}

// Eval evaluates the pulse at t within a domain of the given duration,
// honouring Mirrored.
func (p Pulse) Eval(t, duration float64) float64 {
	if p.Mirrored {
		return p.At(duration - t)
	}
	return p.At(t)
}

// Advance returns a copy of p with its center moved to c.
func (p Pulse) Advance(c float64) Pulse {
	p.Center = c
	return p
}
