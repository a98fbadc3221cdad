package wave

import "math"

// Orientation selects which component of uniform circular motion is
// projected onto the oscillator's axis.
type Orientation int

const (
	Cosine Orientation = iota
	Sine
)

// Angle returns theta = omega * t.
func Angle(omega, t float64) float64 {
	return omega * t
}

// Project returns the oscillator displacement amplitude*cos(theta) or
// amplitude*sin(theta).
func Project(amplitude, theta float64, o Orientation) float64 {
	if o == Sine {
		return amplitude * math.Sin(theta)
	}
	return amplitude * math.Cos(theta)
}

// Travelling is a sinusoid emitted by an oscillator and moving right with
// phase speed Speed.
type Travelling struct {
	Amplitude float64
	Omega     float64
	Speed     float64
}

// WaveNumber returns k = omega / v.
func (w Travelling) WaveNumber() float64 {
	return w.Omega / w.Speed
}

// Wavelength returns 2*pi / k.
func (w Travelling) Wavelength() float64 {
	return 2 * math.Pi / w.WaveNumber()
}

// At returns the displacement at distance dx downstream of the source when
// the source phase is theta: A cos(theta - k dx).
func (w Travelling) At(theta, dx float64) float64 {
	return w.Amplitude * math.Cos(theta-w.WaveNumber()*dx)
}

// SampleRange evaluates the wave from the source (dx = 0) to length at the
// given stride. Pixel holds the sample index, Time the distance dx.
func (w Travelling) SampleRange(theta, length, stride float64) SampleFrame {
	if length < 0 {
		return nil
	}
	if stride <= 0 {
		stride = 1
	}
	n := int(length/stride) + 1
	frame := make(SampleFrame, 0, n)
	for i := 0; i < n; i++ {
		dx := float64(i) * stride
		frame = append(frame, Point{Pixel: i, Time: dx, Amplitude: w.At(theta, dx)})
	}
	return frame
}
