package wave

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Domain maps the pixel columns of a drawing surface onto the time axis
// [0, Duration].
type Domain struct {
	Duration   float64
	PixelWidth int
	// Start is the first sampled pixel, End the exclusive last one.
	// End == 0 means PixelWidth.
	Start, End int
	// Step is the pixel stride; 0 means 1.
	Step int
}

// NewDomain returns a domain sampling every pixel of a surface.
func NewDomain(duration float64, pixelWidth int) Domain {
	return Domain{Duration: duration, PixelWidth: pixelWidth, Step: 1}
}

// Scale is the number of pixels per unit of time.
func (d Domain) Scale() float64 {
	return float64(d.PixelWidth) / d.Duration
}

// TimeAt converts a pixel column to time.
func (d Domain) TimeAt(pixel float64) float64 {
	return pixel / d.Scale()
}

// PixelAt converts a time to a (fractional) pixel column.
func (d Domain) PixelAt(t float64) float64 {
	return t * d.Scale()
}

func (d Domain) bounds() (start, end, step int) {
	start, end, step = d.Start, d.End, d.Step
	if end == 0 {
		end = d.PixelWidth
	}
	if step <= 0 {
		step = 1
	}
	return start, end, step
}

// Len returns the number of samples Sample produces for d.
func (d Domain) Len() int {
	start, end, step := d.bounds()
	if end <= start {
		return 0
	}
	return (end - start + step - 1) / step
}

// Point is one sample of a frame.
type Point struct {
	Pixel     int     `json:"pixel"`
	Time      float64 `json:"t"`
	Amplitude float64 `json:"amplitude"`
}

// SampleFrame is an ordered run of samples across the visible width.
type SampleFrame []Point

// Amplitudes returns the amplitude column of the frame.
func (f SampleFrame) Amplitudes() []float64 {
	out := make([]float64, len(f))
	for i, p := range f {
		out[i] = p.Amplitude
	}
	return out
}

// Times returns the time column of the frame.
func (f SampleFrame) Times() []float64 {
	out := make([]float64, len(f))
	for i, p := range f {
		out[i] = p.Time
	}
	return out
}

// Peak returns the sample with the largest absolute amplitude.
func (f SampleFrame) Peak() (Point, bool) {
	if len(f) == 0 {
		return Point{}, false
	}
	best := f[0]
	for _, p := range f[1:] {
		if math.Abs(p.Amplitude) > math.Abs(best.Amplitude) {
			best = p
		}
	}
	return best, true
}

// CombineFunc folds the per-pulse amplitudes at one sample into one value.
type CombineFunc func(values []float64) float64

// Sum is superposition.
func Sum(values []float64) float64 {
	return floats.Sum(values)
}

// Identity keeps the first pulse only.
func Identity(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[0]
}

// Envelope keeps the value with the largest magnitude.
func Envelope(values []float64) float64 {
	out := 0.0
	for _, v := range values {
		if math.Abs(v) > math.Abs(out) {
			out = v
		}
	}
	return out
}

// Sample evaluates pulses at every pixel step of d and combines them.
// It does not validate its input: a zero spread or duration yields NaN or
// Inf amplitudes.
func Sample(d Domain, pulses []Pulse, combine CombineFunc) SampleFrame {
	if combine == nil {
		combine = Sum
	}
	start, end, step := d.bounds()
	frame := make(SampleFrame, 0, d.Len())
	values := make([]float64, len(pulses))
	scale := d.Scale()
	for px := start; px < end; px += step {
		t := float64(px) / scale
		for i, p := range pulses {
			values[i] = p.Eval(t, d.Duration)
		}
		frame = append(frame, Point{Pixel: px, Time: t, Amplitude: combine(values)})
	}
	return frame
}

// Superpose returns the pointwise sum of frames sampled on the same domain.
func Superpose(frames ...SampleFrame) SampleFrame {
	if len(frames) == 0 {
		return nil
	}
	out := make(SampleFrame, len(frames[0]))
	copy(out, frames[0])
	acc := out.Amplitudes()
	for _, f := range frames[1:] {
		floats.Add(acc, f.Amplitudes())
	}
	for i := range out {
		out[i].Amplitude = acc[i]
	}
	return out
}
