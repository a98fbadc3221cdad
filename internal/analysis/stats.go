package analysis

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/wavesim/internal/wave"
)

var ErrTooFewSamples = errors.New("analysis: too few samples")

// Stats summarises the shape of one frame.
type Stats struct {
	Center float64 `json:"center"`
	Spread float64 `json:"spread"`
	Peak   float64 `json:"peak"`
	PeakT  float64 `json:"peak_t"`
	Area   float64 `json:"area"`
}

// PulseStats weights each sample time by |amplitude|. For a lone Gaussian
// Center and Spread recover its center and spread.
func PulseStats(f wave.SampleFrame) (Stats, error) {
	if len(f) < 2 {
		return Stats{}, ErrTooFewSamples
	}
	ts, as := f.Times(), f.Amplitudes()
	w := make([]float64, len(as))
	for i, a := range as {
		w[i] = math.Abs(a)
	}
	if floats.Sum(w) == 0 {
		return Stats{}, ErrTooFewSamples
	}

	var st Stats
	st.Center, st.Spread = stat.MeanStdDev(ts, w)
	st.Area = integrate.Trapezoidal(ts, as)
	if p, ok := f.Peak(); ok {
		st.Peak, st.PeakT = p.Amplitude, p.Time
	}
	return st, nil
}

// EstimateSpeed fits centers = a + speed*elapsed by least squares.
func EstimateSpeed(elapsed, centers []float64) (float64, error) {
	if len(elapsed) < 2 || len(elapsed) != len(centers) {
		return 0, ErrTooFewSamples
	}
	_, beta := stat.LinearRegression(elapsed, centers, nil, false)
	return beta, nil
}
