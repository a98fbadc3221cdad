package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// PowerSpectrum returns |X_k| for k = 0..n/2 of a Hann-windowed copy of
// data. Any length is accepted.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	x := make([]float64, len(data))
	copy(x, data)
	if len(x) > 1 {
		window.Apply(x, window.Hann)
	}

	spec := fft.FFTReal(x)
	ps := make([]float64, len(spec)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// DominantBin returns the index and magnitude of the largest bin after DC.
func DominantBin(ps []float64) (int, float64) {
	best, mag := 0, 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > mag {
			best, mag = i, ps[i]
		}
	}
	return best, mag
}

// BinFrequency converts a bin of an n-point spectrum to cycles per unit of
// the sample spacing's reciprocal.
func BinFrequency(bin, n int, sampleRate float64) float64 {
	if n == 0 {
		return 0
	}
	return float64(bin) * sampleRate / float64(n)
}
