package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/wavesim/internal/wave"
)

func TestPowerSpectrumDominantBin(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		cycles float64
	}{
		{"power of two", 256, 8},
		{"odd length", 300, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := make([]float64, tt.n)
			for i := range x {
				x[i] = math.Sin(2 * math.Pi * tt.cycles * float64(i) / float64(tt.n))
			}
			ps := PowerSpectrum(x)
			if len(ps) != tt.n/2+1 {
				t.Fatalf("expected %d bins, got %d", tt.n/2+1, len(ps))
			}
			bin, _ := DominantBin(ps)
			if bin != int(tt.cycles) {
				t.Errorf("expected bin %d, got %d", int(tt.cycles), bin)
			}
		})
	}
}

func TestPowerSpectrumDoesNotModifyInput(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	PowerSpectrum(x)
	if x[0] != 1 || x[3] != 4 {
		t.Errorf("input modified: %v", x)
	}
	if PowerSpectrum(nil) != nil {
		t.Error("expected nil spectrum for empty input")
	}
}

func TestBinFrequency(t *testing.T) {
	if got := BinFrequency(8, 256, 60); math.Abs(got-1.875) > 1e-12 {
		t.Errorf("expected 1.875, got %f", got)
	}
}

func TestPulseStats(t *testing.T) {
	p := wave.Pulse{Amplitude: 50, Spread: 0.05, Center: 0.35}
	f := wave.Sample(wave.NewDomain(0.7, 800), []wave.Pulse{p}, wave.Identity)

	st, err := PulseStats(f)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(st.Center-0.35) > 1e-3 {
		t.Errorf("center: expected 0.35, got %f", st.Center)
	}
	if math.Abs(st.Spread-0.05)/0.05 > 0.02 {
		t.Errorf("spread: expected 0.05, got %f", st.Spread)
	}
	wantArea := 50 * 0.05 * math.Sqrt(2*math.Pi)
	if math.Abs(st.Area-wantArea)/wantArea > 0.01 {
		t.Errorf("area: expected %f, got %f", wantArea, st.Area)
	}
	if math.Abs(st.Peak-50) > 0.1 {
		t.Errorf("peak: expected 50, got %f", st.Peak)
	}
}

func TestPulseStatsRejectsFlatFrames(t *testing.T) {
	flat := wave.SampleFrame{{Time: 0}, {Time: 1}}
	if _, err := PulseStats(flat); !errors.Is(err, ErrTooFewSamples) {
		t.Errorf("expected ErrTooFewSamples, got %v", err)
	}
	if _, err := PulseStats(nil); !errors.Is(err, ErrTooFewSamples) {
		t.Errorf("expected ErrTooFewSamples, got %v", err)
	}
}

func TestEstimateSpeed(t *testing.T) {
	elapsed := []float64{0, 0.5, 1, 1.5, 2}
	centers := make([]float64, len(elapsed))
	for i, e := range elapsed {
		centers[i] = 0.1 + 0.14*e
	}
	v, err := EstimateSpeed(elapsed, centers)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v-0.14) > 1e-9 {
		t.Errorf("expected 0.14, got %f", v)
	}

	if _, err := EstimateSpeed([]float64{1}, []float64{1}); err == nil {
		t.Error("expected error for a single point")
	}
}
