package wave_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wavesim/internal/wave"
)

var _ = Describe("Pulse", func() {
	p := wave.Pulse{Amplitude: 50, Spread: 0.05, Center: 0.35}

	It("peaks at its center", func() {
		Expect(p.At(0.35)).To(Equal(50.0))
	})

	It("drops to A*e^-1/2 one spread away", func() {
		want := 50 * math.Exp(-0.5)
		Expect(p.At(0.30)).To(BeNumerically("~", want, 1e-9))
		Expect(p.At(0.40)).To(BeNumerically("~", want, 1e-9))
		Expect(want).To(BeNumerically("~", 30.3, 0.05))
	})

	It("is symmetric and maximal at the center", func() {
		for _, d := range []float64{0.001, 0.01, 0.037, 0.1, 0.3} {
			Expect(p.At(p.Center + d)).To(BeNumerically("~", p.At(p.Center-d), 1e-12))
			Expect(p.At(p.Center + d)).To(BeNumerically("<", p.At(p.Center)))
		}
	})

	It("evaluates mirrored pulses from the right edge", func() {
		m := p
		m.Mirrored = true
		for _, t := range []float64{0, 0.2, 0.35, 0.6} {
			Expect(m.Eval(t, 0.7)).To(Equal(p.At(0.7 - t)))
		}
	})

	It("yields NaN at the center when spread is zero", func() {
		bad := wave.Pulse{Amplitude: 1, Spread: 0, Center: 0.2}
		Expect(math.IsNaN(bad.At(0.2))).To(BeTrue())
	})
})

var _ = Describe("Sample", func() {
	d := wave.NewDomain(0.7, 800)
	a := wave.Pulse{Amplitude: 110, Spread: 0.05, Center: 0.2}
	b := wave.Pulse{Amplitude: 40, Spread: 0.05, Center: 0.3, Mirrored: true}

	It("covers the width at the pixel step", func() {
		f := wave.Sample(d, []wave.Pulse{a}, wave.Identity)
		Expect(f).To(HaveLen(800))
		Expect(d.Len()).To(Equal(800))
		Expect(f[0].Pixel).To(Equal(0))
		Expect(f[799].Pixel).To(Equal(799))
		Expect(f[400].Time).To(BeNumerically("~", 0.35, 1e-12))
	})

	It("honours start and stride", func() {
		dd := d
		dd.Start, dd.Step = 20, 20
		f := wave.Sample(dd, []wave.Pulse{a}, wave.Identity)
		Expect(f).To(HaveLen(dd.Len()))
		Expect(f[0].Pixel).To(Equal(20))
		Expect(f[len(f)-1].Pixel).To(Equal(780))
	})

	It("is commutative under superposition", func() {
		ab := wave.Sample(d, []wave.Pulse{a, b}, wave.Sum)
		ba := wave.Sample(d, []wave.Pulse{b, a}, wave.Sum)
		for i := range ab {
			Expect(ab[i].Amplitude).To(BeNumerically("~", ba[i].Amplitude, 1e-12))
		}
	})

	It("equals the pointwise sum of its constituents", func() {
		ab := wave.Sample(d, []wave.Pulse{a, b}, wave.Sum)
		fa := wave.Sample(d, []wave.Pulse{a}, wave.Identity)
		fb := wave.Sample(d, []wave.Pulse{b}, wave.Identity)
		sum := wave.Superpose(fa, fb)
		for i := range ab {
			Expect(ab[i].Amplitude).To(BeNumerically("~", fa[i].Amplitude+fb[i].Amplitude, 1e-9))
			Expect(sum[i].Amplitude).To(BeNumerically("~", ab[i].Amplitude, 1e-9))
		}
	})

	It("keeps amplitudes at a given time when the width is rescaled", func() {
		narrow := wave.Sample(wave.NewDomain(0.7, 800), []wave.Pulse{a, b}, wave.Sum)
		wide := wave.Sample(wave.NewDomain(0.7, 1600), []wave.Pulse{a, b}, wave.Sum)
		Expect(wide).To(HaveLen(2 * len(narrow)))
		for i, p := range narrow {
			q := wide[2*i]
			Expect(q.Pixel).To(Equal(2 * p.Pixel))
			Expect(q.Time).To(BeNumerically("~", p.Time, 1e-12))
			Expect(q.Amplitude).To(BeNumerically("~", p.Amplitude, 1e-9))
		}
	})

	It("locates the peak of a single pulse", func() {
		f := wave.Sample(d, []wave.Pulse{a}, wave.Identity)
		peak, ok := f.Peak()
		Expect(ok).To(BeTrue())
		Expect(peak.Time).To(BeNumerically("~", a.Center, d.TimeAt(1)))
		Expect(peak.Amplitude).To(BeNumerically("~", a.Amplitude, 0.1))
	})

	It("maps pixels and times both ways", func() {
		Expect(d.PixelAt(d.TimeAt(123))).To(BeNumerically("~", 123, 1e-9))
	})
})

var _ = Describe("Combine functions", func() {
	It("keep the first value for Identity", func() {
		Expect(wave.Identity([]float64{3, 4})).To(Equal(3.0))
		Expect(wave.Identity(nil)).To(Equal(0.0))
	})

	It("keep the largest magnitude for Envelope", func() {
		Expect(wave.Envelope([]float64{3, -7, 5})).To(Equal(-7.0))
	})
})

var _ = Describe("Validate", func() {
	It("accepts sane input", func() {
		Expect(wave.Validate(wave.NewDomain(0.7, 800), []wave.Pulse{{Amplitude: 1, Spread: 0.1}})).To(Succeed())
	})

	It("rejects a degenerate domain", func() {
		err := wave.Validate(wave.NewDomain(0, 800), nil)
		Expect(errors.Is(err, wave.ErrInvalidDomain)).To(BeTrue())
	})

	It("rejects a zero spread", func() {
		err := wave.Validate(wave.NewDomain(0.7, 800), []wave.Pulse{{Amplitude: 1}})
		Expect(errors.Is(err, wave.ErrInvalidPulse)).To(BeTrue())
	})
})
