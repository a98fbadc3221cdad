package wave_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wavesim/internal/wave"
)

var _ = Describe("Free-end reflection", func() {
	const boundary = 0.56

	It("mirrors the center about the boundary", func() {
		for _, c := range []float64{0, 0.1, 0.56, 0.9, 1.3} {
			Expect(wave.MirrorCenter(c, boundary)).To(BeNumerically("~", 2*boundary-c, 1e-12))
		}
	})

	It("keeps the sign of the incident pulse", func() {
		inc := wave.Pulse{Amplitude: -30, Spread: 0.1, Center: 0.2}
		ref := wave.Reflect(inc, boundary)
		Expect(ref.Amplitude).To(Equal(inc.Amplitude))
		Expect(ref.Center).To(BeNumerically("~", 0.92, 1e-12))
	})

	It("coincides with the incident pulse at the boundary", func() {
		inc := wave.Pulse{Amplitude: 50, Spread: 0.1, Center: 0.4}
		ref := wave.Reflect(inc, boundary)
		Expect(ref.At(boundary)).To(BeNumerically("~", inc.At(boundary), 1e-12))
	})

	It("expires once five spreads past the left edge", func() {
		p := wave.Pulse{Amplitude: 1, Spread: 0.1, Center: -0.49}
		Expect(wave.Expired(p)).To(BeFalse())
		p.Center = -0.51
		Expect(wave.Expired(p)).To(BeTrue())
	})
})

var _ = Describe("Projection", func() {
	It("projects onto cosine and sine axes", func() {
		Expect(wave.Project(100, 0, wave.Cosine)).To(Equal(100.0))
		Expect(wave.Project(100, math.Pi/2, wave.Sine)).To(BeNumerically("~", 100, 1e-9))
		Expect(wave.Project(100, math.Pi/2, wave.Cosine)).To(BeNumerically("~", 0, 1e-9))
	})

	It("derives theta from omega and time", func() {
		Expect(wave.Angle(2.3, 2)).To(BeNumerically("~", 4.6, 1e-12))
	})
})

var _ = Describe("Travelling", func() {
	w := wave.Travelling{Amplitude: 100, Omega: 2.3, Speed: 150}

	It("uses k = omega / v", func() {
		Expect(w.WaveNumber()).To(BeNumerically("~", 2.3/150, 1e-15))
	})

	It("matches the source at dx = 0", func() {
		Expect(w.At(1.2, 0)).To(BeNumerically("~", 100*math.Cos(1.2), 1e-9))
	})

	It("repeats every wavelength", func() {
		for _, dx := range []float64{0, 13, 250} {
			Expect(w.At(0.7, dx+w.Wavelength())).To(BeNumerically("~", w.At(0.7, dx), 1e-9))
		}
	})

	It("samples from the source outwards", func() {
		f := w.SampleRange(0.5, 10, 1)
		Expect(f).To(HaveLen(11))
		Expect(f[10].Time).To(Equal(10.0))
		Expect(w.SampleRange(0.5, -1, 1)).To(BeNil())
	})
})
