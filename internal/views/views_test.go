package views

import (
	"errors"
	"math"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/san-kum/wavesim/internal/clock"
	"github.com/san-kum/wavesim/internal/config"
)

// recorder is a Surface that counts what it is asked to draw.
type recorder struct {
	w, h      int
	clears    int
	lines     []Stroke
	polylines [][]Vec
	strokes   []Stroke
	circles   int
	discs     []Vec
}

func (r *recorder) Size() (int, int)                     { return r.w, r.h }
func (r *recorder) Clear(string)                         { r.clears++ }
func (r *recorder) Line(a, b Vec, st Stroke)             { r.lines = append(r.lines, st) }
func (r *recorder) Circle(c Vec, rad float64, st Stroke) { r.circles++ }
func (r *recorder) Disc(c Vec, rad float64, fill string) { r.discs = append(r.discs, c) }
func (r *recorder) Polyline(pts []Vec, st Stroke) {
	r.polylines = append(r.polylines, pts)
	r.strokes = append(r.strokes, st)
}

func manualClock() *clock.Manual {
	return clock.NewManual(time.Unix(0, 0))
}

func TestPulseView(t *testing.T) {
	Convey("Given a pulse view on a manual clock", t, func() {
		src := manualClock()
		v := NewPulse(config.DefaultConfig().Pulse, src.Now)

		Convey("the offset grows with elapsed * speed * duration", func() {
			src.Advance(2 * time.Second)
			v.Update()
			So(v.Offset(), ShouldAlmostEqual, 2*0.2*0.7, 1e-9)
		})

		Convey("it restarts once the offset passes 1.5 durations", func() {
			src.Advance(7 * time.Second)
			v.Update()
			So(v.Offset(), ShouldBeGreaterThan, 0)

			src.Advance(600 * time.Millisecond)
			v.Update()
			So(v.Offset(), ShouldEqual, 0)
			So(v.Elapsed(), ShouldEqual, 0)
		})

		Convey("pausing freezes the pulse", func() {
			src.Advance(time.Second)
			So(v.TogglePause(), ShouldBeFalse)
			v.Update()
			before := v.Offset()
			src.Advance(3 * time.Second)
			v.Update()
			So(v.Offset(), ShouldEqual, before)
		})

		Convey("drawing a frame issues a curve, a center line and dots", func() {
			src.Advance(time.Second)
			v.Update()
			s := &recorder{w: 800, h: 300}
			v.Draw(s)
			So(s.clears, ShouldEqual, 1)
			So(len(s.polylines), ShouldEqual, 1)
			So(len(s.lines), ShouldEqual, 1)
			So(len(s.discs), ShouldEqual, 39)
		})

		Convey("a nil surface is a no-op", func() {
			So(func() { v.Draw(nil) }, ShouldNotPanic)
		})
	})
}

func TestSuperpositionView(t *testing.T) {
	Convey("Given a superposition view", t, func() {
		src := manualClock()
		v := NewSuperposition(config.DefaultConfig().Superposition, src.Now)

		Convey("both pulses move together", func() {
			src.Advance(time.Second)
			v.Update()
			l, r := v.Offsets()
			So(l, ShouldAlmostEqual, 0.14, 1e-9)
			So(r, ShouldEqual, l)
		})

		Convey("it restarts after two durations", func() {
			src.Advance(10*time.Second + time.Millisecond)
			v.Update()
			l, _ := v.Offsets()
			So(l, ShouldEqual, 0)
		})

		Convey("the combined series is the sum of the individual ones", func() {
			src.Advance(2500 * time.Millisecond)
			v.Update()
			s := v.Series()
			So(len(s), ShouldEqual, 3)
			for i := range s[2].Frame {
				So(s[2].Frame[i].Amplitude, ShouldAlmostEqual, s[0].Frame[i].Amplitude+s[1].Frame[i].Amplitude, 1e-9)
			}
		})

		Convey("the right pulse enters from the right edge", func() {
			src.Advance(time.Second)
			v.Update()
			right := v.Series()[1]
			peak, ok := right.Frame.Peak()
			So(ok, ShouldBeTrue)
			So(peak.Time, ShouldAlmostEqual, 0.7-0.14, 0.002)
		})

		Convey("individual lines are drawn only when enabled", func() {
			s := &recorder{w: 800, h: 300}
			v.Draw(s)
			So(len(s.polylines), ShouldEqual, 3)

			cfg := config.DefaultConfig().Superposition
			cfg.ShowIndividual = false
			s = &recorder{w: 800, h: 300}
			NewSuperposition(cfg, src.Now).Draw(s)
			So(len(s.polylines), ShouldEqual, 1)
		})
	})
}

func TestReflectionView(t *testing.T) {
	Convey("Given a reflection view", t, func() {
		src := manualClock()
		v := NewReflection(config.DefaultConfig().Reflection, src.Now)
		r := v.Boundary()

		Convey("the boundary sits at 80% of the duration", func() {
			So(r, ShouldAlmostEqual, 0.56, 1e-12)
		})

		Convey("the reflected center mirrors the incident one at every frame", func() {
			for i := 0; i < 600; i++ {
				src.Advance(time.Second / 60)
				v.Update()
				inc, ref := v.Centers()
				So(ref, ShouldAlmostEqual, 2*r-inc, 1e-9)
			}
		})

		Convey("it restarts when the reflection leaves five spreads past the edge", func() {
			// reflected = 2R - elapsed*speed < -0.5  =>  elapsed > 8.1s
			src.Advance(8 * time.Second)
			v.Update()
			inc, _ := v.Centers()
			So(inc, ShouldAlmostEqual, 1.6, 1e-9)

			src.Advance(200 * time.Millisecond)
			v.Update()
			inc, ref := v.Centers()
			So(inc, ShouldEqual, 0)
			So(ref, ShouldAlmostEqual, 2*r, 1e-12)
		})

		Convey("series stop at the boundary", func() {
			v.Update()
			for _, s := range v.Series() {
				last := s.Frame[len(s.Frame)-1]
				So(last.Pixel, ShouldBeBetweenOrEqual, 639, 640)
			}
		})

		Convey("drawing produces a dashed boundary and a translucent sum", func() {
			s := &recorder{w: 800, h: 300}
			v.Draw(s)
			So(len(s.polylines), ShouldEqual, 4)
			So(s.strokes[2].Dash, ShouldBeGreaterThan, 0)
			So(s.strokes[3].Opacity, ShouldEqual, 0.6)
			So(s.lines[1].Color, ShouldEqual, "red")
		})
	})
}

func TestOscillationView(t *testing.T) {
	Convey("Given an oscillation view", t, func() {
		src := manualClock()
		v := NewOscillation(config.DefaultConfig().Oscillation, src.Now)

		Convey("theta is omega * t and the bob sits at A cos theta", func() {
			src.Advance(1500 * time.Millisecond)
			v.Update()
			So(v.Angle(), ShouldAlmostEqual, 1.5, 1e-9)
			So(v.Position(), ShouldAlmostEqual, 100*math.Cos(1.5), 1e-9)
		})

		Convey("it never restarts", func() {
			src.Advance(time.Hour)
			v.Update()
			So(v.Elapsed(), ShouldAlmostEqual, 3600, 1e-6)
		})

		Convey("it draws the circle, rail and bob", func() {
			s := &recorder{w: 340, h: 400}
			v.Draw(s)
			So(s.circles, ShouldBeGreaterThan, 0)
			So(len(s.discs), ShouldBeGreaterThan, 0)
		})
	})
}

func TestSineView(t *testing.T) {
	Convey("Given a sine view", t, func() {
		src := manualClock()
		v := NewSine(config.DefaultConfig().Sine, src.Now)

		Convey("the wave starts at the oscillator", func() {
			src.Advance(time.Second)
			v.Update()
			f := v.Series()[0].Frame
			So(len(f), ShouldBeGreaterThan, 0)
			So(f[0].Amplitude, ShouldAlmostEqual, 100*math.Cos(2.3), 1e-9)
		})

		Convey("the wave spans from the source to the right edge", func() {
			So(len(v.Series()[0].Frame), ShouldEqual, 831)
		})

		Convey("geometry scales with the surface", func() {
			s := &recorder{w: 600, h: 170}
			v.Draw(s)
			So(len(s.polylines), ShouldEqual, 1)
			last := s.polylines[0][len(s.polylines[0])-1]
			So(last.X, ShouldBeLessThanOrEqualTo, 600)
		})
	})
}

func TestSetParam(t *testing.T) {
	Convey("Given any view", t, func() {
		src := manualClock()
		for _, name := range Names() {
			v, err := New(name, nil, src.Now)
			So(err, ShouldBeNil)

			Convey(name+" clamps values to the slider range", func() {
				p := v.Params()[0]
				So(v.SetParam(p.Name, p.Max*10), ShouldBeNil)
				So(v.Params()[0].Value, ShouldEqual, p.Max)
			})

			Convey(name+" rejects unknown parameters", func() {
				err := v.SetParam("nope", 1)
				So(errors.Is(err, ErrUnknownParam), ShouldBeTrue)
			})

			Convey(name+" keeps elapsed time continuous across a change", func() {
				src.Advance(2 * time.Second)
				before := v.Elapsed()
				So(v.SetParam(v.Params()[0].Name, v.Params()[0].Min), ShouldBeNil)
				So(v.Elapsed(), ShouldAlmostEqual, before, 1e-9)
			})

			Convey(name+" restores its configuration on reset", func() {
				orig := v.Params()[0].Value
				So(v.SetParam(v.Params()[0].Name, v.Params()[0].Min), ShouldBeNil)
				src.Advance(time.Second)
				v.Reset()
				So(v.Params()[0].Value, ShouldEqual, orig)
				So(v.Elapsed(), ShouldEqual, 0)
				So(v.Playing(), ShouldBeTrue)
			})
		}
	})
}

func TestSuperpositionAcceptsNegativeAmplitudes(t *testing.T) {
	v := NewSuperposition(config.DefaultConfig().Superposition, manualClock().Now)
	if err := v.SetParam("amplitude_right", -120); err != nil {
		t.Fatal(err)
	}
	for _, p := range v.Params() {
		if p.Name == "amplitude_right" && p.Value != -120 {
			t.Errorf("expected -120, got %f", p.Value)
		}
	}
}

func TestRegistry(t *testing.T) {
	if _, err := New("bogus", nil, nil); err == nil {
		t.Error("expected error for unknown view")
	}
	for _, name := range Names() {
		if Describe(name) == "" {
			t.Errorf("%s has no description", name)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want [4]uint8
	}{
		{"orange", [4]uint8{255, 165, 0, 255}},
		{"#ea00ff", [4]uint8{0xea, 0, 0xff, 255}},
		{"#ea00ffff", [4]uint8{0xea, 0, 0xff, 0xff}},
		{"#ffa50080", [4]uint8{0xff, 0xa5, 0, 0x80}},
		{"#f00", [4]uint8{255, 0, 0, 255}},
		{"garbage", [4]uint8{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		c := ParseColor(tt.in)
		got := [4]uint8{c.R, c.G, c.B, c.A}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDashes(t *testing.T) {
	pts := []Vec{{X: 0, Y: 0}, {X: 20, Y: 0}}
	runs := Dashes(pts, 5)
	if len(runs) != 2 {
		t.Fatalf("expected 2 dashes, got %d", len(runs))
	}
	if runs[0][0].X != 0 || runs[0][len(runs[0])-1].X != 5 {
		t.Errorf("first dash should span 0..5, got %v", runs[0])
	}
	if runs[1][0].X != 10 || runs[1][len(runs[1])-1].X != 15 {
		t.Errorf("second dash should span 10..15, got %v", runs[1])
	}
}
