package views

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/wavesim/internal/clock"
	"github.com/san-kum/wavesim/internal/wave"
)

var ErrUnknownParam = errors.New("views: unknown parameter")

// View is one animation: a configuration record, an animation clock and the
// per-frame sampling that turns both into drawing calls.
type View interface {
	Name() string
	// Update advances pulse positions from the clock and applies the
	// view's restart rule.
	Update()
	// Draw renders the current state. A nil surface is a no-op.
	Draw(s Surface)
	// Series exposes the sampled curves of the current frame.
	Series() []Series
	Params() []Param
	SetParam(name string, value float64) error
	Reset()
	TogglePause() bool
	Playing() bool
	Elapsed() float64
	Resize(w, h int)
}

// Series is one named curve of a frame.
type Series struct {
	Name  string
	Color string
	Frame wave.SampleFrame
}

// Param is a tunable value with the range of its slider.
type Param struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Step  float64 `json:"step"`
}

func (p Param) clamp(v float64) float64 {
	return math.Max(p.Min, math.Min(p.Max, v))
}

// base carries what every view shares: the clock and the last known
// surface size.
type base struct {
	clock         *clock.Clock
	width, height int
}

func newBase(now clock.Source, w, h int) base {
	return base{clock: clock.New(now), width: w, height: h}
}

func (b *base) Playing() bool     { return b.clock.Playing() }
func (b *base) TogglePause() bool { return b.clock.Toggle() }
func (b *base) Elapsed() float64  { return b.clock.Elapsed() }

func (b *base) Resize(w, h int) {
	if w > 0 {
		b.width = w
	}
	if h > 0 {
		b.height = h
	}
}

// fit syncs the stored size with the surface and reports it.
func (b *base) fit(s Surface) (int, int) {
	w, h := s.Size()
	b.Resize(w, h)
	return b.width, b.height
}

// setParam looks name up in params, clamps v and hands it to set. The clock
// is rebased so elapsed time stays continuous across the change.
func (b *base) setParam(params []Param, name string, v float64, set func(string, float64)) error {
	for _, p := range params {
		if p.Name == name {
			b.clock.Rebase()
			set(name, p.clamp(v))
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownParam, name)
}
