package views

import (
	"context"
	"time"

	"github.com/san-kum/wavesim/internal/clock"
	"github.com/san-kum/wavesim/internal/config"
)

// Animation steps a view on a manual clock at a fixed frame rate, for
// recording and offline export.
type Animation struct {
	View  View
	Clock *clock.Manual
	FPS   int
}

// NewAnimation builds the named view on a fresh manual clock.
func NewAnimation(name string, cfg *config.Config, fps int) (*Animation, error) {
	src := clock.NewManual(time.Unix(0, 0))
	v, err := New(name, cfg, src.Now)
	if err != nil {
		return nil, err
	}
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return &Animation{View: v, Clock: src, FPS: fps}, nil
}

// Step is the wall-clock time between frames.
func (a *Animation) Step() time.Duration {
	return time.Second / time.Duration(a.FPS)
}

// Seek advances the clock by d and updates the view once.
func (a *Animation) Seek(d time.Duration) {
	a.Clock.Advance(d)
	a.View.Update()
}

// Run updates the view and calls fn for frames 0..n-1, advancing the clock
// one step between frames. It stops early when ctx is cancelled.
func (a *Animation) Run(ctx context.Context, n int, fn func(frame int) error) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.View.Update()
		if err := fn(i); err != nil {
			return err
		}
		a.Clock.Advance(a.Step())
	}
	return nil
}
