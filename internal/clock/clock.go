package clock

import (
	"sync"
	"time"
)

// Source returns the current wall-clock time.
type Source func() time.Time

// Clock tracks elapsed animation time independent of wall-clock pauses.
// Elapsed = (now - start) + accumulated while playing, accumulated while
// paused.
type Clock struct {
	now         Source
	start       time.Time
	accumulated time.Duration
	playing     bool
}

// New returns a playing clock. A nil source uses time.Now.
func New(now Source) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, start: now(), playing: true}
}

// Elapsed returns the animation time in seconds.
func (c *Clock) Elapsed() float64 {
	return c.ElapsedDuration().Seconds()
}

func (c *Clock) ElapsedDuration() time.Duration {
	if !c.playing {
		return c.accumulated
	}
	return c.accumulated + c.now().Sub(c.start)
}

func (c *Clock) Playing() bool { return c.playing }

// Pause freezes elapsed time.
func (c *Clock) Pause() {
	if !c.playing {
		return
	}
	c.accumulated += c.now().Sub(c.start)
	c.playing = false
}

// Resume moves the time origin to now so elapsed time continues from where
// it was paused.
func (c *Clock) Resume() {
	if c.playing {
		return
	}
	c.start = c.now()
	c.playing = true
}

// Toggle flips between playing and paused and returns the new state.
func (c *Clock) Toggle() bool {
	if c.playing {
		c.Pause()
	} else {
		c.Resume()
	}
	return c.playing
}

// Rebase folds the running interval into the accumulator without changing
// Elapsed. Views call it when a parameter changes mid-animation.
func (c *Clock) Rebase() {
	if !c.playing {
		return
	}
	now := c.now()
	c.accumulated += now.Sub(c.start)
	c.start = now
}

// Restart zeroes elapsed time and keeps the play state.
func (c *Clock) Restart() {
	c.start = c.now()
	c.accumulated = 0
}

// Reset zeroes elapsed time and resumes playback.
func (c *Clock) Reset() {
	c.Restart()
	c.playing = true
}

// Manual is a hand-driven time source for offline rendering and tests.
type Manual struct {
	mu sync.Mutex
	t  time.Time
}

func NewManual(start time.Time) *Manual {
	return &Manual{t: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.t
}

// Advance moves the source forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.t = m.t.Add(d)
	m.mu.Unlock()
}
