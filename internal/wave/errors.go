package wave

import (
	"errors"
	"fmt"
)

// Validation errors. Sample never returns these; callers that want to
// reject bad input run Validate first.
var (
	// ErrInvalidDomain indicates a non-positive duration, width or step.
	ErrInvalidDomain = errors.New("wave: invalid domain (duration, width and step must be positive)")

	// ErrInvalidPulse indicates a pulse with a non-positive spread.
	ErrInvalidPulse = errors.New("wave: invalid pulse (spread must be positive)")
)

// Validate checks the input constraints of Sample.
func Validate(d Domain, pulses []Pulse) error {
	if d.Duration <= 0 || d.PixelWidth <= 0 || d.Step < 0 {
		return fmt.Errorf("%w: duration=%g width=%d step=%d", ErrInvalidDomain, d.Duration, d.PixelWidth, d.Step)
	}
	for i, p := range pulses {
		if p.Spread <= 0 {
			return fmt.Errorf("%w: pulse %d spread=%g", ErrInvalidPulse, i, p.Spread)
		}
	}
	return nil
}
