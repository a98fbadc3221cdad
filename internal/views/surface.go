package views

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/wavesim/internal/wave"
)

// Vec is a point in surface pixels, y pointing down.
type Vec struct {
	X, Y float64
}

// Stroke describes how a line is drawn.
type Stroke struct {
	Color string
	Width float64
	// Dash is the on/off length of a dashed line; 0 draws solid.
	Dash float64
	// Opacity in (0, 1]; 0 means opaque.
	Opacity float64
}

// Surface is a drawing target: braille canvas, window, SVG or image.
type Surface interface {
	Size() (w, h int)
	Clear(background string)
	Line(a, b Vec, st Stroke)
	Polyline(pts []Vec, st Stroke)
	Circle(c Vec, r float64, st Stroke)
	Disc(c Vec, r float64, fill string)
}

var namedColors = map[string]color.NRGBA{
	"transparent": {0, 0, 0, 0},
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"gray":        {128, 128, 128, 255},
	"grey":        {128, 128, 128, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 128, 0, 255},
	"blue":        {0, 0, 255, 255},
	"orange":      {255, 165, 0, 255},
	"yellow":      {255, 255, 0, 255},
	"cyan":        {0, 255, 255, 255},
	"magenta":     {255, 0, 255, 255},
}

// ParseColor understands CSS colour names used by the views and #rgb,
// #rrggbb and #rrggbbaa. Unknown input yields opaque white.
func ParseColor(s string) color.NRGBA {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c
	}
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{255, 255, 255, 255}
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{255, 255, 255, 255}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{255, 255, 255, 255}
	}
	if len(hex) == 6 {
		return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

// StrokeColor resolves st's colour with its opacity applied.
func StrokeColor(st Stroke) color.NRGBA {
	c := ParseColor(st.Color)
	if st.Opacity > 0 && st.Opacity < 1 {
		c.A = uint8(float64(c.A) * st.Opacity)
	}
	return c
}

// polyline maps a frame to surface points using y(amplitude).
func polyline(f wave.SampleFrame, y func(a float64) float64) []Vec {
	pts := make([]Vec, len(f))
	for i, p := range f {
		pts[i] = Vec{float64(p.Pixel), y(p.Amplitude)}
	}
	return pts
}

func hline(s Surface, y float64, w int, st Stroke) {
	s.Line(Vec{0, y}, Vec{float64(w), y}, st)
}

// Dashes cuts a polyline into runs of length dash separated by gaps of the
// same length, measured along the path.
func Dashes(pts []Vec, dash float64) [][]Vec {
	if len(pts) == 0 {
		return nil
	}
	var (
		runs [][]Vec
		cur  []Vec
		on   = true
		left = dash
	)
	cur = append(cur, pts[0])
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for seg-pos > left {
			pos += left
			t := pos / seg
			p := Vec{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			if on {
				runs = append(runs, append(cur, p))
				cur = nil
			} else {
				cur = []Vec{p}
			}
			on = !on
			left = dash
		}
		left -= seg - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		runs = append(runs, cur)
	}
	return runs
}
