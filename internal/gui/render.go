package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/wavesim/internal/views"
)

// Surface draws into a rectangle of the raylib window. It must be used
// between BeginDrawing and EndDrawing.
type Surface struct {
	X, Y          float32
	Width, Height int
}

var _ views.Surface = (*Surface)(nil)

func toColor(c string) rl.Color {
	n := views.ParseColor(c)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

func strokeColor(st views.Stroke) rl.Color {
	n := views.StrokeColor(st)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

func (s *Surface) at(v views.Vec) rl.Vector2 {
	return rl.NewVector2(s.X+float32(v.X), s.Y+float32(v.Y))
}

func (s *Surface) Size() (int, int) { return s.Width, s.Height }

// Clear fills the rectangle; transparent leaves the window background.
func (s *Surface) Clear(background string) {
	c := toColor(background)
	if background == "" || c.A == 0 {
		return
	}
	rl.DrawRectangle(int32(s.X), int32(s.Y), int32(s.Width), int32(s.Height), c)
}

func (s *Surface) Line(a, b views.Vec, st views.Stroke) {
	s.Polyline([]views.Vec{a, b}, st)
}

func (s *Surface) Polyline(pts []views.Vec, st views.Stroke) {
	if len(pts) < 2 {
		return
	}
	col := strokeColor(st)
	thick := float32(math.Max(st.Width, 1))
	runs := [][]views.Vec{pts}
	if st.Dash > 0 {
		runs = views.Dashes(pts, st.Dash)
	}
	for _, run := range runs {
		for i := 1; i < len(run); i++ {
			if nonFinite(run[i-1]) || nonFinite(run[i]) {
				continue
			}
			rl.DrawLineEx(s.at(run[i-1]), s.at(run[i]), thick, col)
		}
	}
}

func (s *Surface) Circle(c views.Vec, r float64, st views.Stroke) {
	if nonFinite(c) || r <= 0 {
		return
	}
	half := math.Max(st.Width, 1) / 2
	rl.DrawRing(s.at(c), float32(math.Max(0, r-half)), float32(r+half), 0, 360, 64, strokeColor(st))
}

func (s *Surface) Disc(c views.Vec, r float64, fill string) {
	if nonFinite(c) || r <= 0 {
		return
	}
	rl.DrawCircleV(s.at(c), float32(r), toColor(fill))
}

func nonFinite(v views.Vec) bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}
