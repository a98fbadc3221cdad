package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/wavesim/internal/views"
)

// SVG is a Surface that accumulates SVG elements.
type SVG struct {
	width, height int
	background    string
	body          strings.Builder
}

var _ views.Surface = (*SVG)(nil)

func NewSVG(w, h int) *SVG {
	return &SVG{width: w, height: h}
}

func (s *SVG) Size() (int, int) { return s.width, s.height }

// Clear drops everything drawn so far.
func (s *SVG) Clear(background string) {
	s.background = background
	s.body.Reset()
}

func strokeAttrs(st views.Stroke) string {
	w := st.Width
	if w <= 0 {
		w = 1
	}
	attrs := fmt.Sprintf(`fill="none" stroke="%s" stroke-width="%.2f" stroke-linecap="round" stroke-linejoin="round"`, svgColor(st.Color), w)
	if st.Dash > 0 {
		attrs += fmt.Sprintf(` stroke-dasharray="%.2f %.2f"`, st.Dash, st.Dash)
	}
	if op := strokeOpacity(st); op < 1 {
		attrs += fmt.Sprintf(` stroke-opacity="%.3f"`, op)
	}
	return attrs
}

// strokeOpacity folds a #rrggbbaa alpha and the stroke opacity together.
func strokeOpacity(st views.Stroke) float64 {
	return float64(views.StrokeColor(st).A) / 255
}

func svgColor(c string) string {
	n := views.ParseColor(c)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func (s *SVG) Line(a, b views.Vec, st views.Stroke) {
	if !finiteVec(a) || !finiteVec(b) {
		return
	}
	fmt.Fprintf(&s.body, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" %s/>`+"\n", a.X, a.Y, b.X, b.Y, strokeAttrs(st))
}

func (s *SVG) Polyline(pts []views.Vec, st views.Stroke) {
	pts = finitePoints(pts)
	if len(pts) < 2 {
		return
	}
	s.body.WriteString(`<path d="M`)
	for i, p := range pts {
		if i > 0 {
			s.body.WriteString(" L")
		}
		fmt.Fprintf(&s.body, "%.1f,%.1f", p.X, p.Y)
	}
	fmt.Fprintf(&s.body, `" %s/>`+"\n", strokeAttrs(st))
}

func (s *SVG) Circle(c views.Vec, r float64, st views.Stroke) {
	if !finiteVec(c) || !(r > 0) {
		return
	}
	fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%.1f" %s/>`+"\n", c.X, c.Y, r, strokeAttrs(st))
}

func (s *SVG) Disc(c views.Vec, r float64, fill string) {
	if !finiteVec(c) || !(r > 0) {
		return
	}
	op := float64(views.ParseColor(fill).A) / 255
	fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="%.3f"/>`+"\n", c.X, c.Y, r, svgColor(fill), op)
}

// String returns the complete document.
func (s *SVG) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, s.width, s.height, s.width, s.height)
	if s.background != "" && views.ParseColor(s.background).A > 0 {
		fmt.Fprintf(&sb, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", svgColor(s.background))
	}
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

// FrameSVG draws the current frame of v as an SVG document.
func FrameSVG(v views.View, w, h int) string {
	s := NewSVG(w, h)
	v.Draw(s)
	return s.String()
}

func WriteSVG(out io.Writer, v views.View, w, h int) error {
	_, err := io.WriteString(out, FrameSVG(v, w, h))
	return err
}

func SaveSVG(path string, v views.View, w, h int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()
	return WriteSVG(f, v, w, h)
}
