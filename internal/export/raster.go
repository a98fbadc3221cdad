package export

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/san-kum/wavesim/internal/views"
)

const circleSegments = 48

// Raster is an anti-aliased Surface backed by an RGBA image. Transparent
// clears fall back to the raster's own background.
type Raster struct {
	img        *image.RGBA
	background color.Color
	z          *vector.Rasterizer
}

var _ views.Surface = (*Raster)(nil)

func NewRaster(w, h int, background string) *Raster {
	r := &Raster{
		img:        image.NewRGBA(image.Rect(0, 0, w, h)),
		background: views.ParseColor(background),
		z:          vector.NewRasterizer(w, h),
	}
	r.Clear("")
	return r
}

func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Clear(background string) {
	var bg color.Color = r.background
	if c := views.ParseColor(background); background != "" && c.A > 0 {
		bg = c
	}
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// fill rasterises whatever path build adds and composites it over the
// image in one pass, so overlapping pieces are not blended twice.
func (r *Raster) fill(c color.Color, build func(z *vector.Rasterizer)) {
	w, h := r.Size()
	r.z.Reset(w, h)
	r.z.DrawOp = draw.Over
	build(r.z)
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

func (r *Raster) Line(a, b views.Vec, st views.Stroke) {
	r.Polyline([]views.Vec{a, b}, st)
}

func (r *Raster) Polyline(pts []views.Vec, st views.Stroke) {
	pts = finitePoints(pts)
	if len(pts) < 2 {
		return
	}
	half := math.Max(st.Width, 1) / 2
	runs := [][]views.Vec{pts}
	if st.Dash > 0 {
		runs = views.Dashes(pts, st.Dash)
	}
	r.fill(views.StrokeColor(st), func(z *vector.Rasterizer) {
		for _, run := range runs {
			for i := 1; i < len(run); i++ {
				segment(z, run[i-1], run[i], half)
			}
			for _, p := range run {
				polygon(z, p, half, 12, false)
			}
		}
	})
}

func (r *Raster) Circle(c views.Vec, rad float64, st views.Stroke) {
	if !finiteVec(c) || rad <= 0 {
		return
	}
	half := math.Max(st.Width, 1) / 2
	r.fill(views.StrokeColor(st), func(z *vector.Rasterizer) {
		polygon(z, c, rad+half, circleSegments, false)
		if inner := rad - half; inner > 0 {
			polygon(z, c, inner, circleSegments, true)
		}
	})
}

func (r *Raster) Disc(c views.Vec, rad float64, fill string) {
	if !finiteVec(c) || rad <= 0 {
		return
	}
	r.fill(views.ParseColor(fill), func(z *vector.Rasterizer) {
		polygon(z, c, rad, circleSegments, false)
	})
}

// Label writes text in the top-left corner.
func (r *Raster) Label(text string, c string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(views.ParseColor(c)),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(8), Y: fixed.I(8 + face.Metrics().Ascent.Ceil())},
	}
	d.DrawString(text)
}

// segment adds the quad covering a-b at half-width half.
func segment(z *vector.Rasterizer, a, b views.Vec, half float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	// Wound the same way as polygon so joints and caps add up.
	nx, ny := -dy/n*half, dx/n*half
	z.MoveTo(float32(a.X-nx), float32(a.Y-ny))
	z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	z.LineTo(float32(a.X+nx), float32(a.Y+ny))
	z.ClosePath()
}

// polygon approximates a circle; reverse winds it the other way to cut a
// hole.
func polygon(z *vector.Rasterizer, c views.Vec, rad float64, n int, reverse bool) {
	for i := 0; i <= n; i++ {
		k := i
		if reverse {
			k = n - i
		}
		a := 2 * math.Pi * float64(k) / float64(n)
		x, y := float32(c.X+rad*math.Cos(a)), float32(c.Y+rad*math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

func finiteVec(v views.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

func finitePoints(pts []views.Vec) []views.Vec {
	out := pts[:0:0]
	for _, p := range pts {
		if finiteVec(p) {
			out = append(out, p)
		}
	}
	return out
}
