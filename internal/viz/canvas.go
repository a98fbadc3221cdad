package viz

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/san-kum/wavesim/internal/views"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a monochrome braille surface. Width and Height are in cells;
// drawing coordinates are sub-pixels, Width*2 by Height*4. Colours are
// ignored.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

var _ views.Surface = (*Canvas)(nil)

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear("")
	return c
}

// Set lights the sub-pixel at (x, y). Out of range is ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
}

// Lit reports whether the sub-pixel at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Size() (int, int) { return c.Width * 2, c.Height * 4 }

// Clear blanks every cell. The background colour has no meaning on a
// monochrome canvas.
func (c *Canvas) Clear(string) {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.bresenham(x0, y0, x1, y1, 0)
}

// bresenham walks from (x0, y0) to (x1, y1). With dash > 0 it alternates
// dash pixels on and dash pixels off.
func (c *Canvas) bresenham(x0, y0, x1, y1, dash int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for n := 0; ; n++ {
		if dash <= 0 || (n/dash)%2 == 0 {
			c.Set(x0, y0)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) Line(a, b views.Vec, st views.Stroke) {
	if !finite(a) || !finite(b) {
		return
	}
	dash := 0
	if st.Dash > 0 {
		dash = int(math.Max(1, math.Round(st.Dash)))
	}
	c.bresenham(round(a.X), round(a.Y), round(b.X), round(b.Y), dash)
}

func (c *Canvas) Polyline(pts []views.Vec, st views.Stroke) {
	if len(pts) == 1 && finite(pts[0]) {
		c.Set(round(pts[0].X), round(pts[0].Y))
		return
	}
	for i := 1; i < len(pts); i++ {
		c.Line(pts[i-1], pts[i], st)
	}
}

// Circle draws an outline with the midpoint algorithm.
func (c *Canvas) Circle(center views.Vec, r float64, _ views.Stroke) {
	if !finite(center) || r < 0 {
		return
	}
	cx, cy, rad := round(center.X), round(center.Y), round(r)
	x, y, d := rad, 0, 1-rad
	for x >= y {
		for _, p := range [8][2]int{{x, y}, {y, x}, {-y, x}, {-x, y}, {-x, -y}, {-y, -x}, {y, -x}, {x, -y}} {
			c.Set(cx+p[0], cy+p[1])
		}
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

func (c *Canvas) Disc(center views.Vec, r float64, _ string) {
	if !finite(center) || r < 0 {
		return
	}
	cx, cy := round(center.X), round(center.Y)
	rad := int(math.Ceil(r))
	for dy := -rad; dy <= rad; dy++ {
		for dx := -rad; dx <= rad; dx++ {
			if float64(dx*dx+dy*dy) <= r*r+0.5 {
				c.Set(cx+dx, cy+dy)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Image rasterises the canvas at charW by charH pixels per cell, lit dots
// in fg on a black background.
func (c *Canvas) Image(charW, charH int, fg color.Color) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, c.Width*charW, c.Height*charH), color.Palette{color.Black, fg})
	dotW, dotH := charW/2, charH/4
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			cell := int(c.Grid[row][col] - brailleBlank)
			if cell == 0 {
				continue
			}
			for sy := 0; sy < 4; sy++ {
				for sx := 0; sx < 2; sx++ {
					if cell&pixelMap[sy][sx] == 0 {
						continue
					}
					x0, y0 := col*charW+sx*dotW, row*charH+sy*dotH
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(x0+px, y0+py, 1)
						}
					}
				}
			}
		}
	}
	return img
}

func round(f float64) int { return int(math.Round(f)) }

// maxCoord bounds the Bresenham walk for wildly off-canvas points.
const maxCoord = 1 << 16

func finite(v views.Vec) bool {
	return math.Abs(v.X) < maxCoord && math.Abs(v.Y) < maxCoord
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
