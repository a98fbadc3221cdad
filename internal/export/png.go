package export

import (
	"fmt"
	"io"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/wavesim/internal/views"
)

func chartColor(c string) drawing.Color {
	n := views.ParseColor(c)
	if n.A == 0 {
		n.A = 255
	}
	return drawing.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// FrameChart builds a line chart of amplitude against time, one line per
// series. The combined series is drawn thicker.
func FrameChart(title string, series []views.Series, w, h int) chart.Chart {
	var cs []chart.Series
	for _, s := range series {
		if len(s.Frame) < 2 {
			continue
		}
		width := 1.5
		if s.Name == "combined" {
			width = 3
		}
		cs = append(cs, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.Frame.Times(),
			YValues: s.Frame.Amplitudes(),
			Style: chart.Style{
				StrokeColor: chartColor(s.Color),
				StrokeWidth: width,
			},
		})
	}
	ch := chart.Chart{
		Title:      title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 30, Left: 16, Right: 12, Bottom: 12}},
		XAxis:      chart.XAxis{Name: "t"},
		YAxis:      chart.YAxis{Name: "amplitude"},
		Series:     cs,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

// WritePNG renders the current series of v as a PNG chart.
func WritePNG(out io.Writer, v views.View, w, h int) error {
	ch := FrameChart(fmt.Sprintf("%s  t = %.2fs", v.Name(), v.Elapsed()), v.Series(), w, h)
	if len(ch.Series) == 0 {
		return fmt.Errorf("export: %s has nothing to plot", v.Name())
	}
	if err := ch.Render(chart.PNG, out); err != nil {
		return fmt.Errorf("export: render chart: %w", err)
	}
	return nil
}

func SavePNG(path string, v views.View, w, h int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()
	return WritePNG(f, v, w, h)
}
