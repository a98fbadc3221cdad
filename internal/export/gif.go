package export

import (
	"context"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"

	"github.com/san-kum/wavesim/internal/views"
)

// GIFOptions sizes an offline animation.
type GIFOptions struct {
	Width, Height int
	Frames        int
	// Background replaces transparent view backgrounds.
	Background string
	// Caption stamps the elapsed time on every frame.
	Caption bool
}

// RenderGIF steps anim for opts.Frames frames and rasterises each one.
func RenderGIF(ctx context.Context, anim *views.Animation, opts GIFOptions) (*gif.GIF, error) {
	if opts.Frames <= 0 {
		return nil, fmt.Errorf("export: frame count must be positive, got %d", opts.Frames)
	}
	out := &gif.GIF{}
	delay := 100 / anim.FPS
	if delay < 2 {
		delay = 2
	}
	err := anim.Run(ctx, opts.Frames, func(int) error {
		r := NewRaster(opts.Width, opts.Height, opts.Background)
		anim.View.Draw(r)
		if opts.Caption {
			r.Label(fmt.Sprintf("%s  t = %.2fs", anim.View.Name(), anim.View.Elapsed()), "white")
		}
		out.Image = append(out.Image, Quantize(r.Image()))
		out.Delay = append(out.Delay, delay)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Quantize maps img onto the Plan 9 palette.
func Quantize(img image.Image) *image.Paletted {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.Draw(p, b, img, b.Min, draw.Src)
	return p
}

// EncodeGIF writes frames as a looping animation with delay in 1/100 s.
func EncodeGIF(w io.Writer, frames []*image.Paletted, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("export: no frames")
	}
	anim := gif.GIF{LoopCount: 0}
	for _, f := range frames {
		anim.Image = append(anim.Image, f)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

func WriteGIF(path string, frames []*image.Paletted, delay int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()
	return EncodeGIF(f, frames, delay)
}

func SaveGIF(path string, g *gif.GIF) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()
	return gif.EncodeAll(f, g)
}
