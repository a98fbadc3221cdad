package export

import (
	"context"
	"errors"
	"fmt"
	"image/gif"
	"sync"

	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/views"
)

// Batch renders one GIF per view, each on its own goroutine and its own
// manual clock.
type Batch struct {
	cfg     *config.Config
	names   []string
	options GIFOptions
}

// NewBatch renders names with cfg; an empty list means every registered
// view.
func NewBatch(cfg *config.Config, names []string, opts GIFOptions) *Batch {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if len(names) == 0 {
		names = views.Names()
	}
	return &Batch{cfg: cfg, names: names, options: opts}
}

func (b *Batch) Names() []string { return b.names }

// Run returns the animations in the order of Names. Every failure is
// reported, joined.
func (b *Batch) Run(ctx context.Context) ([]*gif.GIF, error) {
	results := make([]*gif.GIF, len(b.names))
	errs := make([]error, len(b.names))

	var wg sync.WaitGroup
	for i, name := range b.names {
		wg.Add(1)
		go func(idx int, name string) {
			defer wg.Done()

			cfg := b.cfg.Clone()
			cfg.View = name
			anim, err := views.NewAnimation(name, cfg, cfg.FPS)
			if err != nil {
				errs[idx] = err
				return
			}
			anim.View.Resize(b.options.Width, b.options.Height)

			results[idx], err = RenderGIF(ctx, anim, b.options)
			if err != nil {
				errs[idx] = fmt.Errorf("%s: %w", name, err)
			}
		}(i, name)
	}

	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}
