package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Kamar-Folarin/github-signals/internal/config"
)

// Processor runs independent per-item work with bounded concurrency
type Processor struct {
	config *config.BatchConfig
}

// NewProcessor creates a new batch processor
func NewProcessor(cfg *config.BatchConfig) *Processor {
	if cfg == nil {
		cfg = config.DefaultBatchConfig()
	}
	return &Processor{config: cfg}
}

// ForEach calls fn for every index in [0, n) using at most Workers goroutines.
// The first error cancels the context handed to the remaining calls and is returned.
// fn must write its result by index; completion order is not defined.
func (p *Processor) ForEach(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return nil
	}

	workers := p.config.Workers
	if workers <= 0 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		i := i
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}

	return g.Wait()
}
