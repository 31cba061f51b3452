package quote

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/foliopulse/internal/logger"
)

// ResolveAll fetches a price for every distinct symbol, at most
// maxParallel at a time, and returns a symbol-keyed map.
//
// Per-symbol failures are recorded in the map rather than returned:
// the pipeline must survive partial and total resolver failure. The
// only error returned is ctx cancellation, which abandons in-flight
// fetches.
//
// Results are merged by symbol, never by arrival order, so downstream
// output is deterministic regardless of response timing.
func ResolveAll(ctx context.Context, f Fetcher, symbols []string, maxParallel int) (map[string]Result, error) {
	if maxParallel < 1 {
		maxParallel = 1
	}

	log := logger.With("quote")

	results := make(map[string]Result, len(symbols))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for _, symbol := range symbols {
		s := symbol
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			price, err := f.FetchPrice(gctx, s)
			if err != nil {
				// Cancellation aborts the run; anything else is a
				// per-symbol failure the report will surface.
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Warn().Str("symbol", s).Err(err).Msg("price resolution failed")
				mu.Lock()
				results[s] = Result{Err: err}
				mu.Unlock()
				return nil
			}

			log.Debug().Str("symbol", s).Float64("price", price).Msg("price resolved")
			mu.Lock()
			results[s] = Result{Price: price}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
