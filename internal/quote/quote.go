// Package quote resolves current unit prices for ticker and option
// symbols. The pipeline depends only on the Fetcher interface, so
// tests (and future providers) can supply deterministic fixtures.
package quote

import "context"

// Fetcher fetches the current unit price for a single symbol.
//
// Implementations must return a positive price or an error describing
// why the symbol could not be priced. They should honor ctx
// cancellation: an abandoned run must not leave fetches with side
// effects.
type Fetcher interface {
	FetchPrice(ctx context.Context, symbol string) (float64, error)
}

// Result is the price-or-failure outcome for one symbol. Exactly one
// of Price (> 0) and Err is meaningful.
type Result struct {
	Price float64
	Err   error
}

// Resolved reports whether the symbol was priced successfully.
func (r Result) Resolved() bool {
	return r.Err == nil
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, symbol string) (float64, error)

func (f FetcherFunc) FetchPrice(ctx context.Context, symbol string) (float64, error) {
	return f(ctx, symbol)
}
