package quote

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
)

func TestResolveAll_PartialFailure(t *testing.T) {
	fetcher := FetcherFunc(func(_ context.Context, symbol string) (float64, error) {
		if symbol == "GOOGL" {
			return 0, errors.New("no data")
		}
		return 100, nil
	})

	results, err := ResolveAll(context.Background(), fetcher, []string{"AAPL", "GOOGL", "MSFT"}, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("want 3 results, got %d", len(results))
	}
	if !results["AAPL"].Resolved() || results["AAPL"].Price != 100 {
		t.Fatalf("AAPL: %+v", results["AAPL"])
	}
	if results["GOOGL"].Resolved() {
		t.Fatalf("GOOGL should have failed: %+v", results["GOOGL"])
	}
}

func TestResolveAll_TotalFailure(t *testing.T) {
	fetcher := FetcherFunc(func(_ context.Context, _ string) (float64, error) {
		return 0, errors.New("network unavailable")
	})

	results, err := ResolveAll(context.Background(), fetcher, []string{"A", "B"}, 1)
	if err != nil {
		t.Fatalf("total failure is not a run error: %v", err)
	}
	for s, r := range results {
		if r.Resolved() {
			t.Fatalf("%s should be failed", s)
		}
	}
}

func TestResolveAll_OnePerSymbol(t *testing.T) {
	var calls int32
	fetcher := FetcherFunc(func(_ context.Context, _ string) (float64, error) {
		atomic.AddInt32(&calls, 1)
		return 1, nil
	})

	symbols := []string{"A", "B", "C", "D"}
	if _, err := ResolveAll(context.Background(), fetcher, symbols, 8); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != int32(len(symbols)) {
		t.Fatalf("want %d fetches, got %d", len(symbols), got)
	}
}

func TestResolveAll_RespectsParallelLimit(t *testing.T) {
	var mu sync.Mutex
	inFlight, peak := 0, 0

	fetcher := FetcherFunc(func(_ context.Context, _ string) (float64, error) {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()

		mu.Lock()
		inFlight--
		mu.Unlock()
		return 1, nil
	})

	symbols := make([]string, 20)
	for i := range symbols {
		symbols[i] = fmt.Sprintf("S%02d", i)
	}
	if _, err := ResolveAll(context.Background(), fetcher, symbols, 3); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if peak > 3 {
		t.Fatalf("parallelism peaked at %d, limit was 3", peak)
	}
}

func TestResolveAll_ContextCanceled(t *testing.T) {
	fetcher := FetcherFunc(func(ctx context.Context, _ string) (float64, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ResolveAll(ctx, fetcher, []string{"A", "B"}, 2); err == nil {
		t.Fatalf("expected context error")
	}
}

// Identical fetch outcomes must produce identical maps regardless of
// completion order; the map is keyed by symbol, so this mostly guards
// against results being attached to the wrong symbol.
func TestResolveAll_DeterministicBySymbol(t *testing.T) {
	fetcher := FetcherFunc(func(_ context.Context, symbol string) (float64, error) {
		return float64(len(symbol)), nil
	})

	symbols := []string{"A", "BB", "CCC"}
	for run := 0; run < 5; run++ {
		results, err := ResolveAll(context.Background(), fetcher, symbols, 3)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		for _, s := range symbols {
			if results[s].Price != float64(len(s)) {
				t.Fatalf("run %d: %s priced %v", run, s, results[s].Price)
			}
		}
	}
}
