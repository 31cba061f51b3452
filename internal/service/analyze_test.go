package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/guttosm/foliopulse/internal/importer"
	"github.com/guttosm/foliopulse/internal/quote"
)

// fixtureFetcher prices symbols from a fixed table and fails the rest.
type fixtureFetcher struct {
	prices map[string]float64
}

func (f *fixtureFetcher) FetchPrice(_ context.Context, symbol string) (float64, error) {
	if p, ok := f.prices[symbol]; ok {
		return p, nil
	}
	return 0, errors.New("no data available for " + symbol)
}

func TestAnalyze_DuplicateSymbolsAggregated(t *testing.T) {
	svc := NewAnalyzeService(&fixtureFetcher{prices: map[string]float64{"AAPL": 150}}, 2)

	csvData := "Symbol,Shares\nAAPL,10\nAAPL,5\n"
	analysis, err := svc.Analyze(context.Background(), strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	report := analysis.Report
	if len(report.Holdings) != 1 {
		t.Fatalf("want 1 aggregated holding, got %+v", report.Holdings)
	}
	h := report.Holdings[0]
	if h.Symbol != "AAPL" || h.TotalShares != 15 || h.UnitPrice != 150 || h.Value != 2250 || h.Percentage != 100 {
		t.Fatalf("unexpected holding: %+v", h)
	}
	if report.TotalValue != 2250 {
		t.Fatalf("total: %v", report.TotalValue)
	}
}

func TestAnalyze_PartialPriceFailure(t *testing.T) {
	svc := NewAnalyzeService(&fixtureFetcher{prices: map[string]float64{"AAPL": 150}}, 2)

	csvData := "Symbol,Shares\nAAPL,10\nGOOGL,5\n"
	analysis, err := svc.Analyze(context.Background(), strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	report := analysis.Report
	if !reflect.DeepEqual(report.FailedSymbols, []string{"GOOGL"}) {
		t.Fatalf("failed symbols: %v", report.FailedSymbols)
	}
	if report.TotalValue != 1500 {
		t.Fatalf("total: %v", report.TotalValue)
	}
	if report.Holdings[0].Percentage != 100 || report.Holdings[1].Percentage != 0 {
		t.Fatalf("percentages: %+v", report.Holdings)
	}
	if analysis.Summary.HoldingsCount != 2 || analysis.Summary.AverageHolding != 750 {
		t.Fatalf("summary: %+v", analysis.Summary)
	}
}

func TestAnalyze_HeaderErrorAbortsRun(t *testing.T) {
	svc := NewAnalyzeService(&fixtureFetcher{}, 2)

	_, err := svc.Analyze(context.Background(), strings.NewReader("Ticker,Qty\nAAPL,1\n"))
	var ve *importer.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *importer.ValidationError, got %v", err)
	}
}

func TestAnalyze_SkippedRowsStillProduceReport(t *testing.T) {
	svc := NewAnalyzeService(&fixtureFetcher{prices: map[string]float64{"AAPL": 150}}, 2)

	csvData := "Symbol,Shares\n,10\nAAPL,bad\nAAPL,2\n"
	analysis, err := svc.Analyze(context.Background(), strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(analysis.Warnings) != 2 {
		t.Fatalf("warnings: %+v", analysis.Warnings)
	}
	if len(analysis.Report.Holdings) != 1 || analysis.Report.Holdings[0].TotalShares != 2 {
		t.Fatalf("holdings: %+v", analysis.Report.Holdings)
	}
}

func TestAnalyze_AllPricesFailed(t *testing.T) {
	svc := NewAnalyzeService(&fixtureFetcher{}, 2)

	analysis, err := svc.Analyze(context.Background(), strings.NewReader("Symbol,Shares\nAAA,1\nBBB,2\n"))
	if err != nil {
		t.Fatalf("a report must still be produced: %v", err)
	}
	if analysis.Report.TotalValue != 0 || len(analysis.Report.FailedSymbols) != 2 {
		t.Fatalf("report: %+v", analysis.Report)
	}
	for _, h := range analysis.Report.Holdings {
		if h.Percentage != 0 {
			t.Fatalf("percentage must be 0: %+v", h)
		}
	}
}

// Running the pipeline twice over identical input and fixtures yields
// identical analyses.
func TestAnalyze_Idempotent(t *testing.T) {
	svc := NewAnalyzeService(&fixtureFetcher{prices: map[string]float64{"AAPL": 150, "MSFT": 300}}, 4)
	csvData := "Symbol,Shares\nAAPL,10\nMSFT,5\nAAPL,1\nGOOGL,2\n"

	first, err := svc.Analyze(context.Background(), strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := svc.Analyze(context.Background(), strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("runs differ:\n%+v\n%+v", first, second)
	}
}

func TestAnalyze_ContextCanceled(t *testing.T) {
	blocker := quote.FetcherFunc(func(ctx context.Context, _ string) (float64, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	svc := NewAnalyzeService(blocker, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Analyze(ctx, strings.NewReader("Symbol,Shares\nAAPL,1\n")); err == nil {
		t.Fatalf("expected context error")
	}
}
