// Package service orchestrates the analysis pipeline: parse →
// aggregate → resolve prices → valuate. HTTP handlers and the CLI
// depend on the AnalyzeService interface, never on the stages
// directly.
package service

import (
	"context"
	"io"

	"github.com/guttosm/foliopulse/internal/domain/models"
	"github.com/guttosm/foliopulse/internal/importer"
	"github.com/guttosm/foliopulse/internal/logger"
	"github.com/guttosm/foliopulse/internal/portfolio"
	"github.com/guttosm/foliopulse/internal/quote"
)

// Analysis is the outcome of one pipeline run: the report plus the
// rows the importer skipped. A run that reaches valuation always has a
// report, even when every row or every price failed.
type Analysis struct {
	Report   *models.PortfolioReport
	Summary  models.Summary
	Chart    []models.ChartSlice
	Warnings []importer.RowWarning
}

// AnalyzeService runs the full pipeline over one CSV document.
type AnalyzeService interface {
	Analyze(ctx context.Context, csvData io.Reader) (*Analysis, error)
}

type analyzeService struct {
	fetcher     quote.Fetcher
	maxParallel int
}

// NewAnalyzeService builds the pipeline around a price resolver.
// maxParallel bounds concurrent price fetches.
func NewAnalyzeService(fetcher quote.Fetcher, maxParallel int) AnalyzeService {
	return &analyzeService{fetcher: fetcher, maxParallel: maxParallel}
}

// Analyze executes a single pass: each stage consumes the previous
// stage's output and nothing outlives the call.
//
// Errors: *importer.ValidationError when the header is unusable,
// ctx errors when the run is cancelled mid-resolution. Skipped rows
// and failed symbols are data, not errors.
func (s *analyzeService) Analyze(ctx context.Context, csvData io.Reader) (*Analysis, error) {
	log := logger.With("analyze")

	rows, warnings, err := importer.ParseHoldings(csvData)
	if err != nil {
		return nil, err
	}

	aggregated := portfolio.Aggregate(rows)
	log.Info().
		Int("rows", len(rows)).
		Int("skipped", len(warnings)).
		Int("symbols", len(aggregated)).
		Msg("holdings parsed")

	prices, err := quote.ResolveAll(ctx, s.fetcher, portfolio.Symbols(aggregated), s.maxParallel)
	if err != nil {
		return nil, err
	}

	report := portfolio.Valuate(aggregated, prices)
	log.Info().
		Float64("total_value", report.TotalValue).
		Int("failed_symbols", len(report.FailedSymbols)).
		Msg("portfolio valued")

	return &Analysis{
		Report:   report,
		Summary:  portfolio.Summarize(report),
		Chart:    portfolio.ChartSlices(report),
		Warnings: warnings,
	}, nil
}
