package dto

import "github.com/guttosm/foliopulse/internal/domain/models"

// AnalyzeResponse is the JSON structure returned by
// POST /api/v1/portfolio/analyze.
//
// Fields match the API contract and may differ from internal domain
// models. UnitPrice is null (not 0) for holdings whose price could not
// be resolved, so a failed lookup is never mistaken for a free asset.
type AnalyzeResponse struct {
	Holdings      []HoldingResponse    `json:"holdings"`
	TotalValue    float64              `json:"total_value" example:"5302.50"`
	Summary       models.Summary       `json:"summary"`
	Chart         []models.ChartSlice  `json:"chart"`
	FailedSymbols []string             `json:"failed_symbols" example:"GOOGL"`
	Warnings      []string             `json:"warnings" example:"line 4: empty symbol"`
}

// HoldingResponse is one row of the analyzed portfolio table.
type HoldingResponse struct {
	Symbol     string   `json:"symbol" example:"AAPL"`
	Shares     float64  `json:"shares" example:"15"`
	UnitPrice  *float64 `json:"unit_price" example:"150.25"`
	Value      float64  `json:"value" example:"2253.75"`
	Percentage float64  `json:"percentage" example:"42.5"`
}

// InsightsResponse wraps the AI commentary produced for an analyzed
// portfolio.
type InsightsResponse struct {
	Insights string          `json:"insights"`
	Report   AnalyzeResponse `json:"report"`
}

// NewAnalyzeResponse reshapes a report plus importer warnings into the
// API response, deriving summary and chart data.
func NewAnalyzeResponse(report *models.PortfolioReport, summary models.Summary, chart []models.ChartSlice, warnings []string) AnalyzeResponse {
	holdings := make([]HoldingResponse, 0, len(report.Holdings))
	for _, h := range report.Holdings {
		row := HoldingResponse{
			Symbol:     h.Symbol,
			Shares:     h.TotalShares,
			Value:      h.Value,
			Percentage: h.Percentage,
		}
		if h.Priced {
			price := h.UnitPrice
			row.UnitPrice = &price
		}
		holdings = append(holdings, row)
	}

	failed := report.FailedSymbols
	if failed == nil {
		failed = []string{}
	}
	if warnings == nil {
		warnings = []string{}
	}

	return AnalyzeResponse{
		Holdings:      holdings,
		TotalValue:    report.TotalValue,
		Summary:       summary,
		Chart:         chart,
		FailedSymbols: failed,
		Warnings:      warnings,
	}
}
