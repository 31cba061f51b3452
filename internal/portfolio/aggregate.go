// Package portfolio implements the aggregation and valuation stages of
// the analysis pipeline, plus the report reshaping for export and
// chart rendering.
package portfolio

import "github.com/guttosm/foliopulse/internal/domain/models"

// Aggregate merges input rows by symbol, summing shares exactly.
// Output order is the first occurrence of each symbol in the input,
// which every later stage preserves. Empty input yields empty output.
func Aggregate(rows []models.HoldingInput) []models.AggregatedHolding {
	index := make(map[string]int, len(rows))
	var out []models.AggregatedHolding

	for _, row := range rows {
		if i, seen := index[row.Symbol]; seen {
			out[i].TotalShares += row.Shares
			continue
		}
		index[row.Symbol] = len(out)
		out = append(out, models.AggregatedHolding{
			Symbol:      row.Symbol,
			TotalShares: row.Shares,
		})
	}
	return out
}

// Symbols returns the distinct symbols of an aggregated portfolio, in
// order. The price resolver is invoked once per entry, never per input
// row.
func Symbols(holdings []models.AggregatedHolding) []string {
	symbols := make([]string, len(holdings))
	for i, h := range holdings {
		symbols[i] = h.Symbol
	}
	return symbols
}
