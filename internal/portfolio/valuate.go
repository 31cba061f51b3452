package portfolio

import (
	"sort"

	"github.com/guttosm/foliopulse/internal/domain/models"
	"github.com/guttosm/foliopulse/internal/quote"
)

// Valuate combines aggregated holdings with resolved prices into the
// final report. It cannot fail: a symbol whose price did not resolve
// carries value 0 and is listed in FailedSymbols instead of being
// dropped.
//
// Percentages are value/total×100, defined as 0 when the total is 0
// (every price failed), so an all-failed run still yields a report
// with no NaNs.
func Valuate(holdings []models.AggregatedHolding, prices map[string]quote.Result) *models.PortfolioReport {
	report := &models.PortfolioReport{
		Holdings: make([]models.ValuedHolding, 0, len(holdings)),
	}

	for _, h := range holdings {
		valued := models.ValuedHolding{
			Symbol:      h.Symbol,
			TotalShares: h.TotalShares,
		}

		res, found := prices[h.Symbol]
		if found && res.Resolved() {
			valued.Priced = true
			valued.UnitPrice = res.Price
			valued.Value = h.TotalShares * res.Price
			report.TotalValue += valued.Value
		} else {
			report.FailedSymbols = append(report.FailedSymbols, h.Symbol)
		}

		report.Holdings = append(report.Holdings, valued)
	}

	if report.TotalValue > 0 {
		for i := range report.Holdings {
			report.Holdings[i].Percentage = report.Holdings[i].Value / report.TotalValue * 100
		}
	}

	// Deterministic output for identical inputs.
	sort.Strings(report.FailedSymbols)

	return report
}

// Summarize derives the headline numbers of a report.
func Summarize(report *models.PortfolioReport) models.Summary {
	s := models.Summary{
		HoldingsCount: len(report.Holdings),
		TotalValue:    report.TotalValue,
	}
	if s.HoldingsCount > 0 {
		s.AverageHolding = s.TotalValue / float64(s.HoldingsCount)
	}
	return s
}
