package portfolio

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/guttosm/foliopulse/internal/domain/models"
	"github.com/guttosm/foliopulse/internal/quote"
)

// exportHeader is the column set of the analyzed-portfolio CSV.
// One row per distinct symbol in first-seen order; the total is
// surfaced separately, never as a summary row.
var exportHeader = []string{"Symbol", "Shares", "Price", "Value", "Percentage"}

// WriteCSV writes the analyzed portfolio as CSV. Unresolved prices are
// exported as "N/A" so a failed lookup can never be read back as a
// zero price.
func WriteCSV(w io.Writer, report *models.PortfolioReport) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, h := range report.Holdings {
		price := "N/A"
		if h.Priced {
			price = formatAmount(h.UnitPrice)
		}
		rec := []string{
			h.Symbol,
			strconv.FormatFloat(h.TotalShares, 'f', -1, 64),
			price,
			formatAmount(h.Value),
			formatAmount(h.Percentage),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write %s: %w", h.Symbol, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ChartSlices reshapes a report for proportional (pie) rendering.
// Values are grouped by underlying ticker, so an option position and
// its underlying stock form one slice. Slices are sorted by value
// descending; zero-value slices (failed symbols) are kept with a 0%
// share so nothing silently disappears from the picture.
func ChartSlices(report *models.PortfolioReport) []models.ChartSlice {
	index := make(map[string]int, len(report.Holdings))
	var slices []models.ChartSlice

	for _, h := range report.Holdings {
		label := quote.UnderlyingTicker(h.Symbol)
		if i, seen := index[label]; seen {
			slices[i].Value += h.Value
			continue
		}
		index[label] = len(slices)
		slices = append(slices, models.ChartSlice{Label: label, Value: h.Value})
	}

	if report.TotalValue > 0 {
		for i := range slices {
			slices[i].Percentage = slices[i].Value / report.TotalValue * 100
		}
	}

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Value > slices[j].Value
	})
	return slices
}

// formatAmount renders monetary values and percentages with two
// decimals, matching the exported table format.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
