package models

// PortfolioReport is the terminal artifact of one analysis run.
//
// Holdings keeps the first-seen symbol order from the input file.
// FailedSymbols is sorted lexicographically so identical inputs always
// produce identical reports.
type PortfolioReport struct {
	Holdings      []ValuedHolding
	TotalValue    float64
	FailedSymbols []string
}

// Summary carries the headline numbers shown above the breakdown table.
type Summary struct {
	HoldingsCount  int     `json:"holdings_count" example:"5"`
	TotalValue     float64 `json:"total_value" example:"5302.50"`
	AverageHolding float64 `json:"average_holding" example:"1060.50"`
}

// ChartSlice is one slice of the allocation pie. Option positions are
// rolled up into their underlying ticker, so Label may cover several
// report rows.
type ChartSlice struct {
	Label      string  `json:"label" example:"AAPL"`
	Value      float64 `json:"value" example:"2253.75"`
	Percentage float64 `json:"percentage" example:"42.5"`
}
