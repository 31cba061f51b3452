package models

// HoldingInput is one validated row from the uploaded CSV: a ticker (or
// option contract) symbol and a positive share count. Symbols are
// already trimmed and uppercased by the importer.
type HoldingInput struct {
	Symbol string
	Shares float64
}

// AggregatedHolding merges every input row sharing a symbol into a
// single position. There is exactly one per distinct symbol and
// TotalShares is always > 0 (rows with non-positive shares never reach
// aggregation).
type AggregatedHolding struct {
	Symbol      string
	TotalShares float64
}

// ValuedHolding is an AggregatedHolding with its resolved price and
// computed share of the portfolio.
//
// Priced distinguishes "price lookup failed" from a genuinely
// zero-priced asset: when Priced is false, UnitPrice and Value are 0
// and the symbol also appears in PortfolioReport.FailedSymbols.
type ValuedHolding struct {
	Symbol      string  `json:"symbol" example:"AAPL"`
	TotalShares float64 `json:"shares" example:"15"`
	UnitPrice   float64 `json:"unit_price" example:"150.25"`
	Priced      bool    `json:"priced" example:"true"`
	Value       float64 `json:"value" example:"2253.75"`
	Percentage  float64 `json:"percentage" example:"42.5"`
}
