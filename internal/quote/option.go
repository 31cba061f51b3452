package quote

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Option symbols use the broker-statement form
// "TICKER MM/DD/YYYY STRIKE C" (call) or "... P" (put),
// e.g. "QQQ 01/15/2027 380.00 C". One contract covers 100 shares.
const contractSize = 100

var optionPattern = regexp.MustCompile(`^[A-Z]+\s+\d{2}/\d{2}/\d{4}\s+\d+\.?\d*\s+[CP]$`)

// Option is a parsed option contract symbol.
type Option struct {
	Underlying string
	Expiration time.Time
	Strike     float64
	Put        bool
}

// IsOptionSymbol reports whether symbol is in option contract form.
func IsOptionSymbol(symbol string) bool {
	return optionPattern.MatchString(symbol)
}

// ParseOptionSymbol parses an option contract symbol. ok is false when
// the symbol is not in option form or its date/strike do not parse.
func ParseOptionSymbol(symbol string) (opt Option, ok bool) {
	if !IsOptionSymbol(symbol) {
		return Option{}, false
	}
	parts := strings.Fields(symbol)
	if len(parts) != 4 {
		return Option{}, false
	}

	exp, err := time.Parse("01/02/2006", parts[1])
	if err != nil {
		return Option{}, false
	}
	strike, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return Option{}, false
	}

	return Option{
		Underlying: parts[0],
		Expiration: exp,
		Strike:     strike,
		Put:        parts[3] == "P",
	}, true
}

// UnderlyingTicker returns the underlying ticker for an option symbol,
// or the symbol itself for a plain stock. Chart slices group by this
// value so options roll up into their underlying.
func UnderlyingTicker(symbol string) string {
	if opt, ok := ParseOptionSymbol(symbol); ok {
		return opt.Underlying
	}
	return symbol
}
