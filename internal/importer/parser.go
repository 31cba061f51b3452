// Package importer reads a holdings CSV into typed records.
//
// The file must carry a header row naming, case-insensitively, a
// "Symbol" column and a "Shares" column; any other columns are
// ignored. Header problems abort the import; individual bad rows are
// skipped and reported as warnings so one typo never discards a whole
// portfolio.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guttosm/foliopulse/internal/domain/models"
)

// Column names the importer requires, matched case-insensitively.
const (
	symbolColumn = "symbol"
	sharesColumn = "shares"
)

// ValidationError reports a header that cannot support the import at
// all. It is fatal for the run: no partial result is produced.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required column(s): " + strings.Join(e.Missing, ", ")
}

// RowWarning records one skipped data row and why it was skipped.
// Line is 1-based and counts the header, matching what a user sees in
// a spreadsheet.
type RowWarning struct {
	Line   int
	Reason string
}

func (w RowWarning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
}

// ParseHoldings reads CSV content into an ordered slice of
// HoldingInput plus the warnings for every skipped row.
//
// It fails (with *ValidationError) only when the header is missing a
// required column, or on an unrecoverable read error. Per-row
// failures — empty symbol, non-numeric or non-positive shares, too few
// cells — skip that row and continue.
func ParseHoldings(r io.Reader) ([]models.HoldingInput, []RowWarning, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // rows are validated explicitly below

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil, &ValidationError{Missing: []string{"Symbol", "Shares"}}
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	symbolIdx, sharesIdx := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case symbolColumn:
			if symbolIdx < 0 {
				symbolIdx = i
			}
		case sharesColumn:
			if sharesIdx < 0 {
				sharesIdx = i
			}
		}
	}

	var missing []string
	if symbolIdx < 0 {
		missing = append(missing, "Symbol")
	}
	if sharesIdx < 0 {
		missing = append(missing, "Shares")
	}
	if len(missing) > 0 {
		return nil, nil, &ValidationError{Missing: missing}
	}

	var holdings []models.HoldingInput
	var warnings []RowWarning
	line := 1 // header already read

	for {
		rec, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, nil, fmt.Errorf("read line after %d: %w", line, err)
		}
		line++

		if symbolIdx >= len(rec) || sharesIdx >= len(rec) {
			warnings = append(warnings, RowWarning{Line: line, Reason: "too few columns"})
			continue
		}

		symbol := NormalizeSymbol(rec[symbolIdx])
		if symbol == "" {
			warnings = append(warnings, RowWarning{Line: line, Reason: "empty symbol"})
			continue
		}

		sharesRaw := strings.TrimSpace(rec[sharesIdx])
		shares, err := strconv.ParseFloat(sharesRaw, 64)
		if err != nil {
			warnings = append(warnings, RowWarning{Line: line, Reason: fmt.Sprintf("invalid share count %q", sharesRaw)})
			continue
		}
		if shares <= 0 {
			warnings = append(warnings, RowWarning{Line: line, Reason: fmt.Sprintf("share count must be positive, got %v", shares)})
			continue
		}

		holdings = append(holdings, models.HoldingInput{Symbol: symbol, Shares: shares})
	}

	return holdings, warnings, nil
}

// NormalizeSymbol trims, uppercases, and collapses inner whitespace so
// option symbols like "qqq  01/15/2027 380.00 c" compare equal to
// their canonical form.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}
