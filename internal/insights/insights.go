// Package insights produces optional AI commentary for an analyzed
// portfolio via the Gemini API. It is strictly an add-on: the analysis
// pipeline never depends on it, and a missing API key only disables
// the endpoint.
package insights

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/guttosm/foliopulse/internal/domain/models"
)

const systemInstruction = `
You are a portfolio analyst. You receive a snapshot of a stock and
option portfolio: per-position shares, current price, market value and
percentage allocation, plus totals.

Comment briefly on diversification, concentration risk, and anything
notable about the allocation. Mention positions whose price could not
be resolved as a data caveat, not as worthless holdings. Do not give
individualized financial advice; keep it to observations about the
snapshot. Answer in plain text, a few short paragraphs.`

// Commentator produces commentary for a report. The concrete
// implementation talks to Gemini; tests substitute a stub.
type Commentator interface {
	Comment(ctx context.Context, report *models.PortfolioReport, summary models.Summary) (string, error)
}

// Analyzer is the Gemini-backed Commentator.
type Analyzer struct {
	model  string
	client *genai.Client
}

// New initializes the Gemini client. The API key is read by the genai
// SDK from the environment (GEMINI_API_KEY / GOOGLE_API_KEY).
func New(ctx context.Context, model string) (*Analyzer, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	return &Analyzer{model: model, client: client}, nil
}

// Comment sends the formatted portfolio snapshot to the model and
// returns its commentary.
func (a *Analyzer) Comment(ctx context.Context, report *models.PortfolioReport, summary models.Summary) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	chat, err := a.client.Chats.Create(ctx, a.model, config, nil)
	if err != nil {
		return "", fmt.Errorf("create chat: %w", err)
	}

	resp, err := chat.Send(ctx, &genai.Part{Text: FormatReport(report, summary)})
	if err != nil {
		return "", fmt.Errorf("send portfolio summary: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model %s", a.model)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// FormatReport renders the report as the plain-text snapshot the model
// receives.
func FormatReport(report *models.PortfolioReport, summary models.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "PORTFOLIO SUMMARY:\n")
	fmt.Fprintf(&b, "Total Portfolio Value: $%.2f\n", summary.TotalValue)
	fmt.Fprintf(&b, "Total Number of Holdings: %d\n", summary.HoldingsCount)
	fmt.Fprintf(&b, "Average Holding Value: $%.2f\n\n", summary.AverageHolding)

	b.WriteString("HOLDINGS:\n")
	for _, h := range report.Holdings {
		if h.Priced {
			fmt.Fprintf(&b, "- %s: %v shares @ $%.2f = $%.2f (%.2f%%)\n",
				h.Symbol, h.TotalShares, h.UnitPrice, h.Value, h.Percentage)
		} else {
			fmt.Fprintf(&b, "- %s: %v shares, price unresolved\n", h.Symbol, h.TotalShares)
		}
	}

	if len(report.FailedSymbols) > 0 {
		fmt.Fprintf(&b, "\nUNRESOLVED SYMBOLS: %s\n", strings.Join(report.FailedSymbols, ", "))
	}
	return b.String()
}
