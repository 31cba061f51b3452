package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// YahooClient resolves prices against the Yahoo Finance query API.
//
// Stocks are priced from the v8 chart endpoint; option contracts are
// priced from the v7 option chain of their underlying, at contract
// size (100 shares). All requests share a rate limiter so a large
// portfolio cannot hammer the API.
type YahooClient struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewYahooClient builds a client for the given API base URL
// (e.g. "https://query1.finance.yahoo.com").
func NewYahooClient(baseURL string, timeout time.Duration, ratePerSec float64) *YahooClient {
	if ratePerSec <= 0 {
		ratePerSec = 1
	}
	burst := int(math.Ceil(ratePerSec))
	if burst < 1 {
		burst = 1
	}
	return &YahooClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), burst),
	}
}

// FetchPrice implements Fetcher for both plain tickers and option
// contract symbols.
func (c *YahooClient) FetchPrice(ctx context.Context, symbol string) (float64, error) {
	if opt, ok := ParseOptionSymbol(symbol); ok {
		return c.fetchOptionPrice(ctx, symbol, opt)
	}
	return c.fetchStockPrice(ctx, symbol)
}

// Ping reports whether the quote API host is reachable. Used by the
// readiness probe; any HTTP response counts as reachable.
func (c *YahooClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("quote API unreachable: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}

// apiError is the error object Yahoo embeds in otherwise-200 payloads.
type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type chartPayload struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"chart"`
}

func (c *YahooClient) fetchStockPrice(ctx context.Context, symbol string) (float64, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=1d&interval=1d", c.baseURL, url.PathEscape(symbol))

	var payload chartPayload
	if err := c.getJSON(ctx, addr, &payload); err != nil {
		return 0, err
	}
	if e := payload.Chart.Error; e != nil {
		return 0, fmt.Errorf("%s: %s", symbol, e.Description)
	}
	if len(payload.Chart.Result) == 0 {
		return 0, fmt.Errorf("no data available for %s", symbol)
	}
	price := payload.Chart.Result[0].Meta.RegularMarketPrice
	if price <= 0 {
		return 0, fmt.Errorf("no price data for %s", symbol)
	}
	return price, nil
}

// optionContract is one strike row of a Yahoo option chain.
type optionContract struct {
	Strike    float64 `json:"strike"`
	LastPrice float64 `json:"lastPrice"`
	Bid       float64 `json:"bid"`
	Ask       float64 `json:"ask"`
}

type optionsPayload struct {
	OptionChain struct {
		Result []struct {
			ExpirationDates []int64 `json:"expirationDates"`
			Options         []struct {
				ExpirationDate int64            `json:"expirationDate"`
				Calls          []optionContract `json:"calls"`
				Puts           []optionContract `json:"puts"`
			} `json:"options"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"optionChain"`
}

// fetchOptionPrice prices an option contract off its underlying's
// chain. If the requested expiration is not listed, the nearest listed
// expiration is used instead, matching how brokers quote slightly
// shifted dates.
func (c *YahooClient) fetchOptionPrice(ctx context.Context, symbol string, opt Option) (float64, error) {
	payload, err := c.fetchOptionChain(ctx, opt.Underlying, 0)
	if err != nil {
		return 0, err
	}
	result := payload.OptionChain.Result
	if len(result) == 0 || len(result[0].ExpirationDates) == 0 {
		return 0, fmt.Errorf("no option data available for %s", opt.Underlying)
	}

	target := opt.Expiration.Unix()
	chosen := result[0].ExpirationDates[0]
	for _, exp := range result[0].ExpirationDates {
		if abs64(exp-target) < abs64(chosen-target) {
			chosen = exp
		}
	}

	// The dateless request returns the front expiration; refetch when
	// the contract expires on a different date.
	if len(result[0].Options) == 0 || result[0].Options[0].ExpirationDate != chosen {
		payload, err = c.fetchOptionChain(ctx, opt.Underlying, chosen)
		if err != nil {
			return 0, err
		}
		result = payload.OptionChain.Result
		if len(result) == 0 || len(result[0].Options) == 0 {
			return 0, fmt.Errorf("no option chain for %s at requested expiration", opt.Underlying)
		}
	}

	contracts := result[0].Options[0].Calls
	if opt.Put {
		contracts = result[0].Options[0].Puts
	}

	for _, contract := range contracts {
		if math.Abs(contract.Strike-opt.Strike) < 0.01 {
			unit, err := contractPrice(contract)
			if err != nil {
				return 0, fmt.Errorf("option %s: %w", symbol, err)
			}
			return unit * contractSize, nil
		}
	}
	return 0, fmt.Errorf("option %s not found (strike %v may not exist)", symbol, opt.Strike)
}

func (c *YahooClient) fetchOptionChain(ctx context.Context, underlying string, date int64) (*optionsPayload, error) {
	addr := fmt.Sprintf("%s/v7/finance/options/%s", c.baseURL, url.PathEscape(underlying))
	if date > 0 {
		addr = fmt.Sprintf("%s?date=%d", addr, date)
	}

	var payload optionsPayload
	if err := c.getJSON(ctx, addr, &payload); err != nil {
		return nil, err
	}
	if e := payload.OptionChain.Error; e != nil {
		return nil, fmt.Errorf("%s: %s", underlying, e.Description)
	}
	return &payload, nil
}

// contractPrice picks the best available quote for one contract: last
// traded price, else the bid/ask midpoint, else whichever side exists.
func contractPrice(c optionContract) (float64, error) {
	switch {
	case c.LastPrice > 0:
		return c.LastPrice, nil
	case c.Bid > 0 && c.Ask > 0:
		return (c.Bid + c.Ask) / 2, nil
	case c.Bid > 0:
		return c.Bid, nil
	case c.Ask > 0:
		return c.Ask, nil
	}
	return 0, fmt.Errorf("no price data available")
}

// getJSON performs a rate-limited GET and unmarshals the JSON response
// into data.
func (c *YahooClient) getJSON(ctx context.Context, addr string, data any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	// Yahoo rejects requests without a browser-ish agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; foliopulse/1.0)")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot GET %s: %s", req.URL.Path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(data)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
