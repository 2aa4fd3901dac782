package rateapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
)

// Provider fetches quotes from an openrates-style HTTP API. The response is
// validated and coerced here; nothing upstream-shaped leaves this package.
type Provider struct {
	client  *http.Client
	baseURL string
	base    string
}

type ratesResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

func NewProvider(baseURL, baseCurrency string, timeout time.Duration) *Provider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Provider{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		base:    strings.ToUpper(baseCurrency),
	}
}

func (p *Provider) GetName() string {
	return "openrates"
}

func (p *Provider) BaseCurrency() string {
	return p.base
}

func (p *Provider) FetchAll(ctx context.Context, base string) (map[string]float64, error) {
	url := fmt.Sprintf("%s/latest?base=%s", p.baseURL, strings.ToUpper(base))

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: rates API returned status %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var ratesResp ratesResponse
	if err := json.Unmarshal(body, &ratesResp); err != nil {
		return nil, fmt.Errorf("failed to parse rates response: %w", err)
	}

	if !strings.EqualFold(ratesResp.Base, base) {
		return nil, fmt.Errorf("%w: requested base %s, got %s", domain.ErrFetchFailed, base, ratesResp.Base)
	}

	rates := make(map[string]float64, len(ratesResp.Rates))
	for currency, rate := range ratesResp.Rates {
		if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			continue
		}
		rates[strings.ToUpper(currency)] = rate
	}

	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: empty rates payload", domain.ErrFetchFailed)
	}

	return rates, nil
}
