// Package ratesclient reaches the exchange rate provider over HTTP.
package ratesclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-petr/fx-portfolio/internal/domain"
)

// Client is the live rate provider client. Calls may fail or time out; the
// caller is expected to absorb transport errors with its own fallback policy.
type Client struct {
	baseURL string
	client  *http.Client
}

// New returns a rates client for the given provider base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

type ratesData struct {
	Rates []domain.CurrencyRate `json:"rates"`
}

type ratesResponse struct {
	Data ratesData `json:"data"`
}

type rateData struct {
	Rate domain.CurrencyRate `json:"rate"`
}

type rateResponse struct {
	Data rateData `json:"data"`
}

// All fetches the current rate for every supported currency.
func (c *Client) All(ctx context.Context) ([]domain.CurrencyRate, error) {
	endpoint, err := url.JoinPath(c.baseURL, "api/rates")
	if err != nil {
		return nil, err
	}

	var res ratesResponse
	if err := c.get(ctx, endpoint, &res); err != nil {
		return nil, err
	}

	return res.Data.Rates, nil
}

// Get fetches the current rate for a single currency.
func (c *Client) Get(ctx context.Context, currencyCode string) (domain.CurrencyRate, error) {
	endpoint, err := url.JoinPath(c.baseURL, "api/rates", currencyCode)
	if err != nil {
		return domain.CurrencyRate{}, err
	}

	var res rateResponse
	if err := c.get(ctx, endpoint, &res); err != nil {
		return domain.CurrencyRate{}, err
	}

	return res.Data.Rate, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("rate provider returned status %d: %w", res.StatusCode, domain.ErrUpstreamUnavailable)
	}

	return json.NewDecoder(res.Body).Decode(out)
}
