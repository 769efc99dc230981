// Package ledgerclient reaches the trade ledger over HTTP.
package ledgerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-petr/fx-portfolio/internal/domain"
)

// Client is the live trade ledger client.
type Client struct {
	baseURL string
	client  *http.Client
}

// New returns a ledger client for the given ledger base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

type historyData struct {
	Trades []domain.Trade `json:"trades"`
}

type historyResponse struct {
	Data historyData `json:"data"`
}

// Submit posts a trade to the ledger for execution. The ledger returns no
// body; any non-success status is a transport failure.
func (c *Client) Submit(ctx context.Context, trade domain.Trade) error {
	endpoint, err := url.JoinPath(c.baseURL, "api/trades")
	if err != nil {
		return err
	}

	body, err := json.Marshal(trade)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusNoContent && res.StatusCode != http.StatusOK {
		return fmt.Errorf("trade ledger returned status %d: %w", res.StatusCode, domain.ErrUpstreamUnavailable)
	}

	return nil
}

// History fetches the user's executed trades.
func (c *Client) History(ctx context.Context, userID string) ([]domain.Trade, error) {
	endpoint, err := url.JoinPath(c.baseURL, "api/trades", userID)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trade ledger returned status %d: %w", res.StatusCode, domain.ErrUpstreamUnavailable)
	}

	var response historyResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, err
	}

	return response.Data.Trades, nil
}
