package ratesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"fxproxy/internal/domain"
)

// Client talks to the public rates endpoint:
//
//	GET {baseURL}/latest?from={BASE} -> {"rates": {"USD": 1.08, ...}}
//
// The provider requires no authentication.
type Client struct {
	http    *http.Client
	baseURL string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{http: httpClient, baseURL: strings.TrimSuffix(baseURL, "/")}
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

func (c *Client) FetchRates(ctx context.Context, base string) (map[string]float64, error) {
	u, err := url.Parse(c.baseURL + "/latest")
	if err != nil {
		return nil, fmt.Errorf("failed to parse rates endpoint URL: %w", err)
	}
	q := u.Query()
	q.Set("from", base)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for currency %q: %w", base, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request for currency %q: %v", domain.ErrNetwork, base, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		// The provider answers 4xx for currencies it does not serve.
		return nil, fmt.Errorf("%w: %q rejected by provider: %s", domain.ErrInvalidCurrency, base, resp.Status)
	default:
		return nil, fmt.Errorf("%w: unexpected status for currency %q: %s", domain.ErrNetwork, base, resp.Status)
	}

	var body ratesResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response for currency %q: %v", domain.ErrParse, base, err)
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("%w: response for currency %q carries no rates", domain.ErrParse, base)
	}

	return body.Rates, nil
}
