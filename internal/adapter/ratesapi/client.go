package ratesapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/unitflow-backend/internal/domain"
)

// DefaultBaseURL is the exchange rate API endpoint used when none is configured
const DefaultBaseURL = "https://v6.exchangerate-api.com/v6"

const defaultTimeout = 15 * time.Second

// maxBodyBytes bounds the response size read from the provider
const maxBodyBytes = 1 << 20

// Client fetches USD-relative exchange rates over HTTP
// It implements domain.RateProvider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the request timeout
// The client is copied first, so an *http.Client passed to WithHTTPClient is never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			httpClient := *c.httpClient
			httpClient.Timeout = timeout
			c.httpClient = &httpClient
		}
	}
}

// NewClient creates a rates client
// An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// latestResponse is the provider's payload for the latest rates
type latestResponse struct {
	Result          string                     `json:"result"`
	ErrorType       string                     `json:"error-type"`
	BaseCode        string                     `json:"base_code"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

// FetchRates requests the latest rates relative to USD
func (c *Client) FetchRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(c.apiKey) + "/latest/" + domain.BaseCurrency
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rates request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read rates response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates API returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var payload latestResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}

	if payload.Result != "success" {
		errorType := payload.ErrorType
		if errorType == "" {
			errorType = "unknown error"
		}
		return nil, fmt.Errorf("rates API error: %s", errorType)
	}
	if payload.BaseCode != "" && payload.BaseCode != domain.BaseCurrency {
		return nil, fmt.Errorf("rates API returned base %q, want %q", payload.BaseCode, domain.BaseCurrency)
	}
	if len(payload.ConversionRates) == 0 {
		return nil, errors.New("rates API returned no rates")
	}

	return payload.ConversionRates, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
