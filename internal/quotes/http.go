package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"payoff-studio/internal/errors"
	"payoff-studio/internal/logging"
	"payoff-studio/internal/models"
	"payoff-studio/pkg/utils"
)

// HTTPConfig holds configuration for the HTTP quote provider.
type HTTPConfig struct {
	BaseURL string
	Timeout time.Duration
	Retry   utils.RetryConfig
}

// HTTPProvider fetches quotes and expirations from a JSON backend.
//
// The backend contract: GET {base}/quote?symbol=S returns
// {"price": number} or {"error": string}; GET {base}/expirations?symbol=S
// returns {"expirations": [string]} or {"error": string}.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
	retry   utils.RetryConfig
	logger  zerolog.Logger
}

// NewHTTPProvider creates a new HTTP-backed quote provider.
func NewHTTPProvider(cfg HTTPConfig, logger zerolog.Logger) *HTTPProvider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	retry := cfg.Retry
	if retry.MaxAttempts == 0 {
		retry = utils.DefaultRetryConfig()
	}
	return &HTTPProvider{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
		retry:   retry,
		logger:  logger,
	}
}

type quoteResponse struct {
	Price float64 `json:"price"`
	Error string  `json:"error"`
}

type expirationsResponse struct {
	Expirations []string `json:"expirations"`
	Error       string   `json:"error"`
}

// GetQuote fetches the current spot price for a symbol.
func (p *HTTPProvider) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	start := time.Now()
	resp, err := utils.RetryWithResult(ctx, p.retry, func() (*quoteResponse, error) {
		var out quoteResponse
		if err := p.getJSON(ctx, "quote", symbol, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
	if err != nil {
		return nil, errors.NewQuoteError(symbol, "quote lookup failed", err)
	}
	if resp.Error != "" {
		// Structured upstream error: not retryable, symbol-level.
		return nil, errors.NewQuoteError(symbol, resp.Error, errors.ErrSymbolNotFound)
	}

	logging.LogQuote(p.logger, symbol, resp.Price, time.Since(start))
	return &models.Quote{Symbol: symbol, Price: resp.Price}, nil
}

// GetExpirations fetches the option expiration dates for a symbol.
func (p *HTTPProvider) GetExpirations(ctx context.Context, symbol string) ([]string, error) {
	resp, err := utils.RetryWithResult(ctx, p.retry, func() (*expirationsResponse, error) {
		var out expirationsResponse
		if err := p.getJSON(ctx, "expirations", symbol, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
	if err != nil {
		return nil, errors.NewQuoteError(symbol, "expirations lookup failed", err)
	}
	if resp.Error != "" {
		return nil, errors.NewQuoteError(symbol, resp.Error, errors.ErrSymbolNotFound)
	}
	return resp.Expirations, nil
}

func (p *HTTPProvider) getJSON(ctx context.Context, endpoint, symbol string, target interface{}) error {
	u := fmt.Sprintf("%s/%s?symbol=%s", p.baseURL, endpoint, url.QueryEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(errors.ErrConnectionFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("upstream status %d: %w", resp.StatusCode, errors.ErrQuoteUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.Wrap(err, "decoding response")
	}
	return nil
}
