package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "payoff-studio/internal/errors"
	"payoff-studio/pkg/utils"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *HTTPProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPProvider(HTTPConfig{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
		Retry:   utils.RetryConfig{MaxAttempts: 2, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffFactor: 1},
	}, zerolog.Nop())
}

func TestHTTPProvider_GetQuote(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quote", r.URL.Path)
		assert.Equal(t, "SPY", r.URL.Query().Get("symbol"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"price": 520.40}`))
	})

	quote, err := p.GetQuote(context.Background(), "SPY")
	require.NoError(t, err)
	assert.Equal(t, "SPY", quote.Symbol)
	assert.Equal(t, 520.40, quote.Price)
}

func TestHTTPProvider_GetQuote_UpstreamError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "unknown symbol"}`))
	})

	_, err := p.GetQuote(context.Background(), "NOPE")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSymbolNotFound)

	var qerr *apperrors.QuoteError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, "NOPE", qerr.Symbol)
	assert.Equal(t, "unknown symbol", qerr.Message)
}

func TestHTTPProvider_GetQuote_ServerError(t *testing.T) {
	var calls int
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := p.GetQuote(context.Background(), "SPY")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrQuoteUnavailable)
	assert.Equal(t, 2, calls, "5xx responses should be retried")
}

func TestHTTPProvider_GetQuote_MalformedBody(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := p.GetQuote(context.Background(), "SPY")
	require.Error(t, err)
}

func TestHTTPProvider_GetExpirations(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/expirations", r.URL.Path)
		_, _ = w.Write([]byte(`{"expirations": ["2026-09-18", "2026-10-16"]}`))
	})

	exps, err := p.GetExpirations(context.Background(), "SPY")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-18", "2026-10-16"}, exps)
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider()
	ctx := context.Background()

	quote, err := p.GetQuote(ctx, "SPY")
	require.NoError(t, err)
	assert.Positive(t, quote.Price)

	exps, err := p.GetExpirations(ctx, "SPY")
	require.NoError(t, err)
	assert.NotEmpty(t, exps)

	_, err = p.GetQuote(ctx, "UNKNOWN")
	assert.ErrorIs(t, err, apperrors.ErrSymbolNotFound)

	p.SetQuote("NEW", 42)
	quote, err = p.GetQuote(ctx, "NEW")
	require.NoError(t, err)
	assert.Equal(t, 42.0, quote.Price)
}
