package quotes

import (
	"context"
	"sync"

	"payoff-studio/internal/errors"
	"payoff-studio/internal/models"
)

// StaticProvider serves fixture quotes and expirations from memory.
// It backs offline use and tests.
type StaticProvider struct {
	mu          sync.RWMutex
	prices      map[string]float64
	expirations map[string][]string
}

// NewStaticProvider creates a provider pre-seeded with a few liquid
// symbols so the UI works out of the box.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		prices: map[string]float64{
			"SPY":  520.40,
			"QQQ":  445.10,
			"AAPL": 228.50,
			"TSLA": 262.75,
		},
		expirations: map[string][]string{
			"SPY":  {"2026-09-18", "2026-10-16", "2026-11-20", "2026-12-18"},
			"QQQ":  {"2026-09-18", "2026-10-16", "2026-12-18"},
			"AAPL": {"2026-09-18", "2026-10-16", "2026-12-18", "2027-01-15"},
			"TSLA": {"2026-09-18", "2026-10-16", "2026-12-18"},
		},
	}
}

// SetQuote sets or replaces the price for a symbol.
func (p *StaticProvider) SetQuote(symbol string, price float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prices[symbol] = price
}

// SetExpirations sets or replaces the expirations for a symbol.
func (p *StaticProvider) SetExpirations(symbol string, expirations []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.expirations[symbol] = expirations
}

// GetQuote returns the fixture price for a symbol.
func (p *StaticProvider) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	price, ok := p.prices[symbol]
	if !ok {
		return nil, errors.NewQuoteError(symbol, "no fixture quote", errors.ErrSymbolNotFound)
	}
	return &models.Quote{Symbol: symbol, Price: price}, nil
}

// GetExpirations returns the fixture expirations for a symbol.
func (p *StaticProvider) GetExpirations(ctx context.Context, symbol string) ([]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	exps, ok := p.expirations[symbol]
	if !ok {
		return nil, errors.NewQuoteError(symbol, "no fixture expirations", errors.ErrSymbolNotFound)
	}
	out := make([]string, len(exps))
	copy(out, exps)
	return out, nil
}
