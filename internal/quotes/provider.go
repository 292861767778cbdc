// Package quotes provides access to spot quotes and option expirations.
package quotes

import (
	"context"

	"payoff-studio/internal/models"
)

// Provider defines the interface for quote and expirations lookup.
type Provider interface {
	// GetQuote returns the current spot price for a symbol.
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)

	// GetExpirations returns the ordered option expiration dates for a
	// symbol as YYYY-MM-DD strings.
	GetExpirations(ctx context.Context, symbol string) ([]string, error)
}
