// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"payoff-studio/internal/models"
)

// StrategyStore defines the interface for strategy persistence.
type StrategyStore interface {
	SaveStrategy(ctx context.Context, strategy *models.Strategy) error
	GetStrategy(ctx context.Context, id string) (*models.Strategy, error)
	GetStrategyByName(ctx context.Context, name string) (*models.Strategy, error)
	ListStrategies(ctx context.Context) ([]models.Strategy, error)
	DeleteStrategy(ctx context.Context, id string) error
	Close() error
}
