package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "payoff-studio/internal/errors"
	"payoff-studio/internal/models"
)

// SQLiteStore implements StrategyStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based strategy store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS strategies (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		symbol TEXT NOT NULL,
		legs TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_strategies_symbol ON strategies(symbol);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveStrategy inserts or updates a strategy. A missing ID is assigned;
// legs are stored as a JSON document alongside the row.
func (s *SQLiteStore) SaveStrategy(ctx context.Context, strategy *models.Strategy) error {
	if strategy.Name == "" {
		return apperrors.NewValidationError("name", strategy.Name, "strategy name is required")
	}
	if strategy.ID == "" {
		strategy.ID = fmt.Sprintf("strat_%d", time.Now().UnixNano())
	}

	now := time.Now().UTC()
	if strategy.CreatedAt.IsZero() {
		strategy.CreatedAt = now
	}
	strategy.UpdatedAt = now

	legsJSON, err := json.Marshal(strategy.Legs)
	if err != nil {
		return apperrors.NewStoreError("save", strategy.Name, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO strategies (id, name, symbol, legs, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			symbol = excluded.symbol,
			legs = excluded.legs,
			updated_at = excluded.updated_at`,
		strategy.ID, strategy.Name, strategy.Symbol, string(legsJSON),
		strategy.CreatedAt, strategy.UpdatedAt)
	if err != nil {
		return apperrors.NewStoreError("save", strategy.Name, err)
	}
	return nil
}

// GetStrategy returns a strategy by ID.
func (s *SQLiteStore) GetStrategy(ctx context.Context, id string) (*models.Strategy, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, symbol, legs, created_at, updated_at
		FROM strategies WHERE id = ?`, id)
	return scanStrategy(row, id)
}

// GetStrategyByName returns a strategy by its unique name.
func (s *SQLiteStore) GetStrategyByName(ctx context.Context, name string) (*models.Strategy, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, symbol, legs, created_at, updated_at
		FROM strategies WHERE name = ?`, name)
	return scanStrategy(row, name)
}

func scanStrategy(row *sql.Row, key string) (*models.Strategy, error) {
	var st models.Strategy
	var legsJSON string
	err := row.Scan(&st.ID, &st.Name, &st.Symbol, &legsJSON, &st.CreatedAt, &st.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewStoreError("get", key, apperrors.ErrStrategyNotFound)
	}
	if err != nil {
		return nil, apperrors.NewStoreError("get", key, err)
	}
	if err := json.Unmarshal([]byte(legsJSON), &st.Legs); err != nil {
		return nil, apperrors.NewStoreError("get", key, err)
	}
	return &st, nil
}

// ListStrategies returns every stored strategy, most recently updated first.
func (s *SQLiteStore) ListStrategies(ctx context.Context) ([]models.Strategy, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, symbol, legs, created_at, updated_at
		FROM strategies ORDER BY updated_at DESC`)
	if err != nil {
		return nil, apperrors.NewStoreError("list", "", err)
	}
	defer rows.Close()

	var out []models.Strategy
	for rows.Next() {
		var st models.Strategy
		var legsJSON string
		if err := rows.Scan(&st.ID, &st.Name, &st.Symbol, &legsJSON, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, apperrors.NewStoreError("list", "", err)
		}
		if err := json.Unmarshal([]byte(legsJSON), &st.Legs); err != nil {
			return nil, apperrors.NewStoreError("list", st.Name, err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// DeleteStrategy removes a strategy by ID.
func (s *SQLiteStore) DeleteStrategy(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM strategies WHERE id = ?`, id)
	if err != nil {
		return apperrors.NewStoreError("delete", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.NewStoreError("delete", id, apperrors.ErrStrategyNotFound)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
