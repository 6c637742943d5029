package settings

import (
	"context"
	"errors"
	"fmt"

	"callblock_backend/platform/apperr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	opProviderGet = "callblock.settings.provider.get"
	opProviderSet = "callblock.settings.provider.set"

	errProviderNotConfigured = "provider store not configured"
	errKeyRequired           = "key is required"
)

// Querier is the subset of pgxpool.Pool the provider store uses.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// ProviderStore is the legacy provider-backed setting store, persisted in
// Postgres.
type ProviderStore struct {
	db Querier
}

// NewProviderStore creates a provider store over the given pool.
func NewProviderStore(pool *pgxpool.Pool) *ProviderStore {
	s := &ProviderStore{}
	if pool != nil {
		s.db = pool
	}
	return s
}

// Name identifies the store in logs.
func (s *ProviderStore) Name() string { return "provider" }

// Get reads the value of key. A key that was never written reads as false.
func (s *ProviderStore) Get(ctx context.Context, key string) (bool, error) {
	if s == nil || s.db == nil {
		return false, apperr.Internal(errProviderNotConfigured).WithOp(opProviderGet)
	}
	if key == "" {
		return false, apperr.Validation(errKeyRequired).WithOp(opProviderGet)
	}

	var value bool
	err := s.db.QueryRow(ctx, `
		SELECT value FROM blocked_number_settings WHERE key = $1
	`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, apperr.Internal(fmt.Sprintf("read setting failed: %v", err)).WithOp(opProviderGet)
	}

	return value, nil
}

// Set writes the value of key, creating the row on first write.
func (s *ProviderStore) Set(ctx context.Context, key string, value bool) error {
	if s == nil || s.db == nil {
		return apperr.Internal(errProviderNotConfigured).WithOp(opProviderSet)
	}
	if key == "" {
		return apperr.Validation(errKeyRequired).WithOp(opProviderSet)
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO blocked_number_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, key, value)
	if err != nil {
		return apperr.Internal(fmt.Sprintf("write setting failed: %v", err)).WithOp(opProviderSet)
	}

	return nil
}
