package settings

import (
	"context"
	"errors"
	"fmt"

	"callblock_backend/platform/apperr"

	"github.com/redis/go-redis/v9"
)

const (
	opManagerGet = "callblock.settings.manager.get"
	opManagerSet = "callblock.settings.manager.set"

	errManagerNotConfigured = "manager store not configured"

	managerKeyPrefix = "callblock:setting:"
)

// ManagerStore is the newer manager-backed setting store, persisted in redis.
type ManagerStore struct {
	client *redis.Client
}

// NewManagerStore creates a manager store over the given client.
func NewManagerStore(client *redis.Client) *ManagerStore {
	return &ManagerStore{client: client}
}

// Name identifies the store in logs.
func (s *ManagerStore) Name() string { return "manager" }

// Get reads the value of key. A key that was never written reads as false.
func (s *ManagerStore) Get(ctx context.Context, key string) (bool, error) {
	if s == nil || s.client == nil {
		return false, apperr.Internal(errManagerNotConfigured).WithOp(opManagerGet)
	}
	if key == "" {
		return false, apperr.Validation(errKeyRequired).WithOp(opManagerGet)
	}

	raw, err := s.client.Get(ctx, managerKeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, apperr.Internal(fmt.Sprintf("read setting failed: %v", err)).WithOp(opManagerGet)
	}

	return raw == "1", nil
}

// Set writes the value of key.
func (s *ManagerStore) Set(ctx context.Context, key string, value bool) error {
	if s == nil || s.client == nil {
		return apperr.Internal(errManagerNotConfigured).WithOp(opManagerSet)
	}
	if key == "" {
		return apperr.Validation(errKeyRequired).WithOp(opManagerSet)
	}

	raw := "0"
	if value {
		raw = "1"
	}

	if err := s.client.Set(ctx, managerKeyPrefix+key, raw, 0).Err(); err != nil {
		return apperr.Internal(fmt.Sprintf("write setting failed: %v", err)).WithOp(opManagerSet)
	}

	return nil
}
