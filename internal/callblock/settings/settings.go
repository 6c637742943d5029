// Package settings provides the persistent blocked-number setting stores.
// Two interchangeable backends exist: the legacy provider-backed store and
// the newer manager-backed store. A feature flag picks one per call.
package settings

import (
	"context"

	"callblock_backend/platform/config"
)

// FeatureFlags is the runtime flag state, evaluated on every call.
type FeatureFlags interface {
	// UseBlockedNumbersManager selects the manager-backed store when true,
	// the provider-backed store otherwise.
	UseBlockedNumbersManager() bool
}

// Store is a persistent boolean-keyed setting store.
type Store interface {
	// Get reads the value of key. Absent keys read as false.
	Get(ctx context.Context, key string) (bool, error)

	// Set writes the value of key.
	Set(ctx context.Context, key string, value bool) error

	// Name identifies the store in logs.
	Name() string
}

// Selector picks the authoritative store for a single call. The flag is
// never cached: the stores stay independent, and flipping the flag between
// a write and a read observes the other store's value.
type Selector struct {
	provider Store
	manager  Store
}

// NewSelector creates a selector over the two backing stores.
func NewSelector(provider, manager Store) *Selector {
	return &Selector{provider: provider, manager: manager}
}

// Pick returns exactly one of the two stores based on the current flag state.
func (s *Selector) Pick(flags FeatureFlags) Store {
	if flags != nil && flags.UseBlockedNumbersManager() {
		return s.manager
	}
	return s.provider
}

// ConfigFlags adapts the application config to FeatureFlags.
type ConfigFlags struct {
	cfg config.FlagsConfig
}

// NewConfigFlags wraps a config as the runtime flag source.
func NewConfigFlags(cfg config.FlagsConfig) ConfigFlags {
	return ConfigFlags{cfg: cfg}
}

// UseBlockedNumbersManager reports the configured flag state.
func (f ConfigFlags) UseBlockedNumbersManager() bool {
	return f.cfg != nil && f.cfg.GetUseBlockedNumbersManager()
}
