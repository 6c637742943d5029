// Package carrier provides access to carrier-supplied configuration and the
// system-settings capability flags consulted by the call-blocking service.
package carrier

import "context"

// KeySupportEnhancedCallBlocking is the carrier config key for whether the
// carrier supports enhanced call blocking.
const KeySupportEnhancedCallBlocking = "support_enhanced_call_blocking_bool"

// Bundle is a provider-keyed set of configuration values.
type Bundle map[string]interface{}

// GetBool reads a boolean value, treating absent or mistyped keys as false.
func (b Bundle) GetBool(key string) bool {
	if b == nil {
		return false
	}
	value, ok := b[key].(bool)
	return ok && value
}

// DefaultBundle is the documented fallback configuration used when no
// carrier config is available. Every capability defaults to off.
func DefaultBundle() Bundle {
	return Bundle{
		KeySupportEnhancedCallBlocking: false,
	}
}

// ConfigProvider supplies the current carrier configuration. A nil bundle
// means no carrier config has been loaded; callers fall back to
// DefaultConfig.
type ConfigProvider interface {
	Config(ctx context.Context) (Bundle, error)
	DefaultConfig() Bundle
}

// SystemSettings exposes the system-settings capability flags.
type SystemSettings interface {
	IsEnhancedCallBlockingEnabled(ctx context.Context) (bool, error)
}

// StaticProvider serves a fixed bundle, used by the service binary and in
// tests.
type StaticProvider struct {
	bundle Bundle
}

// NewStaticProvider creates a provider serving the given bundle. A nil
// bundle models an absent carrier config.
func NewStaticProvider(bundle Bundle) *StaticProvider {
	return &StaticProvider{bundle: bundle}
}

// Config returns the fixed bundle.
func (p *StaticProvider) Config(_ context.Context) (Bundle, error) {
	return p.bundle, nil
}

// DefaultConfig returns the documented fallback bundle.
func (p *StaticProvider) DefaultConfig() Bundle {
	return DefaultBundle()
}

// StaticSystemSettings reports a fixed capability state.
type StaticSystemSettings struct {
	EnhancedCallBlocking bool
}

// IsEnhancedCallBlockingEnabled reports the fixed state.
func (s StaticSystemSettings) IsEnhancedCallBlockingEnabled(_ context.Context) (bool, error) {
	return s.EnhancedCallBlocking, nil
}
