// Package store provides the journal settings store.
package store

import (
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/atlas-desktop/journal-backend/pkg/types"
)

// Settings keys the journal understands.
const (
	KeyStartingBalance = "starting_balance"
	KeyBucketWidth     = "bucket_width"
)

// SettingsStore is a mutex-guarded string key/value store for configuration
// values users can change at runtime. Values stay strings; typed accessors
// parse on read and fall back to defaults instead of failing.
type SettingsStore struct {
	mu     sync.RWMutex
	logger *zap.Logger
	values map[string]string
}

// NewSettingsStore creates a settings store seeded with initial values.
func NewSettingsStore(logger *zap.Logger, seed map[string]string) *SettingsStore {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &SettingsStore{
		logger: logger,
		values: values,
	}
}

// Get returns the raw value for key and whether it is set.
func (s *SettingsStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok
}

// Set stores a raw value under key.
func (s *SettingsStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	s.logger.Debug("Setting stored", zap.String("key", key))
}

// All returns a copy of every setting.
func (s *SettingsStore) All() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := make(map[string]string, len(s.values))
	for k, v := range s.values {
		values[k] = v
	}
	return values
}

// StartingBalance parses the starting balance setting, falling back to
// types.DefaultStartingBalance when the value is absent, unparseable, or
// not positive.
func (s *SettingsStore) StartingBalance() decimal.Decimal {
	return s.decimalOr(KeyStartingBalance, types.DefaultStartingBalance)
}

// BucketWidth parses the histogram bucket width with the same fallback
// behavior, defaulting to types.DefaultBucketWidth.
func (s *SettingsStore) BucketWidth() decimal.Decimal {
	return s.decimalOr(KeyBucketWidth, types.DefaultBucketWidth)
}

func (s *SettingsStore) decimalOr(key string, fallback decimal.Decimal) decimal.Decimal {
	raw, ok := s.Get(key)
	if !ok {
		return fallback
	}

	value, err := decimal.NewFromString(raw)
	if err != nil || !value.IsPositive() {
		s.logger.Warn("Ignoring invalid setting value",
			zap.String("key", key),
			zap.String("value", raw))
		return fallback
	}

	return value
}
