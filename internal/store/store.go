// Package store provides the in-memory record store backing the journal.
package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/atlas-desktop/journal-backend/pkg/types"
	"github.com/atlas-desktop/journal-backend/pkg/utils"
)

// ErrNotFound is returned when no record exists for the requested id.
var ErrNotFound = errors.New("trade not found")

// TradeRepository is the record-store contract the API layer depends on.
// Every method returns snapshots: mutating a returned record never changes
// stored state.
type TradeRepository interface {
	Create(t types.TradeRecord) (types.TradeRecord, error)
	Get(id int64) (types.TradeRecord, error)
	Update(t types.TradeRecord) (types.TradeRecord, error)
	Delete(id int64) error
	List() []types.TradeRecord
	Count() int
}

// MemoryTradeStore is a mutex-guarded map store with auto-incrementing ids
type MemoryTradeStore struct {
	mu     sync.RWMutex
	logger *zap.Logger
	trades map[int64]types.TradeRecord
	nextID int64
}

// NewMemoryTradeStore creates an empty trade store.
func NewMemoryTradeStore(logger *zap.Logger) *MemoryTradeStore {
	return &MemoryTradeStore{
		logger: logger,
		trades: make(map[int64]types.TradeRecord),
		nextID: 1,
	}
}

// Create validates and stores a new trade. Any id on the incoming record is
// ignored; the store assigns the next one in sequence.
func (s *MemoryTradeStore) Create(t types.TradeRecord) (types.TradeRecord, error) {
	if err := validate(&t); err != nil {
		return types.TradeRecord{}, fmt.Errorf("failed to create trade: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t = clone(t)
	t.ID = s.nextID
	s.nextID++

	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	normalizeOutcome(&t)

	s.trades[t.ID] = t
	s.logger.Debug("Trade created",
		zap.Int64("id", t.ID),
		zap.String("symbol", t.Symbol))

	return clone(t), nil
}

// Get returns the trade with the given id.
func (s *MemoryTradeStore) Get(id int64) (types.TradeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.trades[id]
	if !ok {
		return types.TradeRecord{}, fmt.Errorf("failed to get trade %d: %w", id, ErrNotFound)
	}

	return clone(t), nil
}

// Update replaces the stored trade with the same id, preserving its creation
// timestamp.
func (s *MemoryTradeStore) Update(t types.TradeRecord) (types.TradeRecord, error) {
	if err := validate(&t); err != nil {
		return types.TradeRecord{}, fmt.Errorf("failed to update trade %d: %w", t.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.trades[t.ID]
	if !ok {
		return types.TradeRecord{}, fmt.Errorf("failed to update trade %d: %w", t.ID, ErrNotFound)
	}

	t = clone(t)
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now().UTC()
	normalizeOutcome(&t)

	s.trades[t.ID] = t
	s.logger.Debug("Trade updated", zap.Int64("id", t.ID))

	return clone(t), nil
}

// Delete removes the trade with the given id.
func (s *MemoryTradeStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trades[id]; !ok {
		return fmt.Errorf("failed to delete trade %d: %w", id, ErrNotFound)
	}

	delete(s.trades, id)
	s.logger.Debug("Trade deleted", zap.Int64("id", id))

	return nil
}

// List returns a snapshot of every trade, ordered by id.
func (s *MemoryTradeStore) List() []types.TradeRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trades := make([]types.TradeRecord, 0, len(s.trades))
	for _, t := range s.trades {
		trades = append(trades, clone(t))
	}

	sort.Slice(trades, func(i, j int) bool {
		return trades[i].ID < trades[j].ID
	})

	return trades
}

// Count returns the number of stored trades.
func (s *MemoryTradeStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trades)
}

// validate checks the fields every stored trade must carry. Timestamp
// formats are not checked here; malformed instants are an analytics-level
// condition and must survive storage.
func validate(t *types.TradeRecord) error {
	if t.Symbol == "" {
		return errors.New("symbol is required")
	}
	if t.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", t.Quantity)
	}
	if t.EntryTime == "" {
		return errors.New("entry time is required")
	}
	return nil
}

// normalizeOutcome enforces the closed-trade invariant: realized P&L is
// present iff the exit time is. Open trades carry no exit fields; a closed
// trade missing its P&L gets it derived from the exit price.
func normalizeOutcome(t *types.TradeRecord) {
	if t.ExitTime == nil {
		t.ExitPrice = nil
		t.RealizedPnL = nil
		return
	}
	if t.RealizedPnL == nil && t.ExitPrice != nil {
		pnl := utils.RealizedPnL(t.EntryPrice, *t.ExitPrice, t.Quantity)
		t.RealizedPnL = &pnl
	}
}

// clone deep-copies the record's pointer fields so callers and the store
// never share mutable state.
func clone(t types.TradeRecord) types.TradeRecord {
	if t.ExitTime != nil {
		v := *t.ExitTime
		t.ExitTime = &v
	}
	if t.ExitPrice != nil {
		v := *t.ExitPrice
		t.ExitPrice = &v
	}
	if t.RealizedPnL != nil {
		v := *t.RealizedPnL
		t.RealizedPnL = &v
	}
	return t
}
