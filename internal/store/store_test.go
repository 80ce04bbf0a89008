// Package store_test provides tests for the trade store.
package store_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/atlas-desktop/journal-backend/internal/store"
	"github.com/atlas-desktop/journal-backend/pkg/types"
)

func newTrade(symbol string) types.TradeRecord {
	return types.TradeRecord{
		Symbol:     symbol,
		Quantity:   2,
		EntryTime:  "2025-06-02T09:45:00Z",
		EntryPrice: decimal.RequireFromString("1.50"),
		TradeDate:  "2025-06-02",
	}
}

func closeOut(t types.TradeRecord, exitTime, exitPrice string) types.TradeRecord {
	price := decimal.RequireFromString(exitPrice)
	t.ExitTime = &exitTime
	t.ExitPrice = &price
	return t
}

func TestTradeCRUDRoundTrip(t *testing.T) {
	s := store.NewMemoryTradeStore(zap.NewNop())

	created, err := s.Create(newTrade("SPY"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("Expected id 1, got %d", created.ID)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("Timestamps not stamped on create")
	}

	got, err := s.Get(created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Symbol != "SPY" {
		t.Errorf("Expected symbol SPY, got %s", got.Symbol)
	}

	got.Notes = "updated plan"
	updated, err := s.Update(got)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Notes != "updated plan" {
		t.Errorf("Update lost notes field")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("Update changed CreatedAt")
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestIDSequence(t *testing.T) {
	s := store.NewMemoryTradeStore(zap.NewNop())

	for want := int64(1); want <= 3; want++ {
		created, err := s.Create(newTrade("QQQ"))
		if err != nil {
			t.Fatalf("Create %d failed: %v", want, err)
		}
		if created.ID != want {
			t.Errorf("Expected id %d, got %d", want, created.ID)
		}
	}

	// Deleting does not reuse ids.
	if err := s.Delete(2); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	created, err := s.Create(newTrade("QQQ"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != 4 {
		t.Errorf("Expected id 4 after deletion, got %d", created.ID)
	}
}

func TestValidation(t *testing.T) {
	s := store.NewMemoryTradeStore(zap.NewNop())

	tests := []struct {
		name   string
		mutate func(*types.TradeRecord)
	}{
		{"missing symbol", func(t *types.TradeRecord) { t.Symbol = "" }},
		{"zero quantity", func(t *types.TradeRecord) { t.Quantity = 0 }},
		{"negative quantity", func(t *types.TradeRecord) { t.Quantity = -1 }},
		{"missing entry time", func(t *types.TradeRecord) { t.EntryTime = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trade := newTrade("SPY")
			tt.mutate(&trade)
			if _, err := s.Create(trade); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}

	// A malformed entry instant is accepted; the analytics layer owns
	// that condition.
	trade := newTrade("SPY")
	trade.EntryTime = "yesterday lunchtime"
	if _, err := s.Create(trade); err != nil {
		t.Errorf("Malformed instant rejected at the store: %v", err)
	}
}

func TestPnLDerivation(t *testing.T) {
	s := store.NewMemoryTradeStore(zap.NewNop())

	created, err := s.Create(closeOut(newTrade("SPY"), "2025-06-02T15:30:00Z", "2.50"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.RealizedPnL == nil {
		t.Fatal("Expected derived P&L on closed trade")
	}
	// (2.50 - 1.50) * 2 contracts * 100 multiplier
	if !created.RealizedPnL.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Expected P&L 200, got %s", created.RealizedPnL)
	}
}

func TestOpenTradeClearsOutcome(t *testing.T) {
	s := store.NewMemoryTradeStore(zap.NewNop())

	// Exit price and P&L without an exit time must not survive a save.
	trade := newTrade("SPY")
	price := decimal.RequireFromString("2.50")
	pnl := decimal.NewFromInt(200)
	trade.ExitPrice = &price
	trade.RealizedPnL = &pnl

	created, err := s.Create(trade)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ExitPrice != nil || created.RealizedPnL != nil {
		t.Errorf("Open trade kept exit fields: %+v", created)
	}
	if created.IsClosed() {
		t.Error("Open trade reports as closed")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := store.NewMemoryTradeStore(zap.NewNop())

	created, err := s.Create(closeOut(newTrade("SPY"), "2025-06-02T15:30:00Z", "2.50"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Mutating the returned snapshot must not leak into the store.
	*created.RealizedPnL = decimal.NewFromInt(999999)
	created.Symbol = "HACKED"

	got, err := s.Get(created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Symbol != "SPY" {
		t.Errorf("Stored symbol mutated: %s", got.Symbol)
	}
	if !got.RealizedPnL.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Stored P&L mutated: %s", got.RealizedPnL)
	}

	// Same isolation for List.
	list := s.List()
	*list[0].RealizedPnL = decimal.Zero
	again, _ := s.Get(created.ID)
	if !again.RealizedPnL.Equal(decimal.NewFromInt(200)) {
		t.Errorf("List snapshot shared state with the store")
	}
}

func TestListOrderedByID(t *testing.T) {
	s := store.NewMemoryTradeStore(zap.NewNop())

	for i := 0; i < 5; i++ {
		if _, err := s.Create(newTrade("SPY")); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	list := s.List()
	if len(list) != 5 {
		t.Fatalf("Expected 5 trades, got %d", len(list))
	}
	for i, trade := range list {
		if trade.ID != int64(i+1) {
			t.Errorf("Position %d: expected id %d, got %d", i, i+1, trade.ID)
		}
	}

	if s.Count() != 5 {
		t.Errorf("Expected count 5, got %d", s.Count())
	}
}

func TestNotFoundErrors(t *testing.T) {
	s := store.NewMemoryTradeStore(zap.NewNop())

	if _, err := s.Get(42); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get: expected ErrNotFound, got %v", err)
	}
	if err := s.Delete(42); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}

	trade := newTrade("SPY")
	trade.ID = 42
	if _, err := s.Update(trade); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
}
