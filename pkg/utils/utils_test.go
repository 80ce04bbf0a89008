// Package utils_test provides tests for the stat helpers.
package utils_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/atlas-desktop/journal-backend/pkg/utils"
)

func pnls(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.RequireFromString(v)
	}
	return out
}

func TestRealizedPnL(t *testing.T) {
	tests := []struct {
		name     string
		entry    string
		exit     string
		quantity int64
		want     string
	}{
		{"winner", "1.50", "2.50", 2, "200"},
		{"loser", "3.00", "2.25", 1, "-75"},
		{"breakeven", "2.00", "2.00", 10, "0"},
		{"fractional", "0.55", "0.80", 4, "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.RealizedPnL(
				decimal.RequireFromString(tt.entry),
				decimal.RequireFromString(tt.exit),
				tt.quantity,
			)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestCalculateWinRate(t *testing.T) {
	if got := utils.CalculateWinRate(nil); !got.IsZero() {
		t.Errorf("Expected 0 for empty input, got %s", got)
	}

	// Breakeven counts against the rate.
	got := utils.CalculateWinRate(pnls("100", "-50", "0", "200"))
	if !got.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Expected 50, got %s", got)
	}
}

func TestCalculateProfitFactor(t *testing.T) {
	got := utils.CalculateProfitFactor(pnls("600", "-200", "300", "-100"))
	if !got.Equal(decimal.NewFromInt(3)) {
		t.Errorf("Expected 3, got %s", got)
	}

	// No losses caps at 100 instead of dividing by zero.
	if got := utils.CalculateProfitFactor(pnls("100", "50")); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected cap 100, got %s", got)
	}

	if got := utils.CalculateProfitFactor(nil); !got.IsZero() {
		t.Errorf("Expected 0 for empty input, got %s", got)
	}
}

func TestCalculateMean(t *testing.T) {
	if got := utils.CalculateMean(nil); !got.IsZero() {
		t.Errorf("Expected 0 for empty input, got %s", got)
	}

	got := utils.CalculateMean(pnls("100", "200", "300"))
	if !got.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Expected 200, got %s", got)
	}
}

func TestMinMaxDecimal(t *testing.T) {
	a := decimal.NewFromInt(10)
	b := decimal.NewFromInt(-3)

	if !utils.MinDecimal(a, b).Equal(b) {
		t.Error("MinDecimal picked the wrong value")
	}
	if !utils.MaxDecimal(a, b).Equal(a) {
		t.Error("MaxDecimal picked the wrong value")
	}
}
