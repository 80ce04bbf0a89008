// Package analytics tests for the drawdown analyzer.
package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/atlas-desktop/journal-backend/pkg/types"
)

func curveOf(balances ...string) []types.EquityPoint {
	points := make([]types.EquityPoint, len(balances))
	base := time.Date(2025, 6, 1, 16, 0, 0, 0, time.UTC)
	for i, b := range balances {
		points[i] = types.EquityPoint{
			Timestamp: base.AddDate(0, 0, i),
			Balance:   decimal.RequireFromString(b),
		}
	}
	return points
}

func TestDrawdownScenario(t *testing.T) {
	a := testAnalyzer()

	result := a.Drawdown(curveOf("28000", "28600", "28400", "28700"))

	if !result.MaxDrawdown.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Expected max drawdown 200, got %s", result.MaxDrawdown)
	}

	wantPct := decimal.NewFromInt(200).Div(decimal.NewFromInt(28600)).Mul(decimal.NewFromInt(100))
	if !result.MaxDrawdownPercent.Equal(wantPct) {
		t.Errorf("Expected max drawdown pct %s, got %s", wantPct, result.MaxDrawdownPercent)
	}

	// 28700 is a fresh peak, so nothing is currently given back.
	if !result.CurrentDrawdown.IsZero() {
		t.Errorf("Expected current drawdown 0, got %s", result.CurrentDrawdown)
	}
}

func TestDrawdownDegenerateSeries(t *testing.T) {
	a := testAnalyzer()

	tests := []struct {
		name  string
		curve []types.EquityPoint
	}{
		{"empty", nil},
		{"single point", curveOf("28000")},
		{"monotonic rise", curveOf("100", "200", "300")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.Drawdown(tt.curve)
			if !result.MaxDrawdown.IsZero() || !result.MaxDrawdownPercent.IsZero() || !result.CurrentDrawdown.IsZero() {
				t.Errorf("Expected all-zero result, got %+v", result)
			}
		})
	}
}

func TestDrawdownPercentUsesPeakAtMaxDrop(t *testing.T) {
	a := testAnalyzer()

	// First drop: 20 from peak 100. Larger drop later: 30 from peak 130.
	result := a.Drawdown(curveOf("100", "80", "130", "100"))

	if !result.MaxDrawdown.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("Expected max drawdown 30, got %s", result.MaxDrawdown)
	}

	wantPct := decimal.NewFromInt(30).Div(decimal.NewFromInt(130)).Mul(decimal.NewFromInt(100))
	if !result.MaxDrawdownPercent.Equal(wantPct) {
		t.Errorf("Expected pct against peak 130 (%s), got %s", wantPct, result.MaxDrawdownPercent)
	}
}

func TestCurrentDrawdownBelowPeak(t *testing.T) {
	a := testAnalyzer()

	result := a.Drawdown(curveOf("100", "150", "120", "130"))

	if !result.CurrentDrawdown.Equal(decimal.NewFromInt(20)) {
		t.Errorf("Expected current drawdown 20, got %s", result.CurrentDrawdown)
	}

	// Whenever the series does not end on a fresh peak, the current
	// give-back can never exceed the worst observed drop.
	if result.CurrentDrawdown.GreaterThan(result.MaxDrawdown) {
		t.Errorf("Current drawdown %s exceeds max %s", result.CurrentDrawdown, result.MaxDrawdown)
	}
}
