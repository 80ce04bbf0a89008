// Package analytics tests for calendar aggregation.
package analytics

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/atlas-desktop/journal-backend/pkg/types"
)

func TestCalendarGroupsByDay(t *testing.T) {
	a := testAnalyzer()

	records := []types.TradeRecord{
		closedTrade(1, "2025-06-02T10:30:00Z", "600"),
		closedTrade(2, "2025-06-02T15:30:00Z", "-200"),
		closedTrade(3, "2025-06-03T15:30:00Z", "300"),
		openTrade(4),
	}

	days := a.Calendar(records)

	if len(days) != 2 {
		t.Fatalf("Expected 2 days, got %d", len(days))
	}

	first := days["2025-06-02"]
	if !first.PnLSum.Equal(decimal.NewFromInt(400)) {
		t.Errorf("Expected day sum 400, got %s", first.PnLSum)
	}
	if first.TradeCount != 2 {
		t.Errorf("Expected 2 trades, got %d", first.TradeCount)
	}
	if first.WinCount != 1 {
		t.Errorf("Expected 1 win, got %d", first.WinCount)
	}

	second := days["2025-06-03"]
	if !second.PnLSum.Equal(decimal.NewFromInt(300)) || second.TradeCount != 1 || second.WinCount != 1 {
		t.Errorf("Unexpected second day summary: %+v", second)
	}
}

func TestCalendarHonorsTradeDate(t *testing.T) {
	a := testAnalyzer()

	// A late fill journaled back to the prior session.
	rec := closedTrade(1, "2025-06-03T01:30:00Z", "100")
	rec.TradeDate = "2025-06-02"

	days := a.Calendar([]types.TradeRecord{rec})

	if _, ok := days["2025-06-03"]; ok {
		t.Error("Trade attributed to the exit instant instead of its trade date")
	}
	if days["2025-06-02"].TradeCount != 1 {
		t.Errorf("Expected trade under 2025-06-02, got %v", days)
	}
}

func TestMonthlyRollup(t *testing.T) {
	a := testAnalyzer()

	records := []types.TradeRecord{
		closedTrade(1, "2025-01-10T15:30:00Z", "100"),
		closedTrade(2, "2025-01-20T15:30:00Z", "-40"),
		closedTrade(3, "2025-06-02T15:30:00Z", "600"),
		closedTrade(4, "2024-12-31T15:30:00Z", "999"), // other year, excluded
	}

	cells := a.MonthlyRollup(records, 2025)

	if len(cells) != 12 {
		t.Fatalf("Expected 12 cells, got %d", len(cells))
	}

	if cells[0].Month != "2025-01" || cells[11].Month != "2025-12" {
		t.Errorf("Unexpected month labels: %s .. %s", cells[0].Month, cells[11].Month)
	}

	if !cells[0].PnLSum.Equal(decimal.NewFromInt(60)) || cells[0].TradeCount != 2 {
		t.Errorf("January: expected sum 60 over 2 trades, got %+v", cells[0])
	}
	if !cells[5].PnLSum.Equal(decimal.NewFromInt(600)) || cells[5].TradeCount != 1 {
		t.Errorf("June: expected sum 600 over 1 trade, got %+v", cells[5])
	}

	// Empty months stay present and zero valued.
	if !cells[2].PnLSum.IsZero() || cells[2].TradeCount != 0 {
		t.Errorf("March should be zero valued, got %+v", cells[2])
	}
}

func TestMonthlyRollupDefaultsToCurrentYear(t *testing.T) {
	a := testAnalyzer()

	cells := a.MonthlyRollup(nil, 0)

	// The pinned test clock sits in 2025.
	if cells[0].Month != "2025-01" {
		t.Errorf("Expected rollup for 2025, got %s", cells[0].Month)
	}
}
