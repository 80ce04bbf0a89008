// Package analytics provides calendar aggregation.
package analytics

import (
	"fmt"
	"time"

	"github.com/atlas-desktop/journal-backend/pkg/types"
)

// Calendar groups closed trades by attribution day, summing P&L and counting
// trades and wins per day. Outcomes whose day cannot be resolved (malformed
// trade date and exit timestamp both) are omitted.
func (a *Analyzer) Calendar(records []types.TradeRecord) map[string]types.DaySummary {
	days := make(map[string]types.DaySummary)
	for _, t := range a.Normalize(records).Closed() {
		if t.Day == "" {
			continue
		}
		summary := days[t.Day]
		summary.PnLSum = summary.PnLSum.Add(t.PnL)
		summary.TradeCount++
		if isWin(t.PnL) {
			summary.WinCount++
		}
		days[t.Day] = summary
	}
	return days
}

// MonthlyRollup sums day summaries into the twelve cells of one year's
// overview. All twelve cells are present, zero valued for empty months.
// A year of zero or less means the current year in the analyzer's location.
func (a *Analyzer) MonthlyRollup(records []types.TradeRecord, year int) []types.MonthCell {
	if year <= 0 {
		year = a.now().In(a.loc).Year()
	}

	cells := make([]types.MonthCell, 12)
	for m := range cells {
		cells[m].Month = fmt.Sprintf("%04d-%02d", year, m+1)
	}

	for day, summary := range a.Calendar(records) {
		d, err := time.Parse(types.DateLayout, day)
		if err != nil || d.Year() != year {
			continue
		}
		cell := &cells[int(d.Month())-1]
		cell.PnLSum = cell.PnLSum.Add(summary.PnLSum)
		cell.TradeCount += summary.TradeCount
	}

	return cells
}
