// Package analytics provides streak analysis.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/atlas-desktop/journal-backend/pkg/types"
)

// isWin classifies a closed trade's outcome. Breakeven counts as a loss;
// the same test backs streaks, calendar win counts, and the overview.
func isWin(pnl decimal.Decimal) bool {
	return pnl.GreaterThan(decimal.Zero)
}

// Streaks walks closed trades in close order, grouping consecutive
// same-outcome runs into signed lengths (+3 is three straight wins). The
// in-progress run at the end of the sequence is appended like the others and
// reported as CurrentStreak. No closed trades yields zeros and an empty list.
func (a *Analyzer) Streaks(records []types.TradeRecord) types.StreakAnalysis {
	analysis := types.StreakAnalysis{Streaks: []int{}}

	current := 0
	for _, t := range a.Normalize(records).Ordered {
		step := -1
		if isWin(t.PnL) {
			step = 1
		}
		if current != 0 && (current > 0) != (step > 0) {
			analysis.Streaks = append(analysis.Streaks, current)
			current = 0
		}
		current += step
	}
	if current != 0 {
		analysis.Streaks = append(analysis.Streaks, current)
	}
	analysis.CurrentStreak = current

	for _, s := range analysis.Streaks {
		if s > 0 && s > analysis.MaxWinStreak {
			analysis.MaxWinStreak = s
		}
		if s < 0 && -s > analysis.MaxLossStreak {
			analysis.MaxLossStreak = -s
		}
	}

	return analysis
}
