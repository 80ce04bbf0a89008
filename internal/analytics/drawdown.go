// Package analytics provides drawdown analysis.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/atlas-desktop/journal-backend/pkg/types"
)

var hundred = decimal.NewFromInt(100)

// Drawdown computes peak-to-trough decline over an equity series in one
// forward pass. MaxDrawdownPercent is relative to the peak in force when the
// largest drop occurred, not the final peak. CurrentDrawdown measures the
// last balance against the running peak at the end of the series. Series
// shorter than two points yield all zeros.
func (a *Analyzer) Drawdown(curve []types.EquityPoint) types.DrawdownResult {
	var result types.DrawdownResult
	if len(curve) == 0 {
		return result
	}

	peak := curve[0].Balance
	maxDrawdown := decimal.Zero
	peakAtMax := decimal.Zero

	for _, point := range curve[1:] {
		if point.Balance.GreaterThan(peak) {
			peak = point.Balance
			continue
		}
		drop := peak.Sub(point.Balance)
		if drop.GreaterThan(maxDrawdown) {
			maxDrawdown = drop
			peakAtMax = peak
		}
	}

	result.MaxDrawdown = maxDrawdown
	if peakAtMax.IsPositive() {
		result.MaxDrawdownPercent = maxDrawdown.Div(peakAtMax).Mul(hundred)
	}

	// peak is >= the last balance by construction, so this never goes
	// negative; it is zero whenever the series ends on a new peak.
	result.CurrentDrawdown = peak.Sub(curve[len(curve)-1].Balance)

	return result
}
