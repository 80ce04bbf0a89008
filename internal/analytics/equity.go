// Package analytics provides the equity curve builder.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/atlas-desktop/journal-backend/pkg/types"
)

// EquityCurve folds closed trades in close order into the running account
// balance series. The series is seeded with one starting-balance point so it
// is never empty; the seed carries the first close timestamp when closed
// trades exist (keeping the series non-decreasing in time) and the current
// instant otherwise. Zero-P&L trades produce flat points that are kept.
func (a *Analyzer) EquityCurve(records []types.TradeRecord, startingBalance decimal.Decimal) []types.EquityPoint {
	n := a.Normalize(records)

	seedTime := a.now()
	if len(n.Ordered) > 0 {
		seedTime = n.Ordered[0].CloseTime
	}

	curve := make([]types.EquityPoint, 0, len(n.Ordered)+1)
	curve = append(curve, types.EquityPoint{Timestamp: seedTime, Balance: startingBalance})

	balance := startingBalance
	for _, t := range n.Ordered {
		balance = balance.Add(t.PnL)
		curve = append(curve, types.EquityPoint{Timestamp: t.CloseTime, Balance: balance})
	}

	return curve
}
