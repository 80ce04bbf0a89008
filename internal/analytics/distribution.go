// Package analytics provides the P&L distribution histogram.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/atlas-desktop/journal-backend/pkg/types"
)

// Histogram buckets closed-trade P&L into fixed-width bins keyed by each
// bin's lower bound in canonical decimal form. Bucketing is floor division,
// so negative boundaries stay consistent: P&L -50 at width 100 lands in
// bucket "-100", and -100 itself stays in "-100". The pass is order
// independent, so closed trades with malformed exit timestamps still count.
// A non-positive width falls back to types.DefaultBucketWidth.
func (a *Analyzer) Histogram(records []types.TradeRecord, width decimal.Decimal) map[string]int {
	if !width.IsPositive() {
		width = types.DefaultBucketWidth
	}

	n := a.Normalize(records)
	buckets := make(map[string]int)
	for _, t := range n.Closed() {
		key := t.PnL.Div(width).Floor().Mul(width)
		buckets[key.String()]++
	}

	return buckets
}
