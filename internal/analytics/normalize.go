// Package analytics provides trade record normalization.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/atlas-desktop/journal-backend/pkg/types"
)

// ClosedTrade is the completed outcome extracted from one trade record
type ClosedTrade struct {
	ID        int64
	CloseTime time.Time
	Day       string
	PnL       decimal.Decimal
}

// Normalized splits a trade snapshot into the inputs the passes consume
type Normalized struct {
	// Ordered holds closed trades with parseable exit timestamps, sorted
	// ascending by close time with ties broken by id.
	Ordered []ClosedTrade
	// Untimed holds closed trades whose exit timestamp failed to parse. They
	// are excluded from time-ordered passes but still count in
	// order-independent aggregations.
	Untimed []ClosedTrade
	// OpenCount is the number of records without a completed outcome.
	OpenCount int
}

// Closed returns every completed outcome regardless of timestamp quality.
func (n Normalized) Closed() []ClosedTrade {
	out := make([]ClosedTrade, 0, len(n.Ordered)+len(n.Untimed))
	out = append(out, n.Ordered...)
	out = append(out, n.Untimed...)
	return out
}

// Normalize classifies each record as open or closed and derives the fields
// the downstream passes need. A trade is closed when both exit time and
// realized P&L are present; anything else is filtered, never rejected.
func (a *Analyzer) Normalize(records []types.TradeRecord) Normalized {
	var n Normalized

	for i := range records {
		rec := &records[i]
		if !rec.IsClosed() {
			n.OpenCount++
			continue
		}

		ct := ClosedTrade{ID: rec.ID, PnL: *rec.RealizedPnL}

		closeTime, err := time.Parse(types.TimestampLayout, *rec.ExitTime)
		if err != nil {
			ct.Day = a.attributionDay(rec.TradeDate, time.Time{})
			n.Untimed = append(n.Untimed, ct)
			a.logger.Debug("Excluding trade from time-ordered passes",
				zap.Int64("id", rec.ID),
				zap.String("exitTime", *rec.ExitTime),
				zap.Error(err))
			continue
		}

		ct.CloseTime = closeTime
		ct.Day = a.attributionDay(rec.TradeDate, closeTime)
		n.Ordered = append(n.Ordered, ct)
	}

	sort.Slice(n.Ordered, func(i, j int) bool {
		if n.Ordered[i].CloseTime.Equal(n.Ordered[j].CloseTime) {
			return n.Ordered[i].ID < n.Ordered[j].ID
		}
		return n.Ordered[i].CloseTime.Before(n.Ordered[j].CloseTime)
	})

	return n
}

// attributionDay resolves the calendar day a closed trade belongs to: the
// record's trade date when well formed (late-session fills may journal under
// a different day than the fill instant), otherwise the close timestamp's
// date in the analyzer's location, otherwise empty.
func (a *Analyzer) attributionDay(tradeDate string, closeTime time.Time) string {
	if tradeDate != "" {
		if d, err := time.Parse(types.DateLayout, tradeDate); err == nil {
			return d.Format(types.DateLayout)
		}
	}
	if closeTime.IsZero() {
		return ""
	}
	return closeTime.In(a.loc).Format(types.DateLayout)
}
