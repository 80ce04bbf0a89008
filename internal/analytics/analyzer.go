// Package analytics implements the journal's performance passes: equity
// curve, drawdown, risk-adjusted return, streaks, and distribution/calendar
// aggregations. Every pass is a pure, deterministic function over one trade
// snapshot; the calendar timezone and the clock are injected rather than
// read from the host.
package analytics

import (
	"time"

	"go.uber.org/zap"
)

// Analyzer runs analytical passes over journaled trades
type Analyzer struct {
	logger *zap.Logger
	loc    *time.Location
	now    func() time.Time
}

// NewAnalyzer creates an analyzer that resolves calendar days and session
// clocks in loc. A nil loc falls back to the host's local zone.
func NewAnalyzer(logger *zap.Logger, loc *time.Location) *Analyzer {
	if loc == nil {
		loc = time.Local
	}
	return &Analyzer{
		logger: logger,
		loc:    loc,
		now:    time.Now,
	}
}
