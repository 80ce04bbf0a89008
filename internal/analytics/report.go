// Package analytics provides the combined analytics report.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/atlas-desktop/journal-backend/pkg/types"
	"github.com/atlas-desktop/journal-backend/pkg/utils"
)

// ReportOptions carries the external inputs a full report needs.
type ReportOptions struct {
	StartingBalance decimal.Decimal
	BucketWidth     decimal.Decimal
	Year            int
	Sessions        []types.SessionWindow
}

// Overview computes headline journal statistics over every completed
// outcome, including trades the time-ordered passes exclude. Loss-side
// averages and extremes are reported as magnitudes.
func (a *Analyzer) Overview(records []types.TradeRecord) types.TradeStats {
	n := a.Normalize(records)
	closed := n.Closed()

	stats := types.TradeStats{
		TotalTrades:  len(records),
		ClosedTrades: len(closed),
		OpenTrades:   n.OpenCount,
	}
	if len(closed) == 0 {
		return stats
	}

	pnls := make([]decimal.Decimal, 0, len(closed))
	var wins, losses []decimal.Decimal
	for _, t := range closed {
		pnls = append(pnls, t.PnL)
		stats.TotalPnL = stats.TotalPnL.Add(t.PnL)
		if isWin(t.PnL) {
			wins = append(wins, t.PnL)
			stats.LargestWin = utils.MaxDecimal(stats.LargestWin, t.PnL)
		} else {
			losses = append(losses, t.PnL.Abs())
			stats.LargestLoss = utils.MaxDecimal(stats.LargestLoss, t.PnL.Abs())
		}
	}

	stats.Winners = len(wins)
	stats.Losers = len(losses)
	stats.WinRate = utils.CalculateWinRate(pnls)
	stats.ProfitFactor = utils.CalculateProfitFactor(pnls)
	stats.AvgWin = utils.CalculateMean(wins)
	stats.AvgLoss = utils.CalculateMean(losses)
	stats.Expectancy = utils.CalculateMean(pnls)

	return stats
}

// Report runs every analytical pass over one snapshot of the journal. The
// passes stay independent reducers over the same records; only drawdown
// consumes another pass's output, by definition.
func (a *Analyzer) Report(records []types.TradeRecord, opts ReportOptions) *types.AnalyticsReport {
	year := opts.Year
	if year <= 0 {
		year = a.now().In(a.loc).Year()
	}
	width := opts.BucketWidth
	if !width.IsPositive() {
		width = types.DefaultBucketWidth
	}

	curve := a.EquityCurve(records, opts.StartingBalance)

	return &types.AnalyticsReport{
		GeneratedAt:     a.now(),
		StartingBalance: opts.StartingBalance,
		Overview:        a.Overview(records),
		EquityCurve:     curve,
		Drawdown:        a.Drawdown(curve),
		SharpeRatio:     a.SharpeRatio(records, opts.StartingBalance),
		Streaks:         a.Streaks(records),
		Histogram: types.Histogram{
			Width:   width,
			Buckets: a.Histogram(records, width),
		},
		Calendar: types.CalendarSummary{
			Days:   a.Calendar(records),
			Months: a.MonthlyRollup(records, year),
			Year:   year,
		},
		Sessions: a.Sessions(records, opts.Sessions),
	}
}
