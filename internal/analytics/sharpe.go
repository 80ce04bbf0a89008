// Package analytics provides the risk-adjusted return calculation.
package analytics

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/atlas-desktop/journal-backend/pkg/types"
)

// DailyReturns produces one fractional return per calendar day that saw at
// least one closed trade: the day's summed P&L divided by the starting
// balance, ordered by day. A non-positive starting balance yields nothing.
func (a *Analyzer) DailyReturns(records []types.TradeRecord, startingBalance decimal.Decimal) []float64 {
	if !startingBalance.IsPositive() {
		return nil
	}

	n := a.Normalize(records)
	byDay := make(map[string]decimal.Decimal)
	for _, t := range n.Closed() {
		if t.Day == "" {
			continue
		}
		byDay[t.Day] = byDay[t.Day].Add(t.PnL)
	}
	if len(byDay) == 0 {
		return nil
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	returns := make([]float64, 0, len(days))
	for _, day := range days {
		ret, _ := byDay[day].Div(startingBalance).Float64()
		returns = append(returns, ret)
	}

	return returns
}

// SharpeRatio is the mean daily return over the sample standard deviation of
// daily returns, reported on the native daily period with no annualization.
// Fewer than two return days, or zero variance, yields 0 rather than NaN.
func (a *Analyzer) SharpeRatio(records []types.TradeRecord, startingBalance decimal.Decimal) float64 {
	returns := a.DailyReturns(records, startingBalance)
	if len(returns) < 2 {
		return 0
	}

	sd := stdDev(returns)
	if sd == 0 {
		return 0
	}

	return mean(returns) / sd
}

// mean calculates arithmetic mean
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev calculates sample standard deviation
func stdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	m := mean(values)
	var sumSquares float64
	for _, v := range values {
		diff := v - m
		sumSquares += diff * diff
	}

	return math.Sqrt(sumSquares / float64(len(values)-1))
}
