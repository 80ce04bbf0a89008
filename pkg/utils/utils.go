// Package utils provides statistic helpers for the journal backend.
package utils

import (
	"github.com/shopspring/decimal"

	"github.com/atlas-desktop/journal-backend/pkg/types"
)

// RealizedPnL derives the realized profit or loss of a closed options trade:
// (exit - entry) * quantity * contract multiplier.
func RealizedPnL(entryPrice, exitPrice decimal.Decimal, quantity int64) decimal.Decimal {
	perContract := exitPrice.Sub(entryPrice)
	size := decimal.NewFromInt(quantity).Mul(decimal.NewFromInt(types.ContractMultiplier))
	return perContract.Mul(size)
}

// CalculateMean calculates the mean of decimal values.
func CalculateMean(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}

	return sum.Div(decimal.NewFromInt(int64(len(values))))
}

// CalculateWinRate calculates the winning percentage (0-100) of PnL values.
// Breakeven trades count against the rate.
func CalculateWinRate(pnls []decimal.Decimal) decimal.Decimal {
	if len(pnls) == 0 {
		return decimal.Zero
	}

	wins := 0
	for _, pnl := range pnls {
		if pnl.GreaterThan(decimal.Zero) {
			wins++
		}
	}

	return decimal.NewFromInt(int64(wins)).
		Div(decimal.NewFromInt(int64(len(pnls)))).
		Mul(decimal.NewFromInt(100))
}

// CalculateProfitFactor calculates gross profit / gross loss. A profitable
// record with zero gross loss is capped at 100.
func CalculateProfitFactor(pnls []decimal.Decimal) decimal.Decimal {
	grossProfit := decimal.Zero
	grossLoss := decimal.Zero

	for _, pnl := range pnls {
		if pnl.GreaterThan(decimal.Zero) {
			grossProfit = grossProfit.Add(pnl)
		} else {
			grossLoss = grossLoss.Add(pnl.Abs())
		}
	}

	if grossLoss.IsZero() {
		if grossProfit.IsPositive() {
			return decimal.NewFromInt(100)
		}
		return decimal.Zero
	}

	return grossProfit.Div(grossLoss)
}

// MinDecimal returns the minimum of two decimals.
func MinDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// MaxDecimal returns the maximum of two decimals.
func MaxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
