// Package types provides shared type definitions for the journal backend.
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// OptionType represents the contract kind of a journaled option trade
type OptionType string

const (
	OptionTypeCall OptionType = "call"
	OptionTypePut  OptionType = "put"
)

// ContractMultiplier is the share-equivalent size of one standard options
// contract; realized P&L is quoted per contract times this factor.
const ContractMultiplier = 100

// Layouts accepted on incoming trade records. Instants are RFC 3339,
// attribution days are plain calendar dates.
const (
	TimestampLayout = time.RFC3339
	DateLayout      = "2006-01-02"
	MonthLayout     = "2006-01"
)

// Defaults applied when a stored setting is absent, unparseable, or not
// positive.
var (
	DefaultStartingBalance = decimal.NewFromInt(28000)
	DefaultBucketWidth     = decimal.NewFromInt(100)
)

// TradeRecord represents a single journaled trade. Timestamps stay strings
// exactly as imported; ExitTime, ExitPrice and RealizedPnL are nil while the
// trade is open. RealizedPnL is nil iff ExitTime is nil.
type TradeRecord struct {
	ID          int64            `json:"id"`
	Symbol      string           `json:"symbol"`
	OptionType  OptionType       `json:"optionType,omitempty"`
	Strike      decimal.Decimal  `json:"strike"`
	Quantity    int64            `json:"quantity"`
	EntryTime   string           `json:"entryTime"`
	EntryPrice  decimal.Decimal  `json:"entryPrice"`
	ExitTime    *string          `json:"exitTime,omitempty"`
	ExitPrice   *decimal.Decimal `json:"exitPrice,omitempty"`
	RealizedPnL *decimal.Decimal `json:"realizedPnL,omitempty"`
	TradeDate   string           `json:"tradeDate,omitempty"`
	Setup       string           `json:"setup,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// IsClosed reports whether the trade carries a completed outcome.
func (t *TradeRecord) IsClosed() bool {
	return t.ExitTime != nil && t.RealizedPnL != nil
}

// EquityPoint represents one point of the running account balance series
type EquityPoint struct {
	Timestamp time.Time       `json:"timestamp"`
	Balance   decimal.Decimal `json:"balance"`
}

// DrawdownResult represents peak-to-trough decline over an equity series
type DrawdownResult struct {
	MaxDrawdown        decimal.Decimal `json:"maxDrawdown"`
	MaxDrawdownPercent decimal.Decimal `json:"maxDrawdownPercent"`
	CurrentDrawdown    decimal.Decimal `json:"currentDrawdown"`
}

// StreakAnalysis represents consecutive win/loss runs in close order.
// Entries in Streaks are signed lengths: +3 is three straight wins.
type StreakAnalysis struct {
	CurrentStreak int   `json:"currentStreak"`
	MaxWinStreak  int   `json:"maxWinStreak"`
	MaxLossStreak int   `json:"maxLossStreak"`
	Streaks       []int `json:"streaks"`
}

// DaySummary represents aggregated results for one calendar day
type DaySummary struct {
	PnLSum     decimal.Decimal `json:"pnlSum"`
	TradeCount int             `json:"tradeCount"`
	WinCount   int             `json:"winCount"`
}

// MonthCell represents one month of a twelve-cell year overview
type MonthCell struct {
	Month      string          `json:"month"`
	PnLSum     decimal.Decimal `json:"pnlSum"`
	TradeCount int             `json:"tradeCount"`
}

// SessionStats represents results grouped by a configured clock window
type SessionStats struct {
	Name       string          `json:"name"`
	TradeCount int             `json:"tradeCount"`
	WinCount   int             `json:"winCount"`
	PnLSum     decimal.Decimal `json:"pnlSum"`
}

// TradeStats represents headline journal statistics over closed trades
type TradeStats struct {
	TotalTrades  int             `json:"totalTrades"`
	ClosedTrades int             `json:"closedTrades"`
	OpenTrades   int             `json:"openTrades"`
	Winners      int             `json:"winners"`
	Losers       int             `json:"losers"`
	WinRate      decimal.Decimal `json:"winRate"`
	TotalPnL     decimal.Decimal `json:"totalPnL"`
	AvgWin       decimal.Decimal `json:"avgWin"`
	AvgLoss      decimal.Decimal `json:"avgLoss"`
	LargestWin   decimal.Decimal `json:"largestWin"`
	LargestLoss  decimal.Decimal `json:"largestLoss"`
	ProfitFactor decimal.Decimal `json:"profitFactor"`
	Expectancy   decimal.Decimal `json:"expectancy"`
}

// Histogram represents the fixed-width P&L distribution. Buckets maps the
// bucket's lower bound (canonical decimal string) to its trade count.
type Histogram struct {
	Width   decimal.Decimal `json:"width"`
	Buckets map[string]int  `json:"buckets"`
}

// CalendarSummary represents per-day sums plus the year's month rollup
type CalendarSummary struct {
	Days   map[string]DaySummary `json:"days"`
	Months []MonthCell           `json:"months"`
	Year   int                   `json:"year"`
}

// AnalyticsReport represents every analytical pass over one trade snapshot
type AnalyticsReport struct {
	GeneratedAt     time.Time       `json:"generatedAt"`
	StartingBalance decimal.Decimal `json:"startingBalance"`
	Overview        TradeStats      `json:"overview"`
	EquityCurve     []EquityPoint   `json:"equityCurve"`
	Drawdown        DrawdownResult  `json:"drawdown"`
	SharpeRatio     float64         `json:"sharpeRatio"`
	Streaks         StreakAnalysis  `json:"streaks"`
	Histogram       Histogram       `json:"histogram"`
	Calendar        CalendarSummary `json:"calendar"`
	Sessions        []SessionStats  `json:"sessions"`
}
