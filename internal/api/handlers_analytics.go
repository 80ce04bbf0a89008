// Package api provides one handler per analytical pass plus the combined
// report.
package api

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/atlas-desktop/journal-backend/pkg/types"
)

// queryWidth returns the ?width= override when it parses to a positive
// decimal, falling back to the stored setting otherwise.
func (s *Server) queryWidth(r *http.Request) decimal.Decimal {
	if raw := r.URL.Query().Get("width"); raw != "" {
		if w, err := decimal.NewFromString(raw); err == nil && w.IsPositive() {
			return w
		}
	}
	return s.settings.BucketWidth()
}

// queryYear returns the ?year= override, or 0 so the analyzer resolves the
// current year in its configured location.
func queryYear(r *http.Request) int {
	if raw := r.URL.Query().Get("year"); raw != "" {
		if y, err := strconv.Atoi(raw); err == nil && y > 0 {
			return y
		}
	}
	return 0
}

// handleReport returns every analytical pass over the current journal.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	opts := s.reportOptions()
	opts.BucketWidth = s.queryWidth(r)
	opts.Year = queryYear(r)

	report := s.analyzer.Report(s.trades.List(), opts)
	analyticsReportsTotal.Inc()

	respondJSON(w, http.StatusOK, report)
}

// handleEquityCurve returns the running balance series.
func (s *Server) handleEquityCurve(w http.ResponseWriter, r *http.Request) {
	curve := s.analyzer.EquityCurve(s.trades.List(), s.settings.StartingBalance())
	respondJSON(w, http.StatusOK, curve)
}

// handleDrawdown returns peak-to-trough decline over the equity series.
func (s *Server) handleDrawdown(w http.ResponseWriter, r *http.Request) {
	curve := s.analyzer.EquityCurve(s.trades.List(), s.settings.StartingBalance())
	respondJSON(w, http.StatusOK, s.analyzer.Drawdown(curve))
}

// handleSharpe returns the unannualized daily Sharpe-style ratio.
func (s *Server) handleSharpe(w http.ResponseWriter, r *http.Request) {
	ratio := s.analyzer.SharpeRatio(s.trades.List(), s.settings.StartingBalance())
	respondJSON(w, http.StatusOK, map[string]float64{"sharpeRatio": ratio})
}

// handleStreaks returns win/loss streak statistics.
func (s *Server) handleStreaks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.analyzer.Streaks(s.trades.List()))
}

// handleHistogram returns the fixed-width P&L distribution.
func (s *Server) handleHistogram(w http.ResponseWriter, r *http.Request) {
	width := s.queryWidth(r)
	respondJSON(w, http.StatusOK, types.Histogram{
		Width:   width,
		Buckets: s.analyzer.Histogram(s.trades.List(), width),
	})
}

// handleCalendar returns per-day sums and the twelve-cell month rollup.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	records := s.trades.List()
	year := queryYear(r)

	months := s.analyzer.MonthlyRollup(records, year)
	if year <= 0 {
		// The rollup resolved the current year; read it back off the cells.
		year, _ = strconv.Atoi(months[0].Month[:4])
	}

	respondJSON(w, http.StatusOK, types.CalendarSummary{
		Days:   s.analyzer.Calendar(records),
		Months: months,
		Year:   year,
	})
}

// handleSessions returns stats per configured time-of-day window.
func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	stats := s.analyzer.Sessions(s.trades.List(), s.config.Analytics.Sessions)
	respondJSON(w, http.StatusOK, stats)
}
