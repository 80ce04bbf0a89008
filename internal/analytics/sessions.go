// Package analytics provides time-of-day session statistics.
package analytics

import (
	"time"

	"github.com/atlas-desktop/journal-backend/pkg/types"
)

// Sessions classifies closed trades into configured clock windows by their
// entry time in the analyzer's location. Windows are half-open [start, end)
// and the first matching window wins. Every configured window appears in the
// result, zero valued when empty; trades with malformed entry timestamps or
// outside every window are omitted.
func (a *Analyzer) Sessions(records []types.TradeRecord, windows []types.SessionWindow) []types.SessionStats {
	stats := make([]types.SessionStats, len(windows))
	starts := make([]int, len(windows))
	ends := make([]int, len(windows))
	for i, w := range windows {
		stats[i].Name = w.Name
		starts[i] = clockMinutes(w.Start)
		ends[i] = clockMinutes(w.End)
	}

	// Session membership is decided by the entry instant, so trades are
	// matched straight off the records rather than the normalized outcomes.
	for i := range records {
		rec := &records[i]
		if !rec.IsClosed() {
			continue
		}
		entry, err := time.Parse(types.TimestampLayout, rec.EntryTime)
		if err != nil {
			continue
		}

		local := entry.In(a.loc)
		minutes := local.Hour()*60 + local.Minute()

		for j := range windows {
			if starts[j] < 0 || ends[j] < 0 {
				continue
			}
			if minutes >= starts[j] && minutes < ends[j] {
				stats[j].TradeCount++
				stats[j].PnLSum = stats[j].PnLSum.Add(*rec.RealizedPnL)
				if isWin(*rec.RealizedPnL) {
					stats[j].WinCount++
				}
				break
			}
		}
	}

	return stats
}

// clockMinutes parses an "HH:MM" clock time into minutes since midnight,
// returning -1 when malformed so the window never matches.
func clockMinutes(s string) int {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}
