// internal/domain/history.go
package domain

import "time"

// HistoryGroup is one audit timestamp's worth of movements: every entry in
// the group shares the same creation instant. With one audit per operation a
// wallet accumulates exactly one group per successful operation.
type HistoryGroup struct {
	Timestamp time.Time
	Entries   []Entry
}

// groupByTimestamp folds a chronological entry list into per-timestamp
// groups, preserving order.
func groupByTimestamp(entries []Entry) []HistoryGroup {
	var groups []HistoryGroup
	for _, e := range entries {
		n := len(groups)
		if n > 0 && groups[n-1].Timestamp.Equal(e.Audit.Timestamp) {
			groups[n-1].Entries = append(groups[n-1].Entries, e)
			continue
		}
		groups = append(groups, HistoryGroup{Timestamp: e.Audit.Timestamp, Entries: []Entry{e}})
	}
	return groups
}
