package analytics

import (
	"sort"
	"time"
)

// dateLayouts are tried in order when parsing date cells. Month-first
// slashed dates win over day-first, matching the upstream data this was
// tuned on.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
	"02-01-2006",
	"2-Jan-2006",
	"02 Jan 2006",
	"Jan 2, 2006",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// trendSeries returns the amount values in time order. With a date column
// the rows are sorted ascending by parsed date and rows whose date does not
// parse are excluded from this view only; without one the raw row order is
// the time axis.
func trendSeries(nt NormalizedTable) []float64 {
	if nt.Dates == nil {
		return append([]float64(nil), nt.Amount...)
	}
	type point struct {
		ts  time.Time
		amt float64
	}
	points := make([]point, 0, len(nt.Dates))
	for i, raw := range nt.Dates {
		if i >= len(nt.Amount) {
			break
		}
		if ts, ok := parseDate(raw); ok {
			points = append(points, point{ts, nt.Amount[i]})
		}
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].ts.Before(points[j].ts) })
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.amt
	}
	return out
}
