// Package insights is the deduplication and aggregation engine behind the
// portal's dashboards.
//
// The engine performs no I/O and never fails: rows that cannot be attributed
// to a lead are skipped, unparseable numeric fields fall into the "Unknown"
// bucket, and every rate computation yields 0 on a zero denominator. Counting
// is identity-keyed: the unit is the composite lead × campaign × client key,
// not the raw row.
package insights

import (
	"math"
	"time"
)

const (
	dateKeyLayout = "2006-01-02"
	displayLayout = "Jan 2"
)

func displayDate(dateKey string) string {
	t, err := time.Parse(dateKeyLayout, dateKey)
	if err != nil {
		return dateKey
	}
	return t.Format(displayLayout)
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// pct is count/total as a percentage, 0 when the total is 0.
func pct(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(count) / float64(total) * 100)
}
