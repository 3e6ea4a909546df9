package insights

import (
	"time"

	"github.com/ignite/pipeline-portal/internal/domain"
)

// SmoothWeekends removes Saturday/Sunday entries from a chronologically
// sorted day series and folds their numeric values into adjacent weekdays:
// Saturdays backward into the last emitted entry, Sundays forward into the
// next weekday. Display strings always come from the weekday entry.
//
// When weekend values have nowhere to fold (Saturday opening the series, or
// Sunday closing it) they are carried into a synthetic bucket dated the
// following Monday instead of being dropped, so the smoothed series always
// conserves the input totals and never contains a weekend-dated entry.
func SmoothWeekends(points []domain.DailyPoint) []domain.DailyPoint {
	out := make([]domain.DailyPoint, 0, len(points))

	var carry domain.DailyPoint
	carrying := false
	var lastWeekendKey string

	for _, p := range points {
		switch weekdayOf(p.DateKey) {
		case time.Saturday:
			if len(out) > 0 {
				addNumbers(&out[len(out)-1], p)
			} else {
				addNumbers(&carry, p)
				carrying = true
			}
			lastWeekendKey = p.DateKey
		case time.Sunday:
			addNumbers(&carry, p)
			carrying = true
			lastWeekendKey = p.DateKey
		default:
			entry := p
			if carrying {
				addNumbers(&entry, carry)
				carry = domain.DailyPoint{}
				carrying = false
			}
			out = append(out, entry)
		}
	}

	if carrying {
		mondayKey := nextMonday(lastWeekendKey)
		trailing := carry
		trailing.Date = displayDate(mondayKey)
		trailing.DateKey = mondayKey
		out = append(out, trailing)
	}

	return out
}

// addNumbers sums the numeric fields of b into a, leaving a's date strings
// untouched.
func addNumbers(a *domain.DailyPoint, b domain.DailyPoint) {
	a.Sent += b.Sent
	a.Prospects += b.Prospects
	a.Replied += b.Replied
	a.PositiveReplies += b.PositiveReplies
	a.Meetings += b.Meetings
}

// weekdayOf returns the weekday of a dateKey. Unparseable keys pass through
// as weekdays so malformed entries are preserved rather than silently eaten.
func weekdayOf(dateKey string) time.Weekday {
	t, err := time.Parse(dateKeyLayout, dateKey)
	if err != nil {
		return time.Wednesday
	}
	return t.Weekday()
}

func nextMonday(dateKey string) string {
	t, err := time.Parse(dateKeyLayout, dateKey)
	if err != nil {
		return dateKey
	}
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, 1)
	}
	return t.Format(dateKeyLayout)
}
