package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ignite/pipeline-portal/internal/domain"
)

// 2025-03-07 is a Friday; 03-08 Saturday, 03-09 Sunday, 03-10 Monday.
func point(dateKey string, replied int) domain.DailyPoint {
	return domain.DailyPoint{Date: displayDate(dateKey), DateKey: dateKey, Replied: replied, Sent: replied * 10}
}

func TestSmoothWeekends_SaturdayFoldsBackSundayFoldsForward(t *testing.T) {
	in := []domain.DailyPoint{
		point("2025-03-07", 5), // Fri
		point("2025-03-08", 2), // Sat
		point("2025-03-09", 3), // Sun
		point("2025-03-10", 4), // Mon
	}

	out := SmoothWeekends(in)

	assert.Len(t, out, 2)
	assert.Equal(t, "2025-03-07", out[0].DateKey)
	assert.Equal(t, 7, out[0].Replied) // Fri + Sat
	assert.Equal(t, "2025-03-10", out[1].DateKey)
	assert.Equal(t, 7, out[1].Replied) // Mon + Sun
}

func TestSmoothWeekends_NoWeekendEntriesSurvive(t *testing.T) {
	in := []domain.DailyPoint{
		point("2025-03-06", 1),
		point("2025-03-08", 2),
		point("2025-03-09", 3),
		point("2025-03-14", 4),
		point("2025-03-15", 5),
	}

	out := SmoothWeekends(in)
	for _, p := range out {
		d, err := time.Parse("2006-01-02", p.DateKey)
		assert.NoError(t, err)
		assert.NotEqual(t, time.Saturday, d.Weekday())
		assert.NotEqual(t, time.Sunday, d.Weekday())
	}
}

func TestSmoothWeekends_ConservesTotals(t *testing.T) {
	in := []domain.DailyPoint{
		point("2025-03-01", 9), // Sat opening the series
		point("2025-03-03", 1),
		point("2025-03-08", 2),
		point("2025-03-09", 3),
		point("2025-03-10", 4),
		point("2025-03-15", 5),
		point("2025-03-16", 6), // Sun closing the series
	}

	out := SmoothWeekends(in)

	var inReplied, inSent, outReplied, outSent int
	for _, p := range in {
		inReplied += p.Replied
		inSent += p.Sent
	}
	for _, p := range out {
		outReplied += p.Replied
		outSent += p.Sent
	}
	assert.Equal(t, inReplied, outReplied)
	assert.Equal(t, inSent, outSent)
}

func TestSmoothWeekends_TrailingSundayGetsSyntheticMonday(t *testing.T) {
	in := []domain.DailyPoint{
		point("2025-03-14", 4), // Fri
		point("2025-03-15", 2), // Sat
		point("2025-03-16", 3), // Sun
	}

	out := SmoothWeekends(in)

	assert.Len(t, out, 2)
	// Saturday folded into Friday, Sunday carried to a synthetic Monday.
	assert.Equal(t, 6, out[0].Replied)
	assert.Equal(t, "2025-03-17", out[1].DateKey)
	assert.Equal(t, "Mar 17", out[1].Date)
	assert.Equal(t, 3, out[1].Replied)
}

func TestSmoothWeekends_SaturdayOpeningCarriesForward(t *testing.T) {
	in := []domain.DailyPoint{
		point("2025-03-08", 2), // Sat, no earlier entry to fold into
		point("2025-03-10", 4), // Mon
	}

	out := SmoothWeekends(in)

	assert.Len(t, out, 1)
	assert.Equal(t, "2025-03-10", out[0].DateKey)
	assert.Equal(t, 6, out[0].Replied)
}

func TestSmoothWeekends_Empty(t *testing.T) {
	assert.Empty(t, SmoothWeekends(nil))
}
