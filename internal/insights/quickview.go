package insights

import (
	"sort"

	"github.com/ignite/pipeline-portal/internal/domain"
)

// BuildQuickView assembles the top-of-dashboard metrics: per-day sent,
// prospects, replied, positive replies, and meetings, plus totals and rates.
// The returned series is weekend-smoothed for chart rendering.
//
// Sent and prospect volumes come from the campaign_reporting rollup (invalid
// rows skipped), replied/positive from identity-deduplicated replies, and
// meetings from raw meeting rows.
func BuildQuickView(reporting []domain.CampaignReportingRow, replies []domain.Reply, engaged []domain.EngagedLead, meetings []domain.MeetingBooked) domain.QuickView {
	days := make(map[string]*domain.DailyPoint)
	point := func(dk string) *domain.DailyPoint {
		p := days[dk]
		if p == nil {
			p = &domain.DailyPoint{Date: displayDate(dk), DateKey: dk}
			days[dk] = p
		}
		return p
	}

	var totalSent, totalProspects int
	for _, row := range reporting {
		if !row.Valid() || row.Date.IsZero() {
			continue
		}
		p := point(row.Date.UTC().Format(dateKeyLayout))
		p.Sent += row.EmailsSent
		p.Prospects += row.TotalLeadsContacted
		totalSent += row.EmailsSent
		totalProspects += row.TotalLeadsContacted
	}

	agg := aggregateReplies(replies)
	for dk, keys := range agg.perDay {
		p := point(dk)
		p.Replied = len(keys)
		for key := range keys {
			if agg.categories[key] == CategoryInterested {
				p.PositiveReplies++
			}
		}
	}

	for _, m := range meetings {
		if m.CreatedTime.IsZero() {
			continue
		}
		point(m.CreatedTime.UTC().Format(dateKeyLayout)).Meetings++
	}

	series := make([]domain.DailyPoint, 0, len(days))
	for _, p := range days {
		series = append(series, *p)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].DateKey < series[j].DateKey })

	categories := agg.categoryBreakdown()
	totalReplies := categories.Total()
	totalMeetings := len(meetings)

	return domain.QuickView{
		TotalSent:       totalSent,
		TotalProspects:  totalProspects,
		TotalEngaged:    len(engaged),
		TotalReplies:    totalReplies,
		PositiveReplies: categories.Interested,
		TotalMeetings:   totalMeetings,

		// Reply rate is against prospects contacted, positive and booking
		// rates against unique repliers. All guard the zero denominator.
		ReplyRate:    pct(totalReplies, totalProspects),
		PositiveRate: pct(categories.Interested, totalReplies),
		BookingRate:  pct(totalMeetings, totalReplies),

		Series: SmoothWeekends(series),
	}
}
