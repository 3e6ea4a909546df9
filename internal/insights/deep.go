package insights

import (
	"sort"
	"time"

	"github.com/ignite/pipeline-portal/internal/domain"
)

const (
	// minCampaignReplies is the floor below which a campaign's positive rate
	// is too noisy to display.
	minCampaignReplies = 5

	// topN caps ranked breakdowns for chart rendering.
	topN = 10
)

// replyAggregate holds the identity-keyed tallies over one fetch of replies.
type replyAggregate struct {
	// categories maps composite key → category. The first raw row seen for a
	// key (in fetch order) decides; later rows with conflicting category text
	// never move a key between buckets, so bucket counts always sum to the
	// unique-key total.
	categories map[string]Category

	// perDay maps dateKey → the set of composite keys active that day. A key
	// appearing on several days credits each of them; this series tracks
	// per-day activity, not global uniqueness.
	perDay map[string]map[string]struct{}

	campaigns map[string]*campaignTally
}

// campaignTally keys on the lead identifier alone: within one campaign a
// lead is one replier regardless of client splits.
type campaignTally struct {
	repliers   map[string]struct{}
	interested map[string]struct{}
}

func aggregateReplies(replies []domain.Reply) *replyAggregate {
	agg := &replyAggregate{
		categories: make(map[string]Category),
		perDay:     make(map[string]map[string]struct{}),
		campaigns:  make(map[string]*campaignTally),
	}

	for _, r := range replies {
		key, ok := ReplyKey(r)
		if !ok {
			continue
		}

		if _, seen := agg.categories[key]; !seen {
			agg.categories[key] = Classify(r.Category)
		}

		if !r.DateReceived.IsZero() {
			dk := r.DateReceived.UTC().Format(dateKeyLayout)
			day := agg.perDay[dk]
			if day == nil {
				day = make(map[string]struct{})
				agg.perDay[dk] = day
			}
			day[key] = struct{}{}
		}

		campaign := r.CampaignID
		if campaign == "" {
			campaign = Unknown
		}
		tally := agg.campaigns[campaign]
		if tally == nil {
			tally = &campaignTally{
				repliers:   make(map[string]struct{}),
				interested: make(map[string]struct{}),
			}
			agg.campaigns[campaign] = tally
		}
		lead := r.LeadIdentifier()
		tally.repliers[lead] = struct{}{}
		if agg.categories[key] == CategoryInterested {
			tally.interested[lead] = struct{}{}
		}
	}

	return agg
}

func (a *replyAggregate) categoryBreakdown() domain.CategoryBreakdown {
	var out domain.CategoryBreakdown
	for _, c := range a.categories {
		switch c {
		case CategoryInterested:
			out.Interested++
		case CategoryNotInterested:
			out.NotInterested++
		case CategoryOutOfOffice:
			out.OutOfOffice++
		default:
			out.Other++
		}
	}
	return out
}

func (a *replyAggregate) daySeries() []domain.DailyCount {
	out := make([]domain.DailyCount, 0, len(a.perDay))
	for dk, keys := range a.perDay {
		out = append(out, domain.DailyCount{
			Date:    displayDate(dk),
			DateKey: dk,
			Count:   len(keys),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateKey < out[j].DateKey })
	return out
}

func (a *replyAggregate) campaignPerformance() []domain.CampaignPerformance {
	out := make([]domain.CampaignPerformance, 0, len(a.campaigns))
	for campaign, tally := range a.campaigns {
		total := len(tally.repliers)
		if total < minCampaignReplies {
			continue
		}
		out = append(out, domain.CampaignPerformance{
			Campaign:     campaign,
			TotalReplies: total,
			Interested:   len(tally.interested),
			PositiveRate: pct(len(tally.interested), total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PositiveRate != out[j].PositiveRate {
			return out[i].PositiveRate > out[j].PositiveRate
		}
		if out[i].TotalReplies != out[j].TotalReplies {
			return out[i].TotalReplies > out[j].TotalReplies
		}
		return out[i].Campaign < out[j].Campaign
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// aggregateMeetings tallies raw meeting rows (meetings are one-per-row, no
// dedup) into the firmographic breakdowns.
func aggregateMeetings(meetings []domain.MeetingBooked, now time.Time) (industry, geo, revenue, age, clients []domain.DimensionCount, total int) {
	industryCounts := make(map[string]int)
	geoCounts := make(map[string]int)
	revenueCounts := make(map[string]int)
	ageCounts := make(map[string]int)
	clientCounts := make(map[string]int)

	for _, m := range meetings {
		industryCounts[orUnknown(m.Industry)]++
		geoCounts[orUnknown(m.CompanyHQState)]++
		revenueCounts[RevenueBand(m.AnnualRevenue)]++
		ageCounts[CompanyAgeBand(m.YearFounded, now)]++
		clientCounts[orUnknown(m.Client)]++
	}

	total = len(meetings)
	industry = rankedDimension(industryCounts, total, topN)
	geo = rankedDimension(geoCounts, total, topN)
	revenue = orderedDimension(revenueCounts, total, revenueOrder)
	age = orderedDimension(ageCounts, total, ageOrder)
	clients = rankedDimension(clientCounts, total, 0)
	return industry, geo, revenue, age, clients, total
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}

// rankedDimension excludes Unknown, sorts by count descending, and caps the
// list when limit > 0. Because Unknown rows still count toward the total,
// percentages here may sum below 100.
func rankedDimension(counts map[string]int, total, limit int) []domain.DimensionCount {
	out := make([]domain.DimensionCount, 0, len(counts))
	for value, count := range counts {
		if value == Unknown {
			continue
		}
		out = append(out, domain.DimensionCount{
			Value:      value,
			Count:      count,
			Percentage: pct(count, total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// orderedDimension retains Unknown and sorts by the band's fixed ordinal,
// which always places Unknown last.
func orderedDimension(counts map[string]int, total int, order map[string]int) []domain.DimensionCount {
	out := make([]domain.DimensionCount, 0, len(counts))
	for value, count := range counts {
		ord, ok := order[value]
		if !ok {
			ord = len(order)
		}
		out = append(out, domain.DimensionCount{
			Value:      value,
			Count:      count,
			Percentage: pct(count, total),
			Order:      ord,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// BuildDeepInsights runs the full reply and meeting aggregation. The funnel
// is attached by the caller from CRM stage counts (see Funnel), since funnel
// data comes from a different table.
func BuildDeepInsights(replies []domain.Reply, meetings []domain.MeetingBooked, now time.Time) domain.DeepInsights {
	agg := aggregateReplies(replies)
	industry, geo, revenue, age, clients, totalMeetings := aggregateMeetings(meetings, now)

	categories := agg.categoryBreakdown()
	return domain.DeepInsights{
		TotalReplies:        categories.Total(),
		Categories:          categories,
		ReplyVolumeByDay:    agg.daySeries(),
		CampaignPerformance: agg.campaignPerformance(),

		TotalMeetings:       totalMeetings,
		IndustryBreakdown:   industry,
		GeographicBreakdown: geo,
		RevenueBreakdown:    revenue,
		CompanyAgeBreakdown: age,
		ClientBreakdown:     clients,
	}
}
