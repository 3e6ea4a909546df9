package domain

import "time"

// DailyCount is one point in a day series: a display date for the chart axis
// and an ISO date key the engine sorts on.
type DailyCount struct {
	Date    string `json:"date"`
	DateKey string `json:"dateKey"`
	Count   int    `json:"count"`
}

// CategoryBreakdown counts unique reply identities per category. The four
// buckets always sum to the total number of unique identities.
type CategoryBreakdown struct {
	Interested    int `json:"interested"`
	NotInterested int `json:"notInterested"`
	OutOfOffice   int `json:"outOfOffice"`
	Other         int `json:"other"`
}

// Total returns the summed bucket counts.
func (c CategoryBreakdown) Total() int {
	return c.Interested + c.NotInterested + c.OutOfOffice + c.Other
}

// CampaignPerformance is a per-campaign reply/interest rollup. Only campaigns
// with at least 5 unique repliers are retained.
type CampaignPerformance struct {
	Campaign     string  `json:"campaign"`
	TotalReplies int     `json:"totalReplies"`
	Interested   int     `json:"interested"`
	PositiveRate float64 `json:"positiveRate"`
}

// DimensionCount is one entry of a categorical breakdown (industry, state,
// revenue band, company-age band, client). Order is only set for banded
// dimensions that carry a fixed display ordering.
type DimensionCount struct {
	Value      string  `json:"value"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Order      int     `json:"order,omitempty"`
}

// FunnelStage is one stage of the pipeline funnel with its reach count and
// the conversion rate from the previous stage.
type FunnelStage struct {
	Stage          string  `json:"stage"`
	Count          int     `json:"count"`
	ConversionRate float64 `json:"conversionRate"`
}

// FunnelMetrics is the full pipeline funnel: per-stage counts and rates plus
// the overall meetings-to-closed conversion.
type FunnelMetrics struct {
	Stages            []FunnelStage `json:"stages"`
	OverallConversion float64       `json:"overallConversion"`
}

// DeepInsights is the aggregate returned by the deep-insights view: reply
// categories and day series, campaign performance, and the firmographic
// breakdowns over booked meetings.
type DeepInsights struct {
	TotalReplies        int                   `json:"totalReplies"`
	Categories          CategoryBreakdown     `json:"categories"`
	ReplyVolumeByDay    []DailyCount          `json:"replyVolumeByDay"`
	CampaignPerformance []CampaignPerformance `json:"campaignPerformance"`

	TotalMeetings       int              `json:"totalMeetings"`
	IndustryBreakdown   []DimensionCount `json:"industryBreakdown"`
	GeographicBreakdown []DimensionCount `json:"geographicBreakdown"`
	RevenueBreakdown    []DimensionCount `json:"revenueBreakdown"`
	CompanyAgeBreakdown []DimensionCount `json:"companyAgeBreakdown"`
	ClientBreakdown     []DimensionCount `json:"clientBreakdown"`

	Funnel FunnelMetrics `json:"funnel"`
}

// DailyPoint is one day of the quick-view series. Numeric fields are summed
// component-wise by the weekend smoothing post-processor.
type DailyPoint struct {
	Date            string `json:"date"`
	DateKey         string `json:"dateKey"`
	Sent            int    `json:"sent"`
	Prospects       int    `json:"prospects"`
	Replied         int    `json:"replied"`
	PositiveReplies int    `json:"positiveReplies"`
	Meetings        int    `json:"meetings"`
}

// QuickView is the aggregate behind the top-of-dashboard metrics: totals,
// derived rates, and the weekend-smoothed day series.
type QuickView struct {
	TotalSent       int     `json:"totalSent"`
	TotalProspects  int     `json:"totalProspects"`
	TotalEngaged    int     `json:"totalEngaged"`
	TotalReplies    int     `json:"totalReplies"`
	PositiveReplies int     `json:"positiveReplies"`
	TotalMeetings   int     `json:"totalMeetings"`
	ReplyRate       float64 `json:"replyRate"`
	PositiveRate    float64 `json:"positiveRate"`
	BookingRate     float64 `json:"bookingRate"`

	Series []DailyPoint `json:"series"`
}

// Window is a half-open aggregation window: Start inclusive, End exclusive at
// the start of the day after the requested end date. Built this way so every
// timestamp on the end date is captured regardless of time-of-day.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewWindow builds a Window from inclusive calendar dates.
func NewWindow(startDate, endDate time.Time) Window {
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return Window{Start: start, End: end}
}
