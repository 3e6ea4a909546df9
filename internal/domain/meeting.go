package domain

import "time"

// MeetingBooked is a scheduled meeting row. Free-text firmographic fields
// (annual_revenue, year_founded) are banded by the aggregation engine;
// unparseable values fall into the "Unknown" bucket rather than failing.
type MeetingBooked struct {
	CreatedTime    time.Time `json:"created_time"`
	Industry       string    `json:"industry"`
	CompanyHQState string    `json:"company_hq_state"`
	AnnualRevenue  string    `json:"annual_revenue"`
	YearFounded    string    `json:"year_founded"`
	Client         string    `json:"client"`
	CampaignName   string    `json:"campaign_name"`
}
