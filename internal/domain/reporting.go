package domain

import "time"

// CampaignReportingRow is a daily per-campaign rollup from the hosted
// campaign_reporting table.
type CampaignReportingRow struct {
	Date                time.Time `json:"date"`
	CampaignID          string    `json:"campaign_id"`
	CampaignName        string    `json:"campaign_name"`
	Client              string    `json:"client"`
	EmailsSent          int       `json:"emails_sent"`
	TotalLeadsContacted int       `json:"total_leads_contacted"`
	Bounced             int       `json:"bounced"`
	Interested          int       `json:"interested"`
}

// Valid reports whether the row may participate in aggregation. Rows with a
// missing campaign id, campaign name, or client are partial imports and are
// skipped.
func (r CampaignReportingRow) Valid() bool {
	return r.CampaignID != "" && r.CampaignName != "" && r.Client != ""
}
