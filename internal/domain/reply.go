package domain

import "time"

// Reply is a received email reply as stored in the hosted replies table.
// Rows are read-only: the portal never mutates source tables.
type Reply struct {
	LeadID       string    `json:"lead_id"`
	FromEmail    string    `json:"from_email"`
	CampaignID   string    `json:"campaign_id"`
	Client       string    `json:"client"`
	Category     string    `json:"category"`
	DateReceived time.Time `json:"date_received"`
}

// LeadIdentifier returns the identifier used for deduplication: lead_id when
// present, otherwise the sender address. Empty means the reply cannot be
// attributed to a lead and is skipped by identity-keyed aggregation.
func (r Reply) LeadIdentifier() string {
	if r.LeadID != "" {
		return r.LeadID
	}
	return r.FromEmail
}

// EngagedLead is a lead that has progressed into active engagement.
type EngagedLead struct {
	Client    string    `json:"client"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
