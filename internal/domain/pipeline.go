package domain

import "time"

// PipelineLead is a CRM lead record carrying "reached this stage" flags in
// fixed pipeline order. Multiple flags may be true at once; attribution to a
// single stage (the deepest) is the crm package's job.
type PipelineLead struct {
	ID          string `json:"id"`
	Client      string `json:"client"`
	Email       string `json:"email"`
	LeadName    string `json:"lead_name"`
	CompanyName string `json:"company_name"`

	MeetingBooked  bool `json:"meeting_booked"`
	ShowedUpDisco  bool `json:"showed_up_disco"`
	Qualified      bool `json:"qualified"`
	DemoBooked     bool `json:"demo_booked"`
	ShowedUpDemo   bool `json:"showed_up_demo"`
	ProposalSent   bool `json:"proposal_sent"`
	ClosedWon      bool `json:"closed_won"`

	MeetingBookedAt *time.Time `json:"meeting_booked_at,omitempty"`
	ShowedUpDiscoAt *time.Time `json:"showed_up_disco_at,omitempty"`
	QualifiedAt     *time.Time `json:"qualified_at,omitempty"`
	DemoBookedAt    *time.Time `json:"demo_booked_at,omitempty"`
	ShowedUpDemoAt  *time.Time `json:"showed_up_demo_at,omitempty"`
	ProposalSentAt  *time.Time `json:"proposal_sent_at,omitempty"`
	ClosedWonAt     *time.Time `json:"closed_won_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// StageCount is the number of leads that reached a named pipeline stage.
// Counts are reach counts, not exclusive buckets, so they can go up as well
// as down between adjacent stages (skip-ahead happens).
type StageCount struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}
