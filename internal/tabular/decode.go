package tabular

import "github.com/ignite/pipeline-portal/internal/domain"

// Decoders from raw rows into domain types. Missing columns come back as
// zero values; the aggregation engine handles those (skip or bucket as
// Unknown), so decoding itself never fails.

// DecodeReply converts a replies-table row.
func DecodeReply(r Row) domain.Reply {
	return domain.Reply{
		LeadID:       r.String("lead_id"),
		FromEmail:    r.String("from_email"),
		CampaignID:   r.String("campaign_id"),
		Client:       r.String("client"),
		Category:     r.String("category"),
		DateReceived: r.Time("date_received"),
	}
}

// DecodeEngagedLead converts an engaged_leads-table row.
func DecodeEngagedLead(r Row) domain.EngagedLead {
	return domain.EngagedLead{
		Client:    r.String("client"),
		Email:     r.String("email"),
		CreatedAt: r.Time("created_at"),
	}
}

// DecodeMeeting converts a meetings_booked-table row.
func DecodeMeeting(r Row) domain.MeetingBooked {
	return domain.MeetingBooked{
		CreatedTime:    r.Time("created_time"),
		Industry:       r.String("industry"),
		CompanyHQState: r.String("company_hq_state"),
		AnnualRevenue:  r.String("annual_revenue"),
		YearFounded:    r.String("year_founded"),
		Client:         r.String("client"),
		CampaignName:   r.String("campaign_name"),
	}
}

// DecodeReportingRow converts a campaign_reporting-table row.
func DecodeReportingRow(r Row) domain.CampaignReportingRow {
	return domain.CampaignReportingRow{
		Date:                r.Time("date"),
		CampaignID:          r.String("campaign_id"),
		CampaignName:        r.String("campaign_name"),
		Client:              r.String("client"),
		EmailsSent:          r.Int("emails_sent"),
		TotalLeadsContacted: r.Int("total_leads_contacted"),
		Bounced:             r.Int("bounced"),
		Interested:          r.Int("interested"),
	}
}

// DecodePipelineLead converts a crm_leads-table row.
func DecodePipelineLead(r Row) domain.PipelineLead {
	return domain.PipelineLead{
		ID:          r.String("id"),
		Client:      r.String("client"),
		Email:       r.String("email"),
		LeadName:    r.String("lead_name"),
		CompanyName: r.String("company_name"),

		MeetingBooked: r.Bool("meeting_booked"),
		ShowedUpDisco: r.Bool("showed_up_disco"),
		Qualified:     r.Bool("qualified"),
		DemoBooked:    r.Bool("demo_booked"),
		ShowedUpDemo:  r.Bool("showed_up_demo"),
		ProposalSent:  r.Bool("proposal_sent"),
		ClosedWon:     r.Bool("closed_won"),

		MeetingBookedAt: r.TimePtr("meeting_booked_at"),
		ShowedUpDiscoAt: r.TimePtr("showed_up_disco_at"),
		QualifiedAt:     r.TimePtr("qualified_at"),
		DemoBookedAt:    r.TimePtr("demo_booked_at"),
		ShowedUpDemoAt:  r.TimePtr("showed_up_demo_at"),
		ProposalSentAt:  r.TimePtr("proposal_sent_at"),
		ClosedWonAt:     r.TimePtr("closed_won_at"),

		CreatedAt: r.Time("created_at"),
	}
}
