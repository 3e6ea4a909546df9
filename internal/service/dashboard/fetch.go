package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ignite/pipeline-portal/internal/domain"
	"github.com/ignite/pipeline-portal/internal/tabular"
)

// fetchConcurrently runs the per-table fetches of one view in parallel.
// Aggregation needs every source complete, so the first failure cancels the
// rest and aborts the whole refresh; partial data would under-count.
func (s *Service) fetchConcurrently(ctx context.Context, fetches ...func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, fetch := range fetches {
		g.Go(func() error { return fetch(ctx) })
	}
	return g.Wait()
}

func (s *Service) fetchReplies(ctx context.Context, p Params) ([]domain.Reply, error) {
	w := p.Window()
	q := tabular.NewQuery(tabular.TableReplies).
		Select("lead_id", "from_email", "campaign_id", "client", "category", "date_received").
		Eq("client", p.Client).
		Eq("campaign_id", p.Campaign).
		DateRange("date_received", w.Start, w.End).
		Order("date_received", false)

	rows, err := tabular.FetchAll(ctx, s.store, q, s.pageSize)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Reply, 0, len(rows))
	for _, r := range rows {
		out = append(out, tabular.DecodeReply(r))
	}
	return out, nil
}

func (s *Service) fetchEngagedLeads(ctx context.Context, p Params) ([]domain.EngagedLead, error) {
	w := p.Window()
	q := tabular.NewQuery(tabular.TableEngagedLeads).
		Select("client", "email", "created_at").
		Eq("client", p.Client).
		DateRange("created_at", w.Start, w.End).
		Order("created_at", false)

	rows, err := tabular.FetchAll(ctx, s.store, q, s.pageSize)
	if err != nil {
		return nil, err
	}
	out := make([]domain.EngagedLead, 0, len(rows))
	for _, r := range rows {
		out = append(out, tabular.DecodeEngagedLead(r))
	}
	return out, nil
}

func (s *Service) fetchMeetings(ctx context.Context, p Params) ([]domain.MeetingBooked, error) {
	w := p.Window()
	q := tabular.NewQuery(tabular.TableMeetingsBooked).
		Select("created_time", "industry", "company_hq_state", "annual_revenue", "year_founded", "client", "campaign_name").
		Eq("client", p.Client).
		DateRange("created_time", w.Start, w.End).
		Order("created_time", false)

	rows, err := tabular.FetchAll(ctx, s.store, q, s.pageSize)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MeetingBooked, 0, len(rows))
	for _, r := range rows {
		out = append(out, tabular.DecodeMeeting(r))
	}
	return out, nil
}

func (s *Service) fetchReporting(ctx context.Context, p Params) ([]domain.CampaignReportingRow, error) {
	w := p.Window()
	q := tabular.NewQuery(tabular.TableCampaignReporting).
		Select("date", "campaign_id", "campaign_name", "client", "emails_sent", "total_leads_contacted", "bounced", "interested").
		Eq("client", p.Client).
		Eq("campaign_id", p.Campaign).
		DateRange("date", w.Start, w.End).
		Order("date", false)

	rows, err := tabular.FetchAll(ctx, s.store, q, s.pageSize)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CampaignReportingRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, tabular.DecodeReportingRow(r))
	}
	return out, nil
}

func (s *Service) fetchPipelineLeads(ctx context.Context, p Params) ([]domain.PipelineLead, error) {
	w := p.Window()
	q := tabular.NewQuery(tabular.TableCRMLeads).
		Eq("client", p.Client).
		DateRange("created_at", w.Start, w.End).
		Order("created_at", false)

	rows, err := tabular.FetchAll(ctx, s.store, q, s.pageSize)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PipelineLead, 0, len(rows))
	for _, r := range rows {
		out = append(out, tabular.DecodePipelineLead(r))
	}
	return out, nil
}
