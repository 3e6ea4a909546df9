// Package dashboard is the server-side equivalent of the portal's
// data-fetching hooks. Each view (deep insights, quick view, CRM board)
// keeps hook-shaped state (data, loading, error, last refresh) and
// refreshes it by fetching source tables and running the aggregation engine.
//
// Every refresh carries a generation counter. A newer invocation (changed
// date range or filter) supersedes in-flight older ones: when a superseded
// refresh resolves, its result is discarded instead of overwriting fresher
// state.
package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ignite/pipeline-portal/internal/crm"
	"github.com/ignite/pipeline-portal/internal/domain"
	"github.com/ignite/pipeline-portal/internal/insights"
	"github.com/ignite/pipeline-portal/internal/pkg/logger"
	"github.com/ignite/pipeline-portal/internal/tabular"
)

// Params are the declared inputs of a view. Changing any of them is a new
// invocation.
type Params struct {
	Start    time.Time // inclusive calendar date
	End      time.Time // inclusive calendar date
	Client   string
	Campaign string
}

// Window returns the half-open fetch window for these params.
func (p Params) Window() domain.Window {
	return domain.NewWindow(p.Start, p.End)
}

// Service computes and caches the dashboard views.
type Service struct {
	store    tabular.Store
	pageSize int
	now      func() time.Time

	deep  viewState
	quick viewState
	board viewState
}

// New creates a dashboard service over the given tabular store.
func New(store tabular.Store, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = tabular.DefaultPageSize
	}
	return &Service{
		store:    store,
		pageSize: pageSize,
		now:      time.Now,
	}
}

// viewState is the hook-shaped state of one view.
type viewState struct {
	mu        sync.Mutex
	epoch     uint64
	loading   bool
	err       string
	data      any
	updatedAt time.Time
	refreshID string
}

// begin marks a new invocation and returns its generation.
func (v *viewState) begin() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.epoch++
	v.loading = true
	return v.epoch
}

// complete records the outcome of the invocation with the given generation.
// A stale generation is discarded outright. On error, previous data is kept
// stale-but-valid and only the error message is updated.
func (v *viewState) complete(epoch uint64, data any, err error, now time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if epoch != v.epoch {
		logger.Debug("discarding stale view refresh", "epoch", epoch, "current", v.epoch)
		return
	}
	v.loading = false
	if err != nil {
		v.err = err.Error()
		return
	}
	v.data = data
	v.err = ""
	v.updatedAt = now
	v.refreshID = uuid.New().String()
}

// Snapshot mirrors the hook return contract: data (possibly stale), loading,
// and a single displayable error message.
type Snapshot struct {
	Data      any        `json:"data"`
	Loading   bool       `json:"loading"`
	Error     string     `json:"error,omitempty"`
	RefreshID string     `json:"refreshId,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (v *viewState) snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	snap := Snapshot{
		Data:      v.data,
		Loading:   v.loading,
		Error:     v.err,
		RefreshID: v.refreshID,
	}
	if !v.updatedAt.IsZero() {
		t := v.updatedAt
		snap.UpdatedAt = &t
	}
	return snap
}

// RefreshDeep recomputes the deep-insights view.
func (s *Service) RefreshDeep(ctx context.Context, p Params) (*domain.DeepInsights, error) {
	epoch := s.deep.begin()
	data, err := s.computeDeep(ctx, p)
	s.deep.complete(epoch, data, err, s.now())
	return data, err
}

// RefreshQuickView recomputes the quick-view metrics.
func (s *Service) RefreshQuickView(ctx context.Context, p Params) (*domain.QuickView, error) {
	epoch := s.quick.begin()
	data, err := s.computeQuickView(ctx, p)
	s.quick.complete(epoch, data, err, s.now())
	return data, err
}

// RefreshBoard recomputes the CRM board view.
func (s *Service) RefreshBoard(ctx context.Context, p Params) (*crm.Board, error) {
	epoch := s.board.begin()
	data, err := s.computeBoard(ctx, p)
	s.board.complete(epoch, data, err, s.now())
	return data, err
}

// DeepSnapshot returns the deep-insights view state without refreshing.
func (s *Service) DeepSnapshot() Snapshot { return s.deep.snapshot() }

// QuickViewSnapshot returns the quick-view state without refreshing.
func (s *Service) QuickViewSnapshot() Snapshot { return s.quick.snapshot() }

// BoardSnapshot returns the CRM board view state without refreshing.
func (s *Service) BoardSnapshot() Snapshot { return s.board.snapshot() }

// Funnel fetches CRM leads and computes the pipeline funnel directly,
// without touching view state. The funnel panel refreshes independently of
// the full deep-insights view.
func (s *Service) Funnel(ctx context.Context, p Params) (domain.FunnelMetrics, error) {
	leads, err := s.fetchPipelineLeads(ctx, p)
	if err != nil {
		return domain.FunnelMetrics{}, err
	}
	return insights.Funnel(crm.StageCounts(leads)), nil
}

// StageBuckets returns exclusive per-stage lead counts for the grid's
// pipeline summary.
func (s *Service) StageBuckets(ctx context.Context, p Params) ([]domain.StageCount, error) {
	leads, err := s.fetchPipelineLeads(ctx, p)
	if err != nil {
		return nil, err
	}
	return crm.ExclusiveStageCounts(leads), nil
}

func (s *Service) computeDeep(ctx context.Context, p Params) (*domain.DeepInsights, error) {
	var (
		replies  []domain.Reply
		meetings []domain.MeetingBooked
		leads    []domain.PipelineLead
	)

	err := s.fetchConcurrently(ctx,
		func(ctx context.Context) (err error) {
			replies, err = s.fetchReplies(ctx, p)
			return err
		},
		func(ctx context.Context) (err error) {
			meetings, err = s.fetchMeetings(ctx, p)
			return err
		},
		func(ctx context.Context) (err error) {
			leads, err = s.fetchPipelineLeads(ctx, p)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	deep := insights.BuildDeepInsights(replies, meetings, s.now())
	deep.Funnel = insights.Funnel(crm.StageCounts(leads))
	return &deep, nil
}

func (s *Service) computeQuickView(ctx context.Context, p Params) (*domain.QuickView, error) {
	var (
		reporting []domain.CampaignReportingRow
		replies   []domain.Reply
		engaged   []domain.EngagedLead
		meetings  []domain.MeetingBooked
	)

	err := s.fetchConcurrently(ctx,
		func(ctx context.Context) (err error) {
			reporting, err = s.fetchReporting(ctx, p)
			return err
		},
		func(ctx context.Context) (err error) {
			replies, err = s.fetchReplies(ctx, p)
			return err
		},
		func(ctx context.Context) (err error) {
			engaged, err = s.fetchEngagedLeads(ctx, p)
			return err
		},
		func(ctx context.Context) (err error) {
			meetings, err = s.fetchMeetings(ctx, p)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	qv := insights.BuildQuickView(reporting, replies, engaged, meetings)
	return &qv, nil
}

func (s *Service) computeBoard(ctx context.Context, p Params) (*crm.Board, error) {
	leads, err := s.fetchPipelineLeads(ctx, p)
	if err != nil {
		return nil, err
	}
	return crm.BuildBoard(leads, s.now()), nil
}
