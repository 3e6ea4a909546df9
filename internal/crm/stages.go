// Package crm owns pipeline-stage attribution for the CRM grid and kanban
// views. A lead may carry several true stage flags; attribution always picks
// the single deepest one, so a closed deal is never double-counted under an
// earlier stage.
package crm

import (
	"time"

	"github.com/ignite/pipeline-portal/internal/domain"
)

// Stage is one step of the sales pipeline. Stages are fixed and ordered
// shallow → deep.
type Stage struct {
	ID    string
	Title string

	Reached   func(domain.PipelineLead) bool
	ReachedAt func(domain.PipelineLead) *time.Time
}

// StageNew is the bucket for leads with no stage flag set yet.
const StageNew = "New"

// Stages lists the pipeline in order. Index order is load-bearing: deepest
// stage attribution and funnel stage counts both iterate it.
var Stages = []Stage{
	{
		ID: "meeting_booked", Title: "Meeting Booked",
		Reached:   func(l domain.PipelineLead) bool { return l.MeetingBooked },
		ReachedAt: func(l domain.PipelineLead) *time.Time { return l.MeetingBookedAt },
	},
	{
		ID: "showed_up_disco", Title: "Showed Up to Disco",
		Reached:   func(l domain.PipelineLead) bool { return l.ShowedUpDisco },
		ReachedAt: func(l domain.PipelineLead) *time.Time { return l.ShowedUpDiscoAt },
	},
	{
		ID: "qualified", Title: "Qualified",
		Reached:   func(l domain.PipelineLead) bool { return l.Qualified },
		ReachedAt: func(l domain.PipelineLead) *time.Time { return l.QualifiedAt },
	},
	{
		ID: "demo_booked", Title: "Demo Booked",
		Reached:   func(l domain.PipelineLead) bool { return l.DemoBooked },
		ReachedAt: func(l domain.PipelineLead) *time.Time { return l.DemoBookedAt },
	},
	{
		ID: "showed_up_demo", Title: "Showed Up to Demo",
		Reached:   func(l domain.PipelineLead) bool { return l.ShowedUpDemo },
		ReachedAt: func(l domain.PipelineLead) *time.Time { return l.ShowedUpDemoAt },
	},
	{
		ID: "proposal_sent", Title: "Proposal Sent",
		Reached:   func(l domain.PipelineLead) bool { return l.ProposalSent },
		ReachedAt: func(l domain.PipelineLead) *time.Time { return l.ProposalSentAt },
	},
	{
		ID: "closed_won", Title: "Closed Won",
		Reached:   func(l domain.PipelineLead) bool { return l.ClosedWon },
		ReachedAt: func(l domain.PipelineLead) *time.Time { return l.ClosedWonAt },
	},
}

// DeepestStage returns the lead's furthest-progressed stage. The scan runs
// from the deepest stage backward; the first true flag wins. ok is false for
// a lead with no true flags.
func DeepestStage(l domain.PipelineLead) (Stage, bool) {
	for i := len(Stages) - 1; i >= 0; i-- {
		if Stages[i].Reached(l) {
			return Stages[i], true
		}
	}
	return Stage{}, false
}

// IsAtStage reports whether the lead's deepest reached stage is the target.
// A lead is attributed to exactly one stage, never several.
func IsAtStage(l domain.PipelineLead, stageID string) bool {
	s, ok := DeepestStage(l)
	return ok && s.ID == stageID
}

// StageProgress returns the deepest completed stage's title and timestamp
// for the grid's pipeline-progress indicator. ok is false when no stage has
// been reached.
func StageProgress(l domain.PipelineLead) (title string, at *time.Time, ok bool) {
	s, ok := DeepestStage(l)
	if !ok {
		return "", nil, false
	}
	return s.Title, s.ReachedAt(l), true
}

// BucketByStage groups leads by deepest stage title. Leads with no true
// flags land in the StageNew bucket.
func BucketByStage(leads []domain.PipelineLead) map[string][]domain.PipelineLead {
	buckets := make(map[string][]domain.PipelineLead)
	for _, l := range leads {
		name := StageNew
		if s, ok := DeepestStage(l); ok {
			name = s.Title
		}
		buckets[name] = append(buckets[name], l)
	}
	return buckets
}

// ExclusiveStageCounts counts leads by deepest stage, New bucket first then
// pipeline order. Unlike StageCounts every lead contributes to exactly one
// entry, so the counts sum to the number of leads.
func ExclusiveStageCounts(leads []domain.PipelineLead) []domain.StageCount {
	buckets := BucketByStage(leads)
	out := make([]domain.StageCount, 0, len(Stages)+1)
	out = append(out, domain.StageCount{Stage: StageNew, Count: len(buckets[StageNew])})
	for _, s := range Stages {
		out = append(out, domain.StageCount{Stage: s.Title, Count: len(buckets[s.Title])})
	}
	return out
}

// StageCounts returns per-stage reach counts in pipeline order, feeding the
// funnel. These are cumulative flag counts, not exclusive buckets.
func StageCounts(leads []domain.PipelineLead) []domain.StageCount {
	out := make([]domain.StageCount, len(Stages))
	for i, s := range Stages {
		out[i].Stage = s.Title
		for _, l := range leads {
			if s.Reached(l) {
				out[i].Count++
			}
		}
	}
	return out
}
