package crm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ignite/pipeline-portal/internal/domain"
)

func ts(d int) *time.Time {
	t := time.Date(2025, time.March, d, 12, 0, 0, 0, time.UTC)
	return &t
}

func TestDeepestStage(t *testing.T) {
	lead := domain.PipelineLead{
		MeetingBooked: true, MeetingBookedAt: ts(1),
		ShowedUpDisco: true, ShowedUpDiscoAt: ts(3),
		Qualified: true, QualifiedAt: ts(5),
	}

	s, ok := DeepestStage(lead)
	assert.True(t, ok)
	assert.Equal(t, "qualified", s.ID)
	assert.Equal(t, ts(5), s.ReachedAt(lead))
}

func TestDeepestStage_NoFlags(t *testing.T) {
	_, ok := DeepestStage(domain.PipelineLead{})
	assert.False(t, ok)
}

func TestDeepestStage_SkipAhead(t *testing.T) {
	// A lead can skip stages; the deepest true flag wins regardless of gaps.
	lead := domain.PipelineLead{MeetingBooked: true, ClosedWon: true, ClosedWonAt: ts(9)}

	s, ok := DeepestStage(lead)
	assert.True(t, ok)
	assert.Equal(t, "closed_won", s.ID)
}

func TestIsAtStage_Exclusive(t *testing.T) {
	lead := domain.PipelineLead{MeetingBooked: true, Qualified: true}

	assert.True(t, IsAtStage(lead, "qualified"))
	// Earlier flags are still true on the record but the lead is not AT them.
	assert.False(t, IsAtStage(lead, "meeting_booked"))
	assert.False(t, IsAtStage(lead, "closed_won"))
}

func TestStageProgress(t *testing.T) {
	title, at, ok := StageProgress(domain.PipelineLead{DemoBooked: true, DemoBookedAt: ts(7)})
	assert.True(t, ok)
	assert.Equal(t, "Demo Booked", title)
	assert.Equal(t, ts(7), at)

	_, _, ok = StageProgress(domain.PipelineLead{})
	assert.False(t, ok)
}

func TestExclusiveStageCounts_SumToLeadTotal(t *testing.T) {
	leads := []domain.PipelineLead{
		{}, // New
		{MeetingBooked: true},
		{MeetingBooked: true, ShowedUpDisco: true},
		{MeetingBooked: true, Qualified: true, ClosedWon: true},
		{ProposalSent: true},
	}

	counts := ExclusiveStageCounts(leads)

	assert.Equal(t, StageNew, counts[0].Stage)
	assert.Equal(t, 1, counts[0].Count)

	sum := 0
	for _, c := range counts {
		sum += c.Count
	}
	assert.Equal(t, len(leads), sum)

	byStage := make(map[string]int)
	for _, c := range counts {
		byStage[c.Stage] = c.Count
	}
	assert.Equal(t, 1, byStage["Meeting Booked"])
	assert.Equal(t, 1, byStage["Showed Up to Disco"])
	assert.Equal(t, 0, byStage["Qualified"]) // superseded by Closed Won
	assert.Equal(t, 1, byStage["Closed Won"])
	assert.Equal(t, 1, byStage["Proposal Sent"])
}

func TestStageCounts_CumulativeReach(t *testing.T) {
	leads := []domain.PipelineLead{
		{MeetingBooked: true},
		{MeetingBooked: true, ShowedUpDisco: true},
		{MeetingBooked: true, ShowedUpDisco: true, Qualified: true},
	}

	counts := StageCounts(leads)

	assert.Equal(t, "Meeting Booked", counts[0].Stage)
	assert.Equal(t, 3, counts[0].Count)
	assert.Equal(t, 2, counts[1].Count)
	assert.Equal(t, 1, counts[2].Count)
	assert.Equal(t, 0, counts[len(counts)-1].Count)
}
