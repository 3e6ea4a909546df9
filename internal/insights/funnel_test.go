package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignite/pipeline-portal/internal/domain"
)

func TestFunnel(t *testing.T) {
	counts := []domain.StageCount{
		{Stage: "Meeting Booked", Count: 40},
		{Stage: "Showed Up to Disco", Count: 30},
		{Stage: "Qualified", Count: 15},
		{Stage: "Closed Won", Count: 3},
	}

	f := Funnel(counts)

	assert.Len(t, f.Stages, 4)
	assert.Equal(t, 100.0, f.Stages[0].ConversionRate)
	assert.Equal(t, 75.0, f.Stages[1].ConversionRate)
	assert.Equal(t, 50.0, f.Stages[2].ConversionRate)
	assert.Equal(t, 20.0, f.Stages[3].ConversionRate)
	assert.Equal(t, 7.5, f.OverallConversion)
}

func TestFunnel_ZeroDenominators(t *testing.T) {
	counts := []domain.StageCount{
		{Stage: "Meeting Booked", Count: 0},
		{Stage: "Showed Up to Disco", Count: 0},
	}

	f := Funnel(counts)

	// No divide-by-zero: everything reports 0, including the first stage.
	assert.Equal(t, 0.0, f.Stages[0].ConversionRate)
	assert.Equal(t, 0.0, f.Stages[1].ConversionRate)
	assert.Equal(t, 0.0, f.OverallConversion)
}

func TestFunnel_MidPipelineZero(t *testing.T) {
	counts := []domain.StageCount{
		{Stage: "Meeting Booked", Count: 10},
		{Stage: "Showed Up to Disco", Count: 0},
		{Stage: "Qualified", Count: 2},
	}

	f := Funnel(counts)

	assert.Equal(t, 0.0, f.Stages[1].ConversionRate)
	// Previous stage count is 0, so the rate guards to 0 even though the
	// stage itself has leads.
	assert.Equal(t, 0.0, f.Stages[2].ConversionRate)
	assert.Equal(t, 20.0, f.OverallConversion)
}

func TestFunnel_Empty(t *testing.T) {
	f := Funnel(nil)
	assert.Empty(t, f.Stages)
	assert.Equal(t, 0.0, f.OverallConversion)
}
