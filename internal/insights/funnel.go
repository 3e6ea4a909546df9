package insights

import "github.com/ignite/pipeline-portal/internal/domain"

// Funnel computes stage-over-stage conversion from ordered reach counts.
// Each stage's rate is count/previousCount*100, yielding 0 on a zero
// denominator; the first stage reports 100 whenever it has any leads. Reach
// counts are not guaranteed monotonic (skip-ahead happens), so rates above
// 100 are possible and left as computed.
func Funnel(counts []domain.StageCount) domain.FunnelMetrics {
	stages := make([]domain.FunnelStage, len(counts))
	for i, sc := range counts {
		var rate float64
		if i == 0 {
			if sc.Count > 0 {
				rate = 100
			}
		} else if prev := counts[i-1].Count; prev > 0 {
			rate = round1(float64(sc.Count) / float64(prev) * 100)
		}
		stages[i] = domain.FunnelStage{
			Stage:          sc.Stage,
			Count:          sc.Count,
			ConversionRate: rate,
		}
	}

	var overall float64
	if len(counts) > 0 && counts[0].Count > 0 {
		overall = round1(float64(counts[len(counts)-1].Count) / float64(counts[0].Count) * 100)
	}

	return domain.FunnelMetrics{Stages: stages, OverallConversion: overall}
}
