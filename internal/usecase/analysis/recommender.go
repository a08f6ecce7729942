package analysis

import (
	"github.com/briefing-team/briefing-analyzer/internal/domain/entities"
	"github.com/briefing-team/briefing-analyzer/pkg/config"
)

// Recommender classifies thematic intensity from the composite score. The
// threshold is configuration, inclusive on the high side: a composite of
// exactly 30.00 classifies as High.
type Recommender struct {
	threshold float64
}

// NewRecommender creates a new Recommender for the given tunables
func NewRecommender(cfg config.AnalysisConfig) *Recommender {
	return &Recommender{threshold: cfg.HighIntensityThreshold}
}

// Classify returns the intensity and recommended action for one score
func (r *Recommender) Classify(compositeScore float64) (entities.Intensity, entities.Action) {
	if compositeScore >= r.threshold {
		return entities.IntensityHigh, entities.ActionFocusGrowthAndRisk
	}
	return entities.IntensityModerate, entities.ActionReviewForInsights
}

// Apply fills the classification fields of every record in the batch. After
// this the BatchResult is complete and treated as read-only.
func (r *Recommender) Apply(batch *entities.BatchResult) {
	for i := range batch.PerRecordMetrics {
		m := &batch.PerRecordMetrics[i].Metrics
		m.Intensity, m.RecommendedAction = r.Classify(m.CompositeScore)
	}
}
