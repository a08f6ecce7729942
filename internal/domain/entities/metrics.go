package entities

// Intensity is the categorical thematic intensity of a briefing
type Intensity string

const (
	IntensityHigh     Intensity = "High"
	IntensityModerate Intensity = "Moderate"
)

// Action is the recommended follow-up derived from the composite score
type Action string

const (
	ActionFocusGrowthAndRisk Action = "focus_on_growth_and_risk"
	ActionReviewForInsights  Action = "review_for_insights"
)

// Message returns the recommendation sentence used in rendered reports
func (a Action) Message() string {
	switch a {
	case ActionFocusGrowthAndRisk:
		return "Focus on strategic growth and risk mitigation."
	case ActionReviewForInsights:
		return "Review the investor briefing for additional insights."
	default:
		return ""
	}
}

// KeywordCount is one expected keyword and its occurrence count, kept in
// keyword-set order so reports enumerate deterministically.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// MetricResult holds every computed value for one briefing, including the
// pre-rounding intermediates so the rendering layer can narrate each step.
type MetricResult struct {
	KeywordCounts       []KeywordCount `json:"keyword_counts"`
	KeywordFrequency    int            `json:"keyword_frequency"`
	WordCount           int            `json:"word_count"`
	RawNormalizedScore  float64        `json:"raw_normalized_score"`
	NormalizedScore     float64        `json:"normalized_keyword_score"`
	UniqueKeywordsFound int            `json:"unique_keywords_found"`
	RawDiversityScore   float64        `json:"raw_diversity_score"`
	DiversityScore      float64        `json:"diversity_score"`
	CompositeScore      float64        `json:"composite_thematic_score"`
	Intensity           Intensity      `json:"thematic_intensity"`
	RecommendedAction   Action         `json:"recommended_action"`
}

// RecordMetrics pairs a briefing with its computed metrics
type RecordMetrics struct {
	BriefingID  string       `json:"briefing_id"`
	Date        string       `json:"date"`
	TextSnippet string       `json:"briefing_text_snippet"`
	KeyMetric   *float64     `json:"key_metrics,omitempty"`
	Metrics     MetricResult `json:"metrics"`
}

// BatchResult is the scored output for a fully valid batch. AverageKeyMetric
// is nil when no record in the batch supplied key_metrics; that is a defined
// "not applicable" outcome, distinct from zero. Produced once, then read-only.
type BatchResult struct {
	AverageKeyMetric *float64        `json:"average_key_metric,omitempty"`
	PerRecordMetrics []RecordMetrics `json:"per_record_metrics"`
}
