package analysis

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	apperrors "github.com/briefing-team/briefing-analyzer/errors"
	"github.com/briefing-team/briefing-analyzer/internal/domain/entities"
	"github.com/briefing-team/briefing-analyzer/pkg/config"
)

// Calculator computes per-record and batch-level thematic metrics. It
// operates only on fully valid batches and does not re-check validity; a
// malformed record reaching it is a validator defect and fails loudly.
type Calculator struct {
	cfg      config.AnalysisConfig
	patterns map[string]*regexp.Regexp // whole-word mode only
}

// NewCalculator creates a new Calculator for the given tunables
func NewCalculator(cfg config.AnalysisConfig) *Calculator {
	c := &Calculator{cfg: cfg}
	if cfg.WholeWordMatch {
		c.patterns = make(map[string]*regexp.Regexp, len(cfg.Keywords))
		for _, kw := range cfg.Keywords {
			c.patterns[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(kw)) + `\b`)
		}
	}
	return c
}

// Calculate scores every record in input order and computes the batch-level
// average key metric. The average is nil when no record supplied
// key_metrics; callers must surface that as "not applicable", not zero.
func (c *Calculator) Calculate(records []entities.BriefingRecord) (*entities.BatchResult, error) {
	if len(records) == 0 {
		return nil, apperrors.ErrInvariantViolation(fmt.Errorf("empty batch reached the calculator"))
	}

	result := &entities.BatchResult{
		PerRecordMetrics: make([]entities.RecordMetrics, 0, len(records)),
	}

	var sum float64
	var withMetric int
	for _, rec := range records {
		if rec.KeyMetric != nil {
			sum += *rec.KeyMetric
			withMetric++
		}
	}
	if withMetric > 0 {
		avg := sum / float64(withMetric)
		result.AverageKeyMetric = &avg
	}

	for _, rec := range records {
		metrics, err := c.scoreRecord(rec)
		if err != nil {
			return nil, err
		}
		result.PerRecordMetrics = append(result.PerRecordMetrics, entities.RecordMetrics{
			BriefingID:  rec.ID,
			Date:        rec.Date,
			TextSnippet: rec.Snippet(),
			KeyMetric:   rec.KeyMetric,
			Metrics:     metrics,
		})
	}

	return result, nil
}

func (c *Calculator) scoreRecord(rec entities.BriefingRecord) (entities.MetricResult, error) {
	wordCount := len(strings.Fields(rec.Text))
	if wordCount == 0 {
		return entities.MetricResult{}, apperrors.ErrInvariantViolation(
			fmt.Errorf("briefing %s has no words; empty text must be rejected by validation", rec.ID))
	}

	lower := strings.ToLower(rec.Text)
	counts := make([]entities.KeywordCount, 0, len(c.cfg.Keywords))
	totalFrequency := 0
	unique := 0
	for _, kw := range c.cfg.Keywords {
		n := c.countKeyword(lower, kw)
		counts = append(counts, entities.KeywordCount{Keyword: kw, Count: n})
		totalFrequency += n
		if n > 0 {
			unique++
		}
	}

	rawNormalized := float64(totalFrequency) / float64(wordCount)
	rawDiversity := float64(unique) / float64(len(c.cfg.Keywords)) * 100

	// Normalized and diversity scores are rounded to 2 decimals before
	// combination; rounding is half away from zero.
	normalized := round2(rawNormalized)
	diversity := round2(rawDiversity)
	composite := round2(normalized*c.cfg.WeightNormalized + diversity*c.cfg.WeightDiversity)

	return entities.MetricResult{
		KeywordCounts:       counts,
		KeywordFrequency:    totalFrequency,
		WordCount:           wordCount,
		RawNormalizedScore:  rawNormalized,
		NormalizedScore:     normalized,
		UniqueKeywordsFound: unique,
		RawDiversityScore:   rawDiversity,
		DiversityScore:      diversity,
		CompositeScore:      composite,
	}, nil
}

// countKeyword counts every occurrence, not just presence. Matching is
// case-insensitive; substring by default, \b-anchored in whole-word mode.
func (c *Calculator) countKeyword(lowerText, keyword string) int {
	if c.patterns != nil {
		return len(c.patterns[keyword].FindAllStringIndex(lowerText, -1))
	}
	return strings.Count(lowerText, strings.ToLower(keyword))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
