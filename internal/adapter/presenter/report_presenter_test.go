package presenter

import (
	"strings"
	"testing"

	"github.com/briefing-team/briefing-analyzer/internal/domain/entities"
)

func TestRenderValidationReport_Rejected(t *testing.T) {
	report := &entities.ValidationReport{
		TotalRecords: 1,
		PerRecordOutcomes: []entities.RecordOutcome{
			{
				RecordIndex: 1,
				Fields: map[string]entities.FieldOutcome{
					entities.FieldBriefingID:   entities.FieldPresent,
					entities.FieldDate:         entities.FieldMissing,
					entities.FieldBriefingText: entities.FieldPresent,
					entities.FieldKeyMetrics:   entities.FieldInvalid,
				},
			},
		},
		Errors: []entities.FieldError{
			{Field: entities.FieldDate, RecordIndex: 1, Reason: "required field is missing"},
			{Field: entities.FieldKeyMetrics, RecordIndex: 1, Reason: "must be a positive number"},
		},
		IsValid: false,
	}

	out := RenderValidationReport(report)

	for _, want := range []string{
		"# Investor Briefing Data Validation Report",
		"- Total Briefings Provided: 1",
		"### Record 1",
		"- date: **missing**",
		"- key_metrics: **invalid**",
		"The following errors were found:",
		"key_metrics in record 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestRenderValidationReport_Valid(t *testing.T) {
	report := &entities.ValidationReport{
		TotalRecords: 1,
		PerRecordOutcomes: []entities.RecordOutcome{
			{
				RecordIndex: 1,
				Fields: map[string]entities.FieldOutcome{
					entities.FieldBriefingID:   entities.FieldPresent,
					entities.FieldDate:         entities.FieldValid,
					entities.FieldBriefingText: entities.FieldPresent,
					entities.FieldKeyMetrics:   entities.FieldValid,
				},
			},
		},
		Errors:  []entities.FieldError{},
		IsValid: true,
	}

	out := RenderValidationReport(report)
	if !strings.Contains(out, "Data validation is successful!") {
		t.Fatalf("valid report missing success line\n%s", out)
	}
	if strings.Contains(out, "errors were found") {
		t.Fatalf("valid report must not list errors\n%s", out)
	}
}

func TestRenderBatchReport(t *testing.T) {
	key := 96.0
	avg := 96.0
	batch := &entities.BatchResult{
		AverageKeyMetric: &avg,
		PerRecordMetrics: []entities.RecordMetrics{
			{
				BriefingID:  "B311",
				Date:        "2023-07-11",
				TextSnippet: "The company shows steady growth across its core segments",
				KeyMetric:   &key,
				Metrics: entities.MetricResult{
					KeywordCounts:       []entities.KeywordCount{{Keyword: "growth", Count: 1}, {Keyword: "risk", Count: 0}},
					KeywordFrequency:    1,
					WordCount:           9,
					RawNormalizedScore:  1.0 / 9.0,
					NormalizedScore:     0.11,
					UniqueKeywordsFound: 1,
					RawDiversityScore:   10,
					DiversityScore:      10.00,
					CompositeScore:      10.50,
					Intensity:           entities.IntensityModerate,
					RecommendedAction:   entities.ActionReviewForInsights,
				},
			},
		},
	}

	out := RenderBatchReport(batch, []string{"growth", "risk"})

	for _, want := range []string{
		"# Investor Briefing Summary",
		"## Total Briefings Evaluated: 1",
		"#### Briefing B311",
		"- Key Metrics: 96.00",
		"- Result: **96.00**",
		"\"growth\": 1",
		"- Total Keyword Frequency: **1**",
		"- Calculation Steps: 1 / 9 = 0.1111",
		"- Result: **10.00%**",
		"- Result: **10.50**",
		"- **Thematic Intensity:** Moderate",
		"- **Recommended Action:** Review the investor briefing for additional insights.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestRenderBatchReport_NoAverage(t *testing.T) {
	batch := &entities.BatchResult{
		PerRecordMetrics: []entities.RecordMetrics{
			{
				BriefingID: "B1",
				Date:       "2023-07-11",
				Metrics: entities.MetricResult{
					Intensity:         entities.IntensityModerate,
					RecommendedAction: entities.ActionReviewForInsights,
				},
			},
		},
	}

	out := RenderBatchReport(batch, []string{"growth"})
	if !strings.Contains(out, "- Key Metrics: Not provided") {
		t.Fatalf("missing 'Not provided' line\n%s", out)
	}
	if !strings.Contains(out, "**Not applicable**") {
		t.Fatalf("absent average must render as not applicable, not zero\n%s", out)
	}
}
