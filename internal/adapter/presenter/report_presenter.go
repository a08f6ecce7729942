package presenter

import (
	"fmt"
	"strings"

	"github.com/briefing-team/briefing-analyzer/internal/domain/entities"
)

// RenderValidationReport formats a ValidationReport as a human-readable
// markdown document enumerating per-record field outcomes and a summary of
// every failing field with its record index.
func RenderValidationReport(report *entities.ValidationReport) string {
	var b strings.Builder

	b.WriteString("# Investor Briefing Data Validation Report\n")
	b.WriteString("## Overview\n")
	fmt.Fprintf(&b, "- Total Briefings Provided: %d\n", report.TotalRecords)
	b.WriteString("## Field Checks per Record\n")

	for _, outcome := range report.PerRecordOutcomes {
		fmt.Fprintf(&b, "\n### Record %d\n", outcome.RecordIndex)
		for _, field := range entities.ReportedFields {
			fmt.Fprintf(&b, "- %s: **%s**\n", field, outcome.Fields[field])
		}
	}

	b.WriteString("\n## Summary\n")
	if report.IsValid {
		b.WriteString("Data validation is successful!\n")
		return b.String()
	}

	b.WriteString("The following errors were found:\n")
	for _, e := range report.Errors {
		if e.RecordIndex == 0 {
			fmt.Fprintf(&b, "- ERROR: %s.\n", e.Reason)
			continue
		}
		fmt.Fprintf(&b, "- ERROR: %s in record %d: %s. Please correct and resubmit.\n",
			e.Field, e.RecordIndex, e.Reason)
	}
	return b.String()
}

// RenderBatchReport formats a scored batch as the final markdown summary:
// input data, the full calculation walkthrough for each briefing and the
// final recommendation block. Every narrated value comes straight off the
// MetricResult intermediates; nothing is recomputed here.
func RenderBatchReport(batch *entities.BatchResult, keywords []string) string {
	var b strings.Builder

	b.WriteString("# Investor Briefing Summary\n")
	fmt.Fprintf(&b, "## Total Briefings Evaluated: %d\n\n", len(batch.PerRecordMetrics))
	b.WriteString("### Detailed Analysis per Briefing:\n")

	for _, rec := range batch.PerRecordMetrics {
		m := rec.Metrics

		fmt.Fprintf(&b, "#### Briefing %s\n", rec.BriefingID)
		b.WriteString("**Input Data:**\n")
		fmt.Fprintf(&b, "- Date: %s\n", rec.Date)
		fmt.Fprintf(&b, "- Briefing Text Snippet: %s\n", rec.TextSnippet)
		if rec.KeyMetric != nil {
			fmt.Fprintf(&b, "- Key Metrics: %.2f\n", *rec.KeyMetric)
		} else {
			b.WriteString("- Key Metrics: Not provided\n")
		}

		b.WriteString("\n**Detailed Calculations:**\n")

		b.WriteString("1. **Average Key Metric Calculation:**\n")
		b.WriteString(" - Formula: Average Key Metric = Sum of key_metrics / Number of records with key_metrics\n")
		if batch.AverageKeyMetric != nil {
			fmt.Fprintf(&b, " - Result: **%.2f**\n", *batch.AverageKeyMetric)
		} else {
			b.WriteString(" - Result: **Not applicable** (no records provided key_metrics)\n")
		}

		b.WriteString("2. **Keyword Frequency Calculation:**\n")
		fmt.Fprintf(&b, " - Expected Keywords: \"%s\"\n", strings.Join(keywords, ", "))
		b.WriteString(" - Keyword Occurrences:\n")
		for _, kc := range m.KeywordCounts {
			fmt.Fprintf(&b, "   - %q: %d\n", kc.Keyword, kc.Count)
		}
		fmt.Fprintf(&b, " - Total Keyword Frequency: **%d**\n", m.KeywordFrequency)

		b.WriteString("3. **Normalized Keyword Score Calculation:**\n")
		b.WriteString(" - Formula: Normalized Keyword Score = Total Keyword Frequency / Total Number of Words\n")
		fmt.Fprintf(&b, " - Calculation Steps: %d / %d = %.4f\n", m.KeywordFrequency, m.WordCount, m.RawNormalizedScore)
		fmt.Fprintf(&b, " - Result: **%.2f**\n", m.NormalizedScore)

		b.WriteString("4. **Diversity Score Calculation:**\n")
		fmt.Fprintf(&b, " - Formula: Diversity Score = (Number of Unique Keywords Found / %d) x 100\n", len(keywords))
		fmt.Fprintf(&b, " - Calculation Steps: (%d / %d) x 100 = %.2f%%\n", m.UniqueKeywordsFound, len(keywords), m.RawDiversityScore)
		fmt.Fprintf(&b, " - Result: **%.2f%%**\n", m.DiversityScore)

		b.WriteString("5. **Composite Thematic Score Calculation:**\n")
		b.WriteString(" - Formula: Composite Thematic Score = (Normalized Keyword Score x W1) + (Diversity Score x W2)\n")
		fmt.Fprintf(&b, " - Result: **%.2f**\n\n", m.CompositeScore)
	}

	b.WriteString("### Final Recommendation:\n")
	for _, rec := range batch.PerRecordMetrics {
		m := rec.Metrics
		fmt.Fprintf(&b, "#### Briefing %s:\n", rec.BriefingID)
		fmt.Fprintf(&b, "- **Composite Thematic Score:** %.2f\n", m.CompositeScore)
		fmt.Fprintf(&b, "- **Normalized Keyword Score:** %.4f\n", m.RawNormalizedScore)
		fmt.Fprintf(&b, "- **Thematic Intensity:** %s\n", m.Intensity)
		fmt.Fprintf(&b, "- **Recommended Action:** %s\n\n", m.RecommendedAction.Message())
	}

	return b.String()
}
