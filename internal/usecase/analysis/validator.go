package analysis

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/briefing-team/briefing-analyzer/internal/domain/entities"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validator checks each briefing candidate against the field rules and
// aggregates the verdicts into a ValidationReport. It always completes;
// validation failure is a data value, never an error.
type Validator struct{}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// Validate evaluates every record in input order. The batch gate is
// all-or-nothing: canonical records are returned only when the whole batch
// is valid, and the report enumerates every failing (field, record) pair so
// the caller can fix all issues in one resubmission.
func (v *Validator) Validate(records []entities.RawRecord) (*entities.ValidationReport, []entities.BriefingRecord) {
	report := &entities.ValidationReport{
		TotalRecords:      len(records),
		PerRecordOutcomes: make([]entities.RecordOutcome, 0, len(records)),
		Errors:            make([]entities.FieldError, 0),
	}

	if len(records) == 0 {
		report.Errors = append(report.Errors, entities.FieldError{
			Field:       "batch",
			RecordIndex: 0,
			Reason:      "no briefing records supplied",
		})
		report.IsValid = false
		return report, nil
	}

	canonical := make([]entities.BriefingRecord, 0, len(records))
	for _, rec := range records {
		outcome, briefing := v.validateRecord(rec, report)
		report.PerRecordOutcomes = append(report.PerRecordOutcomes, outcome)
		canonical = append(canonical, briefing)
	}

	report.IsValid = len(report.Errors) == 0
	if !report.IsValid {
		return report, nil
	}
	return report, canonical
}

func (v *Validator) validateRecord(rec entities.RawRecord, report *entities.ValidationReport) (entities.RecordOutcome, entities.BriefingRecord) {
	outcome := entities.RecordOutcome{
		RecordIndex: rec.Index,
		Fields:      make(map[string]entities.FieldOutcome, len(entities.ReportedFields)),
	}
	var briefing entities.BriefingRecord

	fail := func(field, reason string) {
		report.Errors = append(report.Errors, entities.FieldError{
			Field:       field,
			RecordIndex: rec.Index,
			Reason:      reason,
		})
	}

	// briefing_id: required, non-empty
	if id, ok := rec.Field(entities.FieldBriefingID); ok {
		outcome.Fields[entities.FieldBriefingID] = entities.FieldPresent
		outcome.BriefingID = id
		briefing.ID = id
	} else {
		outcome.Fields[entities.FieldBriefingID] = entities.FieldMissing
		fail(entities.FieldBriefingID, "required field is missing")
	}

	// date: required, literal YYYY-MM-DD and a real calendar date
	if date, ok := rec.Field(entities.FieldDate); ok {
		if isValidDate(date) {
			outcome.Fields[entities.FieldDate] = entities.FieldValid
			briefing.Date = date
		} else {
			outcome.Fields[entities.FieldDate] = entities.FieldInvalid
			fail(entities.FieldDate, fmt.Sprintf("%q is not a valid YYYY-MM-DD date", date))
		}
	} else {
		outcome.Fields[entities.FieldDate] = entities.FieldMissing
		fail(entities.FieldDate, "required field is missing")
	}

	// briefing_text: required, non-empty
	if text, ok := rec.Field(entities.FieldBriefingText); ok {
		outcome.Fields[entities.FieldBriefingText] = entities.FieldPresent
		briefing.Text = text
	} else {
		outcome.Fields[entities.FieldBriefingText] = entities.FieldMissing
		fail(entities.FieldBriefingText, "required field is missing")
	}

	// key_metrics: optional; when provided it must parse as a number and be
	// strictly positive. A present-but-non-numeric value is invalid, never
	// missing.
	if raw, ok := rec.Field(entities.FieldKeyMetrics); ok {
		value, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil || math.IsNaN(value) || math.IsInf(value, 0):
			outcome.Fields[entities.FieldKeyMetrics] = entities.FieldInvalid
			fail(entities.FieldKeyMetrics, fmt.Sprintf("%q is not numeric", raw))
		case value <= 0:
			outcome.Fields[entities.FieldKeyMetrics] = entities.FieldInvalid
			fail(entities.FieldKeyMetrics, "must be a positive number")
		default:
			outcome.Fields[entities.FieldKeyMetrics] = entities.FieldValid
			briefing.KeyMetric = &value
		}
	} else {
		outcome.Fields[entities.FieldKeyMetrics] = entities.FieldValid
	}

	return outcome, briefing
}

// isValidDate checks the literal YYYY-MM-DD format and rejects impossible
// calendar dates such as month 13 or February 30
func isValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
