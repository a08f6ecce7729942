package entities

// FieldOutcome is the validation verdict for a single field of a record
type FieldOutcome string

const (
	FieldPresent FieldOutcome = "present"
	FieldMissing FieldOutcome = "missing"
	FieldValid   FieldOutcome = "valid"
	FieldInvalid FieldOutcome = "invalid"
)

// Failed reports whether the outcome rejects the batch
func (o FieldOutcome) Failed() bool {
	return o == FieldMissing || o == FieldInvalid
}

// FieldError names one failing field of one record. RecordIndex is 1-based
// so callers can quote it back to whoever supplied the data.
type FieldError struct {
	Field       string `json:"field"`
	RecordIndex int    `json:"record_index"`
	Reason      string `json:"reason"`
}

// RecordOutcome holds the per-field verdicts for one record
type RecordOutcome struct {
	RecordIndex int                     `json:"record_index"`
	BriefingID  string                  `json:"briefing_id,omitempty"`
	Fields      map[string]FieldOutcome `json:"fields"`
}

// ValidationReport aggregates the validator's verdicts for a whole batch.
// Created once per pipeline invocation and never mutated afterwards.
type ValidationReport struct {
	TotalRecords      int             `json:"total_records"`
	PerRecordOutcomes []RecordOutcome `json:"per_record_outcomes"`
	Errors            []FieldError    `json:"errors"`
	IsValid           bool            `json:"is_valid"`
}
