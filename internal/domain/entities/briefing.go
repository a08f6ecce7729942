package entities

// Wire field names shared by the CSV and JSON encodings
const (
	FieldBriefingID   = "briefing_id"
	FieldDate         = "date"
	FieldBriefingText = "briefing_text"
	FieldKeyMetrics   = "key_metrics"
)

// RequiredFields lists the fields a record must carry, in reporting order
var RequiredFields = []string{FieldBriefingID, FieldDate, FieldBriefingText}

// ReportedFields lists every checked field in the order reports enumerate them
var ReportedFields = []string{FieldBriefingID, FieldDate, FieldBriefingText, FieldKeyMetrics}

// RawRecord is one parsed briefing candidate before validation. Field values
// stay as raw strings; type coercion belongs to the validator.
type RawRecord struct {
	Index  int               `json:"index"` // 1-based position in the input batch
	Fields map[string]string `json:"fields"`
}

// Field returns the raw value for name. A present-but-empty value is treated
// as not provided, matching the truthiness rules of the wire format.
func (r RawRecord) Field(name string) (string, bool) {
	v, ok := r.Fields[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// BriefingRecord is the canonical post-validation record. Its presence in a
// validated batch implies every required field passed validation.
type BriefingRecord struct {
	ID        string   `json:"briefing_id"`
	Date      string   `json:"date"`
	Text      string   `json:"briefing_text"`
	KeyMetric *float64 `json:"key_metrics,omitempty"`
}

// Snippet returns the leading portion of the briefing text used in reports
func (b BriefingRecord) Snippet() string {
	const max = 100
	if len(b.Text) > max {
		return b.Text[:max] + "..."
	}
	return b.Text
}
