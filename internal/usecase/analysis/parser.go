package analysis

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/briefing-team/briefing-analyzer/errors"
	"github.com/briefing-team/briefing-analyzer/internal/domain/entities"
)

// Format is the declared encoding of a briefing batch
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat normalizes a user-supplied format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", apperrors.ErrUnsupportedFormat(s)
	}
}

// Parser converts raw CSV or JSON text into ordered briefing candidates.
// It keeps field values as strings; type coercion is the validator's job.
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the batch's candidate records in input order. A parse
// failure is fatal for the invocation and yields no partial result.
func (p *Parser) Parse(raw string, format Format) ([]entities.RawRecord, error) {
	switch format {
	case FormatJSON:
		return p.parseJSON(raw)
	case FormatCSV:
		return p.parseCSV(raw)
	default:
		return nil, apperrors.ErrUnsupportedFormat(string(format))
	}
}

// parseJSON accepts either a top-level array of records or an object with a
// "briefings" array
func (p *Parser) parseJSON(raw string) ([]entities.RawRecord, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var root interface{}
	if err := dec.Decode(&root); err != nil {
		return nil, apperrors.ErrInvalidFormat("json", err)
	}

	var items []interface{}
	switch v := root.(type) {
	case []interface{}:
		items = v
	case map[string]interface{}:
		briefings, ok := v["briefings"]
		if !ok {
			return nil, apperrors.ErrInvalidFormat("json",
				fmt.Errorf("expected a list of briefings or a 'briefings' field containing a list"))
		}
		items, ok = briefings.([]interface{})
		if !ok {
			return nil, apperrors.ErrInvalidFormat("json",
				fmt.Errorf("'briefings' field must contain a list"))
		}
	default:
		return nil, apperrors.ErrInvalidFormat("json",
			fmt.Errorf("expected a list of briefings or a 'briefings' field containing a list"))
	}

	records := make([]entities.RawRecord, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, apperrors.ErrInvalidFormat("json",
				fmt.Errorf("briefing %d is not an object", i+1))
		}

		fields := make(map[string]string, len(obj))
		for k, v := range obj {
			s, err := stringifyJSONValue(v)
			if err != nil {
				return nil, apperrors.ErrInvalidFormat("json",
					fmt.Errorf("briefing %d field %q: %w", i+1, k, err))
			}
			fields[k] = s
		}

		records = append(records, entities.RawRecord{Index: i + 1, Fields: fields})
	}

	return records, nil
}

// parseCSV expects a header row naming the fields
func (p *Parser) parseCSV(raw string) ([]entities.RawRecord, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.ErrInvalidFormat("csv", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrInvalidFormat("csv", fmt.Errorf("missing header row"))
	}

	header := rows[0]
	records := make([]entities.RawRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		fields := make(map[string]string, len(header))
		for j, name := range header {
			fields[name] = row[j]
		}
		records = append(records, entities.RawRecord{Index: i + 1, Fields: fields})
	}

	return records, nil
}

// stringifyJSONValue keeps scalar values in their raw textual form. Numbers
// stay exactly as written thanks to json.Number; nested structures keep
// their JSON encoding so the validator can reject them verbatim.
func stringifyJSONValue(v interface{}) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return fmt.Sprintf("%t", t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
