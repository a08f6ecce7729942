package briefing

import "github.com/briefing-team/briefing-analyzer/internal/domain/entities"

// AnalyzeResponse is the scored outcome of a valid batch
type AnalyzeResponse struct {
	InvocationID string                     `json:"invocation_id"`
	State        string                     `json:"state"`
	Report       *entities.ValidationReport `json:"validation_report"`
	Result       *entities.BatchResult      `json:"result"`
}

// RejectedResponse carries the validation report for a rejected batch
type RejectedResponse struct {
	InvocationID string                     `json:"invocation_id"`
	State        string                     `json:"state"`
	Report       *entities.ValidationReport `json:"validation_report"`
}

// ValidateResponse carries the validation report for a validate-only call
type ValidateResponse struct {
	Report *entities.ValidationReport `json:"validation_report"`
}
