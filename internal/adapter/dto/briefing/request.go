package briefing

// AnalyzeRequest represents a briefing batch submitted for analysis
type AnalyzeRequest struct {
	Format string `json:"format" validate:"required,oneof=csv json"`
	Data   string `json:"data" validate:"required"`
}

// ValidateRequest represents a briefing batch submitted for validation only
type ValidateRequest struct {
	Format string `json:"format" validate:"required,oneof=csv json"`
	Data   string `json:"data" validate:"required"`
}
