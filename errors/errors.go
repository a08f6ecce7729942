package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the custom error type for the application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Pipeline Errors

// ErrInvalidFormat signals input text that does not parse as the declared
// format. Fatal for the invocation; no partial report is produced.
func ErrInvalidFormat(format string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_FORMAT,
		Message:  "Input data is not well-formed",
	}.WithDetail("format", format)
}

func ErrUnsupportedFormat(format string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_FORMAT,
		Message:  "Invalid data format. Please provide data in CSV or JSON format",
	}.WithDetail("format", format)
}

// ErrValidationRejected signals an all-or-nothing batch rejection. The full
// per-field detail lives in the ValidationReport, not here.
func ErrValidationRejected(errorCount int) AppError {
	return AppError{
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_VALIDATION_REJECTED,
		Message:  "Batch failed validation",
	}.WithDetail("error_count", fmt.Sprintf("%d", errorCount))
}

func ErrEmptyBatch() AppError {
	return AppError{
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_EMPTY_BATCH,
		Message:  "No briefing records supplied",
	}
}

// ErrInvariantViolation signals a validator defect: data that should have
// been rejected reached the metric calculator.
func ErrInvariantViolation(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INVARIANT_VIOLATION,
		Message:  "Internal invariant violated during scoring",
	}
}
