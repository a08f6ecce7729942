package errors

// ErrorCode identifies an application error category
type ErrorCode int32

const (
	ErrorCode_OK                  ErrorCode = 0
	ErrorCode_INVALID_ARGUMENT    ErrorCode = 3
	ErrorCode_INTERNAL            ErrorCode = 13
	ErrorCode_INVALID_PAYLOAD     ErrorCode = 50
	ErrorCode_INVALID_FORMAT      ErrorCode = 100
	ErrorCode_VALIDATION_REJECTED ErrorCode = 101
	ErrorCode_EMPTY_BATCH         ErrorCode = 102
	ErrorCode_INVARIANT_VIOLATION ErrorCode = 103
	ErrorCode_HTTP_OK             ErrorCode = 200
)

// String returns the symbolic name of the error code
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_OK:
		return "OK"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_INVALID_FORMAT:
		return "INVALID_FORMAT"
	case ErrorCode_VALIDATION_REJECTED:
		return "VALIDATION_REJECTED"
	case ErrorCode_EMPTY_BATCH:
		return "EMPTY_BATCH"
	case ErrorCode_INVARIANT_VIOLATION:
		return "INVARIANT_VIOLATION"
	case ErrorCode_HTTP_OK:
		return "HTTP_OK"
	default:
		return "UNKNOWN"
	}
}
