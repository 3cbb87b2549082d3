package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeSourceNotFound    = "SOURCE_NOT_FOUND"
	ErrCodeMalformedHeader   = "MALFORMED_HEADER"
	ErrCodeMalformedEntry    = "MALFORMED_ENTRY"
	ErrCodeDimensionMismatch = "DIMENSION_MISMATCH"
	ErrCodeInvalidIndex      = "INVALID_INDEX"
	ErrCodeInvalidOperation  = "INVALID_OPERATION"
	ErrCodeWriteFailure      = "WRITE_FAILURE"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError pairs an error code with a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrComputationNotFound = NewDomainError(ErrCodeNotFound, "Computation not found")
	ErrMissingOperand      = NewDomainError(ErrCodeMissingField, "Both operand matrices are required")
	ErrMissingOperation    = NewDomainError(ErrCodeMissingField, "Operation name is required")
)
