package matrix

import "errors"

// Every failure in this package wraps one of these sentinels, so
// callers can branch with errors.Is while the message keeps the
// human-readable detail (line numbers, offending content, shapes).
var (
	// ErrSourceNotFound indicates the matrix source file could not be read.
	ErrSourceNotFound = errors.New("matrix source not found")

	// ErrMalformedHeader indicates the first two lines are not a valid
	// rows=/cols= header.
	ErrMalformedHeader = errors.New("malformed matrix header")

	// ErrMalformedEntry indicates an entry line that is not a
	// (row, col, value) triple.
	ErrMalformedEntry = errors.New("malformed matrix entry")

	// ErrDimensionMismatch indicates operand shapes incompatible with
	// the requested operation.
	ErrDimensionMismatch = errors.New("matrix dimension mismatch")

	// ErrInvalidIndex indicates a negative row or column index.
	ErrInvalidIndex = errors.New("invalid matrix index")

	// ErrInvalidOperation indicates an unknown operation name.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrWriteFailure indicates the result could not be persisted.
	ErrWriteFailure = errors.New("failed to write matrix")
)
