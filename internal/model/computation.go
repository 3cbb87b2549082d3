package model

import (
	"time"

	"github.com/google/uuid"
)

// Computation is a persisted record of one arithmetic request.
// Operand shapes are kept for auditing; the operands themselves are
// not stored, only the serialized result.
type Computation struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Op         string    `json:"op" db:"op"`
	ARows      int       `json:"aRows" db:"a_rows"`
	ACols      int       `json:"aCols" db:"a_cols"`
	BRows      int       `json:"bRows" db:"b_rows"`
	BCols      int       `json:"bCols" db:"b_cols"`
	ResultRows int       `json:"resultRows" db:"result_rows"`
	ResultCols int       `json:"resultCols" db:"result_cols"`
	Result     string    `json:"result" db:"result"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// ComputeRequest represents the request payload for a computation.
// A and B are matrices in the sparse text format.
type ComputeRequest struct {
	Op string `json:"op"`
	A  string `json:"a"`
	B  string `json:"b"`
}

// ComputeFilesRequest represents a computation over stored matrix
// files. A and B name local paths or S3 keys, depending on the
// configured matrix source.
type ComputeFilesRequest struct {
	Op string `json:"op"`
	A  string `json:"a"`
	B  string `json:"b"`
}

// ComputeResponse represents the response payload for a computation.
type ComputeResponse struct {
	ID         uuid.UUID `json:"id"`
	Op         string    `json:"op"`
	ResultRows int       `json:"resultRows"`
	ResultCols int       `json:"resultCols"`
	Result     string    `json:"result"`
}
