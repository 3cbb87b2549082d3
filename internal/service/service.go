package service

import (
	"context"

	"sparse-calc/internal/model"

	"github.com/google/uuid"
)

// ComputeService defines operations for sparse matrix arithmetic and
// computation history.
type ComputeService interface {
	// Compute parses both operands, applies the named operation and
	// records the result.
	Compute(ctx context.Context, req *model.ComputeRequest) (*model.ComputeResponse, error)

	// ComputeFromSource loads both operands from the configured matrix
	// source, applies the named operation and records the result.
	ComputeFromSource(ctx context.Context, req *model.ComputeFilesRequest) (*model.ComputeResponse, error)

	// GetComputation retrieves a past computation by its ID.
	GetComputation(ctx context.Context, id uuid.UUID) (*model.Computation, error)

	// ListComputations retrieves past computations, newest first.
	ListComputations(ctx context.Context, limit, offset int) ([]model.Computation, error)
}
