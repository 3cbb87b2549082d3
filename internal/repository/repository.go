package repository

import (
	"context"

	"sparse-calc/internal/model"

	"github.com/google/uuid"
)

// ComputationRepository defines the interface for computation history
// data access.
type ComputationRepository interface {
	// Create inserts a new computation record.
	Create(ctx context.Context, c *model.Computation) error

	// GetByID retrieves a computation by its ID. Returns nil when no
	// record exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Computation, error)

	// List retrieves computations ordered newest first, with
	// pagination support.
	List(ctx context.Context, limit, offset int) ([]model.Computation, error)
}
