package service

import (
	"context"
	"fmt"
	"time"

	"sparse-calc/internal/matrix"
	"sparse-calc/internal/model"
	"sparse-calc/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// computeService implements ComputeService.
type computeService struct {
	repo   repository.ComputationRepository
	loader matrix.Loader
	logger zerolog.Logger
}

// NewComputeService creates a new compute service. The loader supplies
// operands for source-file computations.
func NewComputeService(repo repository.ComputationRepository, loader matrix.Loader, logger zerolog.Logger) ComputeService {
	return &computeService{
		repo:   repo,
		loader: loader,
		logger: logger.With().Str("service", "compute").Logger(),
	}
}

// Compute parses both operands, applies the named operation and
// records the result. Validation is eager: a bad request never reaches
// the arithmetic or the database.
func (s *computeService) Compute(ctx context.Context, req *model.ComputeRequest) (*model.ComputeResponse, error) {
	if req.Op == "" {
		s.logger.Warn().Msg("compute request missing operation")
		return nil, model.ErrMissingOperation
	}
	if req.A == "" || req.B == "" {
		s.logger.Warn().Str("op", req.Op).Msg("compute request missing operand")
		return nil, model.ErrMissingOperand
	}

	a, err := matrix.Parse(req.A)
	if err != nil {
		s.logger.Warn().Err(err).Str("op", req.Op).Msg("failed to parse first operand")
		return nil, fmt.Errorf("first operand: %w", err)
	}

	b, err := matrix.Parse(req.B)
	if err != nil {
		s.logger.Warn().Err(err).Str("op", req.Op).Msg("failed to parse second operand")
		return nil, fmt.Errorf("second operand: %w", err)
	}

	return s.run(ctx, req.Op, a, b)
}

// ComputeFromSource loads both operands through the configured loader,
// applies the named operation and records the result.
func (s *computeService) ComputeFromSource(ctx context.Context, req *model.ComputeFilesRequest) (*model.ComputeResponse, error) {
	if req.Op == "" {
		s.logger.Warn().Msg("compute request missing operation")
		return nil, model.ErrMissingOperation
	}
	if req.A == "" || req.B == "" {
		s.logger.Warn().Str("op", req.Op).Msg("compute request missing operand source")
		return nil, model.ErrMissingOperand
	}

	a, err := s.loader.Load(ctx, req.A)
	if err != nil {
		return nil, fmt.Errorf("first operand: %w", err)
	}

	b, err := s.loader.Load(ctx, req.B)
	if err != nil {
		return nil, fmt.Errorf("second operand: %w", err)
	}

	return s.run(ctx, req.Op, a, b)
}

// run applies the operation and persists the outcome.
func (s *computeService) run(ctx context.Context, op string, a, b *matrix.Matrix) (*model.ComputeResponse, error) {
	result, err := matrix.Apply(op, a, b)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("op", op).
			Int("a_rows", a.Rows()).
			Int("a_cols", a.Cols()).
			Int("b_rows", b.Rows()).
			Int("b_cols", b.Cols()).
			Msg("computation failed")
		return nil, err
	}

	record := &model.Computation{
		ID:         uuid.New(),
		Op:         op,
		ARows:      a.Rows(),
		ACols:      a.Cols(),
		BRows:      b.Rows(),
		BCols:      b.Cols(),
		ResultRows: result.Rows(),
		ResultCols: result.Cols(),
		Result:     result.String(),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record computation: %w", err)
	}

	s.logger.Info().
		Str("computation_id", record.ID.String()).
		Str("op", op).
		Int("result_rows", result.Rows()).
		Int("result_cols", result.Cols()).
		Int("result_entries", result.Len()).
		Msg("computation completed")

	return &model.ComputeResponse{
		ID:         record.ID,
		Op:         record.Op,
		ResultRows: record.ResultRows,
		ResultCols: record.ResultCols,
		Result:     record.Result,
	}, nil
}

// GetComputation retrieves a past computation by its ID.
func (s *computeService) GetComputation(ctx context.Context, id uuid.UUID) (*model.Computation, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("computation_id", id.String()).Msg("failed to get computation")
		return nil, fmt.Errorf("failed to get computation: %w", err)
	}

	if c == nil {
		s.logger.Debug().Str("computation_id", id.String()).Msg("computation not found")
		return nil, model.ErrComputationNotFound
	}

	return c, nil
}

// ListComputations retrieves past computations, newest first.
func (s *computeService) ListComputations(ctx context.Context, limit, offset int) ([]model.Computation, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	computations, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to list computations")
		return nil, fmt.Errorf("failed to list computations: %w", err)
	}

	s.logger.Debug().
		Int("count", len(computations)).
		Int("limit", limit).
		Int("offset", offset).
		Msg("retrieved computations")

	return computations, nil
}
