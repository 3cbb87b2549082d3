package repository

import (
	"context"
	"errors"
	"fmt"

	"sparse-calc/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// computationRepository implements ComputationRepository using PostgreSQL.
type computationRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewComputationRepository creates a new PostgreSQL-backed computation repository.
func NewComputationRepository(pool *pgxpool.Pool, logger zerolog.Logger) ComputationRepository {
	return &computationRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "computation").Logger(),
	}
}

// Create inserts a new computation record.
func (r *computationRepository) Create(ctx context.Context, c *model.Computation) error {
	query := `
		INSERT INTO computations
			(id, op, a_rows, a_cols, b_rows, b_cols, result_rows, result_cols, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.Op, c.ARows, c.ACols, c.BRows, c.BCols,
		c.ResultRows, c.ResultCols, c.Result, c.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("computation_id", c.ID.String()).
			Str("op", c.Op).
			Msg("failed to create computation record")
		return fmt.Errorf("failed to create computation record: %w", err)
	}

	r.logger.Debug().
		Str("computation_id", c.ID.String()).
		Str("op", c.Op).
		Msg("computation record created")

	return nil
}

// GetByID retrieves a computation by its ID.
func (r *computationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Computation, error) {
	query := `
		SELECT id, op, a_rows, a_cols, b_rows, b_cols, result_rows, result_cols, result, created_at
		FROM computations
		WHERE id = $1
	`

	var c model.Computation
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Op, &c.ARows, &c.ACols, &c.BRows, &c.BCols,
		&c.ResultRows, &c.ResultCols, &c.Result, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().
			Err(err).
			Str("computation_id", id.String()).
			Msg("failed to get computation")
		return nil, fmt.Errorf("failed to get computation: %w", err)
	}

	return &c, nil
}

// List retrieves computations ordered newest first.
func (r *computationRepository) List(ctx context.Context, limit, offset int) ([]model.Computation, error) {
	query := `
		SELECT id, op, a_rows, a_cols, b_rows, b_cols, result_rows, result_cols, result, created_at
		FROM computations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to list computations")
		return nil, fmt.Errorf("failed to list computations: %w", err)
	}
	defer rows.Close()

	computations := []model.Computation{}
	for rows.Next() {
		var c model.Computation
		if err := rows.Scan(
			&c.ID, &c.Op, &c.ARows, &c.ACols, &c.BRows, &c.BCols,
			&c.ResultRows, &c.ResultCols, &c.Result, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan computation row: %w", err)
		}
		computations = append(computations, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read computation rows: %w", err)
	}

	return computations, nil
}
