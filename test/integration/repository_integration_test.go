package integration

import (
	"context"
	"testing"
	"time"

	"sparse-calc/internal/matrix"
	"sparse-calc/internal/model"
	"sparse-calc/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputationRepository_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	repo := repository.NewComputationRepository(db.Pool, zerolog.Nop())
	ctx := context.Background()

	record := &model.Computation{
		ID:         uuid.New(),
		Op:         matrix.OpAddition,
		ARows:      2,
		ACols:      2,
		BRows:      2,
		BCols:      2,
		ResultRows: 2,
		ResultCols: 2,
		Result:     "rows=2\ncols=2\n(0, 0, 4)",
		CreatedAt:  time.Now().UTC(),
	}

	require.NoError(t, repo.Create(ctx, record))

	got, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, record.Op, got.Op)
	assert.Equal(t, record.Result, got.Result)
	assert.Equal(t, 2, got.ResultRows)
}

func TestComputationRepository_GetByID_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	repo := repository.NewComputationRepository(db.Pool, zerolog.Nop())

	got, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestComputationRepository_List_NewestFirst(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	repo := repository.NewComputationRepository(db.Pool, zerolog.Nop())
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	ids := make([]uuid.UUID, 3)
	for i := range ids {
		ids[i] = uuid.New()
		require.NoError(t, repo.Create(ctx, &model.Computation{
			ID:        ids[i],
			Op:        matrix.OpSubtraction,
			Result:    "rows=1\ncols=1",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ids[2], got[0].ID)
	assert.Equal(t, ids[1], got[1].ID)

	rest, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, ids[0], rest[0].ID)
}
