package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edumarket/backend/engine"
	"edumarket/backend/models"
)

func TestCreateAndLookup(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	user := &models.User{Name: "Ada", Email: "ada@example.com", Role: models.RoleStudent}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	byID, err := repo.ByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)

	byEmail, err := repo.ByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestDuplicateEmailRejected(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Name: "Ada", Email: "ada@example.com"}))
	err := repo.Create(ctx, &models.User{Name: "Imposter", Email: "ada@example.com"})
	assert.ErrorIs(t, err, engine.ErrValidation)
}

func TestLookupUnknown(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.ByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, engine.ErrNotFound)
	_, err = repo.ByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func TestUpdateRekeysEmail(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	user := &models.User{Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, repo.Create(ctx, user))

	user.Email = "lovelace@example.com"
	require.NoError(t, repo.Update(ctx, user))

	_, err := repo.ByEmail(ctx, "ada@example.com")
	assert.ErrorIs(t, err, engine.ErrNotFound)
	found, err := repo.ByEmail(ctx, "lovelace@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}
