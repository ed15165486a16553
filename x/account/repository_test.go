package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/internal/testutil"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()

	db, cleanupDB := testutil.CreateDB(t)
	defer cleanupDB()

	mc, cleanupMC := testutil.CreateMC(t)
	defer cleanupMC()

	repo := NewRepository(db, mc)

	alice, err := repo.Create(ctx, core.Account{
		ID:           "aaaaaaaaaaaaaaaaaaaa",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Username:     "alice",
		Role:         core.RoleUser,
	})
	if assert.NoError(t, err) {
		assert.False(t, alice.CreatedAt.IsZero())
	}

	_, err = repo.Create(ctx, core.Account{
		ID:           "bbbbbbbbbbbbbbbbbbbb",
		Email:        "bob@example.com",
		PasswordHash: "hash",
		Username:     "bob",
		Role:         core.RoleUser,
		IsPrivate:    true,
	})
	assert.NoError(t, err)

	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(2), count)
	}

	got, err := repo.GetByEmail(ctx, "alice@example.com")
	if assert.NoError(t, err) {
		assert.Equal(t, alice.ID, got.ID)
	}

	public, total, err := repo.List(ctx, false, core.Pagination{Page: 1, Limit: 20})
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), total)
		assert.Len(t, public, 1)
	}

	all, total, err := repo.List(ctx, true, core.Pagination{Page: 1, Limit: 20})
	if assert.NoError(t, err) {
		assert.Equal(t, int64(2), total)
		assert.Len(t, all, 2)
	}

	got.IsPrivate = true
	got.Bio = "hi"
	updated, err := repo.Update(ctx, got)
	if assert.NoError(t, err) {
		assert.True(t, updated.IsPrivate)
	}

	got.IsPrivate = false
	_, err = repo.Update(ctx, got)
	assert.NoError(t, err)

	reloaded, err := repo.Get(ctx, alice.ID)
	if assert.NoError(t, err) {
		assert.False(t, reloaded.IsPrivate)
		assert.Equal(t, "hi", reloaded.Bio)
	}

	err = repo.Delete(ctx, alice.ID)
	assert.NoError(t, err)

	_, err = repo.Get(ctx, alice.ID)
	assert.ErrorAs(t, err, &core.ErrorNotFound{})

	err = repo.Delete(ctx, alice.ID)
	assert.ErrorAs(t, err, &core.ErrorNotFound{})

	count, err = repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), count)
	}
}
