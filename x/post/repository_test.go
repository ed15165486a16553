package post

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

	public := core.Account{ID: "aaaaaaaaaaaaaaaaaaa1", Email: "public@example.com", PasswordHash: "x", Role: core.RoleUser}
	private := core.Account{ID: "aaaaaaaaaaaaaaaaaaa2", Email: "private@example.com", PasswordHash: "x", Role: core.RoleUser, IsPrivate: true}
	assert.NoError(t, db.Create(&public).Error)
	assert.NoError(t, db.Create(&private).Error)

	repo := NewRepository(db, mc)

	p1, err := repo.Create(ctx, core.Post{ID: "pppppppppppppppppp01", AccountID: public.ID, Title: "first", Type: core.PostTypePost})
	assert.NoError(t, err)
	_, err = repo.Create(ctx, core.Post{ID: "pppppppppppppppppp02", AccountID: private.ID, Title: "second", Type: core.PostTypePost})
	assert.NoError(t, err)

	page := core.Pagination{Page: 1, Limit: 20}

	posts, total, err := repo.List(ctx, ListFilter{}, core.Actor{}, page)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), total)
		assert.Len(t, posts, 1)
	}

	_, total, err = repo.List(ctx, ListFilter{}, private.Actor(), page)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(2), total)
	}

	_, total, err = repo.List(ctx, ListFilter{AccountID: public.ID}, core.Actor{ID: "admin", Role: core.RoleAdmin}, page)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), total)
	}

	assert.NoError(t, repo.IncrementViewCount(ctx, p1.ID))
	assert.NoError(t, repo.IncrementViewCount(ctx, p1.ID))

	p1.Title = "renamed"
	_, err = repo.Update(ctx, p1)
	assert.NoError(t, err)

	got, err := repo.Get(ctx, p1.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "renamed", got.Title)
		assert.Equal(t, int64(2), got.ViewCount)
	}

	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(2), count)
	}

	assert.NoError(t, repo.Delete(ctx, p1.ID))
	_, err = repo.Get(ctx, p1.ID)
	assert.ErrorAs(t, err, &core.ErrorNotFound{})
}
