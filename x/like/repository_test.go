package like

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

	post := core.Post{ID: "pppppppppppppppppppp", AccountID: "aaaaaaaaaaaaaaaaaaaa", Title: "hello", Type: core.PostTypePost}
	assert.NoError(t, db.Create(&post).Error)

	reload := func() core.Post {
		var p core.Post
		assert.NoError(t, db.First(&p, "id = ?", post.ID).Error)
		return p
	}

	_, err := repo.Put(ctx, core.Like{ID: "llllllllllllllllll01", AccountID: "u1", TargetType: core.LikeTargetPost, TargetID: post.ID, Type: core.LikeTypeLike})
	assert.NoError(t, err)
	_, err = repo.Put(ctx, core.Like{ID: "llllllllllllllllll02", AccountID: "u2", TargetType: core.LikeTargetPost, TargetID: post.ID, Type: core.LikeTypeLike})
	assert.NoError(t, err)

	// idempotent for the same reaction
	_, err = repo.Put(ctx, core.Like{ID: "llllllllllllllllll03", AccountID: "u2", TargetType: core.LikeTargetPost, TargetID: post.ID, Type: core.LikeTypeLike})
	assert.NoError(t, err)

	p := reload()
	assert.Equal(t, int64(2), p.LikeCount)
	assert.Equal(t, int64(0), p.DislikeCount)

	// switching moves the counter
	switched, err := repo.Put(ctx, core.Like{ID: "llllllllllllllllll04", AccountID: "u2", TargetType: core.LikeTargetPost, TargetID: post.ID, Type: core.LikeTypeDislike})
	if assert.NoError(t, err) {
		assert.Equal(t, "llllllllllllllllll02", switched.ID)
		assert.Equal(t, core.LikeTypeDislike, switched.Type)
	}

	p = reload()
	assert.Equal(t, int64(1), p.LikeCount)
	assert.Equal(t, int64(1), p.DislikeCount)

	counts, err := repo.Counts(ctx, core.LikeTargetPost, post.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), counts.Likes)
		assert.Equal(t, int64(1), counts.Dislikes)
	}

	assert.NoError(t, repo.Remove(ctx, "u1", core.LikeTargetPost, post.ID))
	assert.ErrorAs(t, repo.Remove(ctx, "u1", core.LikeTargetPost, post.ID), &core.ErrorNotFound{})

	p = reload()
	assert.Equal(t, int64(0), p.LikeCount)
	assert.Equal(t, int64(1), p.DislikeCount)

	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), count)
	}
}
