package tag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/internal/testutil"
)

func TestRepositoryConnect(t *testing.T) {
	ctx := context.Background()

	db, cleanupDB := testutil.CreateDB(t)
	defer cleanupDB()

	mc, cleanupMC := testutil.CreateMC(t)
	defer cleanupMC()

	repo := NewRepository(db, mc)

	tag, err := repo.Create(ctx, core.Tag{ID: "tttttttttttttttttt01", Name: "running"})
	assert.NoError(t, err)

	postID := "pppppppppppppppppp01"
	challengeID := "cccccccccccccccccc01"

	err = repo.Connect(ctx, core.TagTarget{TagID: tag.ID, PostID: &postID})
	assert.NoError(t, err)

	// the unique index rejects the second connection
	err = repo.Connect(ctx, core.TagTarget{TagID: tag.ID, PostID: &postID})
	assert.ErrorAs(t, err, &core.ErrorAlreadyExists{})

	err = repo.Connect(ctx, core.TagTarget{TagID: tag.ID, ChallengeID: &challengeID})
	assert.NoError(t, err)

	err = repo.Connect(ctx, core.TagTarget{TagID: tag.ID, ChallengeID: &challengeID})
	assert.ErrorAs(t, err, &core.ErrorAlreadyExists{})

	err = repo.Connect(ctx, core.TagTarget{TagID: tag.ID})
	assert.ErrorAs(t, err, &core.ErrorBadRequest{})

	var count int64
	assert.NoError(t, db.Model(&core.TagTarget{}).Where("tag_id = ?", tag.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	err = repo.Disconnect(ctx, core.TagTarget{TagID: tag.ID, PostID: &postID})
	assert.NoError(t, err)

	err = repo.Connect(ctx, core.TagTarget{TagID: tag.ID, PostID: &postID})
	assert.NoError(t, err)
}
