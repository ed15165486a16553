package like_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/like"
	"github.com/soheekimdev/backend-server-effect-sub000/x/like/mock"
)

func TestPut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_like.NewMockRepository(ctrl)
	repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l core.Like) (core.Like, error) {
		assert.Equal(t, "u1", l.AccountID)
		assert.Equal(t, core.LikeTargetPost, l.TargetType)
		assert.Equal(t, "p1", l.TargetID)
		assert.Equal(t, core.LikeTypeDislike, l.Type)
		assert.NotEmpty(t, l.ID)
		return l, nil
	})
	repo.EXPECT().Counts(gomock.Any(), core.LikeTargetPost, "p1").Return(like.Counts{Likes: 3, Dislikes: 1}, nil)
	repo.EXPECT().Get(gomock.Any(), "u1", core.LikeTargetPost, "p1").Return(core.Like{Type: core.LikeTypeDislike}, nil)

	s := like.NewService(repo)

	counts, err := s.Put(context.Background(), "u1", core.LikeTargetPost, "p1", core.LikeTypeDislike)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(3), counts.Likes)
		assert.Equal(t, int64(1), counts.Dislikes)
		assert.Equal(t, core.LikeTypeDislike, counts.Mine)
	}
}

func TestPutRejectsUnknownKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := like.NewService(mock_like.NewMockRepository(ctrl))

	_, err := s.Put(context.Background(), "u1", "account", "a1", core.LikeTypeLike)
	assert.ErrorAs(t, err, &core.ErrorBadRequest{})

	_, err = s.Put(context.Background(), "u1", core.LikeTargetPost, "p1", "love")
	assert.ErrorAs(t, err, &core.ErrorBadRequest{})
}

func TestRemoveMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_like.NewMockRepository(ctrl)
	repo.EXPECT().Remove(gomock.Any(), "u1", core.LikeTargetComment, "c1").Return(core.NewErrorNotFound("like", "c1"))

	s := like.NewService(repo)

	_, err := s.Remove(context.Background(), "u1", core.LikeTargetComment, "c1")
	assert.ErrorAs(t, err, &core.ErrorNotFound{})
}
