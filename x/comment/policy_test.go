package comment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/account/mock"
	"github.com/soheekimdev/backend-server-effect-sub000/x/comment"
	"github.com/soheekimdev/backend-server-effect-sub000/x/comment/mock"
	"github.com/soheekimdev/backend-server-effect-sub000/x/post"
	"github.com/soheekimdev/backend-server-effect-sub000/x/post/mock"
)

var (
	user1  = core.Actor{ID: "u1", Role: core.RoleUser}
	user2  = core.Actor{ID: "u2", Role: core.RoleUser}
	admin1 = core.Actor{ID: "admin1", Role: core.RoleAdmin}
)

func as(actor core.Actor) context.Context {
	return core.WithActor(context.Background(), actor)
}

func setupPolicy(t *testing.T) comment.Policy {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	posts := mock_post.NewMockRepository(ctrl)
	posts.EXPECT().Get(gomock.Any(), "open").Return(core.Post{ID: "open", AccountID: "u1"}, nil).AnyTimes()
	posts.EXPECT().Get(gomock.Any(), "hidden").Return(core.Post{ID: "hidden", AccountID: "private"}, nil).AnyTimes()
	posts.EXPECT().Get(gomock.Any(), "gone").Return(core.Post{}, core.NewErrorNotFound("post", "gone")).AnyTimes()

	accounts := mock_account.NewMockRepository(ctrl)
	accounts.EXPECT().Get(gomock.Any(), "u1").Return(core.Account{ID: "u1"}, nil).AnyTimes()
	accounts.EXPECT().Get(gomock.Any(), "private").Return(core.Account{ID: "private", IsPrivate: true}, nil).AnyTimes()

	comments := mock_comment.NewMockRepository(ctrl)
	comments.EXPECT().Get(gomock.Any(), "c1").Return(core.Comment{ID: "c1", PostID: "open", AccountID: "u2"}, nil).AnyTimes()
	comments.EXPECT().Get(gomock.Any(), "c2").Return(core.Comment{ID: "c2", PostID: "hidden", AccountID: "u2"}, nil).AnyTimes()

	return comment.NewPolicy(comments, post.NewPolicy(posts, accounts))
}

func TestCanCreateComposesPostRead(t *testing.T) {
	p := setupPolicy(t)

	token, err := p.CanCreate("open")(as(user2))
	if assert.NoError(t, err) {
		assert.Equal(t, "comment", token.Entity())
		assert.Equal(t, "create", token.Action())
		assert.Equal(t, "u2", token.ID())
	}

	_, err = p.CanCreate("hidden")(as(user2))
	var denied core.ErrorUnauthorized
	if assert.ErrorAs(t, err, &denied) {
		assert.Equal(t, "post", denied.Entity)
		assert.Equal(t, "read", denied.Action)
	}

	_, err = p.CanCreate("gone")(as(user2))
	assert.ErrorAs(t, err, &core.ErrorNotFound{})

	_, err = p.CanCreate("open")(context.Background())
	assert.ErrorAs(t, err, &core.ErrorUnauthenticated{})
}

func TestCommentOwnership(t *testing.T) {
	p := setupPolicy(t)

	_, err := p.CanUpdate("c1")(as(user2))
	assert.NoError(t, err)

	_, err = p.CanUpdate("c1")(as(user1))
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})

	_, err = p.CanDelete("c1")(as(admin1))
	assert.NoError(t, err)
}

func TestCanLikeFollowsPost(t *testing.T) {
	p := setupPolicy(t)

	_, err := p.CanLike("c1")(as(user1))
	assert.NoError(t, err)

	_, err = p.CanLike("c2")(as(user1))
	var denied core.ErrorUnauthorized
	if assert.ErrorAs(t, err, &denied) {
		assert.Equal(t, "post", denied.Entity)
	}

	_, err = p.CanRead("c2")(as(admin1))
	assert.NoError(t, err)
}
