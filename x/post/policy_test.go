package post_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/account/mock"
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

func setupPolicy(t *testing.T) post.Policy {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	posts := mock_post.NewMockRepository(ctrl)
	posts.EXPECT().Get(gomock.Any(), "p1").Return(core.Post{ID: "p1", AccountID: "u1"}, nil).AnyTimes()
	posts.EXPECT().Get(gomock.Any(), "p2").Return(core.Post{ID: "p2", AccountID: "u2"}, nil).AnyTimes()
	posts.EXPECT().Get(gomock.Any(), "p3").Return(core.Post{ID: "p3", AccountID: "hidden"}, nil).AnyTimes()
	posts.EXPECT().Get(gomock.Any(), "missing").Return(core.Post{}, core.NewErrorNotFound("post", "missing")).AnyTimes()

	accounts := mock_account.NewMockRepository(ctrl)
	accounts.EXPECT().Get(gomock.Any(), "u1").Return(core.Account{ID: "u1"}, nil).AnyTimes()
	accounts.EXPECT().Get(gomock.Any(), "u2").Return(core.Account{ID: "u2"}, nil).AnyTimes()
	accounts.EXPECT().Get(gomock.Any(), "hidden").Return(core.Account{ID: "hidden", IsPrivate: true}, nil).AnyTimes()

	return post.NewPolicy(posts, accounts)
}

func TestOwnership(t *testing.T) {
	p := setupPolicy(t)

	token, err := p.CanUpdate("p1")(as(user1))
	if assert.NoError(t, err) {
		assert.Equal(t, "u1", token.ID())
	}

	_, err = p.CanUpdate("p2")(as(user1))
	var denied core.ErrorUnauthorized
	if assert.ErrorAs(t, err, &denied) {
		assert.Equal(t, "u1", denied.ActorID)
		assert.Equal(t, "post", denied.Entity)
		assert.Equal(t, "update", denied.Action)
	}

	_, err = p.CanDelete("p1")(as(admin1))
	assert.NoError(t, err)

	_, err = p.CanDelete("p1")(as(user2))
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})
}

func TestUnauthenticated(t *testing.T) {
	p := setupPolicy(t)

	_, err := p.CanUpdate("p1")(context.Background())
	assert.ErrorAs(t, err, &core.ErrorUnauthenticated{})

	_, err = p.CanRead("p1")(context.Background())
	assert.ErrorAs(t, err, &core.ErrorUnauthenticated{})
}

func TestMissingPostPassesThrough(t *testing.T) {
	p := setupPolicy(t)

	_, err := p.CanUpdate("missing")(as(user1))
	var notFound core.ErrorNotFound
	if assert.ErrorAs(t, err, &notFound) {
		assert.Equal(t, "post", notFound.Entity)
		assert.Equal(t, "missing", notFound.ID)
	}
}

func TestReadPrivateAuthor(t *testing.T) {
	p := setupPolicy(t)

	_, err := p.CanRead("p3")(as(user1))
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})

	_, err = p.CanLike("p3")(as(user1))
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})

	_, err = p.CanRead("p3")(as(core.Actor{ID: "hidden", Role: core.RoleUser}))
	assert.NoError(t, err)

	_, err = p.CanRead("p3")(as(admin1))
	assert.NoError(t, err)

	_, err = p.CanRead("p2")(as(user1))
	assert.NoError(t, err)
}

func TestCreateNotice(t *testing.T) {
	p := setupPolicy(t)

	_, err := p.CanCreate(core.PostTypePost)(as(user1))
	assert.NoError(t, err)

	_, err = p.CanCreate(core.PostTypeNotice)(as(user1))
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})

	_, err = p.CanCreate(core.PostTypeNotice)(as(admin1))
	assert.NoError(t, err)
}
