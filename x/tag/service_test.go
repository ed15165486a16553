package tag_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/account/mock"
	"github.com/soheekimdev/backend-server-effect-sub000/x/challenge"
	"github.com/soheekimdev/backend-server-effect-sub000/x/challenge/mock"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
	"github.com/soheekimdev/backend-server-effect-sub000/x/post"
	"github.com/soheekimdev/backend-server-effect-sub000/x/post/mock"
	"github.com/soheekimdev/backend-server-effect-sub000/x/tag"
	"github.com/soheekimdev/backend-server-effect-sub000/x/tag/mock"
)

var (
	user1  = core.Actor{ID: "u1", Role: core.RoleUser}
	user2  = core.Actor{ID: "u2", Role: core.RoleUser}
	admin1 = core.Actor{ID: "admin1", Role: core.RoleAdmin}
)

func as(actor core.Actor) context.Context {
	return core.WithActor(context.Background(), actor)
}

func setupPolicy(t *testing.T, ctrl *gomock.Controller) tag.Policy {
	posts := mock_post.NewMockRepository(ctrl)
	posts.EXPECT().Get(gomock.Any(), "p1").Return(core.Post{ID: "p1", AccountID: "u1"}, nil).AnyTimes()

	accounts := mock_account.NewMockRepository(ctrl)
	accounts.EXPECT().Get(gomock.Any(), "u1").Return(core.Account{ID: "u1"}, nil).AnyTimes()

	challenges := mock_challenge.NewMockRepository(ctrl)
	challenges.EXPECT().Get(gomock.Any(), "c1").Return(core.Challenge{ID: "c1", AccountID: "u2", IsPublished: true}, nil).AnyTimes()

	return tag.NewPolicy(post.NewPolicy(posts, accounts), challenge.NewPolicy(challenges))
}

func TestCreateReturnsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_tag.NewMockRepository(ctrl)
	repo.EXPECT().GetByName(gomock.Any(), "running").Return(core.Tag{ID: "t1", Name: "running"}, nil)
	repo.EXPECT().GetByName(gomock.Any(), "hiking").Return(core.Tag{}, core.NewErrorNotFound("tag", "hiking"))
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, t core.Tag) (core.Tag, error) {
		return t, nil
	})

	s := tag.NewService(repo)
	token, err := setupPolicy(t, ctrl).CanCreate()(as(user1))
	assert.NoError(t, err)

	existing, err := s.Create(context.Background(), token, tag.CreateInput{Name: " running "})
	assert.NoError(t, err)
	assert.Equal(t, "t1", existing.ID)

	created, err := s.Create(context.Background(), token, tag.CreateInput{Name: "hiking", HexColor: "#00ff00"})
	assert.NoError(t, err)
	assert.Equal(t, "hiking", created.Name)
	assert.NotEmpty(t, created.ID)
}

func TestCreateRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_tag.NewMockRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().GetByName(gomock.Any(), "swim").Return(core.Tag{}, core.NewErrorNotFound("tag", "swim")),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(core.Tag{}, core.NewErrorAlreadyExists("tag")),
		repo.EXPECT().GetByName(gomock.Any(), "swim").Return(core.Tag{ID: "t9", Name: "swim"}, nil),
	)

	s := tag.NewService(repo)
	token, _ := setupPolicy(t, ctrl).CanCreate()(as(user1))

	result, err := s.Create(context.Background(), token, tag.CreateInput{Name: "swim"})
	assert.NoError(t, err)
	assert.Equal(t, "t9", result.ID)
}

func TestAdminOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := setupPolicy(t, ctrl)

	_, err := p.CanUpdate()(as(user1))
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})

	_, err = p.CanDelete()(as(admin1))
	assert.NoError(t, err)

	_, err = p.CanCreate()(context.Background())
	assert.ErrorAs(t, err, &core.ErrorUnauthenticated{})
}

func TestConnectPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	postID := "p1"
	repo := mock_tag.NewMockRepository(ctrl)
	repo.EXPECT().GetByName(gomock.Any(), "running").Return(core.Tag{ID: "t1", Name: "running"}, nil)
	repo.EXPECT().Connect(gomock.Any(), core.TagTarget{TagID: "t1", PostID: &postID}).Return(nil)

	s := tag.NewService(repo)
	p := setupPolicy(t, ctrl)

	connect := policy.Grant(p.CanTagPost("p1"), func(ctx context.Context, actor policy.AuthorizedActor[post.Entity, policy.Update]) (core.Tag, error) {
		return s.ConnectPost(ctx, actor, "p1", tag.ConnectInput{Name: "running"})
	})

	result, err := connect(as(user1))
	assert.NoError(t, err)
	assert.Equal(t, "t1", result.ID)

	// only the post author or an admin may tag it
	_, err = connect(as(user2))
	var denied core.ErrorUnauthorized
	if assert.ErrorAs(t, err, &denied) {
		assert.Equal(t, "post", denied.Entity)
		assert.Equal(t, "update", denied.Action)
	}
}

func TestDisconnectChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	challengeID := "c1"
	repo := mock_tag.NewMockRepository(ctrl)
	repo.EXPECT().Disconnect(gomock.Any(), core.TagTarget{TagID: "t1", ChallengeID: &challengeID}).Return(nil)

	s := tag.NewService(repo)
	p := setupPolicy(t, ctrl)

	_, err := p.CanTagChallenge("c1")(as(user1))
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})

	token, err := p.CanTagChallenge("c1")(as(user2))
	assert.NoError(t, err)
	assert.NoError(t, s.DisconnectChallenge(context.Background(), token, "c1", "t1"))
}
