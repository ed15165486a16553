package challenge_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/challenge"
	"github.com/soheekimdev/backend-server-effect-sub000/x/challenge/mock"
)

var (
	owner  = core.Actor{ID: "owner", Role: core.RoleUser}
	member = core.Actor{ID: "member", Role: core.RoleUser}
	guest  = core.Actor{ID: "guest", Role: core.RoleUser}
	admin1 = core.Actor{ID: "admin1", Role: core.RoleAdmin}
)

func as(actor core.Actor) context.Context {
	return core.WithActor(context.Background(), actor)
}

func setupPolicy(t *testing.T) challenge.Policy {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_challenge.NewMockRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), "open").Return(core.Challenge{ID: "open", AccountID: "owner", IsPublished: true}, nil).AnyTimes()
	repo.EXPECT().Get(gomock.Any(), "draft").Return(core.Challenge{ID: "draft", AccountID: "owner"}, nil).AnyTimes()
	repo.EXPECT().Get(gomock.Any(), "done").Return(core.Challenge{ID: "done", AccountID: "owner", IsPublished: true, IsFinished: true}, nil).AnyTimes()
	repo.EXPECT().GetParticipant(gomock.Any(), gomock.Any(), "member").Return(core.ChallengeParticipant{AccountID: "member"}, nil).AnyTimes()
	repo.EXPECT().GetParticipant(gomock.Any(), gomock.Any(), "broken").Return(core.ChallengeParticipant{}, errors.New("connection reset")).AnyTimes()
	repo.EXPECT().GetParticipant(gomock.Any(), gomock.Any(), gomock.Any()).Return(core.ChallengeParticipant{}, core.NewErrorNotFound("challenge participant", "")).AnyTimes()

	return challenge.NewPolicy(repo)
}

func TestCanReadDraft(t *testing.T) {
	p := setupPolicy(t)

	_, err := p.CanRead("open")(as(guest))
	assert.NoError(t, err)

	_, err = p.CanRead("draft")(as(guest))
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})

	_, err = p.CanRead("draft")(as(owner))
	assert.NoError(t, err)

	_, err = p.CanRead("draft")(as(admin1))
	assert.NoError(t, err)
}

func TestCanJoin(t *testing.T) {
	p := setupPolicy(t)

	_, err := p.CanJoin("open")(as(guest))
	assert.NoError(t, err)

	_, err = p.CanJoin("open")(as(member))
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})

	_, err = p.CanJoin("draft")(as(guest))
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})

	_, err = p.CanJoin("done")(as(guest))
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})

	_, err = p.CanJoin("open")(as(core.Actor{ID: "broken", Role: core.RoleUser}))
	assert.EqualError(t, err, "connection reset")
}

func TestCanLeave(t *testing.T) {
	p := setupPolicy(t)

	_, err := p.CanLeave("open")(as(member))
	assert.NoError(t, err)

	_, err = p.CanLeave("open")(as(guest))
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})
}

func TestCanUpdate(t *testing.T) {
	p := setupPolicy(t)

	_, err := p.CanUpdate("open")(as(owner))
	assert.NoError(t, err)

	_, err = p.CanUpdate("open")(as(member))
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})

	_, err = p.CanDelete("open")(as(admin1))
	assert.NoError(t, err)
}
