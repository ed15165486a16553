package challengeevent_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/challengeevent"
	"github.com/soheekimdev/backend-server-effect-sub000/x/challengeevent/mock"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
)

func TestCreateEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_challengeevent.NewMockRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e core.ChallengeEvent) (core.ChallengeEvent, error) {
		return e, nil
	})

	s := challengeevent.NewService(repo)

	token, err := setupPolicy(t).CanCreate("open")(as(owner))
	assert.NoError(t, err)

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(-time.Minute)

	_, err = s.Create(context.Background(), token, "open", challengeevent.CreateInput{Title: "day 1", StartDatetime: &start, EndDatetime: &end})
	assert.ErrorAs(t, err, &core.ErrorBadRequest{})

	end = start.Add(time.Hour)
	created, err := s.Create(context.Background(), token, "open", challengeevent.CreateInput{Title: "day 1", StartDatetime: &start, EndDatetime: &end})
	if assert.NoError(t, err) {
		assert.Equal(t, "open", created.ChallengeID)
		assert.Equal(t, "owner", created.AccountID)
		assert.NotEmpty(t, created.ID)
	}
}

func TestCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_challengeevent.NewMockRepository(ctrl)
	repo.EXPECT().Check(gomock.Any(), core.ChallengeEventCheck{ChallengeEventID: "e1", AccountID: "member"}).
		Return(core.ChallengeEventCheck{ChallengeEventID: "e1", AccountID: "member"}, nil)
	repo.EXPECT().Check(gomock.Any(), core.ChallengeEventCheck{ChallengeEventID: "e1", AccountID: "member"}).
		Return(core.ChallengeEventCheck{}, core.NewErrorAlreadyExists("challenge-event check"))

	s := challengeevent.NewService(repo)
	p := setupPolicy(t)

	check := policy.Grant(p.CanCheck("open", "e1"), func(ctx context.Context, actor policy.AuthorizedActor[challengeevent.Entity, policy.Check]) (core.ChallengeEventCheck, error) {
		return s.Check(ctx, actor, "e1")
	})

	result, err := check(as(member))
	assert.NoError(t, err)
	assert.Equal(t, "member", result.AccountID)

	_, err = check(as(member))
	assert.ErrorAs(t, err, &core.ErrorAlreadyExists{})

	_, err = check(as(guest))
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})
}

func TestZeroToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := challengeevent.NewService(mock_challengeevent.NewMockRepository(ctrl))

	err := s.Delete(context.Background(), policy.AuthorizedActor[challengeevent.Entity, policy.Delete]{}, "e1")
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})
}
