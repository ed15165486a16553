package message_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/account/mock"
	"github.com/soheekimdev/backend-server-effect-sub000/x/message"
	"github.com/soheekimdev/backend-server-effect-sub000/x/message/mock"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
)

var (
	user1 = core.Actor{ID: "u1", Role: core.RoleUser}
	user2 = core.Actor{ID: "u2", Role: core.RoleUser}
	user3 = core.Actor{ID: "u3", Role: core.RoleUser}
)

func as(actor core.Actor) context.Context {
	return core.WithActor(context.Background(), actor)
}

func setup(t *testing.T) (*gomock.Controller, *mock_message.MockRepository, message.Policy) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_message.NewMockRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), "m1").Return(core.Message{ID: "m1", SenderAccountID: "u1", ReceiverAccountID: "u2", Content: "hi"}, nil).AnyTimes()
	repo.EXPECT().Get(gomock.Any(), "seen").Return(core.Message{ID: "seen", SenderAccountID: "u1", ReceiverAccountID: "u2", IsRead: true}, nil).AnyTimes()
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(core.Message{}, core.NewErrorNotFound("message", "")).AnyTimes()

	accounts := mock_account.NewMockRepository(ctrl)
	accounts.EXPECT().Get(gomock.Any(), "u2").Return(core.Account{ID: "u2"}, nil).AnyTimes()
	accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(core.Account{}, core.NewErrorNotFound("account", "")).AnyTimes()

	return ctrl, repo, message.NewPolicy(repo, accounts)
}

func TestPolicy(t *testing.T) {
	_, _, p := setup(t)

	_, err := p.CanSend("u2")(as(user1))
	assert.NoError(t, err)

	_, err = p.CanSend("u2")(as(user2))
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})

	_, err = p.CanSend("ghost")(as(user1))
	assert.ErrorAs(t, err, &core.ErrorNotFound{})

	_, err = p.CanSend("u2")(context.Background())
	assert.ErrorAs(t, err, &core.ErrorUnauthenticated{})

	testCases := []struct {
		name    string
		check   func(ctx context.Context) error
		actor   core.Actor
		allowed bool
	}{
		{"sender reads", func(ctx context.Context) error { _, err := p.CanRead("m1")(ctx); return err }, user1, true},
		{"receiver reads", func(ctx context.Context) error { _, err := p.CanRead("m1")(ctx); return err }, user2, true},
		{"stranger reads", func(ctx context.Context) error { _, err := p.CanRead("m1")(ctx); return err }, user3, false},
		{"receiver marks read", func(ctx context.Context) error { _, err := p.CanMarkRead("m1")(ctx); return err }, user2, true},
		{"sender marks read", func(ctx context.Context) error { _, err := p.CanMarkRead("m1")(ctx); return err }, user1, false},
		{"sender deletes", func(ctx context.Context) error { _, err := p.CanDelete("m1")(ctx); return err }, user1, true},
		{"receiver deletes", func(ctx context.Context) error { _, err := p.CanDelete("m1")(ctx); return err }, user2, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check(as(tc.actor))
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorAs(t, err, &core.ErrorUnauthorized{})
			}
		})
	}
}

func TestSendPublishesToReceiver(t *testing.T) {
	_, repo, p := setup(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m core.Message) (core.Message, error) {
		return m, nil
	})
	repo.EXPECT().Publish(gomock.Any(), "message:u2", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, event core.Event) error {
		assert.Equal(t, "create", event.Action)
		return nil
	})

	s := message.NewService(repo)

	sent, err := policy.Grant(p.CanSend("u2"), func(ctx context.Context, actor policy.AuthorizedActor[message.Entity, policy.Send]) (core.Message, error) {
		return s.Send(ctx, actor, message.SendInput{ReceiverAccountID: "u2", Content: "hello"})
	})(as(user1))

	if assert.NoError(t, err) {
		assert.Equal(t, "u1", sent.SenderAccountID)
		assert.Equal(t, "u2", sent.ReceiverAccountID)
		assert.NotEmpty(t, sent.ID)
	}
}

func TestMarkRead(t *testing.T) {
	_, repo, p := setup(t)

	repo.EXPECT().MarkRead(gomock.Any(), "m1").Return(nil).Times(1)
	repo.EXPECT().Publish(gomock.Any(), "message:u1", gomock.Any()).Return(nil).Times(1)

	s := message.NewService(repo)

	token, err := p.CanMarkRead("m1")(as(user2))
	assert.NoError(t, err)
	assert.NoError(t, s.MarkRead(context.Background(), token, "m1"))

	// already read, nothing to do
	token, err = p.CanMarkRead("seen")(as(user2))
	assert.NoError(t, err)
	assert.NoError(t, s.MarkRead(context.Background(), token, "seen"))
}

func TestSubscribeCountsConnections(t *testing.T) {
	_, repo, p := setup(t)

	upstream := make(chan core.Event)
	repo.EXPECT().Subscribe(gomock.Any(), "message:u2").Return((<-chan core.Event)(upstream), nil)

	s := message.NewService(repo)
	token, err := p.CanReadOwn()(as(user2))
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := s.Subscribe(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), s.Connections())

	upstream <- core.Event{Type: "message", Action: "create"}
	event := <-events
	assert.Equal(t, "create", event.Action)

	cancel()
	close(upstream)
	for range events {
	}
	assert.Eventually(t, func() bool { return s.Connections() == 0 }, time.Second, 10*time.Millisecond)
}
