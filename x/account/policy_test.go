package account_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/account"
	"github.com/soheekimdev/backend-server-effect-sub000/x/account/mock"
)

func TestCanRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_account.NewMockRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), "public").Return(core.Account{ID: "public"}, nil).AnyTimes()
	repo.EXPECT().Get(gomock.Any(), "private").Return(core.Account{ID: "private", IsPrivate: true}, nil).AnyTimes()
	repo.EXPECT().Get(gomock.Any(), "missing").Return(core.Account{}, core.NewErrorNotFound("account", "missing")).AnyTimes()

	p := account.NewPolicy(repo)

	user := core.WithActor(context.Background(), core.Actor{ID: "u1", Role: core.RoleUser})
	owner := core.WithActor(context.Background(), core.Actor{ID: "private", Role: core.RoleUser})
	admin := core.WithActor(context.Background(), core.Actor{ID: "root", Role: core.RoleAdmin})

	_, err := p.CanRead("public")(user)
	assert.NoError(t, err)

	_, err = p.CanRead("private")(user)
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})

	_, err = p.CanRead("private")(owner)
	assert.NoError(t, err)

	_, err = p.CanRead("private")(admin)
	assert.NoError(t, err)

	_, err = p.CanRead("missing")(user)
	assert.ErrorAs(t, err, &core.ErrorNotFound{})

	_, err = p.CanRead("public")(context.Background())
	assert.ErrorAs(t, err, &core.ErrorUnauthenticated{})
}

func TestCanUpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := account.NewPolicy(mock_account.NewMockRepository(ctrl))

	self := core.WithActor(context.Background(), core.Actor{ID: "u1", Role: core.RoleUser})
	other := core.WithActor(context.Background(), core.Actor{ID: "u2", Role: core.RoleUser})
	admin := core.WithActor(context.Background(), core.Actor{ID: "root", Role: core.RoleAdmin})

	_, err := p.CanUpdate("u1")(self)
	assert.NoError(t, err)
	_, err = p.CanUpdate("u1")(other)
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})
	_, err = p.CanUpdate("u1")(admin)
	assert.NoError(t, err)

	_, err = p.CanDelete("u1")(self)
	assert.NoError(t, err)
	_, err = p.CanDelete("u1")(other)
	assert.ErrorAs(t, err, &core.ErrorUnauthorized{})
	_, err = p.CanDelete("u1")(admin)
	assert.NoError(t, err)
}
