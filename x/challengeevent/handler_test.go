package challengeevent_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/internal/testutil"
	"github.com/soheekimdev/backend-server-effect-sub000/x/challengeevent"
	"github.com/soheekimdev/backend-server-effect-sub000/x/challengeevent/mock"
)

func TestHandlerGetChecksChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mock_challengeevent.NewMockService(ctrl)
	service.EXPECT().Get(gomock.Any(), gomock.Any(), "e1").Return(core.ChallengeEvent{ID: "e1", ChallengeID: "open"}, nil)

	handler := challengeevent.NewHandler(service, setupPolicy(t))

	c, req, rec, _ := testutil.CreateHttpRequest(http.MethodGet, "/api/challenges/open/events/e1", "")
	c.SetRequest(req.WithContext(core.WithActor(req.Context(), guest)))
	c.SetParamNames("id", "eventId")
	c.SetParamValues("open", "e1")

	assert.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// the service is not reached for a challenge the event does not belong to
	c, req, rec, _ = testutil.CreateHttpRequest(http.MethodGet, "/api/challenges/gone/events/e1", "")
	c.SetRequest(req.WithContext(core.WithActor(req.Context(), guest)))
	c.SetParamNames("id", "eventId")
	c.SetParamValues("gone", "e1")

	assert.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerCheckChecksChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := challengeevent.NewHandler(mock_challengeevent.NewMockService(ctrl), setupPolicy(t))

	c, req, rec, _ := testutil.CreateHttpRequest(http.MethodPost, "/api/challenges/draft/events/e1/check", "")
	c.SetRequest(req.WithContext(core.WithActor(req.Context(), member)))
	c.SetParamNames("id", "eventId")
	c.SetParamValues("draft", "e1")

	assert.NoError(t, handler.Check(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
