package post_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/internal/testutil"
	"github.com/soheekimdev/backend-server-effect-sub000/x/like"
	"github.com/soheekimdev/backend-server-effect-sub000/x/post"
	"github.com/soheekimdev/backend-server-effect-sub000/x/post/mock"
)

func TestHandlerDeleteDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// the service must not be reached when the policy denies
	service := mock_post.NewMockService(ctrl)
	handler := post.NewHandler(service, setupPolicy(t))

	c, req, rec, _ := testutil.CreateHttpRequest(http.MethodDelete, "/api/posts/p1", "")
	c.SetRequest(req.WithContext(core.WithActor(req.Context(), user2)))
	c.SetParamNames("id")
	c.SetParamValues("p1")

	assert.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body core.ResponseBase[any]
	if assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)) {
		assert.Equal(t, "error", body.Status)
		detail, ok := body.Detail.(map[string]any)
		if assert.True(t, ok) {
			assert.Equal(t, "u2", detail["actorId"])
			assert.Equal(t, "post", detail["entity"])
			assert.Equal(t, "delete", detail["action"])
		}
	}
}

func TestHandlerDeleteByAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mock_post.NewMockService(ctrl)
	service.EXPECT().Delete(gomock.Any(), gomock.Any(), "p1").Return(nil)

	handler := post.NewHandler(service, setupPolicy(t))

	c, req, rec, _ := testutil.CreateHttpRequest(http.MethodDelete, "/api/posts/p1", "")
	c.SetRequest(req.WithContext(core.WithActor(req.Context(), admin1)))
	c.SetParamNames("id")
	c.SetParamValues("p1")

	assert.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlerCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mock_post.NewMockService(ctrl)
	service.EXPECT().Create(gomock.Any(), gomock.Any(), post.CreateInput{Title: "hello", Content: "world"}).
		Return(core.Post{ID: "p9", AccountID: "u1", Title: "hello"}, nil)

	handler := post.NewHandler(service, setupPolicy(t))

	c, req, rec, _ := testutil.CreateHttpRequest(http.MethodPost, "/api/posts", `{"title":"hello","content":"world"}`)
	c.SetRequest(req.WithContext(core.WithActor(req.Context(), user1)))
	assert.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	c, _, rec, _ = testutil.CreateHttpRequest(http.MethodPost, "/api/posts", `{"title":"hello"}`)
	assert.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, req, rec, _ = testutil.CreateHttpRequest(http.MethodPost, "/api/posts", `{"content":"no title"}`)
	c.SetRequest(req.WithContext(core.WithActor(req.Context(), user1)))
	assert.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerLike(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mock_post.NewMockService(ctrl)
	service.EXPECT().Like(gomock.Any(), gomock.Any(), "p2").Return(like.Counts{Likes: 1, Mine: core.LikeTypeLike}, nil)

	handler := post.NewHandler(service, setupPolicy(t))

	c, req, rec, _ := testutil.CreateHttpRequest(http.MethodPost, "/api/posts/p2/like", "")
	c.SetRequest(req.WithContext(core.WithActor(req.Context(), user1)))
	c.SetParamNames("id")
	c.SetParamValues("p2")

	assert.NoError(t, handler.Like(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, req, rec, _ = testutil.CreateHttpRequest(http.MethodPost, "/api/posts/p3/like", "")
	c.SetRequest(req.WithContext(core.WithActor(req.Context(), user1)))
	c.SetParamNames("id")
	c.SetParamValues("p3")

	assert.NoError(t, handler.Like(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandlerAnonymousRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mock_post.NewMockService(ctrl)
	service.EXPECT().List(gomock.Any(), post.ListFilter{}, gomock.Any()).Return(core.Page[core.Post]{Items: []core.Post{}}, nil)

	handler := post.NewHandler(service, setupPolicy(t))

	// listing is public
	c, _, rec, _ := testutil.CreateHttpRequest(http.MethodGet, "/api/posts", "")
	assert.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// a single post is read through a policy that needs an actor
	c, _, rec, _ = testutil.CreateHttpRequest(http.MethodGet, "/api/posts/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	assert.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
