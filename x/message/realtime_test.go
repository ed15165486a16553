package message

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
)

func TestRealtime(t *testing.T) {
	_, rdb := setupRedis(t)
	repo := NewRepository(nil, rdb, nil)
	h := NewHandler(NewService(repo), NewPolicy(repo, nil))

	e := echo.New()
	e.GET("/realtime", h.Realtime, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if id := c.QueryParam("as"); id != "" {
				ctx := core.WithActor(c.Request().Context(), core.Actor{ID: id, Role: core.RoleUser})
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	})

	server := httptest.NewServer(e)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/realtime"

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	assert.Error(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, 401, resp.StatusCode)
	}

	ws, _, err := websocket.DefaultDialer.Dial(url+"?as=u2", nil)
	if !assert.NoError(t, err) {
		return
	}
	defer ws.Close()

	err = repo.Publish(context.Background(), Channel("u2"), core.Event{Type: "message", Action: "create", Resource: map[string]any{"id": "m1"}})
	assert.NoError(t, err)

	ws.SetReadDeadline(time.Now().Add(3 * time.Second))
	var event core.Event
	err = ws.ReadJSON(&event)
	if assert.NoError(t, err) {
		assert.Equal(t, "create", event.Action)
		assert.Equal(t, map[string]any{"id": "m1"}, event.Resource)
	}
}
