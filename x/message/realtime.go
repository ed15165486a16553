package message

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
)

var (
	pingInterval = 10 * time.Second
	writeTimeout = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Realtime relays the actor's message events over a websocket
func (h handler) Realtime(c echo.Context) error {
	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	actor, err := h.policy.CanReadOwn()(ctx)
	if err != nil {
		return core.ErrorResponse(c, err)
	}

	events, err := h.service.Subscribe(ctx, actor)
	if err != nil {
		return core.ErrorResponse(c, err)
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.ErrorContext(ctx, "failed to upgrade websocket", slog.String("error", err.Error()), slog.String("module", "message"))
		return nil
	}
	defer ws.Close()

	slog.DebugContext(ctx, "realtime connected", slog.String("actor", actor.ID()), slog.String("module", "message"))

	// clients only send control frames; a read error means the peer is gone
	go func() {
		defer cancel()
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := ws.WriteJSON(event); err != nil {
				slog.DebugContext(ctx, "failed to write event", slog.String("error", err.Error()), slog.String("module", "message"))
				return nil
			}
		case <-ticker.C:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return nil
			}
		}
	}
}
