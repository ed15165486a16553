package message

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Send(c echo.Context) error
	Get(c echo.Context) error
	ListConversation(c echo.Context) error
	ListInbox(c echo.Context) error
	MarkRead(c echo.Context) error
	Delete(c echo.Context) error
	Realtime(c echo.Context) error
}

type handler struct {
	service Service
	policy  Policy
}

// NewHandler creates a new message handler
func NewHandler(service Service, policy Policy) Handler {
	return &handler{service, policy}
}

func (h handler) Send(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Message.Handler.Send")
	defer span.End()

	var request SendInput
	if err := c.Bind(&request); err != nil {
		return core.ErrorResponse(c, core.NewErrorBadRequest(err.Error()))
	}
	if err := c.Validate(&request); err != nil {
		return core.ErrorResponse(c, err)
	}

	sent, err := policy.Grant(h.policy.CanSend(request.ReceiverAccountID), func(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Send]) (core.Message, error) {
		return h.service.Send(ctx, actor, request)
	})(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusCreated, sent)
}

func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Message.Handler.Get")
	defer span.End()

	id := c.Param("id")

	actor, err := h.policy.CanRead(id)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	message, err := h.service.Get(ctx, actor, id)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, message)
}

func (h handler) ListConversation(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Message.Handler.ListConversation")
	defer span.End()

	otherID := c.Param("accountId")
	page := core.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"))

	actor, err := h.policy.CanReadOwn()(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	messages, err := h.service.ListConversation(ctx, actor, otherID, page)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, messages)
}

func (h handler) ListInbox(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Message.Handler.ListInbox")
	defer span.End()

	unreadOnly, _ := strconv.ParseBool(c.QueryParam("unread"))
	page := core.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"))

	actor, err := h.policy.CanReadOwn()(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	messages, err := h.service.ListInbox(ctx, actor, unreadOnly, page)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, messages)
}

func (h handler) MarkRead(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Message.Handler.MarkRead")
	defer span.End()

	id := c.Param("id")

	actor, err := h.policy.CanMarkRead(id)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	if err := h.service.MarkRead(ctx, actor, id); err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, echo.Map{"id": id})
}

func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Message.Handler.Delete")
	defer span.End()

	id := c.Param("id")

	actor, err := h.policy.CanDelete(id)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	if err := h.service.Delete(ctx, actor, id); err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, echo.Map{"id": id})
}
