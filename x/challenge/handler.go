package challenge

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/like"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	Join(c echo.Context) error
	Leave(c echo.Context) error
	ListParticipants(c echo.Context) error
	Like(c echo.Context) error
	Dislike(c echo.Context) error
	RemoveLike(c echo.Context) error
}

type handler struct {
	service Service
	policy  Policy
}

// NewHandler creates a new challenge handler
func NewHandler(service Service, policy Policy) Handler {
	return &handler{service, policy}
}

func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Challenge.Handler.Create")
	defer span.End()

	var request CreateInput
	if err := c.Bind(&request); err != nil {
		return core.ErrorResponse(c, core.NewErrorBadRequest(err.Error()))
	}
	if err := c.Validate(&request); err != nil {
		return core.ErrorResponse(c, err)
	}

	actor, err := h.policy.CanCreate()(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	created, err := h.service.Create(ctx, actor, request)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusCreated, created)
}

func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Challenge.Handler.Get")
	defer span.End()

	id := c.Param("id")

	actor, err := h.policy.CanRead(id)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	challenge, err := h.service.Get(ctx, actor, id)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, challenge)
}

func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Challenge.Handler.List")
	defer span.End()

	filter := ListFilter{AccountID: c.QueryParam("accountId")}
	page := core.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"))

	challenges, err := h.service.List(ctx, filter, page)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, challenges)
}

func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Challenge.Handler.Update")
	defer span.End()

	id := c.Param("id")

	var request UpdateInput
	if err := c.Bind(&request); err != nil {
		return core.ErrorResponse(c, core.NewErrorBadRequest(err.Error()))
	}
	if err := c.Validate(&request); err != nil {
		return core.ErrorResponse(c, err)
	}

	actor, err := h.policy.CanUpdate(id)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	updated, err := h.service.Update(ctx, actor, id, request)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, updated)
}

func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Challenge.Handler.Delete")
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

func (h handler) Join(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Challenge.Handler.Join")
	defer span.End()

	id := c.Param("id")

	participant, err := policy.Grant(h.policy.CanJoin(id), func(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Join]) (core.ChallengeParticipant, error) {
		return h.service.Join(ctx, actor, id)
	})(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusCreated, participant)
}

func (h handler) Leave(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Challenge.Handler.Leave")
	defer span.End()

	id := c.Param("id")

	actor, err := h.policy.CanLeave(id)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	if err := h.service.Leave(ctx, actor, id); err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, echo.Map{"id": id})
}

func (h handler) ListParticipants(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Challenge.Handler.ListParticipants")
	defer span.End()

	id := c.Param("id")
	page := core.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"))

	actor, err := h.policy.CanRead(id)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	participants, err := h.service.ListParticipants(ctx, actor, id, page)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, participants)
}

func (h handler) react(c echo.Context, name string, op func(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error)) error {
	ctx, span := tracer.Start(c.Request().Context(), "Challenge.Handler."+name)
	defer span.End()

	id := c.Param("id")

	actor, err := h.policy.CanLike(id)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	counts, err := op(ctx, actor, id)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, counts)
}

func (h handler) Like(c echo.Context) error {
	return h.react(c, "Like", h.service.Like)
}

func (h handler) Dislike(c echo.Context) error {
	return h.react(c, "Dislike", h.service.Dislike)
}

func (h handler) RemoveLike(c echo.Context) error {
	return h.react(c, "RemoveLike", h.service.RemoveLike)
}
