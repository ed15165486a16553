package challengeevent

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	ListByChallenge(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	Check(c echo.Context) error
	ListChecks(c echo.Context) error
}

type handler struct {
	service Service
	policy  Policy
}

// NewHandler creates a new challenge event handler
func NewHandler(service Service, policy Policy) Handler {
	return &handler{service, policy}
}

func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "ChallengeEvent.Handler.Create")
	defer span.End()

	challengeID := c.Param("id")

	var request CreateInput
	if err := c.Bind(&request); err != nil {
		return core.ErrorResponse(c, core.NewErrorBadRequest(err.Error()))
	}
	if err := c.Validate(&request); err != nil {
		return core.ErrorResponse(c, err)
	}

	actor, err := h.policy.CanCreate(challengeID)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	created, err := h.service.Create(ctx, actor, challengeID, request)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusCreated, created)
}

func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "ChallengeEvent.Handler.Get")
	defer span.End()

	challengeID := c.Param("id")
	id := c.Param("eventId")

	actor, err := h.policy.CanRead(challengeID, id)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	event, err := h.service.Get(ctx, actor, id)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, event)
}

func (h handler) ListByChallenge(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "ChallengeEvent.Handler.ListByChallenge")
	defer span.End()

	challengeID := c.Param("id")
	page := core.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"))

	actor, err := h.policy.CanList(challengeID)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	events, err := h.service.ListByChallenge(ctx, actor, challengeID, page)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, events)
}

func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "ChallengeEvent.Handler.Update")
	defer span.End()

	challengeID := c.Param("id")
	id := c.Param("eventId")

	var request UpdateInput
	if err := c.Bind(&request); err != nil {
		return core.ErrorResponse(c, core.NewErrorBadRequest(err.Error()))
	}
	if err := c.Validate(&request); err != nil {
		return core.ErrorResponse(c, err)
	}

	actor, err := h.policy.CanUpdate(challengeID, id)(ctx)
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
	ctx, span := tracer.Start(c.Request().Context(), "ChallengeEvent.Handler.Delete")
	defer span.End()

	challengeID := c.Param("id")
	id := c.Param("eventId")

	actor, err := h.policy.CanDelete(challengeID, id)(ctx)
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

func (h handler) Check(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "ChallengeEvent.Handler.Check")
	defer span.End()

	challengeID := c.Param("id")
	id := c.Param("eventId")

	check, err := policy.Grant(h.policy.CanCheck(challengeID, id), func(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Check]) (core.ChallengeEventCheck, error) {
		return h.service.Check(ctx, actor, id)
	})(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusCreated, check)
}

func (h handler) ListChecks(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "ChallengeEvent.Handler.ListChecks")
	defer span.End()

	challengeID := c.Param("id")
	id := c.Param("eventId")
	page := core.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"))

	actor, err := h.policy.CanRead(challengeID, id)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	checks, err := h.service.ListChecks(ctx, actor, id, page)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, checks)
}
