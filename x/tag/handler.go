package tag

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/challenge"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
	"github.com/soheekimdev/backend-server-effect-sub000/x/post"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	GetByName(c echo.Context) error
	List(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	ListByPost(c echo.Context) error
	ConnectPost(c echo.Context) error
	DisconnectPost(c echo.Context) error
	ListByChallenge(c echo.Context) error
	ConnectChallenge(c echo.Context) error
	DisconnectChallenge(c echo.Context) error
}

type handler struct {
	service Service
	policy  Policy
}

// NewHandler creates a new tag handler
func NewHandler(service Service, policy Policy) Handler {
	return &handler{service, policy}
}

func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Tag.Handler.Create")
	defer span.End()

	var request CreateInput
	if err := c.Bind(&request); err != nil {
		return core.ErrorResponse(c, core.NewErrorBadRequest(err.Error()))
	}
	if err := c.Validate(&request); err != nil {
		return core.ErrorResponse(c, err)
	}

	tag, err := policy.Grant(h.policy.CanCreate(), func(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Create]) (core.Tag, error) {
		return h.service.Create(ctx, actor, request)
	})(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, tag)
}

func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Tag.Handler.Get")
	defer span.End()

	tag, err := h.service.Get(ctx, c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, tag)
}

func (h handler) GetByName(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Tag.Handler.GetByName")
	defer span.End()

	tag, err := h.service.GetByName(ctx, c.Param("name"))
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, tag)
}

func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Tag.Handler.List")
	defer span.End()

	page := core.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"))

	tags, err := h.service.List(ctx, page)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, tags)
}

func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Tag.Handler.Update")
	defer span.End()

	id := c.Param("id")

	var request UpdateInput
	if err := c.Bind(&request); err != nil {
		return core.ErrorResponse(c, core.NewErrorBadRequest(err.Error()))
	}
	if err := c.Validate(&request); err != nil {
		return core.ErrorResponse(c, err)
	}

	actor, err := h.policy.CanUpdate()(ctx)
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
	ctx, span := tracer.Start(c.Request().Context(), "Tag.Handler.Delete")
	defer span.End()

	id := c.Param("id")

	actor, err := h.policy.CanDelete()(ctx)
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

func (h handler) ListByPost(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Tag.Handler.ListByPost")
	defer span.End()

	postID := c.Param("id")

	tags, err := policy.Use(h.policy.CanReadPost(postID), func(ctx context.Context) ([]core.Tag, error) {
		return h.service.ListByPost(ctx, postID)
	})(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, tags)
}

func (h handler) ConnectPost(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Tag.Handler.ConnectPost")
	defer span.End()

	postID := c.Param("id")

	var request ConnectInput
	if err := c.Bind(&request); err != nil {
		return core.ErrorResponse(c, core.NewErrorBadRequest(err.Error()))
	}
	if err := c.Validate(&request); err != nil {
		return core.ErrorResponse(c, err)
	}

	tag, err := policy.Grant(h.policy.CanTagPost(postID), func(ctx context.Context, actor policy.AuthorizedActor[post.Entity, policy.Update]) (core.Tag, error) {
		return h.service.ConnectPost(ctx, actor, postID, request)
	})(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusCreated, tag)
}

func (h handler) DisconnectPost(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Tag.Handler.DisconnectPost")
	defer span.End()

	postID := c.Param("id")
	tagID := c.Param("tagId")

	actor, err := h.policy.CanTagPost(postID)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	if err := h.service.DisconnectPost(ctx, actor, postID, tagID); err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, echo.Map{"id": tagID})
}

func (h handler) ListByChallenge(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Tag.Handler.ListByChallenge")
	defer span.End()

	challengeID := c.Param("id")

	tags, err := policy.Use(h.policy.CanReadChallenge(challengeID), func(ctx context.Context) ([]core.Tag, error) {
		return h.service.ListByChallenge(ctx, challengeID)
	})(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, tags)
}

func (h handler) ConnectChallenge(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Tag.Handler.ConnectChallenge")
	defer span.End()

	challengeID := c.Param("id")

	var request ConnectInput
	if err := c.Bind(&request); err != nil {
		return core.ErrorResponse(c, core.NewErrorBadRequest(err.Error()))
	}
	if err := c.Validate(&request); err != nil {
		return core.ErrorResponse(c, err)
	}

	tag, err := policy.Grant(h.policy.CanTagChallenge(challengeID), func(ctx context.Context, actor policy.AuthorizedActor[challenge.Entity, policy.Update]) (core.Tag, error) {
		return h.service.ConnectChallenge(ctx, actor, challengeID, request)
	})(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusCreated, tag)
}

func (h handler) DisconnectChallenge(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Tag.Handler.DisconnectChallenge")
	defer span.End()

	challengeID := c.Param("id")
	tagID := c.Param("tagId")

	actor, err := h.policy.CanTagChallenge(challengeID)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	if err := h.service.DisconnectChallenge(ctx, actor, challengeID, tagID); err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, echo.Map{"id": tagID})
}
