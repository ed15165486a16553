package post

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	Like(c echo.Context) error
	Dislike(c echo.Context) error
	RemoveLike(c echo.Context) error
}

type handler struct {
	service Service
	policy  Policy
}

// NewHandler creates a new post handler
func NewHandler(service Service, policy Policy) Handler {
	return &handler{service, policy}
}

func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Post.Handler.Create")
	defer span.End()

	var request CreateInput
	if err := c.Bind(&request); err != nil {
		return core.ErrorResponse(c, core.NewErrorBadRequest(err.Error()))
	}
	if err := c.Validate(&request); err != nil {
		return core.ErrorResponse(c, err)
	}

	actor, err := h.policy.CanCreate(request.Type)(ctx)
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
	ctx, span := tracer.Start(c.Request().Context(), "Post.Handler.Get")
	defer span.End()

	id := c.Param("id")

	actor, err := h.policy.CanRead(id)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	post, err := h.service.Get(ctx, actor, id)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, post)
}

func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Post.Handler.List")
	defer span.End()

	filter := ListFilter{
		AccountID:   c.QueryParam("accountId"),
		ChallengeID: c.QueryParam("challengeId"),
	}
	page := core.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"))

	posts, err := h.service.List(ctx, filter, page)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, posts)
}

func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Post.Handler.Update")
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
	ctx, span := tracer.Start(c.Request().Context(), "Post.Handler.Delete")
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

func (h handler) Like(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Post.Handler.Like")
	defer span.End()

	id := c.Param("id")

	actor, err := h.policy.CanLike(id)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	counts, err := h.service.Like(ctx, actor, id)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, counts)
}

func (h handler) Dislike(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Post.Handler.Dislike")
	defer span.End()

	id := c.Param("id")

	actor, err := h.policy.CanLike(id)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	counts, err := h.service.Dislike(ctx, actor, id)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, counts)
}

func (h handler) RemoveLike(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Post.Handler.RemoveLike")
	defer span.End()

	id := c.Param("id")

	actor, err := h.policy.CanLike(id)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	counts, err := h.service.RemoveLike(ctx, actor, id)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, counts)
}
