package comment

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
	ListByPost(c echo.Context) error
	Get(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	Like(c echo.Context) error
	Dislike(c echo.Context) error
	RemoveLike(c echo.Context) error
	Reactions(c echo.Context) error
}

type handler struct {
	service Service
	policy  Policy
}

// NewHandler creates a new comment handler
func NewHandler(service Service, policy Policy) Handler {
	return &handler{service, policy}
}

func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Comment.Handler.Create")
	defer span.End()

	postID := c.Param("postId")

	var request CreateInput
	if err := c.Bind(&request); err != nil {
		return core.ErrorResponse(c, core.NewErrorBadRequest(err.Error()))
	}
	if err := c.Validate(&request); err != nil {
		return core.ErrorResponse(c, err)
	}

	created, err := policy.Grant(h.policy.CanCreate(postID), func(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Create]) (core.Comment, error) {
		return h.service.Create(ctx, actor, postID, request)
	})(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusCreated, created)
}

func (h handler) ListByPost(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Comment.Handler.ListByPost")
	defer span.End()

	postID := c.Param("postId")
	page := core.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"))

	actor, err := h.policy.CanList(postID)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	comments, err := h.service.ListByPost(ctx, actor, postID, page)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, comments)
}

func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Comment.Handler.Get")
	defer span.End()

	id := c.Param("id")

	actor, err := h.policy.CanRead(id)(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	comment, err := h.service.Get(ctx, actor, id)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, comment)
}

func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Comment.Handler.Update")
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
	ctx, span := tracer.Start(c.Request().Context(), "Comment.Handler.Delete")
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

func (h handler) react(c echo.Context, name string, op func(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error)) error {
	ctx, span := tracer.Start(c.Request().Context(), "Comment.Handler."+name)
	defer span.End()

	id := c.Param("id")

	counts, err := policy.Grant(h.policy.CanLike(id), func(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like]) (like.Counts, error) {
		return op(ctx, actor, id)
	})(ctx)
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

func (h handler) Reactions(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Comment.Handler.Reactions")
	defer span.End()

	id := c.Param("id")

	counts, err := policy.Use(h.policy.CanRead(id), func(ctx context.Context) (like.Counts, error) {
		return h.service.Reactions(ctx, id)
	})(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, counts)
}
