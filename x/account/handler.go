package account

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	SignUp(c echo.Context) error
	SignIn(c echo.Context) error
	Me(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	service Service
	policy  Policy
}

// NewHandler creates a new account handler
func NewHandler(service Service, policy Policy) Handler {
	return &handler{service, policy}
}

// SignUp registers a new account as the system actor
func (h handler) SignUp(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Account.Handler.SignUp")
	defer span.End()

	var request signUpRequest
	if err := c.Bind(&request); err != nil {
		return core.ErrorResponse(c, core.NewErrorBadRequest(err.Error()))
	}
	if err := c.Validate(&request); err != nil {
		return core.ErrorResponse(c, err)
	}

	created, err := policy.WithSystemActor(func(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Create]) (core.Account, error) {
		return h.service.SignUp(ctx, actor, SignUpInput{
			Email:    request.Email,
			Password: request.Password,
			Username: request.Username,
		})
	})(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusCreated, created)
}

// SignIn exchanges credentials for an access token
func (h handler) SignIn(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Account.Handler.SignIn")
	defer span.End()

	var request signInRequest
	if err := c.Bind(&request); err != nil {
		return core.ErrorResponse(c, core.NewErrorBadRequest(err.Error()))
	}
	if err := c.Validate(&request); err != nil {
		return core.ErrorResponse(c, err)
	}

	result, err := policy.WithSystemActor(func(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read]) (SignInResult, error) {
		return h.service.SignIn(ctx, actor, request.Email, request.Password)
	})(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, result)
}

func (h handler) Me(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Account.Handler.Me")
	defer span.End()

	account, err := h.service.Me(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, account)
}

func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Account.Handler.Get")
	defer span.End()

	id := c.Param("id")
	account, err := policy.Grant(h.policy.CanRead(id), func(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read]) (core.Account, error) {
		return h.service.Get(ctx, actor, id)
	})(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, account)
}

func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Account.Handler.List")
	defer span.End()

	page := core.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"))
	accounts, err := h.service.List(ctx, page)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, accounts)
}

func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Account.Handler.Update")
	defer span.End()

	id := c.Param("id")

	var request UpdateInput
	if err := c.Bind(&request); err != nil {
		return core.ErrorResponse(c, core.NewErrorBadRequest(err.Error()))
	}
	if err := c.Validate(&request); err != nil {
		return core.ErrorResponse(c, err)
	}

	updated, err := policy.Grant(h.policy.CanUpdate(id), func(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Update]) (core.Account, error) {
		return h.service.Update(ctx, actor, id, request)
	})(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, updated)
}

func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Account.Handler.Delete")
	defer span.End()

	id := c.Param("id")
	_, err := policy.Grant(h.policy.CanDelete(id), func(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Delete]) (struct{}, error) {
		return struct{}{}, h.service.Delete(ctx, actor, id)
	})(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, echo.Map{"id": id})
}
