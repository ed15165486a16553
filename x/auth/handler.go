package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/jwt"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	SignOut(c echo.Context) error
}

type handler struct {
	service Service
}

// NewHandler creates a new auth handler
func NewHandler(service Service) Handler {
	return &handler{service}
}

// SignOut revokes the bearer token of the request
func (h handler) SignOut(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Auth.Handler.SignOut")
	defer span.End()

	claims, ok := c.Get(core.RequesterClaimsKey).(jwt.Claims)
	if !ok {
		return core.ErrorResponse(c, core.NewErrorUnauthenticated("no token to revoke"))
	}

	if err := h.service.SignOut(ctx, claims); err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return core.OK(c, http.StatusOK, echo.Map{"signedOut": true})
}
