package auth

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/jwt"
)

// IdentifyIdentity binds the account behind a bearer token to the request context.
// Requests without an authorization header pass through anonymously.
func (s *service) IdentifyIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.IdentifyIdentity")
		defer span.End()

		authHeader := c.Request().Header.Get(authorizationHeader)
		if authHeader == "" {
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}

		split := strings.Split(authHeader, " ")
		if len(split) != 2 || split[0] != "Bearer" {
			err := core.NewErrorUnauthenticated("invalid authorization header")
			span.RecordError(err)
			return core.ErrorResponse(c, err)
		}

		claims, err := jwt.Validate(split[1], s.config.JWTSecret)
		if err != nil {
			span.RecordError(err)
			return core.ErrorResponse(c, core.NewErrorUnauthenticated(err.Error()))
		}

		if s.config.FQDN != "" && !contains(claims.Audience, s.config.FQDN) {
			err := core.NewErrorUnauthenticated("token is not for this server")
			span.RecordError(err)
			return core.ErrorResponse(c, err)
		}

		revoked, err := s.jwt.IsRevoked(ctx, claims.ID)
		if err != nil {
			span.RecordError(err)
			return core.ErrorResponse(c, err)
		}
		if revoked {
			err := core.NewErrorUnauthenticated("token has been revoked")
			span.RecordError(err)
			return core.ErrorResponse(c, err)
		}

		requester, err := s.account.Get(ctx, claims.Issuer)
		if err != nil {
			span.RecordError(err)
			return core.ErrorResponse(c, core.NewErrorUnauthenticated(fmt.Sprintf("account %s is not available", claims.Issuer)))
		}

		actor := requester.Actor()
		span.SetAttributes(
			attribute.String("RequesterID", actor.ID),
			attribute.String("RequesterRole", actor.Role),
		)

		ctx = core.WithActor(ctx, actor)
		c.Set(core.RequesterActorCtxKey, actor)
		c.Set(core.RequesterClaimsKey, claims)

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// Restrict rejects requests whose actor does not hold principal
func Restrict(principal Principal) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.Restrict")
			defer span.End()

			actor, err := core.CurrentActor(ctx)
			if err != nil {
				span.RecordError(err)
				return core.ErrorResponse(c, err)
			}

			if principal == ISADMIN && !actor.IsAdmin() {
				err := core.NewErrorUnauthorized(actor.ID, c.Path(), strings.ToLower(c.Request().Method), "admin role required")
				span.RecordError(err)
				return core.ErrorResponse(c, err)
			}

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}
