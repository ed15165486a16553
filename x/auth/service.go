//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package auth

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/account"
	"github.com/soheekimdev/backend-server-effect-sub000/x/jwt"
)

var tracer = otel.Tracer("auth")

// Service is the interface for auth service
type Service interface {
	IdentifyIdentity(next echo.HandlerFunc) echo.HandlerFunc
	SignOut(ctx context.Context, claims jwt.Claims) error
}

type service struct {
	config  core.Config
	account account.Repository
	jwt     jwt.Service
}

// NewService creates a new auth service
func NewService(config core.Config, account account.Repository, jwt jwt.Service) Service {
	return &service{config, account, jwt}
}

// SignOut invalidates the token until it would have expired anyway
func (s *service) SignOut(ctx context.Context, claims jwt.Claims) error {
	ctx, span := tracer.Start(ctx, "Auth.Service.SignOut")
	defer span.End()

	if claims.ID == "" || claims.ExpiresAt == nil {
		return core.NewErrorUnauthenticated("token cannot be revoked")
	}

	err := s.jwt.Revoke(ctx, claims)
	if err != nil {
		span.RecordError(err)
		return err
	}

	slog.InfoContext(
		ctx, "signed out",
		slog.String("module", "auth"),
		slog.String("account", claims.Issuer),
	)

	return nil
}
