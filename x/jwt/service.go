//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package jwt

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("jwt")

// Service is the interface for jwt revocation service
type Service interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
	Revoke(ctx context.Context, claims Claims) error
}

type service struct {
	repository Repository
	now        func() time.Time
}

// NewService creates a new jwt service
func NewService(repository Repository) Service {
	return &service{repository, time.Now}
}

// IsRevoked reports whether the token with jti was signed out
func (s *service) IsRevoked(ctx context.Context, jti string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Jwt.Service.IsRevoked")
	defer span.End()

	return s.repository.IsRevoked(ctx, jti)
}

// Revoke keeps the token revoked until it would have expired anyway.
// Tokens without an expiry are revoked for a day.
func (s *service) Revoke(ctx context.Context, claims Claims) error {
	ctx, span := tracer.Start(ctx, "Jwt.Service.Revoke")
	defer span.End()

	ttl := 24 * time.Hour
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(s.now())
		if ttl <= 0 {
			return nil
		}
	}

	return s.repository.Revoke(ctx, claims.ID, claims.Issuer, ttl)
}
