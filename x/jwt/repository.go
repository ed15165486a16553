//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package jwt

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Repository stores revoked token ids in redis
type Repository interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
	Revoke(ctx context.Context, jti, owner string, ttl time.Duration) error
}

type repository struct {
	rdb *redis.Client
}

// NewRepository creates a new jwt repository
func NewRepository(rdb *redis.Client) Repository {
	return &repository{rdb}
}

func revokedKey(jti string) string {
	return "revoked_jti:" + jti
}

func (r *repository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Jwt.Repository.IsRevoked")
	defer span.End()

	_, err := r.rdb.Get(ctx, revokedKey(jti)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	return true, nil
}

// Revoke marks jti as revoked for ttl. The value records which account gave the token up.
func (r *repository) Revoke(ctx context.Context, jti, owner string, ttl time.Duration) error {
	ctx, span := tracer.Start(ctx, "Jwt.Repository.Revoke")
	defer span.End()

	err := r.rdb.SetNX(ctx, revokedKey(jti), owner, ttl).Err()
	if err != nil {
		span.RecordError(err)
	}
	return err
}
