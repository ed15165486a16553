package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRevoke(t *testing.T) {
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("miniredis unavailable: %v", err)
	}
	defer srv.Close()

	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer rdb.Close()

	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := &service{repository: NewRepository(rdb), now: func() time.Time { return now }}

	revoked, err := s.IsRevoked(ctx, "jti1")
	assert.NoError(t, err)
	assert.False(t, revoked)

	err = s.Revoke(ctx, Claims{RegisteredClaims: gojwt.RegisteredClaims{
		ID:        "jti1",
		Issuer:    "account1",
		ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
	}})
	assert.NoError(t, err)

	revoked, err = s.IsRevoked(ctx, "jti1")
	assert.NoError(t, err)
	assert.True(t, revoked)

	owner, err := srv.Get("revoked_jti:jti1")
	assert.NoError(t, err)
	assert.Equal(t, "account1", owner)

	// revocation lives only as long as the token would have
	srv.FastForward(2 * time.Hour)
	revoked, err = s.IsRevoked(ctx, "jti1")
	assert.NoError(t, err)
	assert.False(t, revoked)

	// already expired tokens are not stored
	err = s.Revoke(ctx, Claims{RegisteredClaims: gojwt.RegisteredClaims{
		ID:        "jti2",
		ExpiresAt: gojwt.NewNumericDate(now.Add(-time.Minute)),
	}})
	assert.NoError(t, err)
	assert.False(t, srv.Exists("revoked_jti:jti2"))

	err = s.Revoke(ctx, Claims{RegisteredClaims: gojwt.RegisteredClaims{ID: "jti3"}})
	assert.NoError(t, err)
	assert.Equal(t, 24*time.Hour, srv.TTL("revoked_jti:jti3"))
}
