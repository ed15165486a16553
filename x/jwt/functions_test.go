package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const secret = "unittest-secret"

func newClaims(ttl time.Duration) Claims {
	return Claims{
		Email: "user1@example.com",
		Role:  "user",
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    "example.com",
			Subject:   SubjectAccess,
			Audience:  gojwt.ClaimStrings{"example.com"},
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  gojwt.NewNumericDate(time.Now()),
			ID:        "cnb8q1p6n88ds2ibqvdg",
		},
	}
}

func TestCreateAndValidate(t *testing.T) {
	claims := newClaims(time.Hour)
	claims.RegisteredClaims.ID = "jti1"

	token, err := Create(claims, secret)
	if !assert.NoError(t, err) {
		return
	}

	validated, err := Validate(token, secret)
	if assert.NoError(t, err) {
		assert.Equal(t, "jti1", validated.ID)
		assert.Equal(t, "user1@example.com", validated.Email)
		assert.Equal(t, "user", validated.Role)
	}
}

func TestValidateRejects(t *testing.T) {
	token, err := Create(newClaims(time.Hour), secret)
	assert.NoError(t, err)

	_, err = Validate(token, "another-secret")
	assert.Error(t, err)

	expired, err := Create(newClaims(-time.Hour), secret)
	assert.NoError(t, err)
	_, err = Validate(expired, secret)
	assert.Error(t, err)

	other := newClaims(time.Hour)
	other.Subject = "SOMETHING_ELSE"
	wrongSubject, err := Create(other, secret)
	assert.NoError(t, err)
	_, err = Validate(wrongSubject, secret)
	assert.Error(t, err)

	_, err = Validate("not.a.jwt", secret)
	assert.Error(t, err)
}

func TestCreateWithoutSecret(t *testing.T) {
	_, err := Create(newClaims(time.Hour), "")
	assert.Error(t, err)
}
