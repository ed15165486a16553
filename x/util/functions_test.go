package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
)

func TestPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not a hash", "wrong"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold([]string{"Admin@example.com"}, "admin@example.com"))
	assert.False(t, ContainsFold(nil, "admin@example.com"))
}

type validateTarget struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestValidator(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(validateTarget{Email: "user@example.com", Password: "12345678"}))

	err := v.Validate(validateTarget{Email: "nope", Password: "1"})
	var badRequest core.ErrorBadRequest
	assert.ErrorAs(t, err, &badRequest)
}
