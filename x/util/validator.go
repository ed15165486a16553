package util

import (
	"github.com/go-playground/validator/v10"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
)

// Validator adapts go-playground/validator to echo.Validator
type Validator struct {
	validator *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validator: validator.New()}
}

// Validate checks struct tags and reports failures as core.ErrorBadRequest
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return core.NewErrorBadRequest(err.Error())
	}
	return nil
}
