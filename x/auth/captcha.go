package auth

import (
	"github.com/labstack/echo/v4"
	"github.com/xinguang/go-recaptcha"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
)

// CaptchaVerifier checks a captcha response token
type CaptchaVerifier interface {
	Verify(response string) error
}

// NewCaptchaVerifier returns a reCAPTCHA verifier, or nil when no secret is configured
func NewCaptchaVerifier(config core.Config) (CaptchaVerifier, error) {
	if config.CaptchaSecret == "" {
		return nil, nil
	}

	verifier, err := recaptcha.NewWithSecert(config.CaptchaSecret)
	if err != nil {
		return nil, err
	}
	return verifier, nil
}

// RequireCaptcha rejects requests without a valid captcha header.
// A nil verifier disables the check.
func RequireCaptcha(verifier CaptchaVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if verifier == nil {
				return next(c)
			}

			ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.RequireCaptcha")
			defer span.End()

			response := c.Request().Header.Get(core.CaptchaHeader)
			if response == "" {
				return core.ErrorResponse(c, core.NewErrorBadRequest("captcha is required"))
			}

			if err := verifier.Verify(response); err != nil {
				span.RecordError(err)
				return core.ErrorResponse(c, core.NewErrorBadRequest("captcha verification failed"))
			}

			c.Set(core.CaptchaVerifiedKey, true)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
