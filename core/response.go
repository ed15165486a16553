package core

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type ResponseBase[T any] struct {
	Status  string `json:"status"`
	Content T      `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
	Detail  any    `json:"detail,omitempty"`
}

type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// StatusOf maps an error kind to its HTTP status
func StatusOf(err error) int {
	var unauthenticated ErrorUnauthenticated
	var unauthorized ErrorUnauthorized
	var notFound ErrorNotFound
	var exists ErrorAlreadyExists
	var deleted ErrorAlreadyDeleted
	var badRequest ErrorBadRequest
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &unauthenticated):
		return http.StatusUnauthorized
	case errors.As(err, &unauthorized):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &exists):
		return http.StatusConflict
	case errors.As(err, &deleted):
		return http.StatusGone
	case errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.As(err, &httpErr):
		return httpErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse writes err with the status of its kind.
// Denials carry their structured fields in detail.
func ErrorResponse(c echo.Context, err error) error {
	res := ResponseBase[any]{Status: "error", Error: err.Error()}

	var unauthorized ErrorUnauthorized
	if errors.As(err, &unauthorized) {
		res.Detail = unauthorized
	}

	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		res.Error = "internal server error"
	}

	return c.JSON(status, res)
}

func OK[T any](c echo.Context, status int, content T) error {
	return c.JSON(status, ResponseBase[T]{Status: "ok", Content: content})
}
