package core

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, StatusOf(NewErrorUnauthenticated("")))
	assert.Equal(t, http.StatusForbidden, StatusOf(NewErrorUnauthorized("u1", "post", "update", "")))
	assert.Equal(t, http.StatusNotFound, StatusOf(NewErrorNotFound("post", "p1")))
	assert.Equal(t, http.StatusConflict, StatusOf(NewErrorAlreadyExists("account")))
	assert.Equal(t, http.StatusGone, StatusOf(NewErrorAlreadyDeleted()))
	assert.Equal(t, http.StatusBadRequest, StatusOf(NewErrorBadRequest("bad")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))

	// kind survives wrapping
	wrapped := errors.Wrap(NewErrorNotFound("post", "p1"), "failed to load post")
	assert.Equal(t, http.StatusNotFound, StatusOf(wrapped))
}

func TestErrorResponseCarriesDenialDetail(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := ErrorResponse(c, NewErrorUnauthorized("u1", "post", "update", "not the author"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"actorId":"u1"`)
	assert.Contains(t, rec.Body.String(), `"entity":"post"`)
	assert.Contains(t, rec.Body.String(), `"action":"update"`)
}

func TestErrorResponseHidesInternalErrors(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := ErrorResponse(c, errors.New("dial tcp 10.0.0.1:5432: connection refused"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.1")
}
