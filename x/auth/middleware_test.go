package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/internal/testutil"
	"github.com/soheekimdev/backend-server-effect-sub000/x/account/mock"
	"github.com/soheekimdev/backend-server-effect-sub000/x/jwt"
	"github.com/soheekimdev/backend-server-effect-sub000/x/jwt/mock"
)

const (
	User1ID = "cr6kq1s0000000000001"
	Admin1  = "cr6kq1s0000000000002"
)

var config = core.Config{
	FQDN:      "challenge.example.com",
	JWTSecret: "test-secret",
	TokenTTL:  time.Hour,
}

func issueToken(t *testing.T, issuer, jti string) string {
	t.Helper()

	token, err := jwt.Create(jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        jti,
			Issuer:    issuer,
			Subject:   jwt.SubjectAccess,
			Audience:  gojwt.ClaimStrings{config.FQDN},
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, config.JWTSecret)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func TestIdentifyIdentity(t *testing.T) {

	checker := testutil.SetupMockTraceProvider()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccount := mock_account.NewMockRepository(ctrl)
	mockAccount.EXPECT().Get(gomock.Any(), User1ID).Return(core.Account{
		ID:    User1ID,
		Email: "alice@example.com",
		Role:  core.RoleUser,
	}, nil)

	mockJwt := mock_jwt.NewMockService(ctrl)
	mockJwt.EXPECT().IsRevoked(gomock.Any(), "jti1").Return(false, nil)

	service := NewService(config, mockAccount, mockJwt)

	c, req, rec, traceID := testutil.CreateHttpRequest(http.MethodGet, "/", "")
	req.Header.Set("Authorization", "Bearer "+issueToken(t, User1ID, "jti1"))

	var bound core.Actor
	h := service.IdentifyIdentity(func(c echo.Context) error {
		actor, err := core.CurrentActor(c.Request().Context())
		bound = actor
		return err
	})

	err := h(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, User1ID, bound.ID)
		assert.Equal(t, core.RoleUser, bound.Role)
		assert.Equal(t, bound, c.Get(core.RequesterActorCtxKey))
		claims, ok := c.Get(core.RequesterClaimsKey).(jwt.Claims)
		if assert.True(t, ok) {
			assert.Equal(t, "jti1", claims.ID)
		}
		assert.Nil(t, c.Get(core.CaptchaVerifiedKey))
	}

	testutil.PrintSpans(checker.GetSpans(), traceID)
}

func TestIdentifyIdentityAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(config, mock_account.NewMockRepository(ctrl), mock_jwt.NewMockService(ctrl))

	c, _, _, _ := testutil.CreateHttpRequest(http.MethodGet, "/", "")

	called := false
	h := service.IdentifyIdentity(func(c echo.Context) error {
		called = true
		_, ok := core.ActorFromContext(c.Request().Context())
		assert.False(t, ok)
		return nil
	})

	assert.NoError(t, h(c))
	assert.True(t, called)
}

func TestIdentifyIdentityRejectsBadTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJwt := mock_jwt.NewMockService(ctrl)
	mockJwt.EXPECT().IsRevoked(gomock.Any(), "revoked").Return(true, nil)

	service := NewService(config, mock_account.NewMockRepository(ctrl), mockJwt)

	forged, err := jwt.Create(jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:   User1ID,
			Subject:  jwt.SubjectAccess,
			Audience: gojwt.ClaimStrings{config.FQDN},
		},
	}, "another-secret")
	assert.NoError(t, err)

	headers := []string{
		"Bearer " + forged,
		"Bearer " + issueToken(t, User1ID, "revoked"),
		"Basic dXNlcjpwYXNz",
		"Bearer",
	}

	for _, header := range headers {
		c, req, rec, _ := testutil.CreateHttpRequest(http.MethodGet, "/", "")
		req.Header.Set("Authorization", header)

		h := service.IdentifyIdentity(func(c echo.Context) error {
			t.Errorf("next must not run for %q", header)
			return nil
		})

		assert.NoError(t, h(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestIdentifyIdentityDeletedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccount := mock_account.NewMockRepository(ctrl)
	mockAccount.EXPECT().Get(gomock.Any(), User1ID).Return(core.Account{}, core.NewErrorNotFound("account", User1ID))

	mockJwt := mock_jwt.NewMockService(ctrl)
	mockJwt.EXPECT().IsRevoked(gomock.Any(), "jti1").Return(false, nil)

	service := NewService(config, mockAccount, mockJwt)

	c, req, rec, _ := testutil.CreateHttpRequest(http.MethodGet, "/", "")
	req.Header.Set("Authorization", "Bearer "+issueToken(t, User1ID, "jti1"))

	h := service.IdentifyIdentity(func(c echo.Context) error {
		return nil
	})

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRestrict(t *testing.T) {
	testcases := []struct {
		name      string
		principal Principal
		actor     *core.Actor
		expected  int
	}{
		{"anonymous known", ISKNOWN, nil, http.StatusUnauthorized},
		{"user known", ISKNOWN, &core.Actor{ID: User1ID, Role: core.RoleUser}, http.StatusOK},
		{"user admin", ISADMIN, &core.Actor{ID: User1ID, Role: core.RoleUser}, http.StatusForbidden},
		{"admin admin", ISADMIN, &core.Actor{ID: Admin1, Role: core.RoleAdmin}, http.StatusOK},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			c, req, rec, _ := testutil.CreateHttpRequest(http.MethodGet, "/", "")
			if tc.actor != nil {
				c.SetRequest(req.WithContext(core.WithActor(req.Context(), *tc.actor)))
			}

			h := Restrict(tc.principal)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			assert.NoError(t, h(c))
			assert.Equal(t, tc.expected, rec.Code)
		})
	}
}

func TestRestrictAdminDenial(t *testing.T) {
	c, req, rec, _ := testutil.CreateHttpRequest(http.MethodPatch, "/api/tags/t1", "")
	c.SetRequest(req.WithContext(core.WithActor(req.Context(), core.Actor{ID: User1ID, Role: core.RoleUser})))
	c.SetPath("/api/tags/:id")

	h := Restrict(ISADMIN)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body core.ResponseBase[any]
	if assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)) {
		assert.Equal(t, "error", body.Status)
		detail, ok := body.Detail.(map[string]any)
		if assert.True(t, ok) {
			assert.Equal(t, User1ID, detail["actorId"])
			assert.Equal(t, "/api/tags/:id", detail["entity"])
			assert.Equal(t, "patch", detail["action"])
			assert.Equal(t, "admin role required", detail["reason"])
		}
	}
}

type fakeVerifier struct {
	valid string
}

func (f fakeVerifier) Verify(response string) error {
	if response != f.valid {
		return errors.New("invalid captcha")
	}
	return nil
}

func TestRequireCaptcha(t *testing.T) {
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	c, _, rec, _ := testutil.CreateHttpRequest(http.MethodPost, "/", "")
	assert.NoError(t, RequireCaptcha(nil)(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	verifier := fakeVerifier{valid: "ok"}

	c, _, rec, _ = testutil.CreateHttpRequest(http.MethodPost, "/", "")
	assert.NoError(t, RequireCaptcha(verifier)(next)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, req, rec, _ := testutil.CreateHttpRequest(http.MethodPost, "/", "")
	req.Header.Set(core.CaptchaHeader, "wrong")
	assert.NoError(t, RequireCaptcha(verifier)(next)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, req, rec, _ = testutil.CreateHttpRequest(http.MethodPost, "/", "")
	req.Header.Set(core.CaptchaHeader, "ok")
	assert.NoError(t, RequireCaptcha(verifier)(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, c.Get(core.CaptchaVerifiedKey))
}

func TestSignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        "jti1",
			Issuer:    User1ID,
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour).Truncate(time.Second)),
		},
	}

	mockJwt := mock_jwt.NewMockService(ctrl)
	mockJwt.EXPECT().Revoke(gomock.Any(), claims).Return(nil)

	service := NewService(config, mock_account.NewMockRepository(ctrl), mockJwt)
	handler := NewHandler(service)

	c, _, rec, _ := testutil.CreateHttpRequest(http.MethodPost, "/", "")
	assert.NoError(t, handler.SignOut(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, _, rec, _ = testutil.CreateHttpRequest(http.MethodPost, "/", "")
	c.Set(core.RequesterClaimsKey, claims)
	assert.NoError(t, handler.SignOut(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
