//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"storefront-cart/internal/handler/middleware"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/pkg/userkey"
	"storefront-cart/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	userID uuid.UUID
	err    error
}

func (v stubValidator) ValidateToken(string) (uuid.UUID, error) {
	return v.userID, v.err
}

func newIdentityRouter(v stubValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Config{Cookie: config.CookieConfig{SameSite: "lax"}}
	m := middleware.NewIdentityMiddleware(v, cfg)
	router := gin.New()
	router.GET("/whoami", m.Resolve(), func(c *gin.Context) {
		key, ok := middleware.GetCartKey(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, key)
	})
	return router
}

func TestIdentityResolve_AuthenticatedToken(t *testing.T) {
	userID := uuid.New()
	router := newIdentityRouter(stubValidator{userID: userID})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil,
		&http.Cookie{Name: "access_token", Value: "valid-token"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userkey.ForUser(userID), rec.Body.String())
	assert.Nil(t, httptest.ExtractCookie(rec, "guest_id"), "authenticated requests must not mint a guest identity")
}

func TestIdentityResolve_NewGuestGetsCookie(t *testing.T) {
	router := newIdentityRouter(stubValidator{err: errs.New("no token")})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	issued := httptest.ExtractCookie(rec, "guest_id")
	require.NotNil(t, issued)
	guestID, err := uuid.Parse(issued.Value)
	require.NoError(t, err)
	assert.Equal(t, userkey.ForGuest(guestID), rec.Body.String())
	assert.True(t, issued.HttpOnly)
}

func TestIdentityResolve_ReturningGuestKeepsKey(t *testing.T) {
	router := newIdentityRouter(stubValidator{err: errs.New("no token")})
	guestID := uuid.New()

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil,
		&http.Cookie{Name: "guest_id", Value: guestID.String()})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userkey.ForGuest(guestID), rec.Body.String())
	assert.Nil(t, httptest.ExtractCookie(rec, "guest_id"), "existing guest identity must not be reissued")
}

func TestIdentityResolve_InvalidTokenFallsBackToGuest(t *testing.T) {
	router := newIdentityRouter(stubValidator{err: errs.New("token expired")})
	guestID := uuid.New()

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil,
		&http.Cookie{Name: "access_token", Value: "expired"},
		&http.Cookie{Name: "guest_id", Value: guestID.String()})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userkey.ForGuest(guestID), rec.Body.String())
}

func TestIdentityResolve_BearerHeader(t *testing.T) {
	userID := uuid.New()
	router := newIdentityRouter(stubValidator{userID: userID})

	req := nethttptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := nethttptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userkey.ForUser(userID), w.Body.String())
}
