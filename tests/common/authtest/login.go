//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"lounge-pos/internal/handler/dto/request"
	"lounge-pos/internal/pkg/cookie"
	"lounge-pos/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginOperator signs in and returns the session cookie.
func LoginOperator(t *testing.T, router *gin.Engine, username, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie, "session cookie not found")
	require.NotEmpty(t, sessionCookie.Value, "session cookie is empty")

	return sessionCookie
}

func LogoutOperator(t *testing.T, router *gin.Engine, sessionCookie *http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil,
		[]*http.Cookie{sessionCookie}, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
