package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"lounge-pos/internal/handler/httperr"
	"lounge-pos/internal/pkg/cookie"
	"lounge-pos/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxOperatorKey = "operator"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth gates every mutating route behind a signed-in operator. The
// session cookie wins over an Authorization header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if rest, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
				token = strings.TrimSpace(rest)
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				httperr.New(http.StatusUnauthorized, httperr.CodeUnauthorized, "Access token required"))
			return
		}

		operator, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				httperr.New(http.StatusUnauthorized, "TOKEN_INVALID", "Invalid or expired token"))
			return
		}

		c.Set(ctxOperatorKey, operator)
		c.Next()
	}
}

func GetOperator(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxOperatorKey)
	if !exists {
		return "", false
	}

	operator, ok := v.(string)
	return operator, ok
}
