package api

import (
	"errors"
	"net/http"

	reqdto "lounge-pos/internal/handler/dto/request"
	resdto "lounge-pos/internal/handler/dto/response"
	"lounge-pos/internal/handler/httperr"
	"lounge-pos/internal/handler/middleware"
	"lounge-pos/internal/pkg/config"
	"lounge-pos/internal/pkg/cookie"
	"lounge-pos/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errNoOperator = errors.New("operator missing from context")

type AuthHandler struct {
	cmds      commands.AuthCommands
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Operator login
// @Description Sign in with the lounge admin account. The token is also set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, result.AccessToken, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		Operator:    result.Operator,
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
	})
}

// @Summary Operator logout
// @Description Clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; signing out drops the cookie
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current operator
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	operator, ok := middleware.GetOperator(c)
	if !ok {
		httperr.AbortWithError(c, errNoOperator, httperr.New(http.StatusUnauthorized, httperr.CodeUnauthorized, "Unauthorized"))
		return
	}
	c.JSON(http.StatusOK, resdto.MeResponse{Operator: operator})
}
