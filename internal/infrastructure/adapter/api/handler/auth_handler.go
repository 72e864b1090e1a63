package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/domain/port/service"
	"github.com/csmqbusy/personal-finances/internal/domain/port/usecase"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/dto"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/middleware"
)

// CookieOptions configures the access token cookie
type CookieOptions struct {
	Name   string
	Secure bool
}

// AuthHandler handles sign-up, sign-in and profile requests
type AuthHandler struct {
	auth         usecase.AuthUseCase
	cookie       CookieOptions
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	auth usecase.AuthUseCase,
	cookie CookieOptions,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		cookie:       cookie,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// SignUp handles POST /auth/sign-up
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.auth.SignUp(c.Request.Context(), usecase.SignUpInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, "sign_up", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// SignIn handles POST /auth/sign-in; the token is returned in the body and set as a cookie
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if !bindJSON(c, &req) {
		return
	}

	_, token, err := h.auth.SignIn(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, "sign_in", err)
		return
	}

	h.setCookie(c, token)
	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token.Value,
		TokenType:   "Bearer",
		ExpiresAt:   token.ExpiresAt,
	})
}

// SignOut handles POST /auth/sign-out
func (h *AuthHandler) SignOut(c *gin.Context) {
	h.clearCookie(c)
	c.Status(http.StatusNoContent)
}

// Me handles GET /users/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, "get_profile", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Deactivate handles DELETE /users/me; the account is disabled, not removed
func (h *AuthHandler) Deactivate(c *gin.Context) {
	if err := h.auth.Deactivate(c.Request.Context(), middleware.UserID(c)); err != nil {
		respondError(c, h.logger, "deactivate_user", err)
		return
	}
	h.clearCookie(c)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) setCookie(c *gin.Context, token service.AccessToken) {
	maxAge := int(token.ExpiresAt.Sub(h.timeProvider.Now()) / time.Second)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token.Value, maxAge, "/", "", h.cookie.Secure, true)
}

func (h *AuthHandler) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}
