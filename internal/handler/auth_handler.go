package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alhuda-academy/admissions-api/internal/middleware"
	"github.com/alhuda-academy/admissions-api/internal/models"
	"github.com/alhuda-academy/admissions-api/internal/service"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
	"github.com/alhuda-academy/admissions-api/pkg/response"
)

// CookieConfig shapes the session cookie issued on login.
type CookieConfig struct {
	Secure bool
	Domain string
	MaxAge time.Duration
}

// AuthHandler exposes authentication endpoints. Login sets an httpOnly
// session cookie alongside returning the token, so both the browser client
// and plain API clients work.
type AuthHandler struct {
	auth   *service.AuthService
	cookie CookieConfig
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth *service.AuthService, cookie CookieConfig) *AuthHandler {
	if cookie.MaxAge <= 0 {
		cookie.MaxAge = 7 * 24 * time.Hour
	}
	return &AuthHandler{auth: auth, cookie: cookie}
}

// Register godoc
// @Summary Register a user account
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.RegisterRequest true "Registration payload"
// @Success 201 {object} response.Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	user, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

// Login godoc
// @Summary Authenticate and issue a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.setSessionCookie(c, result.Token, int(h.cookie.MaxAge.Seconds()))
	response.JSON(c, http.StatusOK, result, nil)
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.Message(c, "logged out")
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	user, err := h.auth.Me(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user, nil)
}

// ForgotPassword godoc
// @Summary Request a password reset code
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.ResetPasswordRequest true "Account email"
// @Success 200 {object} response.Envelope
// @Router /auth/reset-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.auth.ForgotPassword(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	// Identical response whether or not the account exists.
	response.Message(c, "if the account exists, a reset code has been sent")
}

// ResetPassword godoc
// @Summary Confirm a password reset
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.ConfirmResetPasswordRequest true "Email, code, and new password"
// @Success 200 {object} response.Envelope
// @Router /auth/reset-password/confirm [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ConfirmResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.auth.ResetPassword(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "password updated")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookieName, token, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}
