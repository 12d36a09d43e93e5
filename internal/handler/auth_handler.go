package handler

import (
	"net/http"

	"langart/internal/auth"
	app_errors "langart/internal/errors"
	"langart/internal/middleware"
	"langart/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LoginRequest is the POST /api/auth/login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the POST /api/auth/change-password payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Login handles POST /api/auth/login. On success it issues a session token
// and sets it as an HttpOnly cookie. All failures share one generic 401 so
// usernames cannot be enumerated.
func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	user, ok := s.UserService.Authenticate(req.Username, req.Password)
	if !ok {
		response.ErrorI18n(c, app_errors.ErrInvalidCredentials, "auth.invalid_creds")
		return
	}

	token, err := s.TokenIssuer.Sign(user.ID, user.Username)
	if err != nil {
		logrus.WithError(err).Error("Failed to sign session token")
		response.Error(c, app_errors.ErrInternalServer)
		return
	}

	s.setSessionCookie(c, token, int(s.TokenIssuer.TTL().Seconds()))
	response.SuccessI18n(c, "auth.login_success", gin.H{
		"id":       user.ID,
		"username": user.Username,
	})
}

// Logout handles POST /api/auth/logout by clearing the session cookie.
// Tokens are stateless, so an already-issued token stays valid until expiry.
func (s *Server) Logout(c *gin.Context) {
	s.setSessionCookie(c, "", -1)
	response.SuccessI18n(c, "auth.logout_success", nil)
}

// ChangePassword handles POST /api/auth/change-password. The stored hash is
// only replaced after the current password re-verifies and the new password
// passes validation.
func (s *Server) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		response.Error(c, app_errors.ErrUnauthorized)
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		response.ErrorI18n(c, app_errors.ErrValidation, "auth.password_mismatch")
		return
	}
	if len(req.NewPassword) < auth.MinPasswordLength {
		response.ErrorI18n(c, app_errors.ErrValidation, "auth.password_short",
			map[string]any{"Min": auth.MinPasswordLength})
		return
	}

	user, err := s.UserService.GetByID(claims.UserID)
	if err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		response.ErrorI18n(c, app_errors.ErrInvalidCredentials, "auth.invalid_creds")
		return
	}

	if err := s.UserService.UpdatePassword(user.ID, req.NewPassword); err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	response.SuccessI18n(c, "auth.password_changed", nil)
}

// setSessionCookie writes or clears the session cookie. Strict same-site
// keeps the token off cross-origin requests; Secure follows the deployment
// environment.
func (s *Server) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.CookieName, token, maxAge, "/", "",
		s.config.GetAuthConfig().CookieSecure, true)
}
