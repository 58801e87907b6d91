package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yatrarides/booking-api/internal/application"
	"github.com/yatrarides/booking-api/pkg/helpers"
	"github.com/yatrarides/booking-api/pkg/response"
	"github.com/yatrarides/booking-api/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup POST /api/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrDuplicateEmail) {
			response.Error[any](c, http.StatusBadRequest, "email already registered", nil)
			return
		}
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error("signup failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": u.ID, "email": u.Email}, "account created, please verify your email")
}

// VerifyEmail GET /api/verify-email?token=
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"token": "is required"})
		return
	}

	if err := h.Svc.VerifyEmail(c.Request.Context(), token); err != nil {
		if errors.Is(err, application.ErrInvalidToken) {
			response.Error[any](c, http.StatusBadRequest, "invalid or expired token", nil)
			return
		}
		h.Logger.WithError(err).Error("email verification failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}

	response.Success[any](c, http.StatusOK, gin.H{"verified": true}, "email verified")
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidCredentials):
			response.Error[any](c, http.StatusUnauthorized, "invalid email or password", nil)
		case errors.Is(err, application.ErrEmailNotVerified):
			response.Error[any](c, http.StatusForbidden, "email not verified", nil)
		default:
			h.Logger.WithError(err).Error("login failed")
			response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		}
		return
	}

	h.Cookies.SetSession(c, token, exp)
	response.Success(c, http.StatusOK, gin.H{"id": u.ID, "email": u.Email}, "login successful")
}

// Logout POST /api/logout. Idempotent: always clears the cookie and
// reports success, logged in or not.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out")
}

// CheckAuth GET /api/check-auth. Never fails; any problem with the
// cookie simply reports isAuthenticated=false.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	token, err := c.Cookie(helpers.SessionCookieName)
	if err != nil {
		token = ""
	}
	p, ok := h.Svc.CheckSession(token)
	if !ok {
		response.Success(c, http.StatusOK, gin.H{"isAuthenticated": false}, "auth status")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"isAuthenticated": true,
		"user":            gin.H{"id": p.UserID, "email": p.Email},
	}, "auth status")
}
