package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/auth-profile-service/internal/application"
	"github.com/oksasatya/auth-profile-service/pkg/helpers"
	"github.com/oksasatya/auth-profile-service/pkg/response"
	"github.com/oksasatya/auth-profile-service/pkg/validation"
)

// AuthHandler owns registration, password login, the Google OAuth flow, and
// logout. The token service and identity provider come in as constructed
// collaborators; there is no process-wide strategy registration.
type AuthHandler struct {
	Svc      *application.Service
	Provider application.IdentityProvider
	Logger   *logrus.Logger
	Cookies  *helpers.CookieManager
}

func NewAuthHandler(svc *application.Service, provider application.IdentityProvider, logger *logrus.Logger, cookies *helpers.CookieManager) *AuthHandler {
	return &AuthHandler{Svc: svc, Provider: provider, Logger: logger, Cookies: cookies}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if _, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password, req.Name); err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error[any](c, http.StatusBadRequest, "user already exists", nil)
			return
		}
		h.Logger.WithError(err).WithField("email", req.Email).Error("register failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	response.Success[any](c, http.StatusCreated, nil, "user registered successfully", nil)
}

// Login POST /api/auth/login
// On success the token is set as an HTTP-only cookie and also returned in
// the body; API clients use the body, browsers ride on the cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	_, token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	h.Cookies.SetToken(c, token, exp)
	response.Success(c, http.StatusOK, gin.H{"token": token}, "login successful", map[string]any{"expires_at": exp})
}

// LoginWithGoogle GET /api/auth/login/google
// Redirects to the provider; the only local trace is the state nonce cookie.
func (h *AuthHandler) LoginWithGoogle(c *gin.Context) {
	if h.Provider == nil {
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	state, err := randomState()
	if err != nil {
		h.Logger.WithError(err).Error("oauth state generation failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	h.Cookies.SetOAuthState(c, state)
	c.Redirect(http.StatusFound, h.Provider.AuthCodeURL(state))
}

// GoogleCallback GET /api/auth/login/google/callback
// Sets the same cookie as password login but deliberately does not echo the
// token in the body.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if h.Provider == nil {
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	if e := c.Query("error"); e != "" {
		h.Logger.WithField("provider_error", e).Error("google callback returned error")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	state := c.Query("state")
	if state == "" || state != h.Cookies.OAuthState(c) {
		response.Error[any](c, http.StatusBadRequest, "invalid oauth state", nil)
		return
	}
	h.Cookies.ClearOAuthState(c)

	ident, err := h.Provider.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		h.Logger.WithError(err).Error("google code exchange failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	if ident == nil {
		response.Error[any](c, http.StatusNotFound, "user data not found", nil)
		return
	}

	_, token, exp, err := h.Svc.LoginWithProvider(c.Request.Context(), ident)
	if err != nil {
		h.Logger.WithError(err).WithField("email", ident.Email).Error("google login failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	h.Cookies.SetToken(c, token, exp)
	response.Success[any](c, http.StatusCreated, nil, "user logged in successfully", nil)
}

// Logout GET /api/auth/logout
// Clears the cookie only; the token remains valid until natural expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.ClearToken(c)
	response.Success[any](c, http.StatusOK, nil, "logged out successfully", nil)
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
