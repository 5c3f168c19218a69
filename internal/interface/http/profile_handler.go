package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/auth-profile-service/internal/application"
	"github.com/oksasatya/auth-profile-service/internal/domain/entity"
	"github.com/oksasatya/auth-profile-service/internal/interface/middleware"
	"github.com/oksasatya/auth-profile-service/pkg/response"
	"github.com/oksasatya/auth-profile-service/pkg/validation"
)

type ProfileHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.Service, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

// publicProfileView is the shape every non-admin caller sees. The password
// hash is never serialized, and neither is the role, even for the subject
// themselves.
func publicProfileView(u *entity.User) gin.H {
	return gin.H{
		"id":                  u.ID,
		"email":               u.Email,
		"name":                u.Name,
		"bio":                 u.Bio,
		"phone":               u.Phone,
		"profile_picture_url": u.ProfilePictureURL,
		"is_public":           u.IsPublic,
	}
}

// adminProfileView is the full record for admin eyes: role, flags and
// timestamps included, password hash still excluded.
func adminProfileView(u *entity.User) gin.H {
	v := publicProfileView(u)
	v["role"] = u.Role
	v["oauth_account"] = u.OAuthAccount
	v["created_at"] = u.CreatedAt
	v["updated_at"] = u.UpdatedAt
	return v
}

type updateProfileRequest struct {
	Name              *string `json:"name"`
	Bio               *string `json:"bio"`
	Phone             *string `json:"phone"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	IsPublic          *bool   `json:"is_public"`
}

// GetSelf GET /api/profile/user-self
func (h *ProfileHandler) GetSelf(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		h.notFoundOrInternal(c, err)
		return
	}
	response.Success(c, http.StatusOK, publicProfileView(u), "profile", nil)
}

// GetSelfAdmin GET /api/profile/user-admin (admin only)
func (h *ProfileHandler) GetSelfAdmin(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		h.notFoundOrInternal(c, err)
		return
	}
	response.Success(c, http.StatusOK, adminProfileView(u), "profile", nil)
}

// UpdateSelf PUT /api/profile/user-self-update
// Partial update: absent fields keep their value. Unknown fields, including
// role and email, are ignored outright.
func (h *ProfileHandler) UpdateSelf(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateProfileInput{
		Name:              req.Name,
		Bio:               req.Bio,
		Phone:             req.Phone,
		ProfilePictureURL: req.ProfilePictureURL,
		IsPublic:          req.IsPublic,
	})
	if err != nil {
		h.notFoundOrInternal(c, err)
		return
	}
	response.Success(c, http.StatusOK, publicProfileView(u), "profile updated successfully", nil)
}

// List GET /api/profile/users
// Admins see every record with role; everyone else sees only public
// profiles in the public shape.
func (h *ProfileHandler) List(c *gin.Context) {
	acting := middleware.UserFromCtx(c)
	if acting == nil {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	users, err := h.Svc.ListProfiles(c.Request.Context(), acting.Role)
	if err != nil {
		h.Logger.WithError(err).Error("list profiles failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		if acting.Role.IsAdmin() {
			out = append(out, adminProfileView(u))
		} else {
			out = append(out, publicProfileView(u))
		}
	}
	response.Success(c, http.StatusOK, out, "profiles", nil)
}

func (h *ProfileHandler) notFoundOrInternal(c *gin.Context, err error) {
	if errors.Is(err, application.ErrUserNotFound) {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	h.Logger.WithError(err).Error("profile operation failed")
	response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
}
