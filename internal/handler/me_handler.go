package handler

import (
	"errors"
	"net/http"

	"shareabyte/internal/middleware"
	"shareabyte/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MeHandler struct {
	users *repository.UserRepository
}

func NewMeHandler(users *repository.UserRepository) *MeHandler {
	return &MeHandler{users: users}
}

type UpdateProfileRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	AvatarURL *string `json:"avatar_url"`
	FCMToken  *string `json:"fcm_token"`
}

func (h *MeHandler) GetProfile(c *gin.Context) {
	u, err := h.users.GetByID(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// UpdateProfile edits the caller's own account. An email change also updates
// the denormalized copy on the share score.
func (h *MeHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email != nil && *req.Email != u.Email {
		if existing, err := h.users.GetByEmail(*req.Email); err == nil && existing.ID != userID {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
			return
		}
		if err := h.users.UpdateEmail(userID, *req.Email); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
			return
		}
		u.Email = *req.Email
	}
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.AvatarURL != nil {
		u.AvatarURL = *req.AvatarURL
	}
	if req.FCMToken != nil {
		u.FCMToken = *req.FCMToken
	}
	if err := h.users.Update(u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}
