package handler

import (
	"errors"
	"net/http"

	"shareabyte/internal/middleware"
	"shareabyte/internal/repository"
	"shareabyte/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotificationHandler struct {
	repo    *repository.NotificationRepository
	voteSvc *service.VoteService
}

func NewNotificationHandler(repo *repository.NotificationRepository, voteSvc *service.VoteService) *NotificationHandler {
	return &NotificationHandler{repo: repo, voteSvc: voteSvc}
}

type VoteRequest struct {
	VoteType string `json:"voteType" binding:"required,oneof=upvote downvote"`
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, offset := pagination(c)
	list, err := h.repo.ListByRecipient(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	unread, _ := h.repo.UnreadCount(userID)
	c.JSON(http.StatusOK, gin.H{"notifications": list, "unread_count": unread})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	err := h.repo.MarkRead(paramID(c, "id"), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Delete removes a notification. The recipient check runs twice on purpose:
// once against the loaded record and once in the scoped delete query.
func (h *NotificationHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := paramID(c, "id")
	n, err := h.repo.GetForRecipient(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if n.RecipientID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the recipient can delete a notification"})
		return
	}
	if err := h.repo.Delete(id, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Vote consumes a notification: the sender's share score moves by the policy
// amount and the notification is deleted. Always responds 200 with the
// structured result.
func (h *NotificationHandler) Vote(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result := h.voteSvc.VoteOnNotification(middleware.GetUserID(c), paramID(c, "id"), req.VoteType)
	c.JSON(http.StatusOK, result)
}
