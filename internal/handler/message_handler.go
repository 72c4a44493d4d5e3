package handler

import (
	"errors"
	"net/http"

	"shareabyte/internal/domain"
	"shareabyte/internal/middleware"
	"shareabyte/internal/repository"
	"shareabyte/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MessageHandler struct {
	repo *repository.MessageRepository
	svc  *service.MessageService
}

func NewMessageHandler(repo *repository.MessageRepository, svc *service.MessageService) *MessageHandler {
	return &MessageHandler{repo: repo, svc: svc}
}

type SendMessageRequest struct {
	RecipientID uint   `json:"recipient_id" binding:"required"`
	PostID      *uint  `json:"post_id"`
	Content     string `json:"content" binding:"required"`
}

func (h *MessageHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.svc.Send(middleware.GetUserID(c), req.RecipientID, req.PostID, req.Content)
	if err != nil {
		respondError(c, "message.send", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": m})
}

func (h *MessageHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, offset := pagination(c)
	list, err := h.repo.ListForUser(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	unread, _ := h.repo.UnreadCount(userID)
	c.JSON(http.StatusOK, gin.H{"messages": list, "unread_count": unread})
}

// Thread returns the conversation with another user and marks their messages
// to the caller as read.
func (h *MessageHandler) Thread(c *gin.Context) {
	limit, offset := pagination(c)
	list, err := h.svc.Thread(middleware.GetUserID(c), paramID(c, "user_id"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "thread failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": list})
}

func (h *MessageHandler) Archive(c *gin.Context) {
	err := h.repo.SetStatus(paramID(c, "id"), middleware.GetUserID(c), domain.MessageStatusArchived)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "archive failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Delete hard-deletes a message; only its recipient may do so.
func (h *MessageHandler) Delete(c *gin.Context) {
	err := h.repo.Delete(paramID(c, "id"), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
