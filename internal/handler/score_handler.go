package handler

import (
	"net/http"

	"shareabyte/internal/middleware"
	"shareabyte/internal/service"

	"github.com/gin-gonic/gin"
)

type ScoreHandler struct {
	svc *service.ScoreService
}

func NewScoreHandler(svc *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{svc: svc}
}

// Leaderboard is public: top share scores with 1-based ranks.
func (h *ScoreHandler) Leaderboard(c *gin.Context) {
	limit, _ := pagination(c)
	entries, err := h.svc.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "leaderboard failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

func (h *ScoreHandler) MyScore(c *gin.Context) {
	score, rank, err := h.svc.MyScore(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "score not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": score, "rank": rank})
}
