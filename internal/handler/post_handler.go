package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"shareabyte/internal/domain"
	"shareabyte/internal/middleware"
	"shareabyte/internal/models"
	"shareabyte/internal/repository"
	"shareabyte/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct {
	repo *repository.PostRepository
	svc  *service.PostService
}

func NewPostHandler(repo *repository.PostRepository, svc *service.PostService) *PostHandler {
	return &PostHandler{repo: repo, svc: svc}
}

type CreatePostRequest struct {
	Title         string   `json:"title" binding:"required,max=255"`
	Description   string   `json:"description" binding:"required"`
	Category      string   `json:"category" binding:"omitempty,oneof=leftovers perishables"`
	Location      string   `json:"location"`
	GoBadDate     string   `json:"go_bad_date"` // RFC 3339, optional
	FoodAllergens string   `json:"food_allergens"`
	Images        []string `json:"images"`
	Draft         bool     `json:"draft"`
}

type UpdatePostRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Category      *string   `json:"category"`
	Location      *string   `json:"location"`
	GoBadDate     *string   `json:"go_bad_date"`
	FoodAllergens *string   `json:"food_allergens"`
	Images        *[]string `json:"images"`
	Publish       bool      `json:"publish"` // Draft -> Active
}

type CompletePostRequest struct {
	Recipient string `json:"recipient" binding:"omitempty,email"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := &models.Post{
		UserID:        middleware.GetUserID(c),
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Location:      req.Location,
		FoodAllergens: req.FoodAllergens,
		Status:        domain.PostStatusActive,
	}
	if req.Draft {
		p.Status = domain.PostStatusDraft
	}
	if req.GoBadDate != "" {
		t, err := time.Parse(time.RFC3339, req.GoBadDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid go_bad_date (use RFC 3339)"})
			return
		}
		p.GoBadDate = &t
	}
	if len(req.Images) > 0 {
		b, _ := json.Marshal(req.Images)
		p.Images = string(b)
	}
	if err := h.repo.Create(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": p})
}

// Search is the public browse endpoint. Only Active posts are visible here.
func (h *PostHandler) Search(c *gin.Context) {
	limit, offset := pagination(c)
	f := repository.SearchFilter{
		Query:          c.Query("q"),
		Category:       c.Query("category"),
		Location:       c.Query("location"),
		IncludeExpired: c.Query("include_expired") == "true",
	}
	if f.Category != "" && !domain.ValidCategory(f.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	list, err := h.repo.Search(f, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": list})
}

func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.repo.GetByID(paramID(c, "id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": p})
}

func (h *PostHandler) ListMine(c *gin.Context) {
	limit, offset := pagination(c)
	list, err := h.repo.ListByOwner(middleware.GetUserID(c), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": list})
}

func (h *PostHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	p, err := h.repo.GetByID(paramID(c, "id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if p.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "you can only edit your own posts"})
		return
	}
	if p.IsArchived() {
		c.JSON(http.StatusConflict, gin.H{"error": "archived posts cannot be edited"})
		return
	}
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Category != nil {
		if !domain.ValidCategory(*req.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
		p.Category = *req.Category
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.FoodAllergens != nil {
		p.FoodAllergens = *req.FoodAllergens
	}
	if req.GoBadDate != nil {
		if *req.GoBadDate == "" {
			p.GoBadDate = nil
		} else {
			t, err := time.Parse(time.RFC3339, *req.GoBadDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid go_bad_date (use RFC 3339)"})
				return
			}
			p.GoBadDate = &t
		}
	}
	if req.Images != nil {
		b, _ := json.Marshal(*req.Images)
		p.Images = string(b)
	}
	if req.Publish && p.Status == domain.PostStatusDraft {
		p.Status = domain.PostStatusActive
	}
	if err := h.repo.Update(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": p})
}

func (h *PostHandler) Delete(c *gin.Context) {
	err := h.repo.Delete(paramID(c, "id"), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Complete archives a post and optionally notifies a recipient by email.
func (h *PostHandler) Complete(c *gin.Context) {
	var req CompletePostRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.svc.Complete(middleware.GetUserID(c), paramID(c, "id"), req.Recipient)
	if err != nil {
		respondError(c, "post.complete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": p})
}
