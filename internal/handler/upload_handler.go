package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"shareabyte/internal/middleware"
	"shareabyte/pkg/cloudinary"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	cloud cloudinary.Client
}

func NewUploadHandler(cloud cloudinary.Client) *UploadHandler {
	return &UploadHandler{cloud: cloud}
}

// UploadPostImage stores a post photo and returns its delivery URLs.
func (h *UploadHandler) UploadPostImage(c *gin.Context) {
	if h.cloud == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image uploads are not configured"})
		return
	}
	userID := middleware.GetUserID(c)
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	folder := "shareabyte/posts/" + strconv.FormatUint(uint64(userID), 10)
	publicID := "img_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	url, thumb, err := h.cloud.UploadImage(c.Request.Context(), f, folder, publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "thumbnail_url": thumb})
}
