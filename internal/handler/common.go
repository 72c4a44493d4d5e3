package handler

import (
	"log"
	"net/http"
	"strconv"

	"shareabyte/internal/apperr"

	"github.com/gin-gonic/gin"
)

// respondError renders a kinded error with its mapped status. Unkinded errors
// become an opaque 500; the cause goes to the log, not the client.
func respondError(c *gin.Context, op string, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[%s] %v", op, err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error(), "kind": apperr.KindOf(err).String()})
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func paramID(c *gin.Context, name string) uint {
	id, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(id)
}
