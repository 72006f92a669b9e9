package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"accounting-backend/internal/middleware"
	"accounting-backend/internal/services/accounting"
)

// respondError maps domain errors onto HTTP statuses and records the error
// on the context so the transaction middleware rolls the request back.
// Anything unclassified becomes a generic 500 with no internal detail.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var notFound *accounting.NotFoundError
	var invalid *accounting.InvalidOperationError
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, errorBody(c, "not_found", notFound.Error()))
	case errors.As(err, &invalid):
		c.JSON(http.StatusConflict, errorBody(c, "invalid_operation", invalid.Error()))
	default:
		c.JSON(http.StatusInternalServerError, errorBody(c, "internal_error", "Internal server error"))
	}
}

func errorBody(c *gin.Context, kind, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"type":       kind,
			"message":    message,
			"request_id": middleware.RequestIDFrom(c),
		},
	}
}

// idParam parses the :id path segment; a second return of false means a
// 400 was already written.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
