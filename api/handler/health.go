package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"riderequest/pkg/models"
)

// Health handles GET /health. It never touches the store.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "Server is running",
		Timestamp: h.now().UTC(),
	})
}
