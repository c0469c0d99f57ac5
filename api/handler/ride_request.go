package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"riderequest/pkg/logger"
	"riderequest/pkg/metrics"
	"riderequest/pkg/models"
	"riderequest/service"
)

const (
	msgMissingFields = "Missing required fields: source_location, dest_location, user_id"
	msgStored        = "Ride request submitted successfully"
	msgLoggedOnly    = "Ride request received (database unavailable, but data logged)"
	msgListFailed    = "Error fetching ride requests"
)

// CreateRideRequest handles POST /api/ride-request
func (h *Handler) CreateRideRequest(c *gin.Context) {
	var req models.CreateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("invalid ride request body", logger.Error(err))
		metrics.RideRequests.WithLabelValues(metrics.OutcomeRejected).Inc()
		c.JSON(http.StatusBadRequest, models.RideRequestResponse{Success: false, Message: msgMissingFields})
		return
	}

	// Submit fails only on validation; store errors come back as OutcomeLoggedOnly.
	res, err := h.svc.Ride().Submit(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.RideRequestResponse{Success: false, Message: msgMissingFields})
		return
	}

	switch res.Outcome {
	case service.OutcomePersisted:
		c.JSON(http.StatusCreated, models.RideRequestResponse{Success: true, Message: msgStored, Data: res.Ride})
	default:
		c.JSON(http.StatusOK, models.RideRequestResponse{Success: true, Message: msgLoggedOnly, Data: res.Ride})
	}
}

// GetRideRequests handles GET /api/ride-requests
func (h *Handler) GetRideRequests(c *gin.Context) {
	rides, err := h.svc.Ride().List(c.Request.Context())
	if err != nil {
		h.log.Error("failed to fetch ride requests", logger.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: msgListFailed,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.RideRequestListResponse{
		Success: true,
		Count:   len(rides),
		Data:    rides,
	})
}
