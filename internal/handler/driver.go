package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rideshare/internal/service"
)

// DriverHandler handles HTTP requests for drivers.
type DriverHandler struct {
	driverService *service.DriverService
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(driverService *service.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

// RatingResponse is the HTTP response for a driver's average rating.
type RatingResponse struct {
	Email         string  `json:"email"`
	AverageRating float64 `json:"average_rating"`
}

// Exists handles GET /v1/drivers/:email
func (h *DriverHandler) Exists(c *gin.Context) {
	email := c.Param("email")

	exists, err := h.driverService.Exists(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, ExistsResponse{Email: email, Exists: exists})
}

// AverageRating handles GET /v1/drivers/:email/rating
func (h *DriverHandler) AverageRating(c *gin.Context) {
	email := c.Param("email")

	avg, err := h.driverService.AverageRating(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, RatingResponse{Email: email, AverageRating: avg})
}
