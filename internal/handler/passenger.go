package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rideshare/internal/service"
)

// PassengerHandler handles HTTP requests for passengers.
type PassengerHandler struct {
	passengerService *service.PassengerService
}

// NewPassengerHandler creates a new PassengerHandler.
func NewPassengerHandler(passengerService *service.PassengerService) *PassengerHandler {
	return &PassengerHandler{passengerService: passengerService}
}

// AddFavouriteRequest is the HTTP request body for saving a favourite.
type AddFavouriteRequest struct {
	Name      string `json:"name" binding:"required"`
	AddressID int64  `json:"address_id" binding:"required,gt=0"`
}

// FavouriteResponse is the HTTP response for a favourite destination.
type FavouriteResponse struct {
	Name    string      `json:"name"`
	Address AddressBody `json:"address"`
}

// Exists handles GET /v1/passengers/:email
func (h *PassengerHandler) Exists(c *gin.Context) {
	email := c.Param("email")

	exists, err := h.passengerService.Exists(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, ExistsResponse{Email: email, Exists: exists})
}

// AddFavourite handles POST /v1/passengers/:email/favourites
func (h *PassengerHandler) AddFavourite(c *gin.Context) {
	var req AddFavouriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	err := h.passengerService.AddFavourite(c.Request.Context(), service.AddFavouriteRequest{
		PassengerEmail: c.Param("email"),
		Name:           req.Name,
		AddressID:      req.AddressID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// Favourites handles GET /v1/passengers/:email/favourites
func (h *PassengerHandler) Favourites(c *gin.Context) {
	favourites, err := h.passengerService.Favourites(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]FavouriteResponse, 0, len(favourites))
	for _, f := range favourites {
		response = append(response, FavouriteResponse{
			Name:    f.Name,
			Address: addressBody(f.Address),
		})
	}

	respondJSON(c, http.StatusOK, response)
}
