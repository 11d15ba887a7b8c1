package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rideshare/internal/domain"
	"rideshare/internal/service"
)

// RideHandler handles HTTP requests for ride requests and rides.
type RideHandler struct {
	passengerService *service.PassengerService
	rideService      *service.RideService
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(passengerService *service.PassengerService, rideService *service.RideService) *RideHandler {
	return &RideHandler{
		passengerService: passengerService,
		rideService:      rideService,
	}
}

// CreateRideRequestBody is the HTTP request body for requesting a ride.
type CreateRideRequestBody struct {
	PassengerEmail    string `json:"passenger_email" binding:"required,email"`
	DropoffLocationID int64  `json:"dropoff_location_id" binding:"required,gt=0"`
	PickupDate        string `json:"pickup_date" binding:"required"`
	PickupTime        string `json:"pickup_time" binding:"required"`
	NumberOfRiders    int    `json:"number_of_riders" binding:"required,gte=1"`
}

// CreateRideRequestResponse is the HTTP response for a new ride request.
type CreateRideRequestResponse struct {
	ID int64 `json:"id"`
}

// UncompletedResponse is the HTTP response for an open ride request.
type UncompletedResponse struct {
	ID                 int64  `json:"id"`
	PassengerFirstName string `json:"passenger_first_name"`
	PassengerLastName  string `json:"passenger_last_name"`
	PickupStreet       string `json:"pickup_street"`
	PickupCity         string `json:"pickup_city"`
	DropoffStreet      string `json:"dropoff_street"`
	DropoffCity        string `json:"dropoff_city"`
	PickupDate         string `json:"pickup_date"`
	PickupTime         string `json:"pickup_time"`
}

// RecordRideRequest is the HTTP request body for recording a completed ride.
type RecordRideRequest struct {
	DriverEmail         string  `json:"driver_email" binding:"required,email"`
	RideRequestID       int64   `json:"ride_request_id" binding:"required,gt=0"`
	StartDate           string  `json:"start_date" binding:"required"`
	StartTime           string  `json:"start_time" binding:"required"`
	EndDate             string  `json:"end_date" binding:"required"`
	EndTime             string  `json:"end_time" binding:"required"`
	RatingFromDriver    float64 `json:"rating_from_driver" binding:"gte=0,lte=5"`
	RatingFromPassenger float64 `json:"rating_from_passenger" binding:"gte=0,lte=5"`
	Distance            float64 `json:"distance" binding:"gte=0"`
	Charge              float64 `json:"charge" binding:"gte=0"`
}

// CreateRequest handles POST /v1/ride-requests
func (h *RideHandler) CreateRequest(c *gin.Context) {
	var req CreateRideRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	id, err := h.passengerService.RequestRide(c.Request.Context(), domain.RideRequest{
		PassengerEmail:    req.PassengerEmail,
		DropoffLocationID: req.DropoffLocationID,
		PickupDate:        req.PickupDate,
		PickupTime:        req.PickupTime,
		NumberOfRiders:    req.NumberOfRiders,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, CreateRideRequestResponse{ID: id})
}

// Uncompleted handles GET /v1/ride-requests/uncompleted
func (h *RideHandler) Uncompleted(c *gin.Context) {
	requests, err := h.rideService.Uncompleted(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]UncompletedResponse, 0, len(requests))
	for _, r := range requests {
		response = append(response, UncompletedResponse{
			ID:                 r.ID,
			PassengerFirstName: r.PassengerFirstName,
			PassengerLastName:  r.PassengerLastName,
			PickupStreet:       r.PickupStreet,
			PickupCity:         r.PickupCity,
			DropoffStreet:      r.DropoffStreet,
			DropoffCity:        r.DropoffCity,
			PickupDate:         r.PickupDate,
			PickupTime:         r.PickupTime,
		})
	}

	respondJSON(c, http.StatusOK, response)
}

// RecordRide handles POST /v1/rides
func (h *RideHandler) RecordRide(c *gin.Context) {
	var req RecordRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	err := h.rideService.RecordRide(c.Request.Context(), domain.Ride{
		DriverEmail:         req.DriverEmail,
		RideRequestID:       req.RideRequestID,
		StartDate:           req.StartDate,
		StartTime:           req.StartTime,
		EndDate:             req.EndDate,
		EndTime:             req.EndTime,
		RatingFromDriver:    req.RatingFromDriver,
		RatingFromPassenger: req.RatingFromPassenger,
		Distance:            req.Distance,
		Charge:              req.Charge,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}
