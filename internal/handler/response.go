package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rideshare/internal/domain"
	"rideshare/internal/repository"
	"rideshare/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AddressBody is the JSON form of an address, used in requests and responses.
type AddressBody struct {
	ID         int64  `json:"id,omitempty"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	Province   string `json:"province" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
}

func (b AddressBody) toDomain() domain.Address {
	return domain.Address{
		Street:     b.Street,
		City:       b.City,
		Province:   b.Province,
		PostalCode: b.PostalCode,
	}
}

func addressBody(a domain.Address) AddressBody {
	return AddressBody{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		PostalCode: a.PostalCode,
	}
}

// ExistsResponse answers a role membership check.
type ExistsResponse struct {
	Email  string `json:"email"`
	Exists bool   `json:"exists"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	_ = c.Error(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondBindError rejects a request body that failed to bind.
func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrPassengerNotFound),
		errors.Is(err, service.ErrDriverNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidAccount),
		errors.Is(err, service.ErrInvalidAddress),
		errors.Is(err, service.ErrInvalidPassenger),
		errors.Is(err, service.ErrInvalidDriver),
		errors.Is(err, service.ErrInvalidAddressID),
		errors.Is(err, service.ErrInvalidFavouriteName),
		errors.Is(err, service.ErrInvalidRideRequest),
		errors.Is(err, service.ErrInvalidRideRequestID),
		errors.Is(err, service.ErrInvalidRide):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, repository.ErrConstraintViolation),
		errors.Is(err, service.ErrRideRequestFulfilled),
		errors.Is(err, service.ErrRideRequestLocked):
		return http.StatusConflict

	// Service unavailable
	case errors.Is(err, repository.ErrConnectivity):
		return http.StatusServiceUnavailable

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
