package repository

import (
	"context"

	"rideshare/internal/domain"
)

// RideRepository defines the persistence operations for ride requests and rides.
type RideRepository interface {
	// InsertRideRequest creates a request picked up at the passenger's home address.
	InsertRideRequest(ctx context.Context, req domain.RideRequest) (int64, error)

	// GetUncompletedRideRequests retrieves every request no ride references.
	GetUncompletedRideRequests(ctx context.Context) ([]*domain.UncompletedRideRequest, error)

	// IsRideRequestOpen reports whether the request has no ride yet.
	// Returns ErrNotFound for unknown ids.
	IsRideRequestOpen(ctx context.Context, requestID int64) (bool, error)

	// InsertRide records a completed ride. It does not check that the request
	// is still open.
	InsertRide(ctx context.Context, ride domain.Ride) error
}
