package repository

import (
	"context"

	"rideshare/internal/domain"
)

// PassengerRepository defines the persistence operations for passengers.
type PassengerRepository interface {
	// InsertPassenger writes the passenger role keyed by the account id.
	InsertPassenger(ctx context.Context, passenger domain.Passenger, accountID int64) (int64, error)

	// CheckPassengerExists reports whether the email belongs to a passenger.
	CheckPassengerExists(ctx context.Context, email string) (bool, error)

	// GetPassengerIDFromEmail returns ErrNotFound when the email has no passenger.
	GetPassengerIDFromEmail(ctx context.Context, email string) (int64, error)

	// InsertFavouriteDestination saves a named address for the passenger.
	InsertFavouriteDestination(ctx context.Context, name, passengerEmail string, addressID int64) error

	// GetFavouriteDestinationsForPassenger retrieves the passenger's favourites.
	GetFavouriteDestinationsForPassenger(ctx context.Context, passengerEmail string) ([]*domain.FavouriteDestination, error)
}
