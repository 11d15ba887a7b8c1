package service

import (
	"context"

	"rideshare/internal/domain"
	"rideshare/internal/repository"
)

// PassengerService handles passenger actions: favourites and ride requests.
type PassengerService struct {
	passengerRepo repository.PassengerRepository
	rideRepo      repository.RideRepository
}

// NewPassengerService creates a new PassengerService.
func NewPassengerService(passengerRepo repository.PassengerRepository, rideRepo repository.RideRepository) *PassengerService {
	return &PassengerService{
		passengerRepo: passengerRepo,
		rideRepo:      rideRepo,
	}
}

// Exists reports whether the email belongs to a passenger.
func (s *PassengerService) Exists(ctx context.Context, email string) (bool, error) {
	if blank(email) {
		return false, ErrInvalidEmail
	}
	return s.passengerRepo.CheckPassengerExists(ctx, email)
}

// AddFavouriteRequest contains the parameters for saving a favourite destination.
type AddFavouriteRequest struct {
	PassengerEmail string
	Name           string
	AddressID      int64
}

// AddFavourite saves a named destination for the passenger.
func (s *PassengerService) AddFavourite(ctx context.Context, req AddFavouriteRequest) error {
	if blank(req.Name) {
		return ErrInvalidFavouriteName
	}
	if req.AddressID <= 0 {
		return ErrInvalidAddressID
	}
	if err := s.requirePassenger(ctx, req.PassengerEmail); err != nil {
		return err
	}
	return s.passengerRepo.InsertFavouriteDestination(ctx, req.Name, req.PassengerEmail, req.AddressID)
}

// Favourites returns the passenger's favourite destinations.
func (s *PassengerService) Favourites(ctx context.Context, email string) ([]*domain.FavouriteDestination, error) {
	if err := s.requirePassenger(ctx, email); err != nil {
		return nil, err
	}
	return s.passengerRepo.GetFavouriteDestinationsForPassenger(ctx, email)
}

// RequestRide submits a ride request picked up at the passenger's home address.
func (s *PassengerService) RequestRide(ctx context.Context, req domain.RideRequest) (int64, error) {
	if req.DropoffLocationID <= 0 {
		return 0, ErrInvalidAddressID
	}
	if blank(req.PickupDate) || req.NumberOfRiders < 1 {
		return 0, ErrInvalidRideRequest
	}
	if _, ok := domain.ClockTime(req.PickupTime); !ok {
		return 0, ErrInvalidRideRequest
	}
	if err := s.requirePassenger(ctx, req.PassengerEmail); err != nil {
		return 0, err
	}
	return s.rideRepo.InsertRideRequest(ctx, req)
}

// requirePassenger checks existence before any resolution helper runs.
func (s *PassengerService) requirePassenger(ctx context.Context, email string) error {
	exists, err := s.Exists(ctx, email)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPassengerNotFound
	}
	return nil
}
