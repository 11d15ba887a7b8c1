package service

import (
	"context"

	"rideshare/internal/repository"
)

// DriverService handles driver lookups.
type DriverService struct {
	driverRepo repository.DriverRepository
}

// NewDriverService creates a new DriverService.
func NewDriverService(driverRepo repository.DriverRepository) *DriverService {
	return &DriverService{driverRepo: driverRepo}
}

// Exists reports whether the email belongs to a driver.
func (s *DriverService) Exists(ctx context.Context, email string) (bool, error) {
	if blank(email) {
		return false, ErrInvalidEmail
	}
	return s.driverRepo.CheckDriverExists(ctx, email)
}

// AverageRating returns the driver's mean passenger rating, 0 with no rides.
func (s *DriverService) AverageRating(ctx context.Context, email string) (float64, error) {
	if err := s.requireDriver(ctx, email); err != nil {
		return 0, err
	}
	return s.driverRepo.GetAverageRatingForDriver(ctx, email)
}

func (s *DriverService) requireDriver(ctx context.Context, email string) error {
	exists, err := s.Exists(ctx, email)
	if err != nil {
		return err
	}
	if !exists {
		return ErrDriverNotFound
	}
	return nil
}
