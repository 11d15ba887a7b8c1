package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"rideshare/internal/domain"
	"rideshare/internal/redis"
	"rideshare/internal/repository"
)

// RequestLockTTL bounds how long a ride request stays locked if the holder
// never releases it.
const RequestLockTTL = 10 * time.Second

// RideService records completed rides and lists open requests.
type RideService struct {
	rideRepo      repository.RideRepository
	driverService *DriverService
	lockStore     redis.RequestLocker
	logger        *zerolog.Logger
}

// NewRideService creates a new RideService. lockStore may be nil, in which
// case rides are recorded without a distributed lock.
func NewRideService(
	rideRepo repository.RideRepository,
	driverService *DriverService,
	lockStore redis.RequestLocker,
	logger *zerolog.Logger,
) *RideService {
	return &RideService{
		rideRepo:      rideRepo,
		driverService: driverService,
		lockStore:     lockStore,
		logger:        logger,
	}
}

// RecordRide stores the ride if its request is still open. The gateway
// accepts any number of rides per request; this is where at most one is kept.
func (s *RideService) RecordRide(ctx context.Context, ride domain.Ride) error {
	if err := validateRide(ride); err != nil {
		return err
	}

	if err := s.driverService.requireDriver(ctx, ride.DriverEmail); err != nil {
		return err
	}

	if s.lockStore != nil {
		token, ok, err := s.lockStore.AcquireRequestLock(ctx, ride.RideRequestID, RequestLockTTL)
		if err != nil {
			return err
		}
		if !ok {
			s.logger.Warn().Int64("request_id", ride.RideRequestID).Msg("ride request locked by another caller")
			return ErrRideRequestLocked
		}
		defer func() {
			// Release even when the caller has gone away; otherwise the
			// request stays locked until the TTL runs out.
			releaseCtx := context.WithoutCancel(ctx)
			if err := s.lockStore.ReleaseRequestLock(releaseCtx, ride.RideRequestID, token); err != nil {
				s.logger.Error().Err(err).Int64("request_id", ride.RideRequestID).Msg("failed to release ride request lock")
			}
		}()
	}

	open, err := s.rideRepo.IsRideRequestOpen(ctx, ride.RideRequestID)
	if err != nil {
		return err
	}
	if !open {
		return ErrRideRequestFulfilled
	}

	if err := s.rideRepo.InsertRide(ctx, ride); err != nil {
		return err
	}

	s.logger.Info().
		Int64("request_id", ride.RideRequestID).
		Str("driver_email", ride.DriverEmail).
		Float64("charge", ride.Charge).
		Msg("ride recorded")

	return nil
}

// Uncompleted returns every ride request without a ride.
func (s *RideService) Uncompleted(ctx context.Context) ([]*domain.UncompletedRideRequest, error) {
	return s.rideRepo.GetUncompletedRideRequests(ctx)
}

func validateRide(ride domain.Ride) error {
	if ride.RideRequestID <= 0 {
		return ErrInvalidRideRequestID
	}
	if blank(ride.DriverEmail) {
		return ErrInvalidEmail
	}
	if ride.Distance < 0 || ride.Charge < 0 {
		return ErrInvalidRide
	}
	if blank(ride.StartDate) || blank(ride.StartTime) || blank(ride.EndDate) || blank(ride.EndTime) {
		return ErrInvalidRide
	}
	return nil
}
