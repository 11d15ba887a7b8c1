package service

import "errors"

var (
	// ErrInvalidEmail is returned when an email is empty.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidAccount is returned when required account fields are missing.
	ErrInvalidAccount = errors.New("invalid account")

	// ErrInvalidAddress is returned when an address field is empty.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidPassenger is returned when passenger role data is incomplete.
	ErrInvalidPassenger = errors.New("invalid passenger details")

	// ErrInvalidDriver is returned when driver role data is incomplete.
	ErrInvalidDriver = errors.New("invalid driver details")

	// ErrInvalidAddressID is returned when an address id is not positive.
	ErrInvalidAddressID = errors.New("invalid address id")

	// ErrInvalidFavouriteName is returned when a favourite destination has no name.
	ErrInvalidFavouriteName = errors.New("invalid favourite name")

	// ErrInvalidRideRequest is returned when a ride request is missing its schedule or riders.
	ErrInvalidRideRequest = errors.New("invalid ride request")

	// ErrInvalidRideRequestID is returned when a ride request id is not positive.
	ErrInvalidRideRequestID = errors.New("invalid ride request id")

	// ErrInvalidRide is returned when a ride has negative distance or charge, or no timing.
	ErrInvalidRide = errors.New("invalid ride")

	// ErrPassengerNotFound is returned when an email has no passenger.
	ErrPassengerNotFound = errors.New("passenger not found")

	// ErrDriverNotFound is returned when an email has no driver.
	ErrDriverNotFound = errors.New("driver not found")

	// ErrRideRequestFulfilled is returned when a ride is already recorded for the request.
	ErrRideRequestFulfilled = errors.New("ride request already fulfilled")

	// ErrRideRequestLocked is returned when another caller is recording a ride for the request.
	ErrRideRequestLocked = errors.New("ride request is locked")
)
