package repository

// Gateway is the full persistence surface.
type Gateway interface {
	AccountRepository
	PassengerRepository
	DriverRepository
	RideRepository
}
