package repository

import (
	"context"

	"rideshare/internal/domain"
)

// DriverRepository defines the persistence operations for drivers and licenses.
type DriverRepository interface {
	// InsertDriver resolves the license and writes the driver role keyed by the account id.
	InsertDriver(ctx context.Context, driver domain.Driver, accountID int64) (int64, error)

	// InsertLicense returns the id of the license with this number and expiry, creating it when absent.
	InsertLicense(ctx context.Context, number, expiryDate string) (int64, error)

	// CheckDriverExists reports whether the email belongs to a driver.
	CheckDriverExists(ctx context.Context, email string) (bool, error)

	// GetDriverIDFromEmail returns ErrNotFound when the email has no driver.
	GetDriverIDFromEmail(ctx context.Context, email string) (int64, error)

	// GetAverageRatingForDriver averages the passenger ratings of the driver's
	// rides. A driver with no rides averages 0.
	GetAverageRatingForDriver(ctx context.Context, email string) (float64, error)
}
