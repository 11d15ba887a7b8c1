package postgres

import (
	"context"

	"rideshare/internal/domain"
	"rideshare/internal/sqlerr"
)

// InsertDriver resolves the driver's license and writes the driver role. The
// driver id is the account id.
func (g *Gateway) InsertDriver(ctx context.Context, driver domain.Driver, accountID int64) (int64, error) {
	license := driver.License()
	licenseID, err := g.InsertLicense(ctx, license.Number, license.ExpiryDate)
	if err != nil {
		return 0, err
	}

	query := `INSERT INTO drivers (id, license_id) VALUES ($1, $2)`
	if _, err := g.q.ExecContext(ctx, query, accountID, licenseID); err != nil {
		return 0, sqlerr.Wrap("insert driver", err)
	}
	return accountID, nil
}

// CheckDriverExists reports whether the email belongs to a driver.
func (g *Gateway) CheckDriverExists(ctx context.Context, email string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM drivers d
			JOIN accounts a ON a.id = d.id
			WHERE a.email = $1
		)
	`
	return g.queryExists(ctx, "check driver", query, email)
}

// GetDriverIDFromEmail returns the driver id for the email.
func (g *Gateway) GetDriverIDFromEmail(ctx context.Context, email string) (int64, error) {
	query := `
		SELECT d.id FROM drivers d
		JOIN accounts a ON a.id = d.id
		WHERE a.email = $1
	`
	return g.queryID(ctx, "resolve driver", query, email)
}

// GetAverageRatingForDriver averages rating_from_passenger over the driver's
// rides. AVG of no rows is NULL, which is reported as 0.
func (g *Gateway) GetAverageRatingForDriver(ctx context.Context, email string) (float64, error) {
	driverID, err := g.GetDriverIDFromEmail(ctx, email)
	if err != nil {
		return 0, err
	}

	query := `SELECT COALESCE(AVG(rating_from_passenger), 0) FROM rides WHERE driver_id = $1`

	var avg float64
	if err := g.q.QueryRowContext(ctx, query, driverID).Scan(&avg); err != nil {
		return 0, sqlerr.Wrap("average driver rating", err)
	}
	return avg, nil
}
