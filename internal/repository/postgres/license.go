package postgres

import (
	"context"
)

const upsertLicenseQuery = `
	INSERT INTO licenses (number, expiry_date)
	VALUES ($1, $2)
	ON CONFLICT (number, expiry_date)
	DO UPDATE SET number = EXCLUDED.number
	RETURNING id
`

// InsertLicense returns the id of the license with this number and expiry
// date, creating it when absent.
func (g *Gateway) InsertLicense(ctx context.Context, number, expiryDate string) (int64, error) {
	return g.upsertID(ctx, "insert license", upsertLicenseQuery, number, expiryDate)
}
