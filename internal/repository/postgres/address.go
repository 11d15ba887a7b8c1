package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rideshare/internal/domain"
	"rideshare/internal/repository"
	"rideshare/internal/sqlerr"
)

// The no-op update makes RETURNING yield the existing row on conflict.
const upsertAddressQuery = `
	INSERT INTO addresses (street, city, province, postal_code)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (street, city, province, postal_code)
	DO UPDATE SET street = EXCLUDED.street
	RETURNING id
`

// InsertAddressIfNotExists returns the id of the address with exactly these
// fields, creating it when absent. Matching is case sensitive and exact.
func (g *Gateway) InsertAddressIfNotExists(ctx context.Context, address domain.Address) (int64, error) {
	return g.upsertID(ctx, "insert address", upsertAddressQuery,
		address.Street,
		address.City,
		address.Province,
		address.PostalCode,
	)
}

// upsertID runs a get-or-create statement. An empty RETURNING means the row
// we just wrote or matched cannot be read back.
func (g *Gateway) upsertID(ctx context.Context, op, query string, args ...any) (int64, error) {
	var id int64
	err := g.q.QueryRowContext(ctx, query, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, &repository.Error{Op: op, Kind: repository.ErrLookupFailure, Err: err}
		}
		return 0, sqlerr.Wrap(op, err)
	}
	return id, nil
}
