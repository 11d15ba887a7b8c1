package postgres

import (
	"context"

	"rideshare/internal/domain"
	"rideshare/internal/sqlerr"
)

// InsertPassenger writes the passenger role. The passenger id is the account id.
func (g *Gateway) InsertPassenger(ctx context.Context, passenger domain.Passenger, accountID int64) (int64, error) {
	query := `INSERT INTO passengers (id, credit_card_number) VALUES ($1, $2)`
	if _, err := g.q.ExecContext(ctx, query, accountID, passenger.CreditCardNumber); err != nil {
		return 0, sqlerr.Wrap("insert passenger", err)
	}
	return accountID, nil
}

// CheckPassengerExists reports whether the email belongs to a passenger.
func (g *Gateway) CheckPassengerExists(ctx context.Context, email string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM passengers p
			JOIN accounts a ON a.id = p.id
			WHERE a.email = $1
		)
	`
	return g.queryExists(ctx, "check passenger", query, email)
}

// GetPassengerIDFromEmail returns the passenger id for the email.
func (g *Gateway) GetPassengerIDFromEmail(ctx context.Context, email string) (int64, error) {
	query := `
		SELECT p.id FROM passengers p
		JOIN accounts a ON a.id = p.id
		WHERE a.email = $1
	`
	return g.queryID(ctx, "resolve passenger", query, email)
}

// InsertFavouriteDestination saves a named address for the passenger. Names
// are not unique.
func (g *Gateway) InsertFavouriteDestination(ctx context.Context, name, passengerEmail string, addressID int64) error {
	passengerID, err := g.GetPassengerIDFromEmail(ctx, passengerEmail)
	if err != nil {
		return err
	}

	query := `INSERT INTO favourite_locations (passenger_id, location_id, name) VALUES ($1, $2, $3)`
	if _, err := g.q.ExecContext(ctx, query, passengerID, addressID, name); err != nil {
		return sqlerr.Wrap("insert favourite destination", err)
	}
	return nil
}

// GetFavouriteDestinationsForPassenger retrieves the passenger's favourites
// with their full addresses.
func (g *Gateway) GetFavouriteDestinationsForPassenger(ctx context.Context, passengerEmail string) ([]*domain.FavouriteDestination, error) {
	passengerID, err := g.GetPassengerIDFromEmail(ctx, passengerEmail)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT f.name, ad.id, ad.street, ad.city, ad.province, ad.postal_code
		FROM favourite_locations f
		JOIN addresses ad ON ad.id = f.location_id
		WHERE f.passenger_id = $1
	`

	rows, err := g.q.QueryContext(ctx, query, passengerID)
	if err != nil {
		return nil, sqlerr.Wrap("list favourite destinations", err)
	}
	defer rows.Close()

	var favourites []*domain.FavouriteDestination
	for rows.Next() {
		var fav domain.FavouriteDestination
		if err := rows.Scan(
			&fav.Name,
			&fav.Address.ID,
			&fav.Address.Street,
			&fav.Address.City,
			&fav.Address.Province,
			&fav.Address.PostalCode,
		); err != nil {
			return nil, sqlerr.Wrap("list favourite destinations", err)
		}
		favourites = append(favourites, &fav)
	}

	return favourites, sqlerr.Wrap("list favourite destinations", rows.Err())
}
