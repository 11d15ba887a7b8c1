package postgres

import (
	"context"

	"rideshare/internal/domain"
	"rideshare/internal/sqlerr"
)

// InsertRideRequest creates a ride request. The pickup location is always the
// passenger's registered home address.
func (g *Gateway) InsertRideRequest(ctx context.Context, req domain.RideRequest) (int64, error) {
	passengerID, err := g.GetPassengerIDFromEmail(ctx, req.PassengerEmail)
	if err != nil {
		return 0, err
	}

	pickupID, err := g.GetAccountAddressIDFromEmail(ctx, req.PassengerEmail)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO ride_requests (passenger_id, pickup_location_id, dropoff_location_id, pickup_date, pickup_time, number_of_riders)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	return g.queryID(ctx, "insert ride request", query,
		passengerID,
		pickupID,
		req.DropoffLocationID,
		req.PickupDate,
		req.PickupTime,
		req.NumberOfRiders,
	)
}

// GetUncompletedRideRequests retrieves every ride request without a ride.
func (g *Gateway) GetUncompletedRideRequests(ctx context.Context) ([]*domain.UncompletedRideRequest, error) {
	query := `
		SELECT rr.id, ac.first_name, ac.last_name,
			pa.street, pa.city, da.street, da.city,
			rr.pickup_date::text, to_char(rr.pickup_time, 'HH24:MI')
		FROM ride_requests rr
		JOIN accounts ac ON ac.id = rr.passenger_id
		JOIN addresses pa ON pa.id = rr.pickup_location_id
		JOIN addresses da ON da.id = rr.dropoff_location_id
		WHERE NOT EXISTS (SELECT 1 FROM rides r WHERE r.request_id = rr.id)
		ORDER BY rr.id
	`

	rows, err := g.q.QueryContext(ctx, query)
	if err != nil {
		return nil, sqlerr.Wrap("list uncompleted ride requests", err)
	}
	defer rows.Close()

	var requests []*domain.UncompletedRideRequest
	for rows.Next() {
		var req domain.UncompletedRideRequest
		if err := rows.Scan(
			&req.ID,
			&req.PassengerFirstName,
			&req.PassengerLastName,
			&req.PickupStreet,
			&req.PickupCity,
			&req.DropoffStreet,
			&req.DropoffCity,
			&req.PickupDate,
			&req.PickupTime,
		); err != nil {
			return nil, sqlerr.Wrap("list uncompleted ride requests", err)
		}
		requests = append(requests, &req)
	}

	return requests, sqlerr.Wrap("list uncompleted ride requests", rows.Err())
}

// IsRideRequestOpen reports whether no ride references the request.
func (g *Gateway) IsRideRequestOpen(ctx context.Context, requestID int64) (bool, error) {
	query := `
		SELECT NOT EXISTS (SELECT 1 FROM rides r WHERE r.request_id = rr.id)
		FROM ride_requests rr
		WHERE rr.id = $1
	`
	return g.queryExists(ctx, "check ride request", query, requestID)
}

// InsertRide records a completed ride for the driver named by the ride's
// driver email. Calling it twice for one request stores two rides.
func (g *Gateway) InsertRide(ctx context.Context, ride domain.Ride) error {
	driverID, err := g.GetDriverIDFromEmail(ctx, ride.DriverEmail)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO rides (driver_id, request_id, actual_start_date, actual_start_time, actual_end_date, actual_end_time,
			rating_from_driver, rating_from_passenger, distance, charge)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = g.q.ExecContext(ctx, query,
		driverID,
		ride.RideRequestID,
		ride.StartDate,
		ride.StartTime,
		ride.EndDate,
		ride.EndTime,
		ride.RatingFromDriver,
		ride.RatingFromPassenger,
		ride.Distance,
		ride.Charge,
	)
	return sqlerr.Wrap("insert ride", err)
}
