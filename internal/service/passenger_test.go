package service

import (
	"context"
	"testing"

	"rideshare/internal/domain"
)

func TestAddFavourite_UnknownPassenger(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	addressID, _ := f.accounts.ResolveAddress(ctx, airport)
	err := f.passengers.AddFavourite(ctx, AddFavouriteRequest{
		PassengerEmail: "ghost@example.com",
		Name:           "airport",
		AddressID:      addressID,
	})
	if err != ErrPassengerNotFound {
		t.Errorf("expected ErrPassengerNotFound, got %v", err)
	}
}

func TestAddFavourite_DriverIsNotPassenger(t *testing.T) {
	f := newFixture(t, nil)
	f.registerDriver(t, "driver@example.com")

	_, err := f.passengers.Favourites(context.Background(), "driver@example.com")
	if err != ErrPassengerNotFound {
		t.Errorf("expected ErrPassengerNotFound, got %v", err)
	}
}

func TestFavourites_RoundTrip(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.registerPassenger(t, "p@example.com")

	addressID, _ := f.accounts.ResolveAddress(ctx, airport)
	if err := f.passengers.AddFavourite(ctx, AddFavouriteRequest{
		PassengerEmail: "p@example.com",
		Name:           "airport",
		AddressID:      addressID,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	favourites, err := f.passengers.Favourites(ctx, "p@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(favourites) != 1 {
		t.Fatalf("expected 1 favourite, got %d", len(favourites))
	}
	if favourites[0].Name != "airport" || favourites[0].Address.Street != airport.Street {
		t.Errorf("unexpected favourite: %+v", favourites[0])
	}
}

func TestAddFavourite_Validation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	if err := f.passengers.AddFavourite(ctx, AddFavouriteRequest{PassengerEmail: "p@example.com", AddressID: 1}); err != ErrInvalidFavouriteName {
		t.Errorf("expected ErrInvalidFavouriteName, got %v", err)
	}
	if err := f.passengers.AddFavourite(ctx, AddFavouriteRequest{PassengerEmail: "p@example.com", Name: "gym"}); err != ErrInvalidAddressID {
		t.Errorf("expected ErrInvalidAddressID, got %v", err)
	}
	if err := f.passengers.AddFavourite(ctx, AddFavouriteRequest{Name: "gym", AddressID: 1}); err != ErrInvalidEmail {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestRequestRide_Validation(t *testing.T) {
	f := newFixture(t, nil)
	f.registerPassenger(t, "p@example.com")

	valid := domain.RideRequest{
		PassengerEmail:    "p@example.com",
		DropoffLocationID: 1,
		PickupDate:        "2025-01-02",
		PickupTime:        "09:30:00",
		NumberOfRiders:    2,
	}

	noRiders := valid
	noRiders.NumberOfRiders = 0

	noDate := valid
	noDate.PickupDate = ""

	noDropoff := valid
	noDropoff.DropoffLocationID = 0

	unknown := valid
	unknown.PassengerEmail = "ghost@example.com"

	testCases := []struct {
		name string
		req  domain.RideRequest
		want error
	}{
		{"no riders", noRiders, ErrInvalidRideRequest},
		{"no date", noDate, ErrInvalidRideRequest},
		{"no dropoff", noDropoff, ErrInvalidAddressID},
		{"unknown passenger", unknown, ErrPassengerNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.passengers.RequestRide(context.Background(), tc.req)
			if err != tc.want {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestRequestRide_AppearsUncompleted(t *testing.T) {
	f := newFixture(t, nil)
	f.registerPassenger(t, "p@example.com")

	id := f.requestRide(t, "p@example.com")

	open, err := f.rides.Uncompleted(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(open) != 1 || open[0].ID != id {
		t.Fatalf("expected request %d to be open, got %+v", id, open)
	}
	if open[0].PickupStreet != home.Street || open[0].DropoffStreet != airport.Street {
		t.Errorf("expected pickup at home and dropoff at airport, got %+v", open[0])
	}
}

func TestRequestRide_PickupTimeFormat(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.registerPassenger(t, "p@example.com")
	dropoff, _ := f.accounts.ResolveAddress(ctx, airport)

	testCases := []struct {
		name string
		time string
		want error
	}{
		{"hours and minutes", "09:30", nil},
		{"with seconds", "09:30:15", nil},
		{"not a time", "half past nine", ErrInvalidRideRequest},
		{"out of range", "25:00", ErrInvalidRideRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.passengers.RequestRide(ctx, domain.RideRequest{
				PassengerEmail:    "p@example.com",
				DropoffLocationID: dropoff,
				PickupDate:        "2025-01-02",
				PickupTime:        tc.time,
				NumberOfRiders:    1,
			})
			if err != tc.want {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}

	open, err := f.rides.Uncompleted(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range open {
		if r.PickupTime != "09:30" {
			t.Errorf("expected pickup time 09:30, got %s", r.PickupTime)
		}
	}
}
