package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"rideshare/internal/domain"
	"rideshare/internal/repository/memory"
)

var home = domain.Address{Street: "1 Main St", City: "Springfield", Province: "ON", PostalCode: "A1A1A1"}

var airport = domain.Address{Street: "100 Terminal Rd", City: "Shelbyville", Province: "ON", PostalCode: "B2B2B2"}

func testAccount(email string) domain.Account {
	return domain.Account{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Birthdate:   "1990-12-10",
		PhoneNumber: "555-0100",
		Email:       email,
		Address:     home,
	}
}

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// fixture wires every service over one in-memory gateway.
type fixture struct {
	gw         *memory.Gateway
	accounts   *AccountService
	passengers *PassengerService
	drivers    *DriverService
	rides      *RideService
}

func newFixture(t *testing.T, locker *fakeLocker) *fixture {
	t.Helper()
	gw := memory.NewGateway()
	drivers := NewDriverService(gw)
	f := &fixture{
		gw:         gw,
		accounts:   NewAccountService(gw),
		passengers: NewPassengerService(gw, gw),
		drivers:    drivers,
	}
	if locker != nil {
		f.rides = NewRideService(gw, drivers, locker, nopLogger())
	} else {
		f.rides = NewRideService(gw, drivers, nil, nopLogger())
	}
	return f
}

func (f *fixture) registerPassenger(t *testing.T, email string) {
	t.Helper()
	_, err := f.accounts.Register(context.Background(), RegisterRequest{
		Account:   testAccount(email),
		Passenger: &domain.Passenger{CreditCardNumber: "4111111111111111"},
	})
	if err != nil {
		t.Fatalf("register passenger: %v", err)
	}
}

func (f *fixture) registerDriver(t *testing.T, email string) {
	t.Helper()
	_, err := f.accounts.Register(context.Background(), RegisterRequest{
		Account: testAccount(email),
		Driver:  &domain.Driver{LicenseNumber: "D1234", LicenseExpiryDate: "2030-01-01"},
	})
	if err != nil {
		t.Fatalf("register driver: %v", err)
	}
}

func (f *fixture) requestRide(t *testing.T, email string) int64 {
	t.Helper()
	ctx := context.Background()
	dropoff, err := f.accounts.ResolveAddress(ctx, airport)
	if err != nil {
		t.Fatalf("resolve dropoff: %v", err)
	}
	id, err := f.passengers.RequestRide(ctx, domain.RideRequest{
		PassengerEmail:    email,
		DropoffLocationID: dropoff,
		PickupDate:        "2025-01-02",
		PickupTime:        "09:30:00",
		NumberOfRiders:    1,
	})
	if err != nil {
		t.Fatalf("request ride: %v", err)
	}
	return id
}

func testRide(driverEmail string, requestID int64, rating float64) domain.Ride {
	return domain.Ride{
		DriverEmail:         driverEmail,
		RideRequestID:       requestID,
		StartDate:           "2025-01-02",
		StartTime:           "09:35:00",
		EndDate:             "2025-01-02",
		EndTime:             "10:05:00",
		RatingFromDriver:    5,
		RatingFromPassenger: rating,
		Distance:            12.5,
		Charge:              31.75,
	}
}

// fakeLocker is an in-process RequestLocker.
type fakeLocker struct {
	mu       sync.Mutex
	held     map[int64]string
	acquired int
	released int
	err      error

	// onAcquire runs after a successful acquire.
	onAcquire func()
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[int64]string)}
}

func (l *fakeLocker) AcquireRequestLock(ctx context.Context, requestID int64, ttl time.Duration) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return "", false, l.err
	}
	if _, ok := l.held[requestID]; ok {
		return "", false, nil
	}
	l.acquired++
	l.held[requestID] = "token"
	if l.onAcquire != nil {
		l.onAcquire()
	}
	return "token", true, nil
}

func (l *fakeLocker) ReleaseRequestLock(ctx context.Context, requestID int64, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	if l.held[requestID] == token {
		delete(l.held, requestID)
		l.released++
	}
	return nil
}
