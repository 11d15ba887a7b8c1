// Package memory is an in-process repository.Gateway with the same
// semantics as the PostgreSQL gateway. It is test infrastructure: it backs
// the service, handler and router tests and is never wired into cmd/server.
package memory

import (
	"context"
	"errors"
	"sync"

	"rideshare/internal/domain"
	"rideshare/internal/repository"
)

var errNoRow = errors.New("no matching row")

type licenseKey struct {
	number, expiry string
}

type accountRow struct {
	account   domain.Account
	addressID int64
}

type favouriteRow struct {
	passengerID int64
	locationID  int64
	name        string
}

type requestRow struct {
	id          int64
	passengerID int64
	pickupID    int64
	dropoffID   int64
	date, time  string
	riders      int
}

type rideRow struct {
	driverID int64
	ride     domain.Ride
}

// Gateway is an in-memory implementation of repository.Gateway.
type Gateway struct {
	mu sync.RWMutex

	addresses   []domain.Address
	addressKeys map[domain.Address]int64
	licenses    []domain.License
	licenseKeys map[licenseKey]int64
	accounts    []accountRow
	passengers  map[int64]string
	drivers     map[int64]int64
	favourites  []favouriteRow
	requests    []requestRow
	rides       []rideRow
}

var _ repository.Gateway = (*Gateway)(nil)

// NewGateway creates an empty in-memory gateway.
func NewGateway() *Gateway {
	return &Gateway{
		addressKeys: make(map[domain.Address]int64),
		licenseKeys: make(map[licenseKey]int64),
		passengers:  make(map[int64]string),
		drivers:     make(map[int64]int64),
	}
}

func notFound(op string) error {
	return &repository.Error{Op: op, Kind: repository.ErrNotFound, Err: errNoRow}
}

func constraint(op string, err error) error {
	return &repository.Error{Op: op, Kind: repository.ErrConstraintViolation, Err: err}
}

// InsertAddressIfNotExists returns the id of the address with exactly these
// fields, creating it when absent.
func (g *Gateway) InsertAddressIfNotExists(ctx context.Context, address domain.Address) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.upsertAddress(address), nil
}

func (g *Gateway) upsertAddress(address domain.Address) int64 {
	key := address
	key.ID = 0
	if id, ok := g.addressKeys[key]; ok {
		return id
	}
	id := int64(len(g.addresses) + 1)
	g.addressKeys[key] = id
	key.ID = id
	g.addresses = append(g.addresses, key)
	return id
}

// InsertLicense returns the id of the license, creating it when absent.
func (g *Gateway) InsertLicense(ctx context.Context, number, expiryDate string) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.upsertLicense(domain.License{Number: number, ExpiryDate: expiryDate}), nil
}

func (g *Gateway) upsertLicense(license domain.License) int64 {
	key := licenseKey{license.Number, license.ExpiryDate}
	if id, ok := g.licenseKeys[key]; ok {
		return id
	}
	license.ID = int64(len(g.licenses) + 1)
	g.licenses = append(g.licenses, license)
	g.licenseKeys[key] = license.ID
	return license.ID
}

// CreateAccount inserts the account and its roles. Either everything is
// stored or nothing is.
func (g *Gateway) CreateAccount(ctx context.Context, account domain.Account, passenger *domain.Passenger, driver *domain.Driver) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.insertAccount(account)
	if passenger != nil {
		g.passengers[id] = passenger.CreditCardNumber
	}
	if driver != nil {
		g.drivers[id] = g.upsertLicense(driver.License())
	}
	return id, nil
}

// InsertAccount resolves the address and inserts the account.
func (g *Gateway) InsertAccount(ctx context.Context, account domain.Account) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.insertAccount(account), nil
}

func (g *Gateway) insertAccount(account domain.Account) int64 {
	addressID := g.upsertAddress(account.Address)
	account.ID = int64(len(g.accounts) + 1)
	account.Address = g.addresses[addressID-1]
	g.accounts = append(g.accounts, accountRow{account: account, addressID: addressID})
	return account.ID
}

// InsertPassenger writes the passenger role keyed by the account id.
func (g *Gateway) InsertPassenger(ctx context.Context, passenger domain.Passenger, accountID int64) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.knownAccount(accountID) {
		return 0, constraint("insert passenger", errors.New("unknown account id"))
	}
	if _, ok := g.passengers[accountID]; ok {
		return 0, constraint("insert passenger", errors.New("duplicate passenger id"))
	}
	g.passengers[accountID] = passenger.CreditCardNumber
	return accountID, nil
}

// InsertDriver resolves the license and writes the driver role.
func (g *Gateway) InsertDriver(ctx context.Context, driver domain.Driver, accountID int64) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.knownAccount(accountID) {
		return 0, constraint("insert driver", errors.New("unknown account id"))
	}
	if _, ok := g.drivers[accountID]; ok {
		return 0, constraint("insert driver", errors.New("duplicate driver id"))
	}
	g.drivers[accountID] = g.upsertLicense(driver.License())
	return accountID, nil
}

func (g *Gateway) knownAccount(id int64) bool {
	return id >= 1 && id <= int64(len(g.accounts))
}

// accountByEmail returns the first account with the email.
func (g *Gateway) accountByEmail(email string) (accountRow, bool) {
	for _, row := range g.accounts {
		if row.account.Email == email {
			return row, true
		}
	}
	return accountRow{}, false
}

// GetAccountAddressIDFromEmail returns the account's home address id.
func (g *Gateway) GetAccountAddressIDFromEmail(ctx context.Context, email string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.accountByEmail(email)
	if !ok {
		return 0, notFound("resolve account address")
	}
	return row.addressID, nil
}

// GetAllAccounts retrieves every account with address and role flags.
func (g *Gateway) GetAllAccounts(ctx context.Context) ([]*domain.Account, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var accounts []*domain.Account
	for _, row := range g.accounts {
		account := row.account
		_, account.IsPassenger = g.passengers[account.ID]
		_, account.IsDriver = g.drivers[account.ID]
		accounts = append(accounts, &account)
	}
	return accounts, nil
}

func (g *Gateway) passengerID(email string) (int64, bool) {
	row, ok := g.accountByEmail(email)
	if !ok {
		return 0, false
	}
	_, ok = g.passengers[row.account.ID]
	return row.account.ID, ok
}

func (g *Gateway) driverID(email string) (int64, bool) {
	row, ok := g.accountByEmail(email)
	if !ok {
		return 0, false
	}
	_, ok = g.drivers[row.account.ID]
	return row.account.ID, ok
}

// CheckPassengerExists reports whether the email belongs to a passenger.
func (g *Gateway) CheckPassengerExists(ctx context.Context, email string) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.passengerID(email)
	return ok, nil
}

// CheckDriverExists reports whether the email belongs to a driver.
func (g *Gateway) CheckDriverExists(ctx context.Context, email string) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.driverID(email)
	return ok, nil
}

// GetPassengerIDFromEmail returns the passenger id for the email.
func (g *Gateway) GetPassengerIDFromEmail(ctx context.Context, email string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.passengerID(email)
	if !ok {
		return 0, notFound("resolve passenger")
	}
	return id, nil
}

// GetDriverIDFromEmail returns the driver id for the email.
func (g *Gateway) GetDriverIDFromEmail(ctx context.Context, email string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.driverID(email)
	if !ok {
		return 0, notFound("resolve driver")
	}
	return id, nil
}

// InsertFavouriteDestination saves a named address for the passenger.
func (g *Gateway) InsertFavouriteDestination(ctx context.Context, name, passengerEmail string, addressID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	passengerID, ok := g.passengerID(passengerEmail)
	if !ok {
		return notFound("resolve passenger")
	}
	if addressID < 1 || addressID > int64(len(g.addresses)) {
		return constraint("insert favourite destination", errors.New("unknown location id"))
	}
	g.favourites = append(g.favourites, favouriteRow{passengerID: passengerID, locationID: addressID, name: name})
	return nil
}

// GetFavouriteDestinationsForPassenger retrieves the passenger's favourites.
func (g *Gateway) GetFavouriteDestinationsForPassenger(ctx context.Context, passengerEmail string) ([]*domain.FavouriteDestination, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	passengerID, ok := g.passengerID(passengerEmail)
	if !ok {
		return nil, notFound("resolve passenger")
	}

	var favourites []*domain.FavouriteDestination
	for _, row := range g.favourites {
		if row.passengerID != passengerID {
			continue
		}
		favourites = append(favourites, &domain.FavouriteDestination{
			Name:    row.name,
			Address: g.addresses[row.locationID-1],
		})
	}
	return favourites, nil
}

// GetAverageRatingForDriver averages passenger ratings; 0 with no rides.
func (g *Gateway) GetAverageRatingForDriver(ctx context.Context, email string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	driverID, ok := g.driverID(email)
	if !ok {
		return 0, notFound("resolve driver")
	}

	var sum float64
	var n int
	for _, row := range g.rides {
		if row.driverID == driverID {
			sum += row.ride.RatingFromPassenger
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return sum / float64(n), nil
}

// InsertRideRequest creates a request picked up at the passenger's home address.
func (g *Gateway) InsertRideRequest(ctx context.Context, req domain.RideRequest) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	passengerID, ok := g.passengerID(req.PassengerEmail)
	if !ok {
		return 0, notFound("resolve passenger")
	}
	if req.DropoffLocationID < 1 || req.DropoffLocationID > int64(len(g.addresses)) {
		return 0, constraint("insert ride request", errors.New("unknown dropoff location id"))
	}

	row := requestRow{
		id:          int64(len(g.requests) + 1),
		passengerID: passengerID,
		pickupID:    g.accounts[passengerID-1].addressID,
		dropoffID:   req.DropoffLocationID,
		date:        req.PickupDate,
		time:        clockTime(req.PickupTime),
		riders:      req.NumberOfRiders,
	}
	g.requests = append(g.requests, row)
	return row.id, nil
}

// clockTime mirrors the HH:MM read-back of the PostgreSQL gateway.
func clockTime(t string) string {
	if clock, ok := domain.ClockTime(t); ok {
		return clock
	}
	return t
}

func (g *Gateway) fulfilled(requestID int64) bool {
	for _, row := range g.rides {
		if row.ride.RideRequestID == requestID {
			return true
		}
	}
	return false
}

// GetUncompletedRideRequests retrieves every request no ride references.
func (g *Gateway) GetUncompletedRideRequests(ctx context.Context) ([]*domain.UncompletedRideRequest, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var requests []*domain.UncompletedRideRequest
	for _, row := range g.requests {
		if g.fulfilled(row.id) {
			continue
		}
		passenger := g.accounts[row.passengerID-1].account
		pickup := g.addresses[row.pickupID-1]
		dropoff := g.addresses[row.dropoffID-1]
		requests = append(requests, &domain.UncompletedRideRequest{
			ID:                 row.id,
			PassengerFirstName: passenger.FirstName,
			PassengerLastName:  passenger.LastName,
			PickupStreet:       pickup.Street,
			PickupCity:         pickup.City,
			DropoffStreet:      dropoff.Street,
			DropoffCity:        dropoff.City,
			PickupDate:         row.date,
			PickupTime:         row.time,
		})
	}
	return requests, nil
}

// IsRideRequestOpen reports whether no ride references the request.
func (g *Gateway) IsRideRequestOpen(ctx context.Context, requestID int64) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if requestID < 1 || requestID > int64(len(g.requests)) {
		return false, notFound("check ride request")
	}
	return !g.fulfilled(requestID), nil
}

// InsertRide records a ride. A second ride for the same request is accepted.
func (g *Gateway) InsertRide(ctx context.Context, ride domain.Ride) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	driverID, ok := g.driverID(ride.DriverEmail)
	if !ok {
		return notFound("resolve driver")
	}
	if ride.RideRequestID < 1 || ride.RideRequestID > int64(len(g.requests)) {
		return constraint("insert ride", errors.New("unknown request id"))
	}
	g.rides = append(g.rides, rideRow{driverID: driverID, ride: ride})
	return nil
}

// Counts reports the number of stored rows per table. Tests use it to
// assert that rejected writes left nothing behind.
func (g *Gateway) Counts() map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return map[string]int{
		"addresses":           len(g.addresses),
		"licenses":            len(g.licenses),
		"accounts":            len(g.accounts),
		"passengers":          len(g.passengers),
		"drivers":             len(g.drivers),
		"favourite_locations": len(g.favourites),
		"ride_requests":       len(g.requests),
		"rides":               len(g.rides),
	}
}
