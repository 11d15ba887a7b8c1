package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"rideshare/internal/handler"
	"rideshare/internal/repository/memory"
	"rideshare/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zerolog.Nop()
	gw := memory.NewGateway()
	accountService := service.NewAccountService(gw)
	passengerService := service.NewPassengerService(gw, gw)
	driverService := service.NewDriverService(gw)
	rideService := service.NewRideService(gw, driverService, nil, &logger)

	return NewRouter(RouterDeps{
		AccountHandler:   handler.NewAccountHandler(accountService),
		PassengerHandler: handler.NewPassengerHandler(passengerService),
		DriverHandler:    handler.NewDriverHandler(driverService),
		RideHandler:      handler.NewRideHandler(passengerService, rideService),
		Logger:           &logger,
	})
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

var home = gin.H{"street": "1 Main St", "city": "Springfield", "province": "ON", "postal_code": "A1A1A1"}

func accountBody(email string) gin.H {
	return gin.H{
		"first_name":   "Ada",
		"last_name":    "Lovelace",
		"birthdate":    "1990-12-10",
		"phone_number": "555-0100",
		"email":        email,
		"address":      home,
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)
	w := do(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Errorf("expected request id header")
	}
}

func TestCreateAccount_BadBody(t *testing.T) {
	router := newTestRouter(t)

	body := accountBody("not-an-email")
	w := do(t, router, http.MethodPost, "/v1/accounts", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}

	body = accountBody("a@example.com")
	delete(body, "first_name")
	w = do(t, router, http.MethodPost, "/v1/accounts", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRideFlow(t *testing.T) {
	router := newTestRouter(t)

	passenger := accountBody("p@example.com")
	passenger["passenger"] = gin.H{"credit_card_number": "4111111111111111"}
	if w := do(t, router, http.MethodPost, "/v1/accounts", passenger); w.Code != http.StatusCreated {
		t.Fatalf("create passenger: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	driver := accountBody("d@example.com")
	driver["driver"] = gin.H{"license_number": "D1234", "license_expiry_date": "2030-01-01"}
	if w := do(t, router, http.MethodPost, "/v1/accounts", driver); w.Code != http.StatusCreated {
		t.Fatalf("create driver: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var accounts []handler.AccountResponse
	w := do(t, router, http.MethodGet, "/v1/accounts", nil)
	decode(t, w, &accounts)
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].Address.ID != accounts[1].Address.ID {
		t.Errorf("expected shared home address, got %d and %d", accounts[0].Address.ID, accounts[1].Address.ID)
	}

	var exists handler.ExistsResponse
	decode(t, do(t, router, http.MethodGet, "/v1/passengers/p@example.com", nil), &exists)
	if !exists.Exists {
		t.Errorf("expected passenger to exist")
	}
	decode(t, do(t, router, http.MethodGet, "/v1/drivers/p@example.com", nil), &exists)
	if exists.Exists {
		t.Errorf("expected passenger not to be a driver")
	}

	var address handler.AddressIDResponse
	airport := gin.H{"street": "100 Terminal Rd", "city": "Shelbyville", "province": "ON", "postal_code": "B2B2B2"}
	decode(t, do(t, router, http.MethodPost, "/v1/addresses", airport), &address)
	if address.ID == 0 {
		t.Fatalf("expected address id")
	}

	fav := gin.H{"name": "airport", "address_id": address.ID}
	if w := do(t, router, http.MethodPost, "/v1/passengers/p@example.com/favourites", fav); w.Code != http.StatusCreated {
		t.Fatalf("add favourite: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var favourites []handler.FavouriteResponse
	decode(t, do(t, router, http.MethodGet, "/v1/passengers/p@example.com/favourites", nil), &favourites)
	if len(favourites) != 1 || favourites[0].Name != "airport" {
		t.Errorf("unexpected favourites: %+v", favourites)
	}

	request := gin.H{
		"passenger_email":     "p@example.com",
		"dropoff_location_id": address.ID,
		"pickup_date":         "2025-01-02",
		"pickup_time":         "09:30:00",
		"number_of_riders":    1,
	}
	var created handler.CreateRideRequestResponse
	w = do(t, router, http.MethodPost, "/v1/ride-requests", request)
	if w.Code != http.StatusCreated {
		t.Fatalf("request ride: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	decode(t, w, &created)

	var open []handler.UncompletedResponse
	decode(t, do(t, router, http.MethodGet, "/v1/ride-requests/uncompleted", nil), &open)
	if len(open) != 1 || open[0].ID != created.ID || open[0].PickupStreet != "1 Main St" {
		t.Fatalf("unexpected open requests: %+v", open)
	}

	ride := gin.H{
		"driver_email":          "d@example.com",
		"ride_request_id":       created.ID,
		"start_date":            "2025-01-02",
		"start_time":            "09:35:00",
		"end_date":              "2025-01-02",
		"end_time":              "10:05:00",
		"rating_from_driver":    5,
		"rating_from_passenger": 4,
		"distance":              12.5,
		"charge":                31.75,
	}
	if w := do(t, router, http.MethodPost, "/v1/rides", ride); w.Code != http.StatusCreated {
		t.Fatalf("record ride: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if w := do(t, router, http.MethodPost, "/v1/rides", ride); w.Code != http.StatusConflict {
		t.Errorf("second ride: expected 409, got %d", w.Code)
	}

	decode(t, do(t, router, http.MethodGet, "/v1/ride-requests/uncompleted", nil), &open)
	if len(open) != 0 {
		t.Errorf("expected no open requests, got %d", len(open))
	}

	var rating handler.RatingResponse
	decode(t, do(t, router, http.MethodGet, "/v1/drivers/d@example.com/rating", nil), &rating)
	if rating.AverageRating != 4 {
		t.Errorf("expected rating 4, got %v", rating.AverageRating)
	}
}

func TestNotFoundRoutes(t *testing.T) {
	router := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/v1/drivers/ghost@example.com/rating", nil},
		{http.MethodGet, "/v1/passengers/ghost@example.com/favourites", nil},
		{http.MethodPost, "/v1/passengers/ghost@example.com/favourites", gin.H{"name": "gym", "address_id": 1}},
		{http.MethodPost, "/v1/ride-requests", gin.H{
			"passenger_email":     "ghost@example.com",
			"dropoff_location_id": 1,
			"pickup_date":         "2025-01-02",
			"pickup_time":         "09:30:00",
			"number_of_riders":    1,
		}},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s %s", tc.method, tc.path), func(t *testing.T) {
			w := do(t, router, tc.method, tc.path, tc.body)
			if w.Code != http.StatusNotFound {
				t.Errorf("expected 404, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestEmptyListings(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/v1/accounts", "/v1/ride-requests/uncompleted"} {
		w := do(t, router, http.MethodGet, path, nil)
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Errorf("%s: expected 200 [], got %d %s", path, w.Code, w.Body.String())
		}
	}
}
