package domain

import "time"

// RideRequest is a passenger's request for a ride. A request is open until a
// Ride referencing it is recorded; there is no stored status.
type RideRequest struct {
	ID                int64
	PassengerEmail    string
	DropoffLocationID int64
	PickupDate        string // YYYY-MM-DD
	PickupTime        string // HH:MM, HH:MM:SS accepted on input
	NumberOfRiders    int
}

// UncompletedRideRequest is the listing view of an open ride request.
type UncompletedRideRequest struct {
	ID                 int64
	PassengerFirstName string
	PassengerLastName  string
	PickupStreet       string
	PickupCity         string
	DropoffStreet      string
	DropoffCity        string
	PickupDate         string
	PickupTime         string
}

// Ride is the terminal record of a completed ride request.
type Ride struct {
	DriverEmail         string
	RideRequestID       int64
	StartDate           string
	StartTime           string
	EndDate             string
	EndTime             string
	RatingFromDriver    float64
	RatingFromPassenger float64
	Distance            float64 // kilometers
	Charge              float64
}

// ClockTime returns t as HH:MM. Both HH:MM and HH:MM:SS are accepted; seconds
// are dropped. ok is false when t is neither.
func ClockTime(t string) (clock string, ok bool) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if parsed, err := time.Parse(layout, t); err == nil {
			return parsed.Format("15:04"), true
		}
	}
	return "", false
}
