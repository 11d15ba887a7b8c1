package domain

// Address is a postal address. Addresses are content-addressed: two addresses
// with the same street, city, province and postal code share one row.
type Address struct {
	ID         int64
	Street     string
	City       string
	Province   string
	PostalCode string
}

// Account represents a person registered in the system. An account may act as
// a passenger, a driver, or both.
type Account struct {
	ID          int64
	FirstName   string
	LastName    string
	Birthdate   string // YYYY-MM-DD
	Address     Address
	PhoneNumber string
	Email       string
	IsPassenger bool
	IsDriver    bool
}

// Passenger holds the passenger role data of an account.
type Passenger struct {
	CreditCardNumber string
}

// FavouriteDestination is a named address saved by a passenger.
type FavouriteDestination struct {
	Name    string
	Address Address
}
