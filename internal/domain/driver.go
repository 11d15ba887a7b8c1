package domain

// License is a driver's license, deduplicated on number and expiry date.
type License struct {
	ID         int64
	Number     string
	ExpiryDate string // YYYY-MM-DD
}

// Driver holds the driver role data of an account.
type Driver struct {
	LicenseNumber     string
	LicenseExpiryDate string
}

// License returns the license described by the driver.
func (d Driver) License() License {
	return License{Number: d.LicenseNumber, ExpiryDate: d.LicenseExpiryDate}
}
