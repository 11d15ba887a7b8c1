package repository

import (
	"context"

	"rideshare/internal/domain"
)

// AccountRepository defines the persistence operations for accounts and their addresses.
type AccountRepository interface {
	// CreateAccount inserts an account and, when given, its passenger and
	// driver roles, all or nothing. Returns the new account id.
	CreateAccount(ctx context.Context, account domain.Account, passenger *domain.Passenger, driver *domain.Driver) (int64, error)

	// InsertAccount resolves the account's address and inserts the account row.
	InsertAccount(ctx context.Context, account domain.Account) (int64, error)

	// InsertAddressIfNotExists returns the id of the address with exactly these
	// fields, creating it when absent.
	InsertAddressIfNotExists(ctx context.Context, address domain.Address) (int64, error)

	// GetAllAccounts retrieves every account with its address and role flags.
	GetAllAccounts(ctx context.Context) ([]*domain.Account, error)

	// GetAccountAddressIDFromEmail returns the home address id of the account.
	GetAccountAddressIDFromEmail(ctx context.Context, email string) (int64, error)
}
