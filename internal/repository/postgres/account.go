package postgres

import (
	"context"

	"rideshare/internal/domain"
	"rideshare/internal/sqlerr"
)

// CreateAccount inserts the account and, when given, its passenger and driver
// roles in one transaction. Nothing is kept if any step fails.
func (g *Gateway) CreateAccount(ctx context.Context, account domain.Account, passenger *domain.Passenger, driver *domain.Driver) (accountID int64, err error) {
	if g.db == nil {
		return g.createAccount(ctx, account, passenger, driver)
	}

	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, sqlerr.Wrap("begin create account", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	accountID, err = NewGatewayWithTx(tx).createAccount(ctx, account, passenger, driver)
	if err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, sqlerr.Wrap("commit create account", err)
	}

	return accountID, nil
}

func (g *Gateway) createAccount(ctx context.Context, account domain.Account, passenger *domain.Passenger, driver *domain.Driver) (int64, error) {
	accountID, err := g.InsertAccount(ctx, account)
	if err != nil {
		return 0, err
	}

	if passenger != nil {
		if _, err := g.InsertPassenger(ctx, *passenger, accountID); err != nil {
			return 0, err
		}
	}

	if driver != nil {
		if _, err := g.InsertDriver(ctx, *driver, accountID); err != nil {
			return 0, err
		}
	}

	return accountID, nil
}

// InsertAccount resolves the account's address and inserts the account row,
// returning the generated id.
func (g *Gateway) InsertAccount(ctx context.Context, account domain.Account) (int64, error) {
	addressID, err := g.InsertAddressIfNotExists(ctx, account.Address)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO accounts (first_name, last_name, birthdate, address_id, phone_number, email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	return g.queryID(ctx, "insert account", query,
		account.FirstName,
		account.LastName,
		account.Birthdate,
		addressID,
		account.PhoneNumber,
		account.Email,
	)
}

// GetAccountAddressIDFromEmail returns the home address id of the account.
func (g *Gateway) GetAccountAddressIDFromEmail(ctx context.Context, email string) (int64, error) {
	query := `
		SELECT ad.id FROM addresses ad
		JOIN accounts a ON a.address_id = ad.id
		WHERE a.email = $1
	`
	return g.queryID(ctx, "resolve account address", query, email)
}

// GetAllAccounts retrieves every account with its address and role flags.
func (g *Gateway) GetAllAccounts(ctx context.Context) ([]*domain.Account, error) {
	query := `
		SELECT a.id, a.first_name, a.last_name, a.birthdate::text, a.phone_number, a.email,
			ad.id, ad.street, ad.city, ad.province, ad.postal_code,
			p.id IS NOT NULL AS is_passenger, d.id IS NOT NULL AS is_driver
		FROM accounts a
		JOIN addresses ad ON ad.id = a.address_id
		LEFT JOIN passengers p ON p.id = a.id
		LEFT JOIN drivers d ON d.id = a.id
	`

	rows, err := g.q.QueryContext(ctx, query)
	if err != nil {
		return nil, sqlerr.Wrap("list accounts", err)
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.ID,
			&account.FirstName,
			&account.LastName,
			&account.Birthdate,
			&account.PhoneNumber,
			&account.Email,
			&account.Address.ID,
			&account.Address.Street,
			&account.Address.City,
			&account.Address.Province,
			&account.Address.PostalCode,
			&account.IsPassenger,
			&account.IsDriver,
		); err != nil {
			return nil, sqlerr.Wrap("list accounts", err)
		}
		accounts = append(accounts, &account)
	}

	return accounts, sqlerr.Wrap("list accounts", rows.Err())
}
