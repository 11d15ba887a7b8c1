package service

import (
	"context"
	"strings"

	"rideshare/internal/domain"
	"rideshare/internal/repository"
)

// AccountService handles account registration and listing.
type AccountService struct {
	accountRepo repository.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo repository.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// RegisterRequest contains the parameters for creating an account.
// Passenger and Driver are optional.
type RegisterRequest struct {
	Account   domain.Account
	Passenger *domain.Passenger
	Driver    *domain.Driver
}

// Register creates the account and the requested roles in one step.
func (s *AccountService) Register(ctx context.Context, req RegisterRequest) (int64, error) {
	if err := validateRegister(req); err != nil {
		return 0, err
	}
	return s.accountRepo.CreateAccount(ctx, req.Account, req.Passenger, req.Driver)
}

// List returns every account.
func (s *AccountService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.accountRepo.GetAllAccounts(ctx)
}

// ResolveAddress returns the id of the address, creating it when absent.
func (s *AccountService) ResolveAddress(ctx context.Context, address domain.Address) (int64, error) {
	if !isValidAddress(address) {
		return 0, ErrInvalidAddress
	}
	return s.accountRepo.InsertAddressIfNotExists(ctx, address)
}

func validateRegister(req RegisterRequest) error {
	a := req.Account
	if blank(a.FirstName) || blank(a.LastName) || blank(a.Birthdate) || blank(a.PhoneNumber) {
		return ErrInvalidAccount
	}
	if blank(a.Email) {
		return ErrInvalidEmail
	}
	if !isValidAddress(a.Address) {
		return ErrInvalidAddress
	}
	if req.Passenger != nil && blank(req.Passenger.CreditCardNumber) {
		return ErrInvalidPassenger
	}
	if req.Driver != nil && (blank(req.Driver.LicenseNumber) || blank(req.Driver.LicenseExpiryDate)) {
		return ErrInvalidDriver
	}
	return nil
}

// isValidAddress requires every field. Values are stored as given; no
// trimming or case folding happens, so dedup stays exact.
func isValidAddress(a domain.Address) bool {
	return !blank(a.Street) && !blank(a.City) && !blank(a.Province) && !blank(a.PostalCode)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
