package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rideshare/internal/domain"
	"rideshare/internal/service"
)

// AccountHandler handles HTTP requests for accounts and addresses.
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// PassengerBody carries the passenger role of a new account.
type PassengerBody struct {
	CreditCardNumber string `json:"credit_card_number" binding:"required"`
}

// DriverBody carries the driver role of a new account.
type DriverBody struct {
	LicenseNumber     string `json:"license_number" binding:"required"`
	LicenseExpiryDate string `json:"license_expiry_date" binding:"required"`
}

// CreateAccountRequest is the HTTP request body for account creation.
type CreateAccountRequest struct {
	FirstName   string         `json:"first_name" binding:"required"`
	LastName    string         `json:"last_name" binding:"required"`
	Birthdate   string         `json:"birthdate" binding:"required"`
	PhoneNumber string         `json:"phone_number" binding:"required"`
	Email       string         `json:"email" binding:"required,email"`
	Address     AddressBody    `json:"address" binding:"required"`
	Passenger   *PassengerBody `json:"passenger,omitempty"`
	Driver      *DriverBody    `json:"driver,omitempty"`
}

// CreateAccountResponse is the HTTP response for account creation.
type CreateAccountResponse struct {
	ID int64 `json:"id"`
}

// AccountResponse is the HTTP response for account data.
type AccountResponse struct {
	ID          int64       `json:"id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Birthdate   string      `json:"birthdate"`
	PhoneNumber string      `json:"phone_number"`
	Email       string      `json:"email"`
	Address     AddressBody `json:"address"`
	IsPassenger bool        `json:"is_passenger"`
	IsDriver    bool        `json:"is_driver"`
}

// AddressIDResponse is the HTTP response for address resolution.
type AddressIDResponse struct {
	ID int64 `json:"id"`
}

// Create handles POST /v1/accounts
func (h *AccountHandler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	register := service.RegisterRequest{
		Account: domain.Account{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Birthdate:   req.Birthdate,
			PhoneNumber: req.PhoneNumber,
			Email:       req.Email,
			Address:     req.Address.toDomain(),
		},
	}
	if req.Passenger != nil {
		register.Passenger = &domain.Passenger{CreditCardNumber: req.Passenger.CreditCardNumber}
	}
	if req.Driver != nil {
		register.Driver = &domain.Driver{
			LicenseNumber:     req.Driver.LicenseNumber,
			LicenseExpiryDate: req.Driver.LicenseExpiryDate,
		}
	}

	id, err := h.accountService.Register(c.Request.Context(), register)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, CreateAccountResponse{ID: id})
}

// GetAll handles GET /v1/accounts
func (h *AccountHandler) GetAll(c *gin.Context) {
	accounts, err := h.accountService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		response = append(response, AccountResponse{
			ID:          a.ID,
			FirstName:   a.FirstName,
			LastName:    a.LastName,
			Birthdate:   a.Birthdate,
			PhoneNumber: a.PhoneNumber,
			Email:       a.Email,
			Address:     addressBody(a.Address),
			IsPassenger: a.IsPassenger,
			IsDriver:    a.IsDriver,
		})
	}

	respondJSON(c, http.StatusOK, response)
}

// ResolveAddress handles POST /v1/addresses
func (h *AccountHandler) ResolveAddress(c *gin.Context) {
	var req AddressBody
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	id, err := h.accountService.ResolveAddress(c.Request.Context(), req.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, AddressIDResponse{ID: id})
}
