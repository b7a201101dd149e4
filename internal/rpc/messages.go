package rpc

import "github.com/umalmyha/poscustomers/internal/model"

// Empty is message without data
type Empty struct{}

// LoginRequest carries credentials
type LoginRequest struct {
	Email    string `msgpack:"email" validate:"required"`
	Password string `msgpack:"password" validate:"required"`
}

// SignupRequest carries new account data
type SignupRequest struct {
	Name            string `msgpack:"name" validate:"required"`
	Email           string `msgpack:"email" validate:"required,email"`
	Password        string `msgpack:"password" validate:"required"`
	ConfirmPassword string `msgpack:"confirmPassword" validate:"required"`
}

// SessionResponse is started session
type SessionResponse struct {
	Token     string         `msgpack:"accessToken"`
	ExpiresAt int64          `msgpack:"expiresAt"`
	Identity  model.Identity `msgpack:"identity"`
}

// ListCustomersRequest filters customers by search term
type ListCustomersRequest struct {
	Search string `msgpack:"search"`
}

// CustomerIDRequest identifies single customer
type CustomerIDRequest struct {
	ID string `msgpack:"id" validate:"required"`
}

// CustomerRequest carries customer fields
type CustomerRequest struct {
	Name        string       `msgpack:"name" validate:"required"`
	Country     string       `msgpack:"country" validate:"required"`
	Amount      float64      `msgpack:"amount" validate:"gte=0"`
	Email       string       `msgpack:"email" validate:"required,email"`
	PhoneNumber string       `msgpack:"phoneNumber" validate:"required"`
	PeriodStart string       `msgpack:"periodStart" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string       `msgpack:"periodEnd" validate:"required,datetime=2006-01-02"`
	Status      model.Status `msgpack:"status" validate:"required,oneof=active inactive"`
}

// Fields converts request to model fields
func (r *CustomerRequest) Fields() model.CustomerFields {
	return model.CustomerFields{
		Name:        r.Name,
		Country:     r.Country,
		Amount:      r.Amount,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		PeriodStart: r.PeriodStart,
		PeriodEnd:   r.PeriodEnd,
		Status:      r.Status,
	}
}

// UpdateCustomerRequest replaces fields of customer with provided id
type UpdateCustomerRequest struct {
	ID              string `msgpack:"id" validate:"required"`
	CustomerRequest `msgpack:",inline"`
}

// CustomerListResponse is list of customers in insertion order
type CustomerListResponse struct {
	Customers []*model.Customer `msgpack:"customers"`
}
