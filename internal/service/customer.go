package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/umalmyha/poscustomers/internal/errors"
	"github.com/umalmyha/poscustomers/internal/model"
	"github.com/umalmyha/poscustomers/internal/repository"
)

// CustomerService represents customer store behavior
type CustomerService interface {
	FindAll(context.Context) ([]*model.Customer, error)
	FindByID(context.Context, string) (*model.Customer, error)
	Search(context.Context, string) ([]*model.Customer, error)
	Aggregates(context.Context) (model.CustomerStats, error)
	Create(context.Context, model.CustomerFields) (*model.Customer, error)
	Update(context.Context, string, model.CustomerFields) (*model.Customer, error)
	DeleteByID(context.Context, string) error
	Seed(context.Context, []model.CustomerFields) error
}

type customerService struct {
	customerRps repository.CustomerRepository
}

// NewCustomerService builds new customer service
func NewCustomerService(customerRps repository.CustomerRepository) CustomerService {
	return &customerService{customerRps: customerRps}
}

func (s *customerService) FindAll(ctx context.Context) ([]*model.Customer, error) {
	return s.customerRps.FindAll(ctx)
}

func (s *customerService) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	c, err := s.customerRps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, notFound(id)
	}
	return c, nil
}

func (s *customerService) Search(ctx context.Context, term string) ([]*model.Customer, error) {
	return s.customerRps.Search(ctx, strings.TrimSpace(term))
}

func (s *customerService) Aggregates(ctx context.Context) (model.CustomerStats, error) {
	return s.customerRps.Stats(ctx)
}

func (s *customerService) Create(ctx context.Context, fields model.CustomerFields) (*model.Customer, error) {
	fields = normalize(fields)
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	c := model.NewCustomer(uuid.NewString(), fields)
	if err := s.customerRps.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) Update(ctx context.Context, id string, fields model.CustomerFields) (*model.Customer, error) {
	fields = normalize(fields)
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	c := model.NewCustomer(id, fields)

	updated, err := s.customerRps.Update(ctx, c)
	if err != nil {
		return nil, err
	}

	if !updated {
		return nil, notFound(id)
	}
	return c, nil
}

func (s *customerService) DeleteByID(ctx context.Context, id string) error {
	deleted, err := s.customerRps.DeleteByID(ctx, id)
	if err != nil {
		return err
	}

	if !deleted {
		return notFound(id)
	}
	return nil
}

func (s *customerService) Seed(ctx context.Context, customers []model.CustomerFields) error {
	for _, fields := range customers {
		if _, err := s.Create(ctx, fields); err != nil {
			return fmt.Errorf("failed to seed customer %s - %w", fields.Name, err)
		}
	}
	return nil
}

func notFound(id string) error {
	return apperrors.NewEntryNotFoundErr(fmt.Sprintf("customer with id %s doesn't exist", id))
}

func normalize(fields model.CustomerFields) model.CustomerFields {
	fields.Name = strings.TrimSpace(fields.Name)
	fields.Country = strings.TrimSpace(fields.Country)
	fields.Email = strings.TrimSpace(fields.Email)
	fields.PhoneNumber = strings.TrimSpace(fields.PhoneNumber)
	fields.PeriodStart = strings.TrimSpace(fields.PeriodStart)
	fields.PeriodEnd = strings.TrimSpace(fields.PeriodEnd)
	return fields
}

// validateFields doesn't check order of period dates, period end may precede period start
func validateFields(fields model.CustomerFields) error {
	required := []struct {
		target string
		value  string
	}{
		{"name", fields.Name},
		{"country", fields.Country},
		{"email", fields.Email},
		{"phoneNumber", fields.PhoneNumber},
		{"periodStart", fields.PeriodStart},
		{"periodEnd", fields.PeriodEnd},
	}

	for _, r := range required {
		if r.value == "" {
			return apperrors.NewValidationErr(r.target, fmt.Sprintf("%s is required", r.target))
		}
	}

	if math.IsNaN(fields.Amount) || math.IsInf(fields.Amount, 0) {
		return apperrors.NewValidationErr("amount", "amount must be a finite number")
	}

	if fields.Amount < 0 {
		return apperrors.NewValidationErr("amount", "amount must not be negative")
	}

	if _, err := time.Parse(model.DateLayout, fields.PeriodStart); err != nil {
		return apperrors.NewValidationErr("periodStart", "periodStart must be a date in YYYY-MM-DD format")
	}

	if _, err := time.Parse(model.DateLayout, fields.PeriodEnd); err != nil {
		return apperrors.NewValidationErr("periodEnd", "periodEnd must be a date in YYYY-MM-DD format")
	}

	if !fields.Status.Valid() {
		return apperrors.NewValidationErr("status", "status must be one of active, inactive")
	}
	return nil
}
