package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/umalmyha/poscustomers/internal/model"
)

// CustomerRepository represents behavior of customer repository
type CustomerRepository interface {
	FindByID(context.Context, string) (*model.Customer, error)
	FindAll(context.Context) ([]*model.Customer, error)
	Search(context.Context, string) ([]*model.Customer, error)
	Stats(context.Context) (model.CustomerStats, error)
	Create(context.Context, *model.Customer) error
	Update(context.Context, *model.Customer) (bool, error)
	DeleteByID(context.Context, string) (bool, error)
}

// memoryCustomerRepository keeps customers in insertion order; index maps id to slice position
type memoryCustomerRepository struct {
	mu        sync.RWMutex
	customers []*model.Customer
	index     map[string]int
}

// NewMemoryCustomerRepository builds new in-memory customer repository
func NewMemoryCustomerRepository() CustomerRepository {
	return &memoryCustomerRepository{
		customers: make([]*model.Customer, 0),
		index:     make(map[string]int),
	}
}

func (r *memoryCustomerRepository) FindByID(_ context.Context, id string) (*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	return r.customers[pos].Clone(), nil
}

func (r *memoryCustomerRepository) FindAll(_ context.Context) ([]*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]*model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		customers = append(customers, c.Clone())
	}
	return customers, nil
}

func (r *memoryCustomerRepository) Search(_ context.Context, term string) ([]*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	term = strings.ToLower(term)

	customers := make([]*model.Customer, 0)
	for _, c := range r.customers {
		if matches(c, term) {
			customers = append(customers, c.Clone())
		}
	}
	return customers, nil
}

func (r *memoryCustomerRepository) Stats(_ context.Context) (model.CustomerStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := model.CustomerStats{Count: len(r.customers)}
	countries := make(map[string]struct{})

	for _, c := range r.customers {
		if c.Active() {
			stats.ActiveCount++
		}
		stats.TotalAmount += c.Amount
		countries[c.Country] = struct{}{}
	}
	stats.DistinctCountryCount = len(countries)

	return stats, nil
}

func (r *memoryCustomerRepository) Create(_ context.Context, c *model.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[c.ID]; ok {
		return fmt.Errorf("customer with id %s already exists", c.ID)
	}

	r.index[c.ID] = len(r.customers)
	r.customers = append(r.customers, c.Clone())
	return nil
}

func (r *memoryCustomerRepository) Update(_ context.Context, c *model.Customer) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[c.ID]
	if !ok {
		return false, nil
	}

	r.customers[pos] = c.Clone()
	return true, nil
}

func (r *memoryCustomerRepository) DeleteByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return false, nil
	}

	r.customers = append(r.customers[:pos], r.customers[pos+1:]...)
	delete(r.index, id)

	// positions after the removed one are shifted left
	for i := pos; i < len(r.customers); i++ {
		r.index[r.customers[i].ID] = i
	}
	return true, nil
}

// matches expects lowered term
func matches(c *model.Customer, term string) bool {
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Email), term) ||
		strings.Contains(strings.ToLower(c.Country), term)
}
