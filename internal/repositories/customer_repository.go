package repositories

import (
	"errors"
	"sync"

	"customer-service/internal/models"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrNilCustomer      = errors.New("customer cannot be nil")
)

// CustomerRepository keeps customers in an ordered in-memory list
type CustomerRepository struct {
	mu        sync.Mutex
	ids       IDGenerator
	customers []models.Customer
}

// NewCustomerRepository creates a new in-memory customer repository
func NewCustomerRepository(ids IDGenerator) CustomerRepositoryInterface {
	return &CustomerRepository{
		ids:       ids,
		customers: make([]models.Customer, 0),
	}
}

// Create appends the customer and assigns it a fresh ID
func (r *CustomerRepository) Create(customer *models.Customer) (*models.Customer, error) {
	if customer == nil {
		return nil, ErrNilCustomer
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	customer.ID = r.ids.NextID()
	r.customers = append(r.customers, *customer)

	stored := *customer
	return &stored, nil
}

// FindAll returns a snapshot of all customers in insertion order
func (r *CustomerRepository) FindAll() ([]models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Customer, len(r.customers))
	copy(out, r.customers)
	return out, nil
}

// FindByID returns the first customer with the given ID
func (r *CustomerRepository) FindByID(id int64) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.customers {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}

	return nil, ErrCustomerNotFound
}

// Delete removes the first customer with the given ID
func (r *CustomerRepository) Delete(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.customers {
		if c.ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}

// Count returns the number of stored customers
func (r *CustomerRepository) Count() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.customers), nil
}

// Clear removes every customer and restarts the ID sequence
func (r *CustomerRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.customers = make([]models.Customer, 0)
	r.ids.Reset()
	return nil
}

// Ping always succeeds for the in-memory store
func (r *CustomerRepository) Ping() error {
	return nil
}
