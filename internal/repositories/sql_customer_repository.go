package repositories

import (
	"errors"
	"fmt"
	"sync"

	"customer-service/internal/database"
	"customer-service/internal/models"

	"gorm.io/gorm"
)

// SQLCustomerRepository stores customers in a relational database through gorm.
// Writes share one mutex with reads so an ID is never visible before its row.
type SQLCustomerRepository struct {
	mu  sync.Mutex
	db  *database.DB
	ids IDGenerator
}

// NewSQLCustomerRepository creates a new gorm-backed customer repository
func NewSQLCustomerRepository(db *database.DB, ids IDGenerator) CustomerRepositoryInterface {
	return &SQLCustomerRepository{
		db:  db,
		ids: ids,
	}
}

// Create inserts the customer under a freshly generated ID
func (r *SQLCustomerRepository) Create(customer *models.Customer) (*models.Customer, error) {
	if customer == nil {
		return nil, ErrNilCustomer
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	row := *customer
	row.ID = r.ids.NextID()
	if err := r.db.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	customer.ID = row.ID
	return &row, nil
}

// FindAll returns all customers ordered by ID, which is insertion order
func (r *SQLCustomerRepository) FindAll() ([]models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customers := make([]models.Customer, 0)
	if err := r.db.Order("id ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

// FindByID retrieves a customer by ID
func (r *SQLCustomerRepository) FindByID(id int64) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var customer models.Customer
	if err := r.db.Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}

	return &customer, nil
}

// Delete removes the customer with the given ID
func (r *SQLCustomerRepository) Delete(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := r.db.Where("id = ?", id).Delete(&models.Customer{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete customer: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// Count returns the number of stored customers
func (r *SQLCustomerRepository) Count() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	if err := r.db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}

	return int(count), nil
}

// Clear deletes every row and restarts the ID sequence
func (r *SQLCustomerRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Customer{}).Error; err != nil {
		return fmt.Errorf("failed to clear customers: %w", err)
	}

	r.ids.Reset()
	return nil
}

// Ping checks database connectivity
func (r *SQLCustomerRepository) Ping() error {
	if err := r.db.HealthCheck(); err != nil {
		return fmt.Errorf("customer database unreachable: %w", err)
	}
	return nil
}
