package repositories

import (
	"customer-service/internal/models"
)

// IDGenerator hands out customer identifiers
type IDGenerator interface {
	// NextID returns a value strictly greater than every value returned before it
	NextID() int64
	// Reset restarts the sequence; only a store Clear calls this
	Reset()
}

// CustomerRepositoryInterface defines the contract for customer store operations
type CustomerRepositoryInterface interface {
	Create(customer *models.Customer) (*models.Customer, error)
	FindAll() ([]models.Customer, error)
	FindByID(id int64) (*models.Customer, error)
	Delete(id int64) (bool, error)
	Count() (int, error)
	Clear() error
	Ping() error
}
