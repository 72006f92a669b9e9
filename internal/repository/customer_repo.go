package repository

import (
	"errors"

	"gorm.io/gorm"

	"accounting-backend/internal/models"
	"accounting-backend/internal/storage"
)

// CustomerRepository performs customer CRUD inside the unit of work it was
// built from. It never commits or rolls back.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(uow *storage.UnitOfWork) *CustomerRepository {
	return &CustomerRepository{db: uow.DB()}
}

// Create inserts the customer and flushes immediately so the generated id
// is available before the transaction ends.
func (r *CustomerRepository) Create(name string, email *string) (*models.Customer, error) {
	customer := &models.Customer{Name: name, Email: email}
	if err := r.db.Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// Get returns (nil, nil) when no customer exists with the given id;
// absence is not an error at this layer.
func (r *CustomerRepository) Get(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Delete reports false when the customer does not exist. Dependent
// invoices and line items are removed by the store's cascade rules.
func (r *CustomerRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Customer{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *CustomerRepository) List() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Order("id ASC").Find(&customers).Error
	return customers, err
}
