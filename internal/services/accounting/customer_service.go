package accounting

import (
	"accounting-backend/internal/models"
	"accounting-backend/internal/repository"
	"accounting-backend/internal/storage"
)

// CustomerService is a thin pass-through over the customer repository.
// Absence surfaces as a nil customer; the HTTP layer decides whether that
// is a not-found response.
type CustomerService struct {
	repo *repository.CustomerRepository
}

func NewCustomerService(uow *storage.UnitOfWork) *CustomerService {
	return &CustomerService{repo: repository.NewCustomerRepository(uow)}
}

func (s *CustomerService) CreateCustomer(name string, email *string) (*models.Customer, error) {
	return s.repo.Create(name, email)
}

func (s *CustomerService) GetCustomer(id uint) (*models.Customer, error) {
	return s.repo.Get(id)
}

func (s *CustomerService) ListCustomers() ([]models.Customer, error) {
	return s.repo.List()
}

func (s *CustomerService) DeleteCustomer(id uint) (bool, error) {
	return s.repo.Delete(id)
}
