package services

import (
	"errors"

	"pos_api/internal/models"
	"pos_api/internal/repository"

	"gorm.io/gorm"
)

type CustomerService interface {
	CreateCustomer(customer *models.Customer) error
	GetCustomerByID(id uint) (*models.Customer, error)
	GetAllCustomers() ([]models.Customer, error)
	GetMembers() ([]models.Customer, error)
	UpdateCustomer(customer *models.Customer) error
	DeleteCustomer(id uint) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(customer *models.Customer) error {
	if customer.Name == "" {
		return ErrCustomerNameMissing
	}
	if err := s.checkPhoneUnique(customer); err != nil {
		return err
	}
	return s.customerRepo.Create(customer)
}

func (s *customerService) GetCustomerByID(id uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetAllCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

func (s *customerService) GetMembers() ([]models.Customer, error) {
	return s.customerRepo.GetMembers()
}

func (s *customerService) UpdateCustomer(customer *models.Customer) error {
	if customer.Name == "" {
		return ErrCustomerNameMissing
	}
	if err := s.checkPhoneUnique(customer); err != nil {
		return err
	}
	return s.customerRepo.Update(customer)
}

func (s *customerService) DeleteCustomer(id uint) error {
	return s.customerRepo.Delete(id)
}

func (s *customerService) checkPhoneUnique(customer *models.Customer) error {
	if customer.Phone == nil || *customer.Phone == "" {
		return nil
	}
	existing, err := s.customerRepo.GetByPhoneUnscoped(*customer.Phone)
	if err == nil && existing.ID != customer.ID {
		return ErrCustomerPhoneTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
