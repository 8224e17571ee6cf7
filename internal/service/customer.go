package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) Register(ctx context.Context, c *domain.Customer) error {
	if c.FirstName == "" || c.LastName == "" {
		return domain.Validation("first and last name are required")
	}
	if err := s.customerRepo.Create(ctx, c); err != nil {
		return err
	}
	logger.Info("customer registered", "customer_id", c.ID)
	return nil
}

func (s *customerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

// SaveDetails upserts the 1:1 details row; the customer itself must exist.
func (s *customerService) SaveDetails(ctx context.Context, d *domain.CustomerDetails) error {
	if _, err := s.customerRepo.GetByID(ctx, d.CustomerID); err != nil {
		return err
	}
	return s.customerRepo.UpsertDetails(ctx, d)
}

func (s *customerService) Remove(ctx context.Context, id int32) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("customer removed", "customer_id", id)
	return nil
}
