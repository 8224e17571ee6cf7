package service_test

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) UpsertDetails(ctx context.Context, d *domain.CustomerDetails) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetDetails(ctx context.Context, customerID int32) (*domain.CustomerDetails, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerDetails), args.Error(1)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) List(ctx context.Context, onlyAvailable bool) ([]domain.Vehicle, error) {
	args := m.Called(ctx, onlyAvailable)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPriceRuleRepo
type MockPriceRuleRepo struct {
	mock.Mock
}

func (m *MockPriceRuleRepo) Create(ctx context.Context, rule *domain.PriceRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}
func (m *MockPriceRuleRepo) List(ctx context.Context) ([]domain.PriceRule, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PriceRule), args.Error(1)
}
func (m *MockPriceRuleRepo) FindApplicable(ctx context.Context, vehicleID int32, start, end string) (*domain.PriceRule, error) {
	args := m.Called(ctx, vehicleID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceRule), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) CreateReserved(ctx context.Context, rt *domain.Rental) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) HasCollision(ctx context.Context, vehicleID int32, start, end string) (bool, error) {
	args := m.Called(ctx, vehicleID, start, end)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) UpdateStatus(ctx context.Context, id int32, from []domain.RentalStatus, to domain.RentalStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}
func (m *MockRentalRepo) List(ctx context.Context) ([]domain.RentalListItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RentalListItem), args.Error(1)
}

// MockPricing
type MockPricing struct {
	mock.Mock
}

func (m *MockPricing) AddRule(ctx context.Context, rule *domain.PriceRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}
func (m *MockPricing) ListRules(ctx context.Context) ([]domain.PriceRule, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PriceRule), args.Error(1)
}
func (m *MockPricing) ResolveDailyRate(ctx context.Context, vehicleID int32, start, end string) (*service.RateQuote, error) {
	args := m.Called(ctx, vehicleID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RateQuote), args.Error(1)
}
