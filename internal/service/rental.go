package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	customerRepo repository.CustomerRepository
	vehicleRepo  repository.VehicleRepository
	pricing      PricingService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	customerRepo repository.CustomerRepository,
	vehicleRepo repository.VehicleRepository,
	pricing PricingService,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		pricing:      pricing,
	}
}

// Reserve books the vehicle for [startDate, endDate) at the rate resolved
// for that range. The price snapshot taken here is final; later rule
// edits never change an existing rental.
func (s *rentalService) Reserve(ctx context.Context, customerID, vehicleID int32, startDate, endDate string) (*domain.Rental, *RateQuote, error) {
	start, err := time.Parse(domain.DateLayout, startDate)
	if err != nil {
		return nil, nil, domain.ErrInvalidRange
	}
	end, err := time.Parse(domain.DateLayout, endDate)
	if err != nil {
		return nil, nil, domain.ErrInvalidRange
	}
	if !start.Before(end) {
		return nil, nil, domain.ErrInvalidRange
	}

	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, nil, err
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, nil, err
	}
	// Manual availability tag (e.g. maintenance) blocks booking outright,
	// on top of the date collision check against other rentals.
	if vehicle.Availability != domain.VehicleAvailable {
		return nil, nil, domain.ErrVehicleUnavailable
	}

	blocked, err := s.rentalRepo.HasCollision(ctx, vehicleID, startDate, endDate)
	if err != nil {
		return nil, nil, err
	}
	if blocked {
		return nil, nil, domain.ErrVehicleUnavailable
	}

	quote, err := s.pricing.ResolveDailyRate(ctx, vehicleID, startDate, endDate)
	if err != nil {
		return nil, nil, err
	}

	// At least one billable day, even for sub-day ranges.
	days := int64(end.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}

	rental := &domain.Rental{
		CustomerID: customerID,
		VehicleID:  vehicleID,
		StartDate:  startDate,
		EndDate:    endDate,
		DailyRate:  quote.DailyRate,
		TotalCost:  quote.DailyRate.Mul(decimal.NewFromInt(days)).Round(2),
		Status:     domain.RentalStatusReserved,
	}
	// CreateReserved repeats the collision check inside its transaction;
	// the check above only rejects the common case before pricing work.
	if err := s.rentalRepo.CreateReserved(ctx, rental); err != nil {
		return nil, nil, err
	}

	logger.Info("rental reserved",
		"rental_id", rental.ID,
		"vehicle_id", vehicleID,
		"customer_id", customerID,
		"daily_rate", rental.DailyRate.String(),
		"total_cost", rental.TotalCost.String())
	return rental, quote, nil
}

func (s *rentalService) Start(ctx context.Context, id int32) error {
	err := s.rentalRepo.UpdateStatus(ctx, id,
		[]domain.RentalStatus{domain.RentalStatusReserved}, domain.RentalStatusActive)
	if err != nil {
		return err
	}
	logger.Info("rental started", "rental_id", id)
	return nil
}

func (s *rentalService) Complete(ctx context.Context, id int32) error {
	err := s.rentalRepo.UpdateStatus(ctx, id,
		[]domain.RentalStatus{domain.RentalStatusReserved, domain.RentalStatusActive}, domain.RentalStatusCompleted)
	if err != nil {
		return err
	}
	logger.Info("rental completed", "rental_id", id)
	return nil
}

func (s *rentalService) Cancel(ctx context.Context, id int32) error {
	err := s.rentalRepo.UpdateStatus(ctx, id,
		[]domain.RentalStatus{domain.RentalStatusReserved}, domain.RentalStatusCanceled)
	if err != nil {
		return err
	}
	logger.Info("rental canceled", "rental_id", id)
	return nil
}

func (s *rentalService) List(ctx context.Context) ([]domain.RentalListItem, error) {
	return s.rentalRepo.List(ctx)
}
