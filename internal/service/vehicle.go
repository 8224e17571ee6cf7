package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) Add(ctx context.Context, v *domain.Vehicle) error {
	if v.Make == "" || v.Model == "" {
		return domain.Validation("make and model are required")
	}
	if !v.BaseDailyRate.GreaterThan(decimal.Zero) {
		return domain.Validation("base daily rate must be positive")
	}
	if v.Availability == "" {
		v.Availability = domain.VehicleAvailable
	}
	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return err
	}
	logger.Info("vehicle added", "vehicle_id", v.ID, "make", v.Make, "model", v.Model)
	return nil
}

func (s *vehicleService) List(ctx context.Context, onlyAvailable bool) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx, onlyAvailable)
}

func (s *vehicleService) Remove(ctx context.Context, id int32) error {
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("vehicle removed", "vehicle_id", id)
	return nil
}
