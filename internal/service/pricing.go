package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type pricingService struct {
	vehicleRepo repository.VehicleRepository
	ruleRepo    repository.PriceRuleRepository
}

func NewPricingService(vehicleRepo repository.VehicleRepository, ruleRepo repository.PriceRuleRepository) PricingService {
	return &pricingService{vehicleRepo: vehicleRepo, ruleRepo: ruleRepo}
}

func (s *pricingService) AddRule(ctx context.Context, rule *domain.PriceRule) error {
	if rule.Season == "" {
		return domain.Validation("season label is required")
	}
	if !rule.Multiplier.GreaterThan(decimal.Zero) {
		return domain.Validation("multiplier must be positive")
	}
	from, err := time.Parse(domain.DateLayout, rule.ValidFrom)
	if err != nil {
		return domain.Validation("valid_from must be a YYYY-MM-DD date")
	}
	to, err := time.Parse(domain.DateLayout, rule.ValidTo)
	if err != nil {
		return domain.Validation("valid_to must be a YYYY-MM-DD date")
	}
	if to.Before(from) {
		return domain.Validation("valid_to must not precede valid_from")
	}
	if _, err := s.vehicleRepo.GetByID(ctx, rule.VehicleID); err != nil {
		return err
	}
	return s.ruleRepo.Create(ctx, rule)
}

func (s *pricingService) ListRules(ctx context.Context) ([]domain.PriceRule, error) {
	return s.ruleRepo.List(ctx)
}

// ResolveDailyRate applies the vehicle's price rule intersecting the
// requested range to its base rate. Rule validity is inclusive on both
// ends; among intersecting rules the one starting latest wins. Without a
// matching rule the base rate stands (multiplier 1.0).
func (s *pricingService) ResolveDailyRate(ctx context.Context, vehicleID int32, start, end string) (*RateQuote, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	rule, err := s.ruleRepo.FindApplicable(ctx, vehicleID, start, end)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return &RateQuote{
			DailyRate:  vehicle.BaseDailyRate.Round(2),
			Multiplier: decimal.NewFromInt(1),
		}, nil
	}

	return &RateQuote{
		DailyRate:  vehicle.BaseDailyRate.Mul(rule.Multiplier).Round(2),
		Season:     rule.Season,
		Multiplier: rule.Multiplier,
	}, nil
}
