package service

import (
	"context"

	"carrental-backend/internal/domain"

	"github.com/shopspring/decimal"
)

type CustomerService interface {
	Register(ctx context.Context, c *domain.Customer) error
	List(ctx context.Context) ([]domain.Customer, error)
	SaveDetails(ctx context.Context, d *domain.CustomerDetails) error
	Remove(ctx context.Context, id int32) error
}

type VehicleService interface {
	Add(ctx context.Context, v *domain.Vehicle) error
	List(ctx context.Context, onlyAvailable bool) ([]domain.Vehicle, error)
	Remove(ctx context.Context, id int32) error
}

// RateQuote is the resolved price for one rental day: the vehicle's base
// rate with the applicable seasonal multiplier folded in. Season is empty
// when no rule applied and the base rate was used as-is.
type RateQuote struct {
	DailyRate  decimal.Decimal `json:"daily_rate"`
	Season     string          `json:"season,omitempty"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

type PricingService interface {
	AddRule(ctx context.Context, rule *domain.PriceRule) error
	ListRules(ctx context.Context) ([]domain.PriceRule, error)
	ResolveDailyRate(ctx context.Context, vehicleID int32, start, end string) (*RateQuote, error)
}

type RentalService interface {
	Reserve(ctx context.Context, customerID, vehicleID int32, startDate, endDate string) (*domain.Rental, *RateQuote, error)
	Start(ctx context.Context, id int32) error
	Complete(ctx context.Context, id int32) error
	Cancel(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.RentalListItem, error)
}
