package repository

import (
	"context"

	"carrental-backend/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	UpsertDetails(ctx context.Context, d *domain.CustomerDetails) error
	GetDetails(ctx context.Context, customerID int32) (*domain.CustomerDetails, error)
	Delete(ctx context.Context, id int32) error
}

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	List(ctx context.Context, onlyAvailable bool) ([]domain.Vehicle, error)
	Delete(ctx context.Context, id int32) error
}

type PriceRuleRepository interface {
	Create(ctx context.Context, rule *domain.PriceRule) error
	List(ctx context.Context) ([]domain.PriceRule, error)
	// FindApplicable returns the vehicle's rule whose inclusive validity
	// range intersects [start, end], preferring the latest valid_from.
	// Returns (nil, nil) when no rule intersects.
	FindApplicable(ctx context.Context, vehicleID int32, start, end string) (*domain.PriceRule, error)
}

type RentalRepository interface {
	// CreateReserved re-runs the collision check and inserts the rental
	// inside a single transaction, so two concurrent reservations for the
	// same vehicle cannot both slip past the check.
	CreateReserved(ctx context.Context, rt *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	// HasCollision reports whether a reserved or active rental for the
	// vehicle overlaps the half-open interval [start, end).
	HasCollision(ctx context.Context, vehicleID int32, start, end string) (bool, error)
	// UpdateStatus moves the rental to the target status only if its
	// current status is one of from; otherwise ErrInvalidTransition.
	UpdateStatus(ctx context.Context, id int32, from []domain.RentalStatus, to domain.RentalStatus) error
	List(ctx context.Context) ([]domain.RentalListItem, error)
}
