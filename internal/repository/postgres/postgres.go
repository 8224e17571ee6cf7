package postgres

import (
	"database/sql"

	"carrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CustomerRepository
	repository.VehicleRepository
	repository.PriceRuleRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		CustomerRepository:  NewCustomerRepository(db),
		VehicleRepository:   NewVehicleRepository(db),
		PriceRuleRepository: NewPriceRuleRepository(db),
		RentalRepository:    NewRentalRepository(db),
	}
}
