package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (make, model, body_type, registration_number, base_daily_rate, availability)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		v.Make, v.Model, v.BodyType, nullableString(v.RegistrationNumber), v.BaseDailyRate, v.Availability).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	var reg sql.NullString
	query := `SELECT id, make, model, body_type, registration_number, base_daily_rate, availability FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Make, &v.Model, &v.BodyType, &reg, &v.BaseDailyRate, &v.Availability)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}
	v.RegistrationNumber = reg.String
	return v, nil
}

func (r *vehicleRepository) List(ctx context.Context, onlyAvailable bool) ([]domain.Vehicle, error) {
	query := `SELECT id, make, model, body_type, registration_number, base_daily_rate, availability FROM vehicles`
	var args []interface{}
	if onlyAvailable {
		query += ` WHERE availability = $1`
		args = append(args, domain.VehicleAvailable)
	}
	query += ` ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		var reg sql.NullString
		if err := rows.Scan(&v.ID, &v.Make, &v.Model, &v.BodyType, &reg, &v.BaseDailyRate, &v.Availability); err != nil {
			return nil, err
		}
		v.RegistrationNumber = reg.String
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

// nullableString keeps the unique constraint on registration numbers from
// tripping on empty strings: missing plates are stored as NULL.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
