package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"

	"github.com/lib/pq"
)

// collisionQuery is the shared overlap test, the SQL form of
// domain.DateRangesOverlap: rentals block each other only while reserved
// or active, and intervals are half-open, so back-to-back bookings (one
// ends the day the next starts) do not collide.
const collisionQuery = `SELECT EXISTS (
	SELECT 1 FROM rentals
	WHERE vehicle_id = $1
	  AND status IN ('reserved', 'active')
	  AND NOT (end_date <= $2 OR start_date >= $3))`

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const vehicleLockQuery = `SELECT id FROM vehicles WHERE id = $1 FOR UPDATE`

// CreateReserved runs the collision check and the insert in one
// transaction. The service layer checks availability up front as well,
// but only this check is race-free against a concurrent reservation.
func (r *rentalRepository) CreateReserved(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Lock the vehicle row first. At read committed, two transactions
	// could otherwise both run the collision check before either insert
	// commits and double-book the vehicle; the row lock serializes them.
	var lockedID int32
	if err := tx.QueryRowContext(ctx, vehicleLockQuery, rt.VehicleID).Scan(&lockedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrVehicleNotFound
		}
		return err
	}

	var blocked bool
	if err := tx.QueryRowContext(ctx, collisionQuery, rt.VehicleID, rt.StartDate, rt.EndDate).Scan(&blocked); err != nil {
		return err
	}
	if blocked {
		return domain.ErrVehicleUnavailable
	}

	insert := `INSERT INTO rentals (customer_id, vehicle_id, start_date, end_date, daily_rate, total_cost, status)
	           VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if err := tx.QueryRowContext(ctx, insert,
		rt.CustomerID, rt.VehicleID, rt.StartDate, rt.EndDate, rt.DailyRate, rt.TotalCost, rt.Status).Scan(&rt.ID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var start, end time.Time
	query := `SELECT id, customer_id, vehicle_id, start_date, end_date, daily_rate, total_cost, status FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.CustomerID, &rt.VehicleID, &start, &end, &rt.DailyRate, &rt.TotalCost, &rt.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	rt.StartDate = start.Format(domain.DateLayout)
	rt.EndDate = end.Format(domain.DateLayout)
	return rt, nil
}

func (r *rentalRepository) HasCollision(ctx context.Context, vehicleID int32, start, end string) (bool, error) {
	var blocked bool
	err := r.db.QueryRowContext(ctx, collisionQuery, vehicleID, start, end).Scan(&blocked)
	return blocked, err
}

// UpdateStatus is a conditional update keyed on the current status; the
// affected-row count tells a failed precondition apart from success.
func (r *rentalRepository) UpdateStatus(ctx context.Context, id int32, from []domain.RentalStatus, to domain.RentalStatus) error {
	current := make([]string, len(from))
	for i, st := range from {
		current[i] = string(st)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE rentals SET status = $1 WHERE id = $2 AND status = ANY($3)`,
		to, id, pq.Array(current))
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	// Nothing updated: either the rental does not exist or its current
	// status does not permit the transition.
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return domain.ErrInvalidTransition
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.RentalListItem, error) {
	query := `SELECT r.id, r.customer_id, r.vehicle_id, r.start_date, r.end_date, r.daily_rate, r.total_cost, r.status,
	                 c.first_name, c.last_name, v.make, v.model
	          FROM rentals r
	          JOIN customers c ON c.id = r.customer_id
	          JOIN vehicles v ON v.id = r.vehicle_id
	          ORDER BY r.id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.RentalListItem
	for rows.Next() {
		var it domain.RentalListItem
		var start, end time.Time
		if err := rows.Scan(&it.ID, &it.CustomerID, &it.VehicleID, &start, &end, &it.DailyRate, &it.TotalCost, &it.Status,
			&it.CustomerFirstName, &it.CustomerLastName, &it.VehicleMake, &it.VehicleModel); err != nil {
			return nil, err
		}
		it.StartDate = start.Format(domain.DateLayout)
		it.EndDate = end.Format(domain.DateLayout)
		items = append(items, it)
	}
	return items, rows.Err()
}
