package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (first_name, last_name, phone) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.FirstName, c.LastName, c.Phone).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, first_name, last_name, phone FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, first_name, last_name, phone FROM customers ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Phone); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) UpsertDetails(ctx context.Context, d *domain.CustomerDetails) error {
	query := `INSERT INTO customer_details (customer_id, street, postal_code, city, email, marketing_consent)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (customer_id) DO UPDATE SET
	            street = EXCLUDED.street,
	            postal_code = EXCLUDED.postal_code,
	            city = EXCLUDED.city,
	            email = EXCLUDED.email,
	            marketing_consent = EXCLUDED.marketing_consent`
	_, err := r.db.ExecContext(ctx, query, d.CustomerID, d.Street, d.PostalCode, d.City, d.Email, d.MarketingConsent)
	return err
}

func (r *customerRepository) GetDetails(ctx context.Context, customerID int32) (*domain.CustomerDetails, error) {
	d := &domain.CustomerDetails{}
	query := `SELECT customer_id, street, postal_code, city, email, marketing_consent FROM customer_details WHERE customer_id = $1`
	err := r.db.QueryRowContext(ctx, query, customerID).Scan(&d.CustomerID, &d.Street, &d.PostalCode, &d.City, &d.Email, &d.MarketingConsent)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Delete removes the customer; customer_details goes with it via the
// ON DELETE CASCADE on the details table.
func (r *customerRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}
