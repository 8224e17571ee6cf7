package postgres_test

import (
	"context"
	"testing"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCustomerRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCustomerRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO customers").
		WithArgs("Jan", "Kowalski", "600100200").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	c := &domain.Customer{FirstName: "Jan", LastName: "Kowalski", Phone: "600100200"}
	assert.NoError(t, repo.Create(ctx, c))
	assert.Equal(t, int32(3), c.ID)
}

func TestCustomerRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM customers WHERE id").
			WithArgs(int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "phone"}).
				AddRow(3, "Jan", "Kowalski", "600100200"))

		c, err := repo.GetByID(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, "Jan", c.FirstName)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM customers WHERE id").
			WithArgs(int32(9)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "phone"}))

		_, err := repo.GetByID(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	})
}

func TestCustomerRepository_UpsertDetails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCustomerRepository(db)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO customer_details").
		WithArgs(int32(3), "Polna 1", "00-001", "Warszawa", "jan@example.com", true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	d := &domain.CustomerDetails{
		CustomerID:       3,
		Street:           "Polna 1",
		PostalCode:       "00-001",
		City:             "Warszawa",
		Email:            "jan@example.com",
		MarketingConsent: true,
	}
	assert.NoError(t, repo.UpsertDetails(ctx, d))
}

func TestCustomerRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM customers").
			WithArgs(int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 3))
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM customers").
			WithArgs(int32(9)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 9), domain.ErrCustomerNotFound)
	})
}
