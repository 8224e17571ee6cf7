package postgres_test

import (
	"context"
	"testing"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVehicleRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	v := &domain.Vehicle{
		Make:               "Skoda",
		Model:              "Octavia",
		BodyType:           "kombi",
		RegistrationNumber: "WX12345",
		BaseDailyRate:      decimal.RequireFromString("100"),
		Availability:       domain.VehicleAvailable,
	}

	mock.ExpectQuery("INSERT INTO vehicles").
		WithArgs(v.Make, v.Model, v.BodyType, "WX12345", v.BaseDailyRate, v.Availability).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	assert.NoError(t, repo.Create(ctx, v))
	assert.Equal(t, int32(2), v.ID)
}

func TestVehicleRepository_Create_EmptyPlateStoredAsNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	v := &domain.Vehicle{
		Make:          "Fiat",
		Model:         "Panda",
		BaseDailyRate: decimal.RequireFromString("60"),
		Availability:  domain.VehicleAvailable,
	}

	mock.ExpectQuery("INSERT INTO vehicles").
		WithArgs(v.Make, v.Model, "", nil, v.BaseDailyRate, v.Availability).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	assert.NoError(t, repo.Create(ctx, v))
}

func TestVehicleRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	cols := []string{"id", "make", "model", "body_type", "registration_number", "base_daily_rate", "availability"}

	t.Run("All", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM vehicles ORDER BY id DESC").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(2, "Skoda", "Octavia", "kombi", "WX12345", "100", "available").
				AddRow(1, "Fiat", "Panda", "", nil, "60", "maintenance"))

		vehicles, err := repo.List(ctx, false)
		assert.NoError(t, err)
		assert.Len(t, vehicles, 2)
		assert.Equal(t, "", vehicles[1].RegistrationNumber)
	})

	t.Run("OnlyAvailable", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE availability").
			WithArgs(domain.VehicleAvailable).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(2, "Skoda", "Octavia", "kombi", "WX12345", "100", "available"))

		vehicles, err := repo.List(ctx, true)
		assert.NoError(t, err)
		assert.Len(t, vehicles, 1)
	})
}

func TestVehicleRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM vehicles").
		WithArgs(int32(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(ctx, 9), domain.ErrVehicleNotFound)
}
