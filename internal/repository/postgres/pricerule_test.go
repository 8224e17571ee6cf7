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

func TestPriceRuleRepository_FindApplicable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPriceRuleRepository(db)
	ctx := context.Background()

	t.Run("LatestStartWins", func(t *testing.T) {
		// The query orders by valid_from DESC and takes one row, so the
		// mock returns the rule the database would pick.
		mock.ExpectQuery("FROM price_rules").
			WithArgs(int32(1), "2024-06-10", "2024-06-15").
			WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_id", "season", "multiplier", "valid_from", "valid_to"}).
				AddRow(7, 1, "high", "1.3", date("2024-06-01"), date("2024-06-30")))

		rule, err := repo.FindApplicable(ctx, 1, "2024-06-10", "2024-06-15")
		assert.NoError(t, err)
		assert.Equal(t, "high", rule.Season)
		assert.True(t, rule.Multiplier.Equal(decimal.RequireFromString("1.3")))
		assert.Equal(t, "2024-06-01", rule.ValidFrom)
	})

	t.Run("NoIntersection", func(t *testing.T) {
		mock.ExpectQuery("FROM price_rules").
			WithArgs(int32(1), "2024-02-01", "2024-02-05").
			WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_id", "season", "multiplier", "valid_from", "valid_to"}))

		rule, err := repo.FindApplicable(ctx, 1, "2024-02-01", "2024-02-05")
		assert.NoError(t, err)
		assert.Nil(t, rule)
	})
}

func TestPriceRuleRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPriceRuleRepository(db)
	ctx := context.Background()

	rule := &domain.PriceRule{
		VehicleID:  1,
		Season:     "high",
		Multiplier: decimal.RequireFromString("1.3"),
		ValidFrom:  "2024-06-01",
		ValidTo:    "2024-06-30",
	}

	mock.ExpectQuery("INSERT INTO price_rules").
		WithArgs(rule.VehicleID, rule.Season, rule.Multiplier, rule.ValidFrom, rule.ValidTo).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	assert.NoError(t, repo.Create(ctx, rule))
	assert.Equal(t, int32(7), rule.ID)
}
