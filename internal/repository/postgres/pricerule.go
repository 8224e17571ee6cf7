package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type priceRuleRepository struct {
	db *sql.DB
}

func NewPriceRuleRepository(db *sql.DB) repository.PriceRuleRepository {
	return &priceRuleRepository{db: db}
}

func (r *priceRuleRepository) Create(ctx context.Context, rule *domain.PriceRule) error {
	query := `INSERT INTO price_rules (vehicle_id, season, multiplier, valid_from, valid_to)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rule.VehicleID, rule.Season, rule.Multiplier, rule.ValidFrom, rule.ValidTo).Scan(&rule.ID)
}

func (r *priceRuleRepository) List(ctx context.Context) ([]domain.PriceRule, error) {
	query := `SELECT id, vehicle_id, season, multiplier, valid_from, valid_to FROM price_rules ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []domain.PriceRule
	for rows.Next() {
		rule, err := scanPriceRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, *rule)
	}
	return rules, rows.Err()
}

// FindApplicable picks the rule for the vehicle whose inclusive validity
// range intersects [start, end]. Among intersecting rules the one with
// the latest valid_from wins.
func (r *priceRuleRepository) FindApplicable(ctx context.Context, vehicleID int32, start, end string) (*domain.PriceRule, error) {
	query := `SELECT id, vehicle_id, season, multiplier, valid_from, valid_to
	          FROM price_rules
	          WHERE vehicle_id = $1 AND NOT (valid_to < $2 OR valid_from > $3)
	          ORDER BY valid_from DESC
	          LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, vehicleID, start, end)
	rule, err := scanPriceRule(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rule, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPriceRule(row rowScanner) (*domain.PriceRule, error) {
	rule := &domain.PriceRule{}
	var from, to time.Time
	if err := row.Scan(&rule.ID, &rule.VehicleID, &rule.Season, &rule.Multiplier, &from, &to); err != nil {
		return nil, err
	}
	rule.ValidFrom = from.Format(domain.DateLayout)
	rule.ValidTo = to.Format(domain.DateLayout)
	return rule, nil
}
