package domain

import "github.com/shopspring/decimal"

// PriceRule applies a seasonal multiplier to one vehicle's base daily rate
// over an inclusive [ValidFrom, ValidTo] calendar range.
type PriceRule struct {
	ID         int32           `json:"id"`
	VehicleID  int32           `json:"vehicle_id"`
	Season     string          `json:"season"`
	Multiplier decimal.Decimal `json:"multiplier"`
	ValidFrom  string          `json:"valid_from"`
	ValidTo    string          `json:"valid_to"`
}
