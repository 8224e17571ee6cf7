package domain

import "github.com/shopspring/decimal"

type VehicleAvailability string

const (
	VehicleAvailable   VehicleAvailability = "available"
	VehicleMaintenance VehicleAvailability = "maintenance"
)

// Vehicle is a rentable car. Availability is a manually managed tag
// (e.g. a car pulled for maintenance); whether the car is bookable for a
// date range is decided by the rental set on top of this tag.
type Vehicle struct {
	ID                 int32               `json:"id"`
	Make               string              `json:"make"`
	Model              string              `json:"model"`
	BodyType           string              `json:"body_type,omitempty"`
	RegistrationNumber string              `json:"registration_number,omitempty"`
	BaseDailyRate      decimal.Decimal     `json:"base_daily_rate"`
	Availability       VehicleAvailability `json:"availability"`
}
