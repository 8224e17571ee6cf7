package domain

import "github.com/shopspring/decimal"

// DateLayout is the calendar date format used on the wire and in the
// database: ISO-8601 dates without a time component.
const DateLayout = "2006-01-02"

type RentalStatus string

const (
	RentalStatusReserved  RentalStatus = "reserved"
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCanceled  RentalStatus = "canceled"
)

// Rental books one vehicle for one customer over the half-open date
// interval [StartDate, EndDate). DailyRate and TotalCost are snapshots
// taken at reservation time; later price rule edits do not touch them.
// Rentals are never deleted, only moved through the status lifecycle.
type Rental struct {
	ID         int32           `json:"id"`
	CustomerID int32           `json:"customer_id"`
	VehicleID  int32           `json:"vehicle_id"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	DailyRate  decimal.Decimal `json:"daily_rate"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	Status     RentalStatus    `json:"status"`
}

// DateRangesOverlap reports whether two half-open [start, end) date
// ranges share at least one day. ISO dates in DateLayout order
// lexicographically, so plain string comparison is correct. The rentals
// collision query implements this same predicate in SQL; adjacency
// (one range ending the day the other starts) is not an overlap.
func DateRangesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// RentalListItem is the list view row: a rental joined with the customer
// name and vehicle make/model.
type RentalListItem struct {
	Rental
	CustomerFirstName string `json:"customer_first_name"`
	CustomerLastName  string `json:"customer_last_name"`
	VehicleMake       string `json:"vehicle_make"`
	VehicleModel      string `json:"vehicle_model"`
}
