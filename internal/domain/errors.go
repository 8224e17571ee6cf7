package domain

import "errors"

// Domain rule violations. The HTTP layer maps every one of these to a
// 400 response carrying the error text.
var (
	ErrInvalidRange       = errors.New("start date must be before end date")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrRentalNotFound     = errors.New("rental not found")
	ErrVehicleUnavailable = errors.New("vehicle is not available for the requested dates")
	ErrInvalidTransition  = errors.New("rental status does not permit this transition")
)
