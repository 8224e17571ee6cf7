package http

import (
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires the API routes. Paths follow the original fleet
// management frontend: klienci = customers, samochody = vehicles,
// cennik = price list, wypozyczenia = rentals.
func NewRouter(
	customers service.CustomerService,
	vehicles service.VehicleService,
	pricing service.PricingService,
	rentals service.RentalService,
) *mux.Router {
	customerHandler := NewCustomerHandler(customers)
	vehicleHandler := NewVehicleHandler(vehicles)
	priceRuleHandler := NewPriceRuleHandler(pricing)
	rentalHandler := NewRentalHandler(rentals)

	router := mux.NewRouter()
	router.Use(RequestLogging, CORS)

	router.HandleFunc("/klienci", customerHandler.List).Methods("GET")
	router.HandleFunc("/klienci", customerHandler.Create).Methods("POST")
	router.HandleFunc("/klienci/{id}/dane", customerHandler.SaveDetails).Methods("POST")
	router.HandleFunc("/klienci/{id}", customerHandler.Delete).Methods("DELETE")

	router.HandleFunc("/samochody", vehicleHandler.List).Methods("GET")
	router.HandleFunc("/samochody", vehicleHandler.Create).Methods("POST")
	router.HandleFunc("/samochody/{id}", vehicleHandler.Delete).Methods("DELETE")

	router.HandleFunc("/cennik", priceRuleHandler.List).Methods("GET")
	router.HandleFunc("/cennik", priceRuleHandler.Create).Methods("POST")

	router.HandleFunc("/wypozyczenia", rentalHandler.List).Methods("GET")
	router.HandleFunc("/wypozyczenia/rezerwacja", rentalHandler.Reserve).Methods("POST")
	router.HandleFunc("/wypozyczenia/{id}/start", rentalHandler.Start).Methods("POST")
	router.HandleFunc("/wypozyczenia/{id}/koniec", rentalHandler.Complete).Methods("POST")
	router.HandleFunc("/wypozyczenia/{id}/anuluj", rentalHandler.Cancel).Methods("POST")

	return router
}
