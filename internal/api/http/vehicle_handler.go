package http

import (
	"encoding/json"
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/shopspring/decimal"
)

type VehicleHandler struct {
	vehicles service.VehicleService
}

func NewVehicleHandler(vehicles service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	// tylko_dostepne is the filter name the fleet frontend sends;
	// only_available is accepted as an alias.
	query := r.URL.Query()
	onlyAvailable := query.Get("tylko_dostepne") == "true" || query.Get("only_available") == "true"
	vehicles, err := h.vehicles.List(r.Context(), onlyAvailable)
	if err != nil {
		writeError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Make               string          `json:"make"`
		Model              string          `json:"model"`
		BodyType           string          `json:"body_type"`
		RegistrationNumber string          `json:"registration_number"`
		BaseDailyRate      decimal.Decimal `json:"base_daily_rate"`
		Availability       string          `json:"availability"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	vehicle := &domain.Vehicle{
		Make:               req.Make,
		Model:              req.Model,
		BodyType:           req.BodyType,
		RegistrationNumber: req.RegistrationNumber,
		BaseDailyRate:      req.BaseDailyRate,
		Availability:       domain.VehicleAvailability(req.Availability),
	}
	if err := h.vehicles.Add(r.Context(), vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int32{"id": vehicle.ID})
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.vehicles.Remove(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
