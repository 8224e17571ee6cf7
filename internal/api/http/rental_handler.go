package http

import (
	"context"
	"encoding/json"
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/shopspring/decimal"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.rentals.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.RentalListItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// reservationResponse echoes the created rental together with the pricing
// breakdown that produced its snapshot.
type reservationResponse struct {
	domain.Rental
	Season     string          `json:"season,omitempty"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

func (h *RentalHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID int32  `json:"customer_id"`
		VehicleID  int32  `json:"vehicle_id"`
		StartDate  string `json:"start_date"`
		EndDate    string `json:"end_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	rental, quote, err := h.rentals.Reserve(r.Context(), req.CustomerID, req.VehicleID, req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservationResponse{
		Rental:     *rental,
		Season:     quote.Season,
		Multiplier: quote.Multiplier,
	})
}

func (h *RentalHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentals.Start)
}

func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentals.Complete)
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentals.Cancel)
}

func (h *RentalHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int32) error) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := op(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
