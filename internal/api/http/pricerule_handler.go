package http

import (
	"encoding/json"
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/shopspring/decimal"
)

type PriceRuleHandler struct {
	pricing service.PricingService
}

func NewPriceRuleHandler(pricing service.PricingService) *PriceRuleHandler {
	return &PriceRuleHandler{pricing: pricing}
}

func (h *PriceRuleHandler) List(w http.ResponseWriter, r *http.Request) {
	rules, err := h.pricing.ListRules(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if rules == nil {
		rules = []domain.PriceRule{}
	}
	writeJSON(w, http.StatusOK, rules)
}

func (h *PriceRuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VehicleID  int32           `json:"vehicle_id"`
		Season     string          `json:"season"`
		Multiplier decimal.Decimal `json:"multiplier"`
		ValidFrom  string          `json:"valid_from"`
		ValidTo    string          `json:"valid_to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	rule := &domain.PriceRule{
		VehicleID:  req.VehicleID,
		Season:     req.Season,
		Multiplier: req.Multiplier,
		ValidFrom:  req.ValidFrom,
		ValidTo:    req.ValidTo,
	}
	if err := h.pricing.AddRule(r.Context(), rule); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int32{"id": rule.ID})
}
