package handlers

import (
	"net/http"

	"github.com/mdnaeem95/purifai-mobile/src/security/validation"
	"github.com/mdnaeem95/purifai-mobile/src/services"
	"github.com/mdnaeem95/purifai-mobile/src/utils"
)

type NisabHandler struct {
	nisab services.NisabService
}

func NewNisabHandler(nisab services.NisabService) *NisabHandler {
	return &NisabHandler{nisab: nisab}
}

type updateNisabRequest struct {
	MonetaryThreshold   float64 `json:"monetaryThreshold"`
	GoldWeightThreshold float64 `json:"goldWeightThreshold"`
	GoldPricePerGram    float64 `json:"goldPricePerGram"`
}

func (h *NisabHandler) HandleGetNisab(w http.ResponseWriter, r *http.Request) {
	utils.SendJSON(w, h.nisab.GetThresholds(), http.StatusOK)
}

func (h *NisabHandler) HandleUpdateNisab(w http.ResponseWriter, r *http.Request) {
	var req updateNisabRequest
	if err := decodeJSONBody(r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}
	if err := validation.ValidateNisab(req.MonetaryThreshold, req.GoldWeightThreshold, req.GoldPricePerGram); err != nil {
		sendServiceError(w, r, err)
		return
	}

	updated, err := h.nisab.UpdateNisab(r.Context(), req.MonetaryThreshold, req.GoldWeightThreshold, req.GoldPricePerGram)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	utils.SendJSON(w, updated, http.StatusOK)
}
