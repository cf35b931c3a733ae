package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mdnaeem95/purifai-mobile/src/logger"
	"github.com/mdnaeem95/purifai-mobile/src/models"
	"github.com/mdnaeem95/purifai-mobile/src/processors"
	"github.com/mdnaeem95/purifai-mobile/src/services"
	"github.com/mdnaeem95/purifai-mobile/src/utils"
)

type CalculatorHandler struct {
	calculator services.CalculatorService
}

func NewCalculatorHandler(calculator services.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{calculator: calculator}
}

type totalResponse struct {
	MemberID      string  `json:"memberId"`
	TotalZakatDue float64 `json:"totalZakatDue"`
}

// decodeRecordRequest reads the asset class from the path and the record
// from the body.
func decodeRecordRequest(r *http.Request) (models.AssetRecord, error) {
	class, err := models.ParseAssetClass(chi.URLParam(r, "assetClass"))
	if err != nil {
		return nil, err
	}
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	rec, err := models.DecodeRecord(class, body)
	if err != nil {
		if errors.Is(err, models.ErrUnknownSubType) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", errBadRequestBody, err)
	}
	return rec, nil
}

func (h *CalculatorHandler) HandleGetCatalogue(w http.ResponseWriter, r *http.Request) {
	utils.SendJSON(w, processors.Catalogue, http.StatusOK)
}

func (h *CalculatorHandler) HandleGetRecords(w http.ResponseWriter, r *http.Request) {
	set, err := h.calculator.GetRecords(r.Context(), chi.URLParam(r, "memberID"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	utils.SendJSON(w, set, http.StatusOK)
}

func (h *CalculatorHandler) HandleResetRecords(w http.ResponseWriter, r *http.Request) {
	if err := h.calculator.ResetAll(r.Context(), chi.URLParam(r, "memberID")); err != nil {
		sendServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CalculatorHandler) HandlePreviewRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeRecordRequest(r)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	summary, err := h.calculator.Preview(r.Context(), chi.URLParam(r, "memberID"), rec)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	utils.SendJSON(w, summary, http.StatusOK)
}

func (h *CalculatorHandler) HandleSaveRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeRecordRequest(r)
	if err != nil {
		logger.FromContext(r.Context()).Debug("Rejected record body", "error", err)
		sendServiceError(w, r, err)
		return
	}
	summary, err := h.calculator.Save(r.Context(), chi.URLParam(r, "memberID"), rec)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	utils.SendJSON(w, summary, http.StatusOK)
}

func (h *CalculatorHandler) HandleClearRecord(w http.ResponseWriter, r *http.Request) {
	class, err := models.ParseAssetClass(chi.URLParam(r, "assetClass"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	if err := h.calculator.Clear(r.Context(), chi.URLParam(r, "memberID"), class); err != nil {
		sendServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CalculatorHandler) HandleGetTotal(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberID")
	total, err := h.calculator.TotalZakat(r.Context(), memberID)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	utils.SendJSON(w, totalResponse{MemberID: memberID, TotalZakatDue: total}, http.StatusOK)
}

func (h *CalculatorHandler) HandleGetPaymentSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.calculator.PaymentSummary(r.Context(), chi.URLParam(r, "memberID"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	utils.SendJSON(w, summary, http.StatusOK)
}
