package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mdnaeem95/purifai-mobile/src/logger"
	"github.com/mdnaeem95/purifai-mobile/src/services"
	"github.com/mdnaeem95/purifai-mobile/src/utils"
)

type PortfolioHandler struct {
	portfolio services.PortfolioService
}

func NewPortfolioHandler(portfolio services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

func (h *PortfolioHandler) HandleGetMemberPortfolio(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberID")
	items, err := h.portfolio.MemberPortfolio(r.Context(), memberID)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	logger.FromContext(r.Context()).Debug("Member portfolio built", "memberID", memberID, "items", len(items))
	utils.SendJSON(w, items, http.StatusOK)
}

func (h *PortfolioHandler) HandleGetFamilyPortfolio(w http.ResponseWriter, r *http.Request) {
	items, err := h.portfolio.FamilyPortfolio(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	utils.SendJSON(w, items, http.StatusOK)
}
