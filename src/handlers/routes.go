package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mdnaeem95/purifai-mobile/src/utils"
)

// APIRoutes mounts every endpoint served under /api.
func APIRoutes(nisab *NisabHandler, calc *CalculatorHandler, members *MemberHandler, portfolio *PortfolioHandler) func(r chi.Router) {
	return func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			utils.SendJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
		})

		r.Get("/nisab", nisab.HandleGetNisab)
		r.Put("/nisab", nisab.HandleUpdateNisab)
		r.Get("/calculators", calc.HandleGetCatalogue)

		r.Get("/members", members.HandleListMembers)
		r.Post("/members", members.HandleAddMember)
		r.Get("/members/active", members.HandleGetActiveMember)
		r.Put("/members/active", members.HandleSwitchActiveMember)

		r.Route("/members/{memberID}", func(r chi.Router) {
			r.Patch("/", members.HandleUpdateMember)
			r.Delete("/", members.HandleRemoveMember)

			r.Get("/records", calc.HandleGetRecords)
			r.Delete("/records", calc.HandleResetRecords)
			r.Post("/records/{assetClass}/preview", calc.HandlePreviewRecord)
			r.Put("/records/{assetClass}", calc.HandleSaveRecord)
			r.Delete("/records/{assetClass}", calc.HandleClearRecord)

			r.Get("/total", calc.HandleGetTotal)
			r.Get("/payment-summary", calc.HandleGetPaymentSummary)
			r.Get("/portfolio", portfolio.HandleGetMemberPortfolio)
		})

		r.Get("/family/portfolio", portfolio.HandleGetFamilyPortfolio)
	}
}
