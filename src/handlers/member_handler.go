package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mdnaeem95/purifai-mobile/src/models"
	"github.com/mdnaeem95/purifai-mobile/src/security/validation"
	"github.com/mdnaeem95/purifai-mobile/src/services"
	"github.com/mdnaeem95/purifai-mobile/src/utils"
)

type MemberHandler struct {
	family services.FamilyService
}

func NewMemberHandler(family services.FamilyService) *MemberHandler {
	return &MemberHandler{family: family}
}

type addMemberRequest struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
}

// Both fields are optional; only the ones present are applied.
type updateMemberRequest struct {
	Name         *string `json:"name"`
	Relationship *string `json:"relationship"`
}

type switchMemberRequest struct {
	MemberID string `json:"memberId"`
}

func (h *MemberHandler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.family.ListMembers(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	if members == nil {
		members = []models.ZakatMember{}
	}
	utils.SendJSON(w, members, http.StatusOK)
}

func (h *MemberHandler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if err := decodeJSONBody(r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}
	relationship, err := validation.ValidateRelationship(req.Relationship)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	m, err := h.family.AddMember(r.Context(), req.Name, relationship)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	utils.SendJSON(w, m, http.StatusCreated)
}

func (h *MemberHandler) HandleUpdateMember(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberID")
	var req updateMemberRequest
	if err := decodeJSONBody(r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}

	m, err := h.family.GetMember(r.Context(), memberID)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	if req.Name != nil {
		if m, err = h.family.RenameMember(r.Context(), memberID, *req.Name); err != nil {
			sendServiceError(w, r, err)
			return
		}
	}
	if req.Relationship != nil {
		relationship, err := validation.ValidateRelationship(*req.Relationship)
		if err != nil {
			sendServiceError(w, r, err)
			return
		}
		if m, err = h.family.UpdateRelationship(r.Context(), memberID, relationship); err != nil {
			sendServiceError(w, r, err)
			return
		}
	}
	utils.SendJSON(w, m, http.StatusOK)
}

func (h *MemberHandler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	if err := h.family.RemoveMember(r.Context(), chi.URLParam(r, "memberID")); err != nil {
		sendServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MemberHandler) HandleGetActiveMember(w http.ResponseWriter, r *http.Request) {
	m, err := h.family.ActiveMember(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	utils.SendJSON(w, m, http.StatusOK)
}

func (h *MemberHandler) HandleSwitchActiveMember(w http.ResponseWriter, r *http.Request) {
	var req switchMemberRequest
	if err := decodeJSONBody(r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}
	if err := validation.ValidateStringNotEmpty(req.MemberID, "memberId"); err != nil {
		sendServiceError(w, r, err)
		return
	}
	if err := h.family.SwitchMember(r.Context(), req.MemberID); err != nil {
		sendServiceError(w, r, err)
		return
	}

	m, err := h.family.ActiveMember(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	utils.SendJSON(w, m, http.StatusOK)
}
