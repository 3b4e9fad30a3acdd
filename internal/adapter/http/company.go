package httpadapter

import (
	"encoding/json"
	"net/http"
)

type registerCompanyRequest struct {
	Name     string `json:"name"`
	CRNumber string `json:"cr_number"`
}

func (h *Handler) handleRegisterCompany(w http.ResponseWriter, r *http.Request) {
	var req registerCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.registry.RegisterCompany(r.Context(), userID(r), req.Name, req.CRNumber)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	c, err := h.registry.GetCompany(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.DeleteCompany(r.Context(), userID(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
