package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"hayyakom/internal/core/port"
)

type addMilestoneRequest struct {
	Title      string `json:"title"`
	TargetDate string `json:"target_date"` // YYYY-MM-DD
}

func (h *Handler) handleAddMilestone(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req addMilestoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	target, err := time.Parse("2006-01-02", req.TargetDate)
	if err != nil {
		h.writeError(w, port.ValidationError{Field: "target_date", Reason: "must be a YYYY-MM-DD date"})
		return
	}
	m, err := h.registry.AddMilestone(r.Context(), userID(r), id, req.Title, target)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, m)
}

func (h *Handler) handleListMilestones(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	viewer, _ := parseOptionalUser(r)
	list, err := h.registry.ListMilestones(r.Context(), viewer, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleCompleteMilestone(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid milestone id", http.StatusBadRequest)
		return
	}
	if err := h.registry.CompleteMilestone(r.Context(), userID(r), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
