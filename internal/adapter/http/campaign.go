package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"hayyakom/internal/core/domain"
	"hayyakom/internal/core/port"
)

type createCampaignRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Goal        int64  `json:"goal"`
	Deadline    string `json:"deadline"` // YYYY-MM-DD
	Category    string `json:"category"`
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	deadline, err := time.Parse("2006-01-02", req.Deadline)
	if err != nil {
		h.writeError(w, port.ValidationError{Field: "deadline", Reason: "must be a YYYY-MM-DD date"})
		return
	}
	c, err := h.registry.Create(r.Context(), port.CreateCampaignInput{
		OwnerID:     userID(r),
		Name:        req.Name,
		Description: req.Description,
		Goal:        req.Goal,
		Deadline:    deadline,
		Category:    domain.CampaignCategory(req.Category),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	// viewer is optional here; anonymous callers only see approved campaigns
	viewer, _ := parseOptionalUser(r)
	detail, err := h.registry.Get(r.Context(), viewer, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	f := port.CampaignFilter{
		Query:    r.URL.Query().Get("query"),
		Category: domain.CampaignCategory(r.URL.Query().Get("category")),
	}
	list, err := h.registry.ListPublic(r.Context(), f)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleListOwned(w http.ResponseWriter, r *http.Request) {
	list, err := h.registry.ListOwned(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleListPulse(w http.ResponseWriter, r *http.Request) {
	list, err := h.registry.ListPulse(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

type updateCampaignRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req updateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	err := h.registry.Update(r.Context(), port.UpdateCampaignInput{
		OwnerID:     userID(r),
		CampaignID:  id,
		Name:        req.Name,
		Description: req.Description,
		Category:    domain.CampaignCategory(req.Category),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleApproveCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if err := h.registry.Approve(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handlePromoteToPulse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	c, err := h.registry.PromoteToPulse(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleReturnFromPulse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if err := h.registry.ReturnFromPulse(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
