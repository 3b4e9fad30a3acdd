package httpadapter

import (
	"encoding/json"
	"net/http"
)

type submitPledgeRequest struct {
	Amount int64 `json:"amount"`
}

// handleSubmitPledge validates the pledge against the acceptance policy and
// opens a checkout session. The investment itself is created only once the
// confirm callback reports the session paid.
func (h *Handler) handleSubmitPledge(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req submitPledgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resp, err := h.ledger.SubmitPledge(r.Context(), userID(r), id, req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, resp)
}

// handleConfirmPledge is the checkout success callback. Confirmation is
// idempotent: replays answer with the already-recorded investment.
func (h *Handler) handleConfirmPledge(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusBadRequest)
		return
	}
	resp, err := h.ledger.ConfirmPledge(r.Context(), userID(r), token)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListInvestments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	list, err := h.ledger.ListCampaignInvestments(r.Context(), userID(r), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}
