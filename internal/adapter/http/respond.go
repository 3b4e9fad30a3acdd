package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"hayyakom/internal/core/domain"
	"hayyakom/internal/core/port"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the error taxonomy onto HTTP status codes: validation
// errors are 400, policy violations 422, transition misuse 409, external
// checkout failures 503 (retryable), unpaid sessions 402.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var ve port.ValidationError
	switch {
	case errors.As(err, &ve):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Error()})
	case errors.Is(err, port.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, port.ErrForbidden):
		h.writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
	case errors.Is(err, domain.ErrDuplicatePledge),
		errors.Is(err, domain.ErrCampaignNotOpen),
		errors.Is(err, domain.ErrExceedsRemainingGoal),
		errors.Is(err, domain.ErrMustMatchRemainingExactly),
		errors.Is(err, domain.ErrAmountOutOfPolicyRange),
		errors.Is(err, port.ErrCompanyExists),
		errors.Is(err, port.ErrCompanyHasFunds):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, port.ErrInvalidTransition):
		h.logger.Warn("invalid transition", slog.Any("error", err))
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, port.ErrPaymentNotCompleted):
		h.writeJSON(w, http.StatusPaymentRequired, errorResponse{Error: err.Error()})
	case errors.Is(err, port.ErrCheckoutUnavailable):
		h.logger.Error("checkout provider failure", slog.Any("error", err))
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "payment provider unavailable, retry later"})
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
