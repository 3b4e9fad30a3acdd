package httpadapter

import "net/http"

// handleListNotifications returns the caller's notifications newest first
// and marks the unread ones as read.
func (h *Handler) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	list, err := h.notifications.ListAndMarkRead(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}
