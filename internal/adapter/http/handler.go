package httpadapter

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hayyakom/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Identity is external: authenticated endpoints read the caller from
// the X-User-ID header set by the upstream auth layer, and admin endpoints
// require the shared X-Admin-Token secret.
type Handler struct {
	registry      port.CampaignRegistry
	ledger        port.InvestmentLedger
	notifications port.NotificationRepository
	logger        *slog.Logger
	adminToken    string
	router        chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	registry port.CampaignRegistry,
	ledger port.InvestmentLedger,
	notifications port.NotificationRepository,
	adminToken string,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		registry:      registry,
		ledger:        ledger,
		notifications: notifications,
		logger:        logger,
		adminToken:    adminToken,
	}
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/pulse", h.handleListPulse)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/campaigns/{id}/milestones", h.handleListMilestones)

		r.Group(func(r chi.Router) {
			r.Use(h.requireUser)
			r.Post("/companies", h.handleRegisterCompany)
			r.Get("/companies/mine", h.handleGetCompany)
			r.Delete("/companies/mine", h.handleDeleteCompany)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns/mine", h.handleListOwned)
			r.Patch("/campaigns/{id}", h.handleUpdateCampaign)
			r.Post("/campaigns/{id}/pledges", h.handleSubmitPledge)
			r.Get("/pledges/confirm", h.handleConfirmPledge)
			r.Get("/campaigns/{id}/investments", h.handleListInvestments)
			r.Post("/campaigns/{id}/milestones", h.handleAddMilestone)
			r.Post("/milestones/{id}/complete", h.handleCompleteMilestone)
			r.Get("/notifications", h.handleListNotifications)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Post("/campaigns/{id}/approve", h.handleApproveCampaign)
			r.Post("/campaigns/{id}/pulse", h.handlePromoteToPulse)
			r.Post("/campaigns/{id}/pulse/return", h.handleReturnFromPulse)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

type ctxKey int

const userIDKey ctxKey = iota

// requireUser rejects requests without a valid X-User-ID header and stores
// the caller identity in the request context.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "missing or invalid X-User-ID", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, id)))
	})
}

// requireAdmin rejects requests without the shared admin token. An empty
// configured token disables the admin surface.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Admin-Token")
		if h.adminToken == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) != 1 {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// userID returns the authenticated caller, or 0 for anonymous requests.
func userID(r *http.Request) int64 {
	id, _ := r.Context().Value(userIDKey).(int64)
	return id
}

// parseOptionalUser reads X-User-ID on routes that allow anonymous access.
func parseOptionalUser(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}
