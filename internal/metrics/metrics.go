package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for the pledge flow and the settlement job.
var (
	PledgesSubmittedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pledges_submitted_total",
			Help: "Total number of pledge intents accepted and sent to checkout",
		},
	)

	PledgesRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pledges_rejected_total",
			Help: "Total number of pledges rejected by the acceptance policy",
		},
		[]string{"reason"},
	)

	InvestmentsConfirmedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "investments_confirmed_total",
			Help: "Total number of investments recorded after payment confirmation",
		},
	)

	CampaignsGoalReachedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "campaigns_goal_reached_total",
			Help: "Total number of campaigns completed by a goal-filling pledge",
		},
	)

	SettlementCampaignsCompletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "settlement_campaigns_completed_total",
			Help: "Total number of campaigns resolved as Completed by the settlement job",
		},
	)

	SettlementCampaignsFailedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "settlement_campaigns_failed_total",
			Help: "Total number of campaigns resolved as Failed by the settlement job",
		},
	)

	SettlementErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "settlement_errors_total",
			Help: "Total number of campaigns whose settlement errored and was left for retry",
		},
	)
)

// Register registers all collectors with the default registry. Call once
// per process.
func Register() {
	prometheus.MustRegister(
		PledgesSubmittedTotal,
		PledgesRejectedTotal,
		InvestmentsConfirmedTotal,
		CampaignsGoalReachedTotal,
		SettlementCampaignsCompletedTotal,
		SettlementCampaignsFailedTotal,
		SettlementErrorsTotal,
	)
}
