package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wallet_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	DepositsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_deposits_total",
			Help: "Deposits by outcome",
		},
		[]string{"status"},
	)

	DepositedAmountTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wallet_deposited_amount_minor_total",
			Help: "Sum of credited deposits in minor units",
		},
	)

	WebhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_webhook_events_total",
			Help: "Payment provider webhook events by event name and outcome",
		},
		[]string{"event", "outcome"},
	)

	TransfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_transfers_total",
			Help: "Transfers by outcome",
		},
		[]string{"outcome"},
	)

	APIKeysTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_api_keys_total",
			Help: "API key lifecycle operations",
		},
		[]string{"operation"},
	)

	SignInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_sign_ins_total",
			Help: "Google sign-in attempts by outcome",
		},
		[]string{"outcome"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordDeposit(status string) {
	DepositsTotal.WithLabelValues(status).Inc()
}

// RecordCredit counts a settled deposit credited to a wallet.
func RecordCredit(amount int64) {
	DepositsTotal.WithLabelValues("credited").Inc()
	DepositedAmountTotal.Add(float64(amount))
}

// Event names kept as their own label value; anything else is folded
// into "charge.other" or "other" to bound the series count.
var webhookEventLabels = map[string]struct{}{
	"charge.success":         {},
	"charge.failed":          {},
	"charge.dispute.create":  {},
	"charge.dispute.remind":  {},
	"charge.dispute.resolve": {},
}

// WebhookEventLabel maps a provider event name to a bounded label value.
func WebhookEventLabel(event string) string {
	if _, ok := webhookEventLabels[event]; ok {
		return event
	}
	if strings.HasPrefix(event, "charge.") {
		return "charge.other"
	}
	return "other"
}

func RecordWebhookEvent(event, outcome string) {
	WebhookEventsTotal.WithLabelValues(WebhookEventLabel(event), outcome).Inc()
}

func RecordTransfer(outcome string) {
	TransfersTotal.WithLabelValues(outcome).Inc()
}

func RecordAPIKey(operation string) {
	APIKeysTotal.WithLabelValues(operation).Inc()
}

func RecordSignIn(outcome string) {
	SignInsTotal.WithLabelValues(outcome).Inc()
}
