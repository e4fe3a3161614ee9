// Package metrics holds the Prometheus collectors of the loading service. Collectors
// are package level so that handlers can record without carrying a dependency;
// Register attaches them to a registry once.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "loading"

const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultFailed   = "failed"
)

var (
	intakeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intake_total",
			Help:      "Intake payloads processed, by schema and result.",
		},
		[]string{"schema", "result"},
	)
	transitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Accepted order state transitions, by target state and actor.",
		},
		[]string{"to", "actor"},
	)
	telemetryTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "telemetry_readings_total",
			Help:      "Telemetry readings persisted.",
		},
	)
	alertsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "temperature_alerts_total",
			Help:      "Temperature alert evaluations that breached the threshold, by outcome.",
		},
		[]string{"outcome"},
	)
	notificationFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_notification_failures_total",
			Help:      "Alert notifications that could not be delivered to a recipient.",
		},
	)
	auditFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_log_failures_total",
			Help:      "Status log entries that could not be written.",
		},
	)
	reconciliationDifference = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reconciliation_difference_kg",
			Help:      "Absolute difference between net weight and metered mass.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)
)

var registerOnce sync.Once

// Register adds every collector to reg. Calls after the first are no-ops.
func Register(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(
			intakeTotal,
			transitionsTotal,
			telemetryTotal,
			alertsTotal,
			notificationFailuresTotal,
			auditFailuresTotal,
			reconciliationDifference,
		)
	})
}

func RecordIntake(schema, result string) {
	intakeTotal.WithLabelValues(schema, result).Inc()
}

func RecordTransition(to, actor string) {
	transitionsTotal.WithLabelValues(to, actor).Inc()
}

func RecordTelemetry() {
	telemetryTotal.Inc()
}

// RecordAlert counts a breach; outcome is SENT or NOT_SENT.
func RecordAlert(outcome string) {
	alertsTotal.WithLabelValues(outcome).Inc()
}

func RecordNotificationFailure() {
	notificationFailuresTotal.Inc()
}

func RecordAuditFailure() {
	auditFailuresTotal.Inc()
}

func ObserveReconciliation(absDifference float64) {
	reconciliationDifference.Observe(absDifference)
}
