// Package metrics exposes Prometheus instrumentation for child reconciliation.
package metrics

import (
	"net/http"
	"strings"

	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/service"
	"github.com/Yakorrr/merchandising-management-system/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type reconcileCollector struct {
	children *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// NewReconcileObserver registers the reconciliation series on registry.
func NewReconcileObserver(registry *prometheus.Registry) service.ReconcileObserver {
	c := &reconcileCollector{
		children: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reconcile_children_total",
			Help: "Child rows written by reconciliation, by parent kind and operation.",
		}, []string{"parent", "op"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reconcile_failures_total",
			Help: "Rejected or failed reconciliations, by parent kind and error code.",
		}, []string{"parent", "reason"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "reconcile_duration_seconds",
			Help:    "Time spent reconciling one parent's children.",
			Buckets: prometheus.DefBuckets,
		}, []string{"parent"}),
	}
	registry.MustRegister(c.children, c.failures, c.duration)

	return c
}

func (c *reconcileCollector) ObserveReconcile(outcome service.ReconcileOutcome) {
	c.duration.WithLabelValues(outcome.Parent).Observe(outcome.Elapsed.Seconds())

	if outcome.Err != nil {
		c.failures.WithLabelValues(outcome.Parent, failureReason(outcome.Err)).Inc()

		return
	}

	c.children.WithLabelValues(outcome.Parent, "created").Add(float64(outcome.Created))
	c.children.WithLabelValues(outcome.Parent, "updated").Add(float64(outcome.Updated))
	c.children.WithLabelValues(outcome.Parent, "deleted").Add(float64(outcome.Deleted))
}

// failureReason keeps label cardinality bounded to the known error codes.
func failureReason(err error) string {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return strings.ToLower(appErr.ErrorCode())
	}

	return "internal"
}

// NewHandler serves the registry in the Prometheus exposition format.
func NewHandler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		NewReconcileObserver,
	),
)

// EventCounter counts audit events consumed by the worker.
type EventCounter struct {
	received *prometheus.CounterVec
}

// NewEventCounter registers the consumed-event series on registry.
func NewEventCounter(registry *prometheus.Registry) *EventCounter {
	c := &EventCounter{
		received: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "audit_events_received_total",
			Help: "Audit events delivered to the worker, by action.",
		}, []string{"action"}),
	}
	registry.MustRegister(c.received)

	return c
}

// Inc records one delivered event.
func (c *EventCounter) Inc(action string) {
	c.received.WithLabelValues(action).Inc()
}
