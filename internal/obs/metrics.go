// Package obs holds the Prometheus collectors for the HTTP surface and the
// invoice/VAT domain counters.
package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Transition results recorded on books_invoice_status_changes_total.
const (
	ResultApplied  = "applied"
	ResultRejected = "rejected"
	ResultConflict = "conflict"
)

// Metrics groups every collector the service exports.
type Metrics struct {
	registry prometheus.Gatherer

	HTTPInFlight        prometheus.Gauge
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	InvoiceStatusChanges *prometheus.CounterVec
	VatReports           *prometheus.CounterVec
	BuildInfo            *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		HTTPInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		InvoiceStatusChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "books_invoice_status_changes_total",
				Help: "Invoice status change attempts by source status, target status and result.",
			},
			[]string{"from", "to", "result"},
		),
		VatReports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "books_vat_reports_total",
				Help: "VAT summary reports generated, by period kind.",
			},
			[]string{"period"},
		),
		BuildInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "build_info",
				Help: "UK books API build information.",
			},
			[]string{"version", "commit"},
		),
	}
	reg.MustRegister(
		m.HTTPInFlight,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.InvoiceStatusChanges,
		m.VatReports,
		m.BuildInfo,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SetBuildInfo sets build_info{version,commit} to 1.
func (m *Metrics) SetBuildInfo(version, commit string) {
	m.BuildInfo.WithLabelValues(version, commit).Set(1)
}

// ObserveStatusChange counts one invoice status change attempt. A nil receiver is a no-op.
func (m *Metrics) ObserveStatusChange(from, to, result string) {
	if m == nil {
		return
	}
	m.InvoiceStatusChanges.WithLabelValues(from, to, result).Inc()
}

// ObserveVatReport counts one generated VAT summary. A nil receiver is a no-op.
func (m *Metrics) ObserveVatReport(period string) {
	if m == nil {
		return
	}
	m.VatReports.WithLabelValues(period).Inc()
}
