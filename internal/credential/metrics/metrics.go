// Package metrics provides Prometheus metrics for credential presentation and verification.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by the counters below.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeTimeout = "timeout"
)

// Metrics contains the credential pipeline metrics. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	GatewayRequestsTotal    *prometheus.CounterVec   // IPFS gateway attempts by gateway host and outcome
	GatewayDurationSeconds  *prometheus.HistogramVec // IPFS gateway attempt latency by gateway host
	RPCCallsTotal           *prometheus.CounterVec   // eth_call by chain, method and outcome
	CollectionsDroppedTotal prometheus.Counter       // collections excluded during enrichment
	RetrievalsTotal         *prometheus.CounterVec   // credential retrievals by procedure and outcome
	VerificationsTotal      *prometheus.CounterVec   // verification outcomes by result
	VerificationDuration    prometheus.Histogram
	CrossmintRequestsTotal  *prometheus.CounterVec // Crossmint API calls by operation and status class
}

// New creates a Metrics instance registered with the default registerer.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the metrics with reg. Tests pass a fresh registry.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		GatewayRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vcpipe_ipfs_gateway_requests_total",
			Help: "Total number of IPFS gateway attempts by gateway and outcome",
		}, []string{"gateway", "outcome"}),

		GatewayDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vcpipe_ipfs_gateway_duration_seconds",
			Help:    "Duration of IPFS gateway attempts",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"gateway"}),

		RPCCallsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vcpipe_rpc_calls_total",
			Help: "Total number of contract read calls by chain, method and outcome",
		}, []string{"chain", "method", "outcome"}),

		CollectionsDroppedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "vcpipe_collections_dropped_total",
			Help: "Total number of collections excluded because their metadata was not credential metadata",
		}),

		RetrievalsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vcpipe_credential_retrievals_total",
			Help: "Total number of credential retrievals by procedure and outcome",
		}, []string{"procedure", "outcome"}),

		VerificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vcpipe_verifications_total",
			Help: "Total number of credential verifications by result",
		}, []string{"result"}),

		VerificationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "vcpipe_verification_duration_seconds",
			Help:    "Duration of credential verification",
			Buckets: prometheus.DefBuckets,
		}),

		CrossmintRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vcpipe_crossmint_requests_total",
			Help: "Total number of Crossmint API requests by operation and status",
		}, []string{"operation", "status"}),
	}
}

// ObserveGateway records one IPFS gateway attempt.
func (m *Metrics) ObserveGateway(gateway, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.GatewayRequestsTotal.WithLabelValues(gateway, outcome).Inc()
	m.GatewayDurationSeconds.WithLabelValues(gateway).Observe(d.Seconds())
}

// RecordRPCCall records one contract read.
func (m *Metrics) RecordRPCCall(chain, method, outcome string) {
	if m == nil {
		return
	}
	m.RPCCallsTotal.WithLabelValues(chain, method, outcome).Inc()
}

// IncrementCollectionsDropped records a collection excluded during enrichment.
func (m *Metrics) IncrementCollectionsDropped() {
	if m == nil {
		return
	}
	m.CollectionsDroppedTotal.Inc()
}

// RecordRetrieval records a credential retrieval through a procedure.
func (m *Metrics) RecordRetrieval(procedure, outcome string) {
	if m == nil {
		return
	}
	m.RetrievalsTotal.WithLabelValues(procedure, outcome).Inc()
}

// ObserveVerification records a verification result label and its latency.
func (m *Metrics) ObserveVerification(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.VerificationsTotal.WithLabelValues(result).Inc()
	m.VerificationDuration.Observe(d.Seconds())
}

// RecordCrossmintRequest records a Crossmint API call.
func (m *Metrics) RecordCrossmintRequest(operation, status string) {
	if m == nil {
		return
	}
	m.CrossmintRequestsTotal.WithLabelValues(operation, status).Inc()
}
