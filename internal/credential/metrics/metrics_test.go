package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecord(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.ObserveGateway("ipfs.io", OutcomeTimeout, 10*time.Millisecond)
	m.ObserveGateway("ipfs.io", OutcomeTimeout, 10*time.Millisecond)
	m.IncrementCollectionsDropped()
	m.ObserveVerification("revoked", time.Millisecond)
	m.RecordRPCCall("polygon", "ownerOf", OutcomeSuccess)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.GatewayRequestsTotal.WithLabelValues("ipfs.io", OutcomeTimeout)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CollectionsDroppedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.VerificationsTotal.WithLabelValues("revoked")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCCallsTotal.WithLabelValues("polygon", "ownerOf", OutcomeSuccess)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveGateway("g", OutcomeSuccess, time.Second)
		m.RecordRPCCall("c", "m", OutcomeFailure)
		m.IncrementCollectionsDropped()
		m.RecordRetrieval("ipfs", OutcomeSuccess)
		m.ObserveVerification("valid", time.Second)
		m.RecordCrossmintRequest("wallet_nfts", "2xx")
	})
}
