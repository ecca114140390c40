package ipfs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"vcpipe/internal/credential/metrics"
	dErrors "vcpipe/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	failing *httptest.Server
	slow    *httptest.Server
	good    *httptest.Server
	badJSON *httptest.Server

	goodHits atomic.Int32
	lastPath atomic.Value
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.goodHits.Store(0)
	s.failing = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	s.slow = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		_, _ = w.Write([]byte(`{"late":true}`))
	}))
	s.good = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.goodHits.Add(1)
		s.lastPath.Store(r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"collection"}`))
	}))
	s.badJSON = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
}

func (s *ServiceSuite) TearDownTest() {
	s.failing.Close()
	s.slow.Close()
	s.good.Close()
	s.badJSON.Close()
}

func (s *ServiceSuite) TestFirstGatewaySucceeds() {
	svc := New(WithGateways([]string{s.good.URL + "/ipfs/{cid}", s.failing.URL + "/ipfs/{cid}"}))

	body, err := svc.GetFile(context.Background(), "ipfs://bafyroot/meta.json")
	s.Require().NoError(err)
	s.JSONEq(`{"name":"collection"}`, string(body))
	s.Equal("/ipfs/bafyroot/meta.json", s.lastPath.Load())
}

func (s *ServiceSuite) TestFallsThroughNon2xxAndTimeout() {
	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	svc := New(
		WithGateways([]string{s.failing.URL + "/ipfs/", s.slow.URL + "/ipfs/{cid}", s.good.URL + "/ipfs/"}),
		WithTimeout(50*time.Millisecond),
		WithMetrics(m),
	)

	start := time.Now()
	body, err := svc.GetFile(context.Background(), "ipfs://bafycid")
	s.Require().NoError(err)
	s.JSONEq(`{"name":"collection"}`, string(body))
	s.Less(time.Since(start), time.Second)
	s.Equal(int32(1), s.goodHits.Load())

	slowHost := gatewayLabel(s.slow.URL)
	s.Equal(1.0, testutil.ToFloat64(m.GatewayRequestsTotal.WithLabelValues(slowHost, metrics.OutcomeTimeout)))
}

func (s *ServiceSuite) TestNonJSONBodyFallsThrough() {
	svc := New(WithGateways([]string{s.badJSON.URL + "/", s.good.URL + "/"}))

	body, err := svc.GetFile(context.Background(), "ipfs://bafycid")
	s.Require().NoError(err)
	s.JSONEq(`{"name":"collection"}`, string(body))
}

func (s *ServiceSuite) TestAllGatewaysFail() {
	svc := New(
		WithGateways([]string{s.failing.URL + "/ipfs/{cid}", s.slow.URL + "/ipfs/{cid}"}),
		WithTimeout(50*time.Millisecond),
	)

	_, err := svc.GetFile(context.Background(), "ipfs://bafymissing")
	s.Require().Error(err)
	s.Contains(err.Error(), "ipfs://bafymissing")
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}

func (s *ServiceSuite) TestCancelledContextStopsFallback() {
	svc := New(WithGateways([]string{s.slow.URL + "/", s.good.URL + "/"}), WithTimeout(time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := svc.GetFile(ctx, "ipfs://bafycid")
	s.Require().Error(err)
	s.ErrorIs(err, context.DeadlineExceeded)
	s.Equal(int32(0), s.goodHits.Load())
}

func TestGatewayURL(t *testing.T) {
	tests := []struct {
		gateway string
		want    string
	}{
		{"https://ipfs.io/ipfs/{cid}", "https://ipfs.io/ipfs/bafy/1.json"},
		{"https://{cid}.ipfs.dweb.link", "https://bafy/1.json.ipfs.dweb.link"},
		{"https://cloudflare-ipfs.com/ipfs/", "https://cloudflare-ipfs.com/ipfs/bafy/1.json"},
		{"https://gw.example/ipfs", "https://gw.example/ipfs/bafy/1.json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GatewayURL(tt.gateway, "bafy/1.json"))
	}
}

func TestNewDefaults(t *testing.T) {
	svc := New(WithGateways(nil), WithTimeout(0))
	require.Equal(t, DefaultGateways, svc.gateways)
	assert.Equal(t, DefaultTimeout, svc.timeout)
}
