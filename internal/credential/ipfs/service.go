// Package ipfs retrieves JSON documents addressed by ipfs:// URIs through an
// ordered list of public HTTP gateways.
package ipfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vcpipe/internal/credential/metrics"
	"vcpipe/internal/credential/tracer"
	dErrors "vcpipe/pkg/domain-errors"
)

const (
	// Scheme prefixes every URI the service accepts.
	Scheme = "ipfs://"

	// CIDPlaceholder is substituted in gateway templates.
	CIDPlaceholder = "{cid}"

	DefaultTimeout = 10 * time.Second

	maxDocumentBytes = 5 << 20
)

// DefaultGateways are tried in order when none are configured.
var DefaultGateways = []string{
	"https://ipfs.io/ipfs/{cid}",
	"https://cloudflare-ipfs.com/ipfs/{cid}",
	"https://infura-ipfs.io/ipfs/{cid}",
}

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Service fetches IPFS documents with gateway fallback. It keeps no cache;
// falling through the gateway list is the only retry.
type Service struct {
	gateways []string
	timeout  time.Duration
	client   HTTPDoer
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   tracer.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithGateways replaces the gateway templates. Empty input keeps the defaults.
func WithGateways(gateways []string) Option {
	return func(s *Service) {
		if len(gateways) > 0 {
			s.gateways = gateways
		}
	}
}

// WithTimeout bounds each gateway attempt.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithHTTPClient(client HTTPDoer) Option {
	return func(s *Service) {
		if client != nil {
			s.client = client
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// New creates a Service with the default gateways and timeout.
func New(opts ...Option) *Service {
	s := &Service{
		gateways: DefaultGateways,
		timeout:  DefaultTimeout,
		client:   http.DefaultClient,
		logger:   slog.Default(),
		tracer:   tracer.NoopTracer{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// GetFile fetches and returns the JSON document behind uri. Each gateway
// attempt runs under its own deadline; a timed-out attempt is cancelled
// before the next gateway is tried.
func (s *Service) GetFile(ctx context.Context, uri string) (json.RawMessage, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanIPFSGetFile)
	cid := strings.TrimPrefix(uri, Scheme)

	for _, gateway := range s.gateways {
		target := GatewayURL(gateway, cid)
		body, err := s.fetch(ctx, target)
		if err == nil {
			span.SetAttributes(tracer.String(tracer.AttrGateway, gatewayLabel(gateway)))
			span.End(nil)
			return body, nil
		}
		s.logger.WarnContext(ctx, "ipfs gateway attempt failed",
			"gateway", gatewayLabel(gateway),
			"uri", uri,
			"error", err,
		)
		if ctx.Err() != nil {
			span.End(ctx.Err())
			return nil, fmt.Errorf("get ipfs file %s: %w", uri, ctx.Err())
		}
	}

	err := dErrors.New(dErrors.CodeUnavailable, "Failed to retrieve file from IPFS: "+uri)
	span.End(err)
	return nil, err
}

func (s *Service) fetch(ctx context.Context, target string) (json.RawMessage, error) {
	start := time.Now()
	label := gatewayLabel(target)

	attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	body, err := s.get(attemptCtx, target)
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailure
		if errors.Is(err, context.DeadlineExceeded) {
			outcome = metrics.OutcomeTimeout
		}
	}
	s.metrics.ObserveGateway(label, outcome, time.Since(start))
	return body, err
}

func (s *Service) get(ctx context.Context, target string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("gateway returned a non-JSON document")
	}
	return body, nil
}

// GatewayURL substitutes cid into a gateway template. Templates either carry
// the {cid} placeholder or end with a slash the cid is appended to.
func GatewayURL(gateway, cid string) string {
	if strings.Contains(gateway, CIDPlaceholder) {
		return strings.ReplaceAll(gateway, CIDPlaceholder, cid)
	}
	if strings.HasSuffix(gateway, "/") {
		return gateway + cid
	}
	return gateway + "/" + cid
}

func gatewayLabel(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host
}
