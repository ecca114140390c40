package presentation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"vcpipe/internal/credential/crossmint"
	"vcpipe/internal/credential/ipfs"
	"vcpipe/internal/credential/metrics"
	"vcpipe/internal/credential/models"
	"vcpipe/internal/credential/tracer"
	dErrors "vcpipe/pkg/domain-errors"
)

// Procedure retrieves credentials stored behind a family of endpoints.
type Procedure interface {
	Name() string
	// Matches reports whether the procedure serves the collection endpoint.
	Matches(endpoint string) bool
	Retrieve(ctx context.Context, retrievalPath, locator string) (*models.Credential, error)
}

// Registry is an ordered list of procedures. The first match wins.
type Registry struct {
	mu         sync.RWMutex
	procedures []Procedure
}

func NewRegistry(procedures ...Procedure) *Registry {
	r := &Registry{}
	for _, p := range procedures {
		r.Register(p)
	}
	return r
}

// Register appends p after the procedures already registered.
func (r *Registry) Register(p Procedure) {
	if p == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.procedures = append(r.procedures, p)
}

func (r *Registry) Match(endpoint string) (Procedure, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.procedures {
		if p.Matches(endpoint) {
			return p, true
		}
	}
	return nil, false
}

// IPFSProcedure reads credentials stored as JSON files under an ipfs:// endpoint.
type IPFSProcedure struct {
	files FileFetcher
}

func NewIPFSProcedure(files FileFetcher) *IPFSProcedure {
	return &IPFSProcedure{files: files}
}

func (p *IPFSProcedure) Name() string { return "ipfs" }

func (p *IPFSProcedure) Matches(endpoint string) bool {
	return strings.HasPrefix(endpoint, ipfs.Scheme)
}

func (p *IPFSProcedure) Retrieve(ctx context.Context, retrievalPath, _ string) (*models.Credential, error) {
	raw, err := p.files.GetFile(ctx, retrievalPath)
	if err != nil {
		return nil, err
	}
	return models.ParseCredential(raw)
}

// CrossmintProcedure reads credentials held by Crossmint, addressed by locator.
type CrossmintProcedure struct {
	api CredentialAPI
}

func NewCrossmintProcedure(api CredentialAPI) *CrossmintProcedure {
	return &CrossmintProcedure{api: api}
}

func (p *CrossmintProcedure) Name() string { return "crossmint" }

func (p *CrossmintProcedure) Matches(endpoint string) bool {
	return strings.Contains(endpoint, "crossmint")
}

func (p *CrossmintProcedure) Retrieve(ctx context.Context, _, locator string) (*models.Credential, error) {
	raw, err := p.api.GetCredentialByLocator(ctx, locator)
	if err != nil {
		return nil, dErrors.Wrap(err, crossmint.DomainCode(err), fmt.Sprintf("Failed to get credential %s from crossmint", locator))
	}
	return models.ParseCredential(raw)
}

// RetrievalService dispatches credential lookups to the procedure serving
// the collection's credentials endpoint.
type RetrievalService struct {
	registry *Registry
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   tracer.Tracer
}

type RetrievalOption func(*RetrievalService)

func WithRetrievalLogger(logger *slog.Logger) RetrievalOption {
	return func(s *RetrievalService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithRetrievalMetrics(m *metrics.Metrics) RetrievalOption {
	return func(s *RetrievalService) {
		s.metrics = m
	}
}

func WithRetrievalTracer(t tracer.Tracer) RetrievalOption {
	return func(s *RetrievalService) {
		if t != nil {
			s.tracer = t
		}
	}
}

func NewRetrievalService(registry *Registry, opts ...RetrievalOption) *RetrievalService {
	s := &RetrievalService{
		registry: registry,
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

// GetCredential retrieves the credential anchored to tokenID in collection.
func (s *RetrievalService) GetCredential(ctx context.Context, collection models.CredentialsCollection, tokenID string) (cred *models.Credential, err error) {
	if !collection.HasCredentialMetadata() {
		return nil, dErrors.New(dErrors.CodeValidation, "The collection provided is not a verifiable credential collection")
	}

	endpoint := collection.Metadata.CredentialMetadata.CredentialsEndpoint
	retrievalPath := endpoint + "/" + tokenID
	locator := models.Locator{
		Chain:           collection.Chain,
		ContractAddress: collection.ContractAddress,
		TokenID:         tokenID,
	}.String()

	procedure, ok := s.registry.Match(endpoint)
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnsupported, "Unsupported retrieval endpoint "+endpoint)
	}

	ctx, span := s.tracer.Start(ctx, tracer.SpanGetCredential,
		tracer.String(tracer.AttrProcedure, procedure.Name()),
		tracer.String(tracer.AttrContract, collection.ContractAddress),
	)
	defer func() { span.End(err) }()

	s.logger.DebugContext(ctx, "retrieving credential",
		"procedure", procedure.Name(),
		"locator", locator,
		"path", retrievalPath,
	)
	cred, err = procedure.Retrieve(ctx, retrievalPath, locator)
	if err != nil {
		s.metrics.RecordRetrieval(procedure.Name(), metrics.OutcomeFailure)
		return nil, err
	}
	s.metrics.RecordRetrieval(procedure.Name(), metrics.OutcomeSuccess)
	return cred, nil
}
