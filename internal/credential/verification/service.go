// Package verification checks credential expiry, proof and revocation.
package verification

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"vcpipe/internal/credential/metrics"
	"vcpipe/internal/credential/models"
	"vcpipe/internal/credential/tracer"
	dErrors "vcpipe/pkg/domain-errors"
)

const (
	resultValid   = "valid"
	resultExpired = "expired"
	resultInvalid = "invalid_proof"
	resultRevoked = "revoked"
	resultError   = "error"

	defaultBatchLimit    = 8
	defaultRecordTimeout = 2 * time.Second
)

// Service runs the expiration, signature and revocation gates in order and
// stops at the first failing gate.
type Service struct {
	signatures SignatureChecker
	burns      BurnChecker
	records    RecordSaver
	events     EventPublisher
	now        func() time.Time
	batchLimit int
	recordWait time.Duration
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     tracer.Tracer
}

type Option func(*Service)

// WithRecordSaver stores every verification outcome. Storage failures are
// logged and do not change the outcome.
func WithRecordSaver(r RecordSaver) Option {
	return func(s *Service) {
		s.records = r
	}
}

// WithEventPublisher publishes every verification outcome. Publish failures
// are logged and do not change the outcome.
func WithEventPublisher(p EventPublisher) Option {
	return func(s *Service) {
		s.events = p
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithBatchLimit bounds how many credentials VerifyBatch checks at once.
func WithBatchLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchLimit = n
		}
	}
}

// WithRecordTimeout bounds how long storing and publishing an outcome may
// delay the response.
func WithRecordTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.recordWait = d
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

func New(signatures SignatureChecker, burns BurnChecker, opts ...Option) *Service {
	s := &Service{
		signatures: signatures,
		burns:      burns,
		now:        time.Now,
		batchLimit: defaultBatchLimit,
		recordWait: defaultRecordTimeout,
		logger:     slog.Default(),
		tracer:     tracer.NoopTracer{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// VerifyCredential returns the verification outcome. Expired, wrongly signed
// and revoked credentials are reported in the result; an error means the
// credential could not be checked at all.
func (s *Service) VerifyCredential(ctx context.Context, vc *models.VerifiableCredential) (result models.VerificationResult, err error) {
	if vc == nil {
		return models.VerificationResult{}, dErrors.New(dErrors.CodeBadRequest, "credential is required")
	}
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanVerifyCredential, tracer.String(tracer.AttrCredentialID, vc.ID))
	defer func() {
		label := outcomeLabel(result, err)
		s.metrics.ObserveVerification(label, time.Since(start))
		span.SetAttributes(tracer.Bool(tracer.AttrValid, result.ValidVC), tracer.String(tracer.AttrReason, result.Error))
		span.End(err)
	}()

	result, err = s.runGates(ctx, span, vc)
	if err != nil {
		s.logger.WarnContext(ctx, "credential verification could not complete",
			"credential_id", vc.ID,
			"error", err,
		)
		return models.VerificationResult{}, err
	}

	s.record(ctx, vc, result)
	return result, nil
}

func (s *Service) runGates(ctx context.Context, span tracer.Span, vc *models.VerifiableCredential) (models.VerificationResult, error) {
	span.AddEvent(tracer.EventGateExpiration)
	value, expiresAt, hasExpiry, err := expiration(vc)
	if err != nil {
		return models.VerificationResult{}, err
	}
	if hasExpiry && expiresAt.Before(s.now()) {
		return models.VerificationResult{ValidVC: false, Error: "Credential expired at " + value}, nil
	}

	span.AddEvent(tracer.EventGateSignature)
	valid, err := s.signatures.Verify(vc)
	if err != nil {
		return models.VerificationResult{}, err
	}
	if !valid {
		return models.VerificationResult{ValidVC: false, Error: models.ReasonInvalidProof}, nil
	}

	span.AddEvent(tracer.EventGateRevocation)
	burnt, err := s.burns.IsBurnt(ctx, vc.NFT)
	if err != nil {
		return models.VerificationResult{}, err
	}
	if burnt {
		return models.VerificationResult{ValidVC: false, Error: models.ReasonRevoked}, nil
	}

	return models.VerificationResult{ValidVC: true}, nil
}

func (s *Service) record(ctx context.Context, vc *models.VerifiableCredential, result models.VerificationResult) {
	if s.records == nil && s.events == nil {
		return
	}
	rec := models.NewVerificationRecord(vc, result, s.now().UTC())
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.recordWait)
	defer cancel()
	if s.records != nil {
		if err := s.records.Save(ctx, rec); err != nil {
			s.logger.ErrorContext(ctx, "failed to store verification record",
				"credential_id", rec.CredentialID,
				"error", err,
			)
		}
	}
	if s.events != nil {
		if err := s.events.PublishVerification(ctx, rec); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish verification event",
				"credential_id", rec.CredentialID,
				"error", err,
			)
		}
	}
}

// BatchResult is the outcome for one credential of a batch. Exactly one of
// Result and Err is set.
type BatchResult struct {
	CredentialID string
	Result       *models.VerificationResult
	Err          error
}

// VerifyBatch verifies credentials concurrently, at most batchLimit at a
// time. Results are in input order; a credential that cannot be checked does
// not stop the others.
func (s *Service) VerifyBatch(ctx context.Context, vcs []*models.VerifiableCredential) ([]BatchResult, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanVerifyBatch, tracer.Int(tracer.AttrCount, len(vcs)))
	results := make([]BatchResult, len(vcs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchLimit)
	for i, vc := range vcs {
		g.Go(func() error {
			if vc != nil {
				results[i].CredentialID = vc.ID
			}
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			result, err := s.VerifyCredential(gctx, vc)
			if err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Result = &result
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		span.End(err)
		return nil, err
	}
	span.End(nil)
	return results, nil
}

func outcomeLabel(result models.VerificationResult, err error) string {
	switch {
	case err != nil:
		return resultError
	case result.ValidVC:
		return resultValid
	case result.Error == models.ReasonInvalidProof:
		return resultInvalid
	case result.Error == models.ReasonRevoked:
		return resultRevoked
	default:
		return resultExpired
	}
}
