package verification

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"vcpipe/internal/credential/metrics"
	"vcpipe/internal/credential/models"
	"vcpipe/internal/credential/verification/mocks"
	dErrors "vcpipe/pkg/domain-errors"
)

var fixedNow = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

type ServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	signatures *mocks.MockSignatureChecker
	burns      *mocks.MockBurnChecker
	records    *mocks.MockRecordSaver
	events     *mocks.MockEventPublisher
	metrics    *metrics.Metrics
	service    *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.signatures = mocks.NewMockSignatureChecker(s.ctrl)
	s.burns = mocks.NewMockBurnChecker(s.ctrl)
	s.records = mocks.NewMockRecordSaver(s.ctrl)
	s.events = mocks.NewMockEventPublisher(s.ctrl)
	s.metrics = metrics.NewWithRegistry(prometheus.NewRegistry())
	s.service = New(s.signatures, s.burns,
		WithClock(func() time.Time { return fixedNow }),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
	)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) credential() *models.VerifiableCredential {
	return &models.VerifiableCredential{
		ID:     "urn:uuid:1",
		Type:   []string{"VerifiableCredential", "diploma"},
		Issuer: models.Issuer{ID: "did:polygon:0xd9d8BA9D5956f78E02F4506940f42ac2dAB9DABd"},
		NFT:    models.NFT{Chain: models.ChainPolygon, ContractAddress: "0x2245D3fdFF160503897020A1165b796cEaC00B68", TokenID: "13"},
		Proof:  &models.Proof{ProofValue: "0x00"},
	}
}

func (s *ServiceSuite) TestAllGatesPass() {
	vc := s.credential()
	vc.ValidUntil = "2030-01-01T00:00:00Z"
	gomock.InOrder(
		s.signatures.EXPECT().Verify(vc).Return(true, nil),
		s.burns.EXPECT().IsBurnt(gomock.Any(), vc.NFT).Return(false, nil),
	)

	result, err := s.service.VerifyCredential(context.Background(), vc)
	s.NoError(err)
	s.Equal(models.VerificationResult{ValidVC: true}, result)
	s.Equal(float64(1), promtestutil.ToFloat64(s.metrics.VerificationsTotal.WithLabelValues(resultValid)))
}

func (s *ServiceSuite) TestExpiredShortCircuits() {
	vc := s.credential()
	vc.ValidUntil = "2024-07-02T22:56:30.187Z"
	s.signatures.EXPECT().Verify(gomock.Any()).Times(0)
	s.burns.EXPECT().IsBurnt(gomock.Any(), gomock.Any()).Times(0)

	result, err := s.service.VerifyCredential(context.Background(), vc)
	s.NoError(err)
	s.Equal(models.VerificationResult{ValidVC: false, Error: "Credential expired at 2024-07-02T22:56:30.187Z"}, result)
}

func (s *ServiceSuite) TestExpirationDateFallback() {
	vc := s.credential()
	vc.ExpirationDate = "2020-01-01"

	result, err := s.service.VerifyCredential(context.Background(), vc)
	s.NoError(err)
	s.Equal("Credential expired at 2020-01-01", result.Error)
}

func (s *ServiceSuite) TestExpirationInputErrors() {
	s.Run("non-string", func() {
		vc := s.credential()
		vc.ValidUntil = float64(1719961000)
		_, err := s.service.VerifyCredential(context.Background(), vc)
		s.EqualError(err, "expirationDate must be a ISO string")
	})

	s.Run("unparseable", func() {
		vc := s.credential()
		vc.ValidUntil = "next tuesday"
		_, err := s.service.VerifyCredential(context.Background(), vc)
		s.EqualError(err, "Invalid expiration date: next tuesday")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestInvalidProofSkipsRevocation() {
	vc := s.credential()
	s.signatures.EXPECT().Verify(vc).Return(false, nil)
	s.burns.EXPECT().IsBurnt(gomock.Any(), gomock.Any()).Times(0)

	result, err := s.service.VerifyCredential(context.Background(), vc)
	s.NoError(err)
	s.Equal(models.VerificationResult{ValidVC: false, Error: "Invalid proof"}, result)
}

func (s *ServiceSuite) TestRevoked() {
	vc := s.credential()
	s.signatures.EXPECT().Verify(vc).Return(true, nil)
	s.burns.EXPECT().IsBurnt(gomock.Any(), vc.NFT).Return(true, nil)

	result, err := s.service.VerifyCredential(context.Background(), vc)
	s.NoError(err)
	s.Equal(models.VerificationResult{ValidVC: false, Error: "Credential has been revoked"}, result)
}

func (s *ServiceSuite) TestGateErrorsPropagate() {
	s.Run("signature", func() {
		vc := s.credential()
		s.signatures.EXPECT().Verify(vc).Return(false, dErrors.New(dErrors.CodeValidation, "No proof associated with credential"))
		_, err := s.service.VerifyCredential(context.Background(), vc)
		s.EqualError(err, "No proof associated with credential")
	})

	s.Run("burn check", func() {
		vc := s.credential()
		s.signatures.EXPECT().Verify(vc).Return(true, nil)
		s.burns.EXPECT().IsBurnt(gomock.Any(), vc.NFT).
			Return(false, dErrors.Wrap(errors.New("rpc down"), dErrors.CodeUnavailable, "Failed to check if NFT is burned"))
		_, err := s.service.VerifyCredential(context.Background(), vc)
		s.EqualError(err, "Failed to check if NFT is burned")
	})
	s.Equal(float64(2), promtestutil.ToFloat64(s.metrics.VerificationsTotal.WithLabelValues(resultError)))
}

func (s *ServiceSuite) TestOutcomesAreRecordedAndPublished() {
	service := New(s.signatures, s.burns,
		WithClock(func() time.Time { return fixedNow }),
		WithRecordSaver(s.records),
		WithEventPublisher(s.events),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	vc := s.credential()
	s.signatures.EXPECT().Verify(vc).Return(false, nil)

	var saved models.VerificationRecord
	s.records.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec models.VerificationRecord) error {
		saved = rec
		return nil
	})
	s.events.EXPECT().PublishVerification(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	result, err := service.VerifyCredential(context.Background(), vc)
	s.NoError(err)
	s.False(result.ValidVC)
	s.Equal("urn:uuid:1", saved.CredentialID)
	s.Equal(models.ReasonInvalidProof, saved.Reason)
	s.Equal("polygon:0x2245D3fdFF160503897020A1165b796cEaC00B68:13", saved.Locator)
	s.Equal(fixedNow, saved.VerifiedAt)
}

func (s *ServiceSuite) TestStalledPublisherDoesNotBlockResponse() {
	service := New(s.signatures, s.burns,
		WithEventPublisher(s.events),
		WithRecordTimeout(20*time.Millisecond),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	vc := s.credential()
	s.signatures.EXPECT().Verify(vc).Return(false, nil)

	var publishErr error
	s.events.EXPECT().PublishVerification(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ models.VerificationRecord) error {
		<-ctx.Done()
		publishErr = ctx.Err()
		return publishErr
	})

	start := time.Now()
	result, err := service.VerifyCredential(context.Background(), vc)
	s.NoError(err)
	s.False(result.ValidVC)
	s.Less(time.Since(start), time.Second)
	s.ErrorIs(publishErr, context.DeadlineExceeded)
}

func (s *ServiceSuite) TestCancelledRequestStillRecords() {
	service := New(s.signatures, s.burns,
		WithRecordSaver(s.records),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	vc := s.credential()
	vc.ExpirationDate = "2020-01-01"
	saveErr := errors.New("not saved")
	s.records.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ models.VerificationRecord) error {
		saveErr = ctx.Err()
		return saveErr
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := service.VerifyCredential(ctx, vc)
	s.NoError(err)
	s.Equal("Credential expired at 2020-01-01", result.Error)
	s.NoError(saveErr)
}

func (s *ServiceSuite) TestNilCredential() {
	_, err := s.service.VerifyCredential(context.Background(), nil)
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}

// countingSignatures tracks how many verifications run at once.
type countingSignatures struct {
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (c *countingSignatures) Verify(vc *models.VerifiableCredential) (bool, error) {
	n := c.inFlight.Add(1)
	defer c.inFlight.Add(-1)
	for {
		peak := c.peak.Load()
		if n <= peak || c.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	if vc.ID == "urn:bad" {
		return false, errors.New("boom")
	}
	return vc.ID != "urn:forged", nil
}

type notBurnt struct{}

func (notBurnt) IsBurnt(context.Context, models.NFT) (bool, error) { return false, nil }

func TestVerifyBatch(t *testing.T) {
	signatures := &countingSignatures{}
	service := New(signatures, notBurnt{},
		WithBatchLimit(2),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	ids := []string{"urn:1", "urn:forged", "urn:bad", "urn:4", "urn:5"}
	vcs := make([]*models.VerifiableCredential, 0, len(ids))
	for _, id := range ids {
		vcs = append(vcs, &models.VerifiableCredential{ID: id, Proof: &models.Proof{}})
	}

	results, err := service.VerifyBatch(context.Background(), vcs)
	require.NoError(t, err)
	require.Len(t, results, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, results[i].CredentialID)
	}
	assert.True(t, results[0].Result.ValidVC)
	assert.Equal(t, models.ReasonInvalidProof, results[1].Result.Error)
	assert.Nil(t, results[2].Result)
	assert.EqualError(t, results[2].Err, "boom")
	assert.True(t, results[4].Result.ValidVC)
	assert.LessOrEqual(t, signatures.peak.Load(), int32(2))
}

func TestVerifyBatchCancelled(t *testing.T) {
	service := New(&countingSignatures{}, notBurnt{}, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.VerifyBatch(ctx, []*models.VerifiableCredential{{ID: "urn:1"}})
	assert.ErrorIs(t, err, context.Canceled)
}
