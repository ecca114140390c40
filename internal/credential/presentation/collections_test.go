package presentation

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"vcpipe/internal/credential/metrics"
	"vcpipe/internal/credential/models"
	"vcpipe/internal/credential/presentation/mocks"
	dErrors "vcpipe/pkg/domain-errors"
	"vcpipe/pkg/testutil"
)

const (
	contractA = "0x2245D3fdFF160503897020A1165b796cEaC00B68"
	contractB = "0xD8393a735e8b7B6E199db9A537cf27C61Aa74954"
	contractC = "0x1B887669437644aA348c518844660ef8d63bd643"
	wallet    = "0xd9d8BA9D5956f78E02F4506940f42ac2dAB9DABd"
)

func nft(contract, token string) models.NFT {
	return models.NFT{Chain: models.ChainPolygon, ContractAddress: contract, TokenID: token}
}

func vcMetadata(issuer string, types ...string) map[string]any {
	t := make([]any, 0, len(types))
	for _, v := range types {
		t = append(t, v)
	}
	return map[string]any{
		"name": "Credentials",
		"credentialMetadata": map[string]any{
			"type":                t,
			"issuerDid":           issuer,
			"credentialsEndpoint": "ipfs://bafyendpoint",
			"encryption":          map[string]any{"type": "none"},
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type CollectionServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	metadata *mocks.MockMetadataReader
	fetcher  *mocks.MockNFTFetcher
	metrics  *metrics.Metrics
	service  *CollectionService
}

func TestCollectionServiceSuite(t *testing.T) {
	suite.Run(t, new(CollectionServiceSuite))
}

func (s *CollectionServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.metadata = mocks.NewMockMetadataReader(s.ctrl)
	s.fetcher = mocks.NewMockNFTFetcher(s.ctrl)
	s.metrics = metrics.NewWithRegistry(prometheus.NewRegistry())
	s.service = NewCollectionService(s.metadata,
		WithCollectionLogger(discardLogger()),
		WithCollectionMetrics(s.metrics),
	)
}

func (s *CollectionServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CollectionServiceSuite) TestUnsupportedChainFailsBeforeFetching() {
	_, err := s.service.GetCredentialNfts(context.Background(), "ethereum", wallet, s.fetcher, models.CredentialFilter{})
	s.EqualError(err, "Verifiable credentials are not supported on ethereum chain")
}

func (s *CollectionServiceSuite) TestInvalidNFTFailsTheCall() {
	s.fetcher.EXPECT().FetchNFTs(gomock.Any(), models.ChainPolygon, wallet).
		Return([]models.NFT{nft(contractA, "1"), {Chain: models.ChainPolygon, ContractAddress: contractA}}, nil)

	_, err := s.service.GetCredentialNfts(context.Background(), models.ChainPolygon, wallet, s.fetcher, models.CredentialFilter{})
	s.EqualError(err, "Invalid NFT")
}

func (s *CollectionServiceSuite) TestNFTOnOtherChainFailsTheCall() {
	other := nft(contractA, "1")
	other.Chain = "base"
	s.fetcher.EXPECT().FetchNFTs(gomock.Any(), models.ChainPolygon, wallet).Return([]models.NFT{other}, nil)

	_, err := s.service.GetCredentialNfts(context.Background(), models.ChainPolygon, wallet, s.fetcher, models.CredentialFilter{})
	s.True(dErrors.HasCode(err, dErrors.CodeUnsupported))
}

func (s *CollectionServiceSuite) TestFetcherErrorPropagates() {
	s.fetcher.EXPECT().FetchNFTs(gomock.Any(), models.ChainPolygon, wallet).Return(nil, errors.New("upstream down"))

	_, err := s.service.GetCredentialNfts(context.Background(), models.ChainPolygon, wallet, s.fetcher, models.CredentialFilter{})
	s.ErrorContains(err, "upstream down")
}

func (s *CollectionServiceSuite) TestEnrichmentDropsAndFilters() {
	nfts := []models.NFT{nft(contractA, "1"), nft(contractB, "2"), nft(contractA, "3"), nft(contractC, "4")}
	expectEnrichment := func() {
		gomock.InOrder(
			s.metadata.EXPECT().GetContractMetadata(gomock.Any(), models.ChainPolygon, contractA).
				Return(vcMetadata("did:polygon:0x1", "VerifiableCredential", "diploma"), nil),
			s.metadata.EXPECT().GetContractMetadata(gomock.Any(), models.ChainPolygon, contractB).
				Return(map[string]any{"name": "art"}, nil),
			s.metadata.EXPECT().GetContractMetadata(gomock.Any(), models.ChainPolygon, contractC).
				Return(nil, errors.New("ipfs down")),
		)
	}

	testutil.Given(s.T(), "a wallet with one credential collection among others", func(t *testing.T) {
		testutil.When(t, "no filters are given", func(t *testing.T) {
			s.fetcher.EXPECT().FetchNFTs(gomock.Any(), models.ChainPolygon, wallet).Return(nfts, nil)
			expectEnrichment()

			got, err := s.service.GetCredentialNfts(context.Background(), models.ChainPolygon, wallet, s.fetcher, models.CredentialFilter{})

			testutil.Then(t, "only the credential collection is returned with its nfts in order", func(t *testing.T) {
				assert.NoError(t, err)
				if assert.Len(t, got, 1) {
					assert.Equal(t, contractA, got[0].ContractAddress)
					assert.Equal(t, []string{"1", "3"}, []string{got[0].NFTs[0].TokenID, got[0].NFTs[1].TokenID})
					assert.Equal(t, "did:polygon:0x1", got[0].Metadata.CredentialMetadata.IssuerDID)
				}
			})
			testutil.Then(t, "the dropped collections are counted", func(t *testing.T) {
				assert.Equal(t, float64(2), promtestutil.ToFloat64(s.metrics.CollectionsDroppedTotal))
			})
		})

		testutil.When(t, "the issuer filter excludes the issuer", func(t *testing.T) {
			s.fetcher.EXPECT().FetchNFTs(gomock.Any(), models.ChainPolygon, wallet).Return(nfts, nil)
			expectEnrichment()

			got, err := s.service.GetCredentialNfts(context.Background(), models.ChainPolygon, wallet, s.fetcher,
				models.CredentialFilter{Issuers: []string{"did:polygon:0x2"}})

			testutil.Then(t, "nothing is returned", func(t *testing.T) {
				assert.NoError(t, err)
				assert.Empty(t, got)
				assert.NotNil(t, got)
			})
		})

		testutil.When(t, "the type filter intersects", func(t *testing.T) {
			s.fetcher.EXPECT().FetchNFTs(gomock.Any(), models.ChainPolygon, wallet).Return(nfts, nil)
			expectEnrichment()

			got, err := s.service.GetCredentialNfts(context.Background(), models.ChainPolygon, wallet, s.fetcher,
				models.CredentialFilter{Issuers: []string{"did:polygon:0x1"}, Types: []string{"passport", "diploma"}})

			testutil.Then(t, "the collection is kept", func(t *testing.T) {
				assert.NoError(t, err)
				assert.Len(t, got, 1)
			})
		})
	})
}

func (s *CollectionServiceSuite) TestFetcherFunc() {
	called := false
	fetcher := NFTFetcherFunc(func(_ context.Context, chain models.Chain, w string) ([]models.NFT, error) {
		called = true
		s.Equal(wallet, w)
		return nil, nil
	})

	got, err := s.service.GetCredentialNfts(context.Background(), models.ChainPolygonAmoy, wallet, fetcher, models.CredentialFilter{})
	s.NoError(err)
	s.Empty(got)
	s.True(called)
}

func TestBundleNFTs(t *testing.T) {
	t.Run("groups by contract in first-seen order", func(t *testing.T) {
		got := BundleNFTs([]models.NFT{nft(contractB, "1"), nft(contractA, "2"), nft(contractB, "3")})
		if assert.Len(t, got, 2) {
			assert.Equal(t, contractB, got[0].ContractAddress)
			assert.Equal(t, contractA, got[1].ContractAddress)
			assert.Len(t, got[0].NFTs, 2)
			assert.Equal(t, "3", got[0].NFTs[1].TokenID)
			assert.Equal(t, models.ChainPolygon, got[0].Chain)
			assert.NotNil(t, got[0].Metadata)
		}
	})

	t.Run("total nft count is preserved", func(t *testing.T) {
		in := []models.NFT{nft(contractA, "1"), nft(contractB, "2"), nft(contractC, "3"), nft(contractA, "4")}
		total := 0
		for _, c := range BundleNFTs(in) {
			total += len(c.NFTs)
		}
		assert.Equal(t, len(in), total)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, BundleNFTs(nil))
	})
}
