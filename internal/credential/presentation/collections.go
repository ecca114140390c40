// Package presentation discovers credential NFTs held by a wallet and
// retrieves the credentials they anchor.
package presentation

import (
	"context"
	"fmt"
	"log/slog"

	"vcpipe/internal/credential/metrics"
	"vcpipe/internal/credential/models"
	"vcpipe/internal/credential/tracer"
)

// CollectionService lists a wallet's NFTs grouped into credential collections.
type CollectionService struct {
	metadata MetadataReader
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   tracer.Tracer
}

type CollectionOption func(*CollectionService)

func WithCollectionLogger(logger *slog.Logger) CollectionOption {
	return func(s *CollectionService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithCollectionMetrics(m *metrics.Metrics) CollectionOption {
	return func(s *CollectionService) {
		s.metrics = m
	}
}

func WithCollectionTracer(t tracer.Tracer) CollectionOption {
	return func(s *CollectionService) {
		if t != nil {
			s.tracer = t
		}
	}
}

func NewCollectionService(metadata MetadataReader, opts ...CollectionOption) *CollectionService {
	s := &CollectionService{
		metadata: metadata,
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

// GetCredentialNfts returns the wallet's credential collections that pass
// filters. Collections whose contract metadata cannot be resolved or is not
// credential metadata are left out of the result rather than failing the call.
func (s *CollectionService) GetCredentialNfts(
	ctx context.Context,
	chain models.Chain,
	wallet string,
	fetcher NFTFetcher,
	filters models.CredentialFilter,
) (result []models.CredentialsCollection, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanGetCredentialNfts, tracer.String(tracer.AttrChain, chain.String()))
	defer func() { span.End(err) }()

	if err := models.RequireVCChain(chain); err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "fetching wallet nfts", "chain", chain, "wallet", wallet)

	nfts, err := fetcher.FetchNFTs(ctx, chain, wallet)
	if err != nil {
		return nil, fmt.Errorf("fetch wallet nfts: %w", err)
	}
	for _, nft := range nfts {
		if err := nft.Validate(); err != nil {
			return nil, err
		}
		if err := models.RequireVCChain(nft.Chain); err != nil {
			return nil, err
		}
	}

	collections, err := s.withCredentialMetadata(ctx, chain, BundleNFTs(nfts))
	if err != nil {
		return nil, err
	}

	result = make([]models.CredentialsCollection, 0, len(collections))
	for _, c := range collections {
		if filters.Matches(c) {
			result = append(result, c)
		}
	}
	span.SetAttributes(tracer.Int(tracer.AttrCount, len(result)))
	return result, nil
}

// withCredentialMetadata resolves each collection's contract metadata in
// order and keeps the collections that carry credential metadata.
func (s *CollectionService) withCredentialMetadata(ctx context.Context, chain models.Chain, collections []models.Collection) ([]models.CredentialsCollection, error) {
	out := make([]models.CredentialsCollection, 0, len(collections))
	for _, c := range collections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		metadata, err := s.metadata.GetContractMetadata(ctx, chain, c.ContractAddress)
		if err != nil {
			s.drop(ctx, c, "metadata lookup failed", err)
			continue
		}
		promoted, ok := models.PromoteCollection(c, metadata)
		if !ok {
			s.drop(ctx, c, "not a verifiable credential collection", nil)
			continue
		}
		out = append(out, promoted)
	}
	return out, nil
}

func (s *CollectionService) drop(ctx context.Context, c models.Collection, reason string, err error) {
	s.metrics.IncrementCollectionsDropped()
	attrs := []any{"chain", c.Chain, "contract", c.ContractAddress, "reason", reason}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	s.logger.DebugContext(ctx, "collection dropped", attrs...)
}

// BundleNFTs groups nfts by contract address. Groups appear in the order
// their contract is first seen and keep the input order of their NFTs.
func BundleNFTs(nfts []models.NFT) []models.Collection {
	index := make(map[string]int)
	var collections []models.Collection
	for _, nft := range nfts {
		i, ok := index[nft.ContractAddress]
		if !ok {
			i = len(collections)
			index[nft.ContractAddress] = i
			collections = append(collections, models.Collection{
				ContractAddress: nft.ContractAddress,
				Chain:           nft.Chain,
				Metadata:        map[string]any{},
			})
		}
		collections[i].NFTs = append(collections[i].NFTs, nft)
	}
	return collections
}
