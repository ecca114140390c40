package presentation

import (
	"context"
	"fmt"

	"vcpipe/internal/credential/models"
	dErrors "vcpipe/pkg/domain-errors"
)

// CredentialNFT is a single credential NFT together with its collection.
type CredentialNFT struct {
	NFT        models.NFT                   `json:"nft"`
	Collection models.CredentialsCollection `json:"collection"`
}

// LocatorService resolves a chain:contract:token locator to a credential NFT.
type LocatorService struct {
	tokens   TokenReader
	files    FileFetcher
	metadata MetadataReader
}

func NewLocatorService(tokens TokenReader, files FileFetcher, metadata MetadataReader) *LocatorService {
	return &LocatorService{tokens: tokens, files: files, metadata: metadata}
}

// GetCredentialNFTFromLocator loads the token metadata and the contract
// metadata of the NFT at locator. The contract must be a credential collection.
func (s *LocatorService) GetCredentialNFTFromLocator(ctx context.Context, locator string) (*CredentialNFT, error) {
	parsed, err := models.ParseLocator(locator)
	if err != nil {
		return nil, err
	}
	if err := models.RequireVCChain(parsed.Chain); err != nil {
		return nil, err
	}
	nft := parsed.NFT()

	uri, err := s.tokens.GetNftURI(ctx, nft)
	if err != nil {
		return nil, fmt.Errorf("get nft uri: %w", err)
	}
	nft.Metadata, err = s.files.GetFile(ctx, uri)
	if err != nil {
		return nil, err
	}

	metadata, err := s.metadata.GetContractMetadata(ctx, nft.Chain, nft.ContractAddress)
	if err != nil {
		return nil, fmt.Errorf("get contract metadata: %w", err)
	}
	collection, ok := models.PromoteCollection(models.Collection{
		ContractAddress: nft.ContractAddress,
		Chain:           nft.Chain,
		NFTs:            []models.NFT{nft},
	}, metadata)
	if !ok {
		return nil, dErrors.New(dErrors.CodeValidation,
			"The nft provided is not associated to a VC collection: contract "+nft.ContractAddress)
	}

	return &CredentialNFT{NFT: nft, Collection: collection}, nil
}
