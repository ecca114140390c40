package presentation

import (
	"context"
	"encoding/json"

	"vcpipe/internal/credential/crossmint"
	"vcpipe/internal/credential/models"
)

// TokenReader reads token and contract URIs from chain.
type TokenReader interface {
	GetNftURI(ctx context.Context, nft models.NFT) (string, error)
	GetContractURI(ctx context.Context, chain models.Chain, contractAddress string) (string, bool, error)
}

// FileFetcher resolves ipfs:// URIs to JSON documents.
type FileFetcher interface {
	GetFile(ctx context.Context, uri string) (json.RawMessage, error)
}

// MetadataReader resolves the raw contract metadata of a collection.
// A nil map with a nil error means the contract exposes no metadata.
type MetadataReader interface {
	GetContractMetadata(ctx context.Context, chain models.Chain, contractAddress string) (map[string]any, error)
}

// NFTFetcher lists the NFTs a wallet holds on a chain.
type NFTFetcher interface {
	FetchNFTs(ctx context.Context, chain models.Chain, wallet string) ([]models.NFT, error)
}

// NFTFetcherFunc adapts a function to NFTFetcher.
type NFTFetcherFunc func(ctx context.Context, chain models.Chain, wallet string) ([]models.NFT, error)

func (f NFTFetcherFunc) FetchNFTs(ctx context.Context, chain models.Chain, wallet string) ([]models.NFT, error) {
	return f(ctx, chain, wallet)
}

// CredentialAPI is the subset of the Crossmint client used for retrieval and decryption.
type CredentialAPI interface {
	GetCredential(ctx context.Context, credentialID string) (json.RawMessage, error)
	GetCredentialByLocator(ctx context.Context, locator string) (json.RawMessage, error)
	RequestDecryptionChallenge(ctx context.Context, address string) (string, error)
	Decrypt(ctx context.Context, req crossmint.DecryptRequest) (json.RawMessage, error)
}
