package presentation

import (
	"context"
	"encoding/json"
	"fmt"

	"vcpipe/internal/credential/models"
)

// ContractMetadataService resolves a contract's contractURI and fetches the
// document it points at. The document is returned unvalidated.
type ContractMetadataService struct {
	tokens TokenReader
	files  FileFetcher
}

func NewContractMetadataService(tokens TokenReader, files FileFetcher) *ContractMetadataService {
	return &ContractMetadataService{tokens: tokens, files: files}
}

// GetContractMetadata returns nil, nil when the contract has no contractURI.
// Documents that are not JSON objects are returned as nil so the credential
// guard rejects them.
func (s *ContractMetadataService) GetContractMetadata(ctx context.Context, chain models.Chain, contractAddress string) (map[string]any, error) {
	uri, ok, err := s.tokens.GetContractURI(ctx, chain, contractAddress)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	raw, err := s.files.GetFile(ctx, uri)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode contract metadata: %w", err)
	}
	metadata, _ := doc.(map[string]any)
	return metadata, nil
}
