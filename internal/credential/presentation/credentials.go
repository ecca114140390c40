package presentation

import (
	"context"
	"fmt"

	"vcpipe/internal/credential/crossmint"
	"vcpipe/internal/credential/models"
	dErrors "vcpipe/pkg/domain-errors"
)

// CredentialService fetches credentials by id, by locator, and decrypts
// Crossmint-recoverable credentials.
type CredentialService struct {
	api       CredentialAPI
	locators  *LocatorService
	retrieval *RetrievalService
}

func NewCredentialService(api CredentialAPI, locators *LocatorService, retrieval *RetrievalService) *CredentialService {
	return &CredentialService{api: api, locators: locators, retrieval: retrieval}
}

// GetByID looks the credential up in Crossmint.
func (s *CredentialService) GetByID(ctx context.Context, credentialID string) (*models.Credential, error) {
	if credentialID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "credential id is required")
	}
	raw, err := s.api.GetCredential(ctx, credentialID)
	if err != nil {
		return nil, dErrors.Wrap(err, crossmint.DomainCode(err), fmt.Sprintf("Failed to get credential %s from crossmint", credentialID))
	}
	return models.ParseCredential(raw)
}

// GetByLocator resolves the NFT at locator and retrieves its credential
// through the procedure serving its collection.
func (s *CredentialService) GetByLocator(ctx context.Context, locator string) (*models.Credential, error) {
	nft, err := s.locators.GetCredentialNFTFromLocator(ctx, locator)
	if err != nil {
		return nil, err
	}
	return s.retrieval.GetCredential(ctx, nft.Collection, nft.NFT.TokenID)
}

// RequestDecryptionChallenge returns the nonce the holder wallet must sign.
func (s *CredentialService) RequestDecryptionChallenge(ctx context.Context, address string) (string, error) {
	if address == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, "address is required")
	}
	nonce, err := s.api.RequestDecryptionChallenge(ctx, address)
	if err != nil {
		return "", dErrors.Wrap(err, crossmint.DomainCode(err), "Failed to get challenge from Crossmint")
	}
	return nonce, nil
}

// Decrypt exchanges the signed challenge for the plain credential.
func (s *CredentialService) Decrypt(ctx context.Context, req crossmint.DecryptRequest) (*models.Credential, error) {
	if req.EncryptedCredential == nil || req.Address == "" || req.Nonce == "" || req.Signature == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "address, encryptedCredential, nonce and signature are required")
	}
	raw, err := s.api.Decrypt(ctx, req)
	if err != nil {
		return nil, dErrors.Wrap(err, crossmint.DomainCode(err), "Failed to decrypt credential")
	}
	return models.ParseCredential(raw)
}
