package handler

import (
	"errors"

	"vcpipe/internal/credential/models"
	"vcpipe/internal/credential/presentation"
	"vcpipe/internal/credential/verification"
	dErrors "vcpipe/pkg/domain-errors"
)

type CollectionsResponse struct {
	Collections []models.CredentialsCollection `json:"collections"`
}

// CredentialResponse returns plain credentials as their original document so
// fields outside the typed model survive the round trip.
type CredentialResponse struct {
	Kind                models.CredentialKind                 `json:"kind"`
	Credential          map[string]any                        `json:"credential,omitempty"`
	EncryptedCredential *models.EncryptedVerifiableCredential `json:"encryptedCredential,omitempty"`
}

func FromCredential(cred *models.Credential) (*CredentialResponse, error) {
	resp := &CredentialResponse{Kind: cred.Kind, EncryptedCredential: cred.Encrypted}
	if cred.Plain != nil {
		doc, err := cred.Plain.Document()
		if err != nil {
			return nil, err
		}
		resp.Credential = doc
	}
	return resp, nil
}

// SignedLocatorResponse names the holder that signed a locator and the
// credential NFT it points at.
type SignedLocatorResponse struct {
	Signer string                      `json:"signer"`
	Date   string                      `json:"date"`
	Nonce  string                      `json:"nonce"`
	NFT    *presentation.CredentialNFT `json:"credentialNft"`
}

type BatchItem struct {
	CredentialID string `json:"credentialId"`
	ValidVC      bool   `json:"validVC"`
	Error        string `json:"error,omitempty"`
	// Failure is set when verification could not be carried out, e.g. an
	// unreachable RPC node. It carries the error code.
	Failure      string `json:"failure,omitempty"`
}

type BatchResponse struct {
	Results []BatchItem `json:"results"`
}

// FromBatchResults keeps input order.
func FromBatchResults(results []verification.BatchResult) BatchResponse {
	items := make([]BatchItem, len(results))
	for i, r := range results {
		item := BatchItem{CredentialID: r.CredentialID}
		switch {
		case r.Err != nil:
			item.Failure = failureCode(r.Err)
			item.Error = r.Err.Error()
		case r.Result != nil:
			item.ValidVC = r.Result.ValidVC
			item.Error = r.Result.Error
		}
		items[i] = item
	}
	return BatchResponse{Results: items}
}

func failureCode(err error) string {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		return string(domainErr.Code)
	}
	return string(dErrors.CodeInternal)
}

type HistoryResponse struct {
	CredentialID string                      `json:"credentialId"`
	Records      []models.VerificationRecord `json:"records"`
}

type ChallengeResponse struct {
	Nonce string `json:"nonce"`
}
