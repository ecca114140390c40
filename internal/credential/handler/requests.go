package handler

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"vcpipe/internal/credential/crossmint"
	"vcpipe/internal/credential/models"
	dErrors "vcpipe/pkg/domain-errors"
)

const (
	maxBatchSize    = 100
	maxHistoryLimit = 100
)

// VerifyBatchRequest carries raw credential documents so each one keeps its
// exact bytes for proof hashing.
type VerifyBatchRequest struct {
	Credentials []json.RawMessage `json:"credentials"`
}

func (r *VerifyBatchRequest) Validate() error {
	if len(r.Credentials) == 0 {
		return dErrors.New(dErrors.CodeValidation, "credentials is required")
	}
	if len(r.Credentials) > maxBatchSize {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("at most %d credentials per batch", maxBatchSize))
	}
	return nil
}

type ChallengeRequest struct {
	Address string `json:"address"`
}

func (r *ChallengeRequest) Normalize() {
	r.Address = strings.TrimSpace(r.Address)
}

func (r *ChallengeRequest) Validate() error {
	return validateAddress(r.Address)
}

type DecryptRequest struct {
	Address             string                                `json:"address"`
	EncryptedCredential *models.EncryptedVerifiableCredential `json:"encryptedCredential"`
	Nonce               string                                `json:"nonce"`
	Signature           string                                `json:"signature"`
}

func (r *DecryptRequest) Normalize() {
	r.Address = strings.TrimSpace(r.Address)
	r.Signature = strings.TrimSpace(r.Signature)
}

func (r *DecryptRequest) Validate() error {
	if err := validateAddress(r.Address); err != nil {
		return err
	}
	if r.EncryptedCredential == nil || r.EncryptedCredential.ID == "" || r.EncryptedCredential.Payload == "" {
		return dErrors.New(dErrors.CodeValidation, "encryptedCredential with id and payload is required")
	}
	if r.Nonce == "" {
		return dErrors.New(dErrors.CodeValidation, "nonce is required")
	}
	if r.Signature == "" {
		return dErrors.New(dErrors.CodeValidation, "signature is required")
	}
	return nil
}

func (r *DecryptRequest) toDomain() crossmint.DecryptRequest {
	return crossmint.DecryptRequest{
		Address:             r.Address,
		EncryptedCredential: r.EncryptedCredential,
		Nonce:               r.Nonce,
		Signature:           r.Signature,
	}
}

// SignedLocatorRequest carries <locator>||<date>||<nonce>||<signature>.
type SignedLocatorRequest struct {
	SignedLocator string `json:"signedLocator"`
}

func (r *SignedLocatorRequest) Normalize() {
	r.SignedLocator = strings.TrimSpace(r.SignedLocator)
}

func (r *SignedLocatorRequest) Validate() error {
	if r.SignedLocator == "" {
		return dErrors.New(dErrors.CodeValidation, "signedLocator is required")
	}
	return nil
}

func validateAddress(address string) error {
	if address == "" {
		return dErrors.New(dErrors.CodeValidation, "address is required")
	}
	if !common.IsHexAddress(address) {
		return dErrors.New(dErrors.CodeValidation, "address must be a 0x-prefixed hex address")
	}
	return nil
}

// plainCredential parses a submitted document, rejecting encrypted ones.
func plainCredential(raw json.RawMessage) (*models.VerifiableCredential, error) {
	cred, err := models.ParseCredential(raw)
	if err != nil {
		return nil, err
	}
	if cred.Kind != models.CredentialKindPlain {
		return nil, dErrors.New(dErrors.CodeValidation, "Encrypted credentials must be decrypted before verification")
	}
	return cred.Plain, nil
}
