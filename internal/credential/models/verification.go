package models

import (
	"time"

	"github.com/google/uuid"
)

// Reasons reported for credentials that fail verification.
const (
	ReasonInvalidProof = "Invalid proof"
	ReasonRevoked      = "Credential has been revoked"
)

// VerificationResult is the outcome of a verification attempt that could be
// carried out. Error is empty when ValidVC is true.
type VerificationResult struct {
	ValidVC bool   `json:"validVC"`
	Error   string `json:"error,omitempty"`
}

// VerificationRecord is a stored verification outcome.
type VerificationRecord struct {
	ID           uuid.UUID `json:"id"`
	CredentialID string    `json:"credentialId"`
	Issuer       string    `json:"issuer"`
	Types        []string  `json:"types"`
	Locator      string    `json:"locator"`
	ValidVC      bool      `json:"validVC"`
	Reason       string    `json:"reason,omitempty"`
	VerifiedAt   time.Time `json:"verifiedAt"`
}

// NewVerificationRecord captures result for vc at the given time.
func NewVerificationRecord(vc *VerifiableCredential, result VerificationResult, at time.Time) VerificationRecord {
	return VerificationRecord{
		ID:           uuid.New(),
		CredentialID: vc.ID,
		Issuer:       vc.Issuer.ID,
		Types:        vc.Type,
		Locator:      vc.NFT.Locator().String(),
		ValidVC:      result.ValidVC,
		Reason:       result.Error,
		VerifiedAt:   at,
	}
}
