package verification

import (
	"context"

	"vcpipe/internal/credential/models"
)

// SignatureChecker validates the cryptographic proof of a credential.
type SignatureChecker interface {
	Verify(vc *models.VerifiableCredential) (bool, error)
}

// BurnChecker reports whether the NFT anchoring a credential was burnt.
type BurnChecker interface {
	IsBurnt(ctx context.Context, nft models.NFT) (bool, error)
}

// RecordSaver persists verification outcomes.
type RecordSaver interface {
	Save(ctx context.Context, record models.VerificationRecord) error
}

// EventPublisher announces verification outcomes to downstream consumers.
type EventPublisher interface {
	PublishVerification(ctx context.Context, record models.VerificationRecord) error
}
