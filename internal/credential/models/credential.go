package models

import (
	"encoding/json"
	"fmt"
	"maps"

	dErrors "vcpipe/pkg/domain-errors"
)

// MessageMalformedCredential is returned for payloads matching neither credential shape.
const MessageMalformedCredential = "The credential is malformed"

// VerifiableCredential is a W3C credential anchored to an NFT and signed with
// an EIP-712 proof. ValidUntil and ExpirationDate are left untyped so that the
// expiration gate can reject non-string values instead of failing at decode time.
type VerifiableCredential struct {
	Context           []string       `json:"@context"`
	ID                string         `json:"id"`
	Type              []string       `json:"type"`
	Issuer            Issuer         `json:"issuer"`
	CredentialSubject map[string]any `json:"credentialSubject"`
	Name              string         `json:"name,omitempty"`
	Description       string         `json:"description,omitempty"`
	ValidFrom         string         `json:"validFrom,omitempty"`
	ValidUntil        any            `json:"validUntil,omitempty"`
	ExpirationDate    any            `json:"expirationDate,omitempty"`
	NFT               NFT            `json:"nft"`
	Proof             *Proof         `json:"proof,omitempty"`

	// raw keeps the document as issued, including fields this struct does not model.
	raw json.RawMessage
}

type Issuer struct {
	ID string `json:"id"`
}

type Proof struct {
	Type               string `json:"type"`
	Created            string `json:"created,omitempty"`
	ProofPurpose       string `json:"proofPurpose,omitempty"`
	VerificationMethod string `json:"verificationMethod,omitempty"`
	ProofValue         string `json:"proofValue"`
	EIP712             EIP712 `json:"eip712"`
}

// EIP712 carries the typed-data envelope the issuer signed.
type EIP712 struct {
	Domain      EIP712Domain             `json:"domain"`
	Types       map[string][]EIP712Field `json:"types"`
	PrimaryType string                   `json:"primaryType"`
}

type EIP712Domain struct {
	Name              string      `json:"name,omitempty"`
	Version           string      `json:"version,omitempty"`
	ChainID           json.Number `json:"chainId,omitempty"`
	VerifyingContract string      `json:"verifyingContract,omitempty"`
	Salt              string      `json:"salt,omitempty"`
}

type EIP712Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// UnmarshalJSON decodes the credential and retains the issued document.
func (vc *VerifiableCredential) UnmarshalJSON(data []byte) error {
	type alias VerifiableCredential
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*vc = VerifiableCredential(a)
	vc.raw = append(json.RawMessage(nil), data...)
	return nil
}

// Document returns the credential as a generic JSON object. Parsed
// credentials return the issued document; constructed ones are re-encoded.
func (vc *VerifiableCredential) Document() (map[string]any, error) {
	data := vc.raw
	if len(data) == 0 {
		type alias VerifiableCredential
		b, err := json.Marshal((*alias)(vc))
		if err != nil {
			return nil, fmt.Errorf("encode credential: %w", err)
		}
		data = b
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode credential document: %w", err)
	}
	return doc, nil
}

// UnsignedDocument is Document without the proof, i.e. the signed message.
func (vc *VerifiableCredential) UnsignedDocument() (map[string]any, error) {
	doc, err := vc.Document()
	if err != nil {
		return nil, err
	}
	out := maps.Clone(doc)
	delete(out, "proof")
	return out, nil
}

// EncryptedVerifiableCredential wraps an opaque ciphertext.
type EncryptedVerifiableCredential struct {
	ID      string `json:"id"`
	Payload string `json:"payload"`
}

type CredentialKind string

const (
	CredentialKindPlain     CredentialKind = "plain"
	CredentialKindEncrypted CredentialKind = "encrypted"
)

// Credential holds exactly one of a plain or an encrypted credential, as
// indicated by Kind.
type Credential struct {
	Kind      CredentialKind                 `json:"kind"`
	Plain     *VerifiableCredential          `json:"credential,omitempty"`
	Encrypted *EncryptedVerifiableCredential `json:"encryptedCredential,omitempty"`
}

// NewPlainCredential wraps vc.
func NewPlainCredential(vc *VerifiableCredential) *Credential {
	return &Credential{Kind: CredentialKindPlain, Plain: vc}
}

// NewEncryptedCredential wraps ec.
func NewEncryptedCredential(ec *EncryptedVerifiableCredential) *Credential {
	return &Credential{Kind: CredentialKindEncrypted, Encrypted: ec}
}

// ID returns the credential id regardless of kind.
func (c *Credential) ID() string {
	switch c.Kind {
	case CredentialKindPlain:
		return c.Plain.ID
	case CredentialKindEncrypted:
		return c.Encrypted.ID
	}
	return ""
}

var requiredCredentialFields = []string{
	"id",
	"credentialSubject",
	"nft",
	"issuer",
	"type",
	"validFrom",
	"@context",
	"proof",
}

var requiredNFTFields = []string{"tokenId", "chain", "contractAddress"}

// ParseCredential classifies a raw payload as an encrypted or plain
// credential. Payloads with a string id, a payload field and no
// credentialSubject are encrypted; anything else must satisfy the full
// verifiable credential shape.
func ParseCredential(data []byte) (*Credential, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		return nil, dErrors.New(dErrors.CodeValidation, MessageMalformedCredential)
	}
	if _, ok := doc["id"].(string); !ok {
		return nil, dErrors.New(dErrors.CodeValidation, MessageMalformedCredential)
	}

	if isEncryptedDocument(doc) {
		var ec EncryptedVerifiableCredential
		if err := json.Unmarshal(data, &ec); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, MessageMalformedCredential)
		}
		return NewEncryptedCredential(&ec), nil
	}

	if !IsVerifiableCredentialDocument(doc) {
		return nil, dErrors.New(dErrors.CodeValidation, MessageMalformedCredential)
	}
	var vc VerifiableCredential
	if err := json.Unmarshal(data, &vc); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, MessageMalformedCredential)
	}
	return NewPlainCredential(&vc), nil
}

func isEncryptedDocument(doc map[string]any) bool {
	_, hasSubject := doc["credentialSubject"]
	payload, hasPayload := doc["payload"]
	return hasPayload && payload != nil && !hasSubject
}

// IsVerifiableCredentialDocument checks the required credential fields and
// the anchoring NFT fields are present and non-empty.
func IsVerifiableCredentialDocument(doc map[string]any) bool {
	for _, field := range requiredCredentialFields {
		if !present(doc[field]) {
			return false
		}
	}
	nft, ok := doc["nft"].(map[string]any)
	if !ok {
		return false
	}
	for _, field := range requiredNFTFields {
		if !present(nft[field]) {
			return false
		}
	}
	return true
}

func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}
