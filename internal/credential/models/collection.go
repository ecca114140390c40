package models

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Collection groups NFTs sharing a contract. Metadata is the raw contract
// metadata document and carries no shape guarantees.
type Collection struct {
	ContractAddress string         `json:"contractAddress"`
	Chain           Chain          `json:"chain"`
	NFTs            []NFT          `json:"nfts"`
	Metadata        map[string]any `json:"metadata"`
}

// CredentialsCollection is a Collection whose metadata passed
// IsVerifiableCredentialContractMetadata. Build it with PromoteCollection.
type CredentialsCollection struct {
	ContractAddress string           `json:"contractAddress"`
	Chain           Chain            `json:"chain"`
	NFTs            []NFT            `json:"nfts"`
	Metadata        ContractMetadata `json:"metadata"`
}

// HasCredentialMetadata re-checks the guard on an already promoted collection.
// Like the guard it only requires the fields to be present, so an empty
// endpoint is left for retrieval to reject.
func (c CredentialsCollection) HasCredentialMetadata() bool {
	return c.Metadata.CredentialMetadata.Type != nil
}

// ContractMetadata is the collection-level document resolved from contractURI.
type ContractMetadata struct {
	Name               string             `json:"name,omitempty"`
	Description        string             `json:"description,omitempty"`
	Image              string             `json:"image,omitempty"`
	CredentialMetadata CredentialMetadata `json:"credentialMetadata"`
}

// CredentialMetadata describes how credentials of a collection are issued,
// encrypted and retrieved.
type CredentialMetadata struct {
	Type                []string   `json:"type"`
	Encryption          Encryption `json:"encryption"`
	CredentialsEndpoint string     `json:"credentialsEndpoint"`
	IssuerDID           string     `json:"issuerDid"`
}

type EncryptionType string

const (
	EncryptionNone                 EncryptionType = "none"
	EncryptionDecentralizedLit     EncryptionType = "decentralized-lit"
	EncryptionCrossmintRecoverable EncryptionType = "crossmint-recoverable"
)

// Lit networks a decentralized-lit collection may reference in its details.
const (
	LitNetworkHabanero = "habanero"
	LitNetworkManzano  = "manzano"
	LitNetworkCayenne  = "cayenne"
)

type Encryption struct {
	Type    EncryptionType     `json:"type"`
	Details *EncryptionDetails `json:"details,omitempty"`
}

type EncryptionDetails struct {
	Network string `json:"network"`
}

// CredentialFilter narrows collections by issuer DID and credential type.
// A nil slice disables the corresponding filter; an empty one matches nothing.
type CredentialFilter struct {
	Issuers []string `json:"issuers,omitempty"`
	Types   []string `json:"types,omitempty"`
}

// Matches applies the issuer membership test and the type intersection test.
func (f CredentialFilter) Matches(c CredentialsCollection) bool {
	meta := c.Metadata.CredentialMetadata
	if f.Issuers != nil && !slices.Contains(f.Issuers, meta.IssuerDID) {
		return false
	}
	if f.Types != nil && !slices.ContainsFunc(meta.Type, func(t string) bool {
		return slices.Contains(f.Types, t)
	}) {
		return false
	}
	return true
}

// IsVerifiableCredentialContractMetadata reports whether a raw contract
// metadata document carries credentialMetadata with type (an array),
// issuerDid and credentialsEndpoint.
func IsVerifiableCredentialContractMetadata(metadata map[string]any) bool {
	if metadata == nil {
		return false
	}
	cm, ok := metadata["credentialMetadata"].(map[string]any)
	if !ok || cm == nil {
		return false
	}
	if cm["type"] == nil || cm["issuerDid"] == nil || cm["credentialsEndpoint"] == nil {
		return false
	}
	_, isArray := cm["type"].([]any)
	return isArray
}

// PromoteCollection converts c into a CredentialsCollection using the raw
// metadata document. It returns false when the document is not credential metadata.
func PromoteCollection(c Collection, metadata map[string]any) (CredentialsCollection, bool) {
	meta, err := DecodeContractMetadata(metadata)
	if err != nil {
		return CredentialsCollection{}, false
	}
	return CredentialsCollection{
		ContractAddress: c.ContractAddress,
		Chain:           c.Chain,
		NFTs:            c.NFTs,
		Metadata:        meta,
	}, true
}

// DecodeContractMetadata runs the credential metadata guard and decodes the document.
func DecodeContractMetadata(metadata map[string]any) (ContractMetadata, error) {
	if !IsVerifiableCredentialContractMetadata(metadata) {
		return ContractMetadata{}, fmt.Errorf("not verifiable credential contract metadata")
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return ContractMetadata{}, fmt.Errorf("encode contract metadata: %w", err)
	}
	var meta ContractMetadata
	if err := json.Unmarshal(b, &meta); err != nil {
		return ContractMetadata{}, fmt.Errorf("decode contract metadata: %w", err)
	}
	return meta, nil
}
