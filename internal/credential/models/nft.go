package models

import (
	"encoding/json"

	dErrors "vcpipe/pkg/domain-errors"
)

// NFT identifies one on-chain token. Metadata is filled lazily from tokenURI.
type NFT struct {
	Chain           Chain           `json:"chain"`
	ContractAddress string          `json:"contractAddress"`
	TokenID         string          `json:"tokenId"`
	Metadata        json.RawMessage `json:"metadata,omitempty"`
}

// Validate checks that the identifying fields are all present.
func (n NFT) Validate() error {
	if n.Chain == "" || n.ContractAddress == "" || n.TokenID == "" {
		return dErrors.New(dErrors.CodeValidation, "Invalid NFT")
	}
	return nil
}

// Locator returns the chain:contract:token locator for n.
func (n NFT) Locator() Locator {
	return Locator{Chain: n.Chain, ContractAddress: n.ContractAddress, TokenID: n.TokenID}
}
