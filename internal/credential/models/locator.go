package models

import (
	"fmt"
	"strings"

	dErrors "vcpipe/pkg/domain-errors"
)

const signedLocatorSeparator = "||"

// Locator identifies a token as <chain>:<contractAddress>:<tokenId>.
type Locator struct {
	Chain           Chain
	ContractAddress string
	TokenID         string
}

// ParseLocator splits a locator positionally. At least chain and contract
// must be present; the token id may be empty.
func ParseLocator(s string) (Locator, error) {
	items := strings.Split(s, ":")
	if len(items) < 2 {
		return Locator{}, dErrors.New(dErrors.CodeBadRequest, "Invalid locator format, expected <chain>:<contractAddress>:<tokenId>")
	}
	l := Locator{
		Chain:           Chain(items[0]),
		ContractAddress: items[1],
	}
	if len(items) > 2 {
		l.TokenID = items[2]
	}
	return l, nil
}

func (l Locator) String() string {
	return fmt.Sprintf("%s:%s:%s", l.Chain, l.ContractAddress, l.TokenID)
}

// NFT returns the token the locator points at, without metadata.
func (l Locator) NFT() NFT {
	return NFT{Chain: l.Chain, ContractAddress: l.ContractAddress, TokenID: l.TokenID}
}

// SignedLocator is a locator presented together with a holder signature over
// the locator, a date and a nonce: <locator>||<date>||<nonce>||<signature>.
type SignedLocator struct {
	Locator   Locator
	Date      string
	Nonce     string
	Signature string
}

// ParseSignedLocator requires exactly four ||-separated segments.
func ParseSignedLocator(s string) (SignedLocator, error) {
	parts := strings.Split(s, signedLocatorSeparator)
	if len(parts) != 4 {
		return SignedLocator{}, dErrors.New(dErrors.CodeBadRequest, "Invalid signed locator format, expected <locator>||<date>||<nonce>||<signature>")
	}
	locator, err := ParseLocator(parts[0])
	if err != nil {
		return SignedLocator{}, err
	}
	return SignedLocator{
		Locator:   locator,
		Date:      parts[1],
		Nonce:     parts[2],
		Signature: parts[3],
	}, nil
}

// Message returns the signed portion: locator, date and nonce.
func (s SignedLocator) Message() string {
	return strings.Join([]string{s.Locator.String(), s.Date, s.Nonce}, signedLocatorSeparator)
}

func (s SignedLocator) String() string {
	return s.Message() + signedLocatorSeparator + s.Signature
}
