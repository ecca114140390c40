package models

import (
	"strings"

	dErrors "vcpipe/pkg/domain-errors"
)

// DID is a did:<chain>:<address> issuer identifier.
type DID struct {
	Chain   Chain
	Address string
}

// ParseDID splits a DID on ':'. Fewer than two segments is a format error.
// The address is the third segment and may be empty for two-segment input;
// address validity is checked by the caller.
func ParseDID(s string) (DID, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return DID{}, dErrors.New(dErrors.CodeValidation, "Issuer DID should be in the format did:{chain}:{address}")
	}
	d := DID{Chain: Chain(parts[1])}
	if len(parts) > 2 {
		d.Address = parts[2]
	}
	return d, nil
}

func (d DID) String() string {
	return "did:" + string(d.Chain) + ":" + d.Address
}
