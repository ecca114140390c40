package models

import (
	"fmt"
	"slices"

	dErrors "vcpipe/pkg/domain-errors"
)

// Chain names an EVM chain in the locator/DID form, e.g. "polygon-amoy".
type Chain string

const (
	ChainPolygon     Chain = "polygon"
	ChainPolygonAmoy Chain = "polygon-amoy"
)

var vcChains = []Chain{ChainPolygon, ChainPolygonAmoy}

var chainIDs = map[Chain]int64{
	ChainPolygon:     137,
	ChainPolygonAmoy: 80002,
}

// VCChains returns the chains verifiable credentials can be anchored on.
func VCChains() []Chain {
	return slices.Clone(vcChains)
}

// IsVCChain reports whether credentials are supported on c.
func (c Chain) IsVCChain() bool {
	return slices.Contains(vcChains, c)
}

// ChainID returns the EVM chain id, or 0 when unknown.
func (c Chain) ChainID() int64 {
	return chainIDs[c]
}

func (c Chain) String() string {
	return string(c)
}

// RequireVCChain returns the unsupported-chain error for chains outside the allow-list.
func RequireVCChain(c Chain) error {
	if !c.IsVCChain() {
		return dErrors.New(dErrors.CodeUnsupported, fmt.Sprintf("Verifiable credentials are not supported on %s chain", c))
	}
	return nil
}
