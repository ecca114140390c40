package onchain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ModChain/ethrpc"

	"vcpipe/internal/credential/models"
	dErrors "vcpipe/pkg/domain-errors"
)

// Caller issues a JSON-RPC request. *ethrpc.RPC satisfies it.
type Caller interface {
	DoCtx(ctx context.Context, method string, args ...any) (json.RawMessage, error)
}

// DefaultRPCURLs are public endpoints used when no URL is configured for a chain.
var DefaultRPCURLs = map[models.Chain]string{
	models.ChainPolygon:     "https://polygon-rpc.com",
	models.ChainPolygonAmoy: "https://rpc-amoy.polygon.technology",
}

// Providers resolves the RPC caller for a chain.
type Providers map[models.Chain]Caller

// NewProviders builds an ethrpc handler per configured chain, falling back
// to DefaultRPCURLs for credential chains without an explicit URL.
func NewProviders(urls map[models.Chain]string) Providers {
	p := make(Providers, len(DefaultRPCURLs))
	for chain, url := range DefaultRPCURLs {
		p[chain] = ethrpc.New(url)
	}
	for chain, url := range urls {
		if url != "" {
			p[chain] = ethrpc.New(url)
		}
	}
	return p
}

// Get returns the caller for chain. Chains outside the credential allow-list
// are rejected before the lookup.
func (p Providers) Get(chain models.Chain) (Caller, error) {
	if err := models.RequireVCChain(chain); err != nil {
		return nil, err
	}
	caller, ok := p[chain]
	if !ok || caller == nil {
		return nil, dErrors.New(dErrors.CodeInternal, fmt.Sprintf("no RPC provider configured for %s", chain))
	}
	return caller, nil
}
