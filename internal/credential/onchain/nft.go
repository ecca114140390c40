// Package onchain issues read-only contract calls for credential NFTs.
package onchain

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ModChain/ethrpc"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"vcpipe/internal/credential/metrics"
	"vcpipe/internal/credential/models"
	dErrors "vcpipe/pkg/domain-errors"
)

// burntRevertMarkers are revert reasons some ERC-721 implementations emit
// for tokens that no longer exist instead of returning the zero address.
var burntRevertMarkers = []string{
	"invalid token ID",
	"nonexistent token",
	"ERC721NonexistentToken",
}

var errEmptyResult = errors.New("empty call result")

// NFTService reads token and contract state through per-chain RPC providers.
type NFTService struct {
	providers Providers
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// Option configures an NFTService.
type Option func(*NFTService)

func WithLogger(logger *slog.Logger) Option {
	return func(s *NFTService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *NFTService) {
		s.metrics = m
	}
}

// NewNFTService requires at least one provider.
func NewNFTService(providers Providers, opts ...Option) (*NFTService, error) {
	if len(providers) == 0 {
		return nil, fmt.Errorf("rpc providers are required")
	}
	s := &NFTService{
		providers: providers,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// IsBurnt reports whether the credential NFT has been burnt. A zero-address
// owner and a nonexistent-token revert both count as burnt; any other failure
// is returned as an error and never treated as burnt.
func (s *NFTService) IsBurnt(ctx context.Context, nft models.NFT) (bool, error) {
	if err := models.RequireVCChain(nft.Chain); err != nil {
		return false, err
	}
	owner, err := s.OwnerOf(ctx, nft)
	if err != nil {
		if isBurntRevert(err) {
			s.logger.DebugContext(ctx, "ownerOf reverted for burnt token",
				"chain", nft.Chain,
				"contract", nft.ContractAddress,
				"token_id", nft.TokenID,
			)
			return true, nil
		}
		return false, dErrors.Wrap(err, dErrors.CodeUnavailable, "Failed to check if NFT is burned")
	}
	return owner == (common.Address{}), nil
}

// OwnerOf returns the current owner of the token.
func (s *NFTService) OwnerOf(ctx context.Context, nft models.NFT) (common.Address, error) {
	tokenID, err := parseTokenID(nft.TokenID)
	if err != nil {
		return common.Address{}, dErrors.Wrap(err, dErrors.CodeValidation, "Invalid NFT")
	}
	out, err := s.call(ctx, nft.Chain, nft.ContractAddress, methodOwnerOf, tokenID)
	if err != nil {
		return common.Address{}, err
	}
	owner, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("ownerOf: unexpected result type %T", out[0])
	}
	return owner, nil
}

// GetNftURI returns the token metadata URI. Contracts that revert on tokenURI
// are retried through the ERC-1155 uri function with the {id} template expanded.
func (s *NFTService) GetNftURI(ctx context.Context, nft models.NFT) (string, error) {
	tokenID, err := parseTokenID(nft.TokenID)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeValidation, "Invalid NFT")
	}
	uri, err := s.callString(ctx, nft.Chain, nft.ContractAddress, methodTokenURI, tokenID)
	if err == nil {
		return uri, nil
	}
	if !isRevert(err) {
		return "", fmt.Errorf("get token uri: %w", err)
	}

	uri, err = s.callString(ctx, nft.Chain, nft.ContractAddress, methodURI, tokenID)
	if err != nil {
		return "", fmt.Errorf("get token uri: %w", err)
	}
	return strings.ReplaceAll(uri, "{id}", fmt.Sprintf("%064x", tokenID)), nil
}

// GetContractURI returns the collection metadata URI. The second return value
// is false when the contract does not expose contractURI or returns an empty value.
func (s *NFTService) GetContractURI(ctx context.Context, chain models.Chain, contractAddress string) (string, bool, error) {
	uri, err := s.callString(ctx, chain, contractAddress, methodContractURI)
	switch {
	case err == nil:
		return uri, uri != "", nil
	case errors.Is(err, errEmptyResult), isRevert(err):
		return "", false, nil
	default:
		return "", false, fmt.Errorf("get contract uri: %w", err)
	}
}

func (s *NFTService) callString(ctx context.Context, chain models.Chain, to, method string, args ...any) (string, error) {
	out, err := s.call(ctx, chain, to, method, args...)
	if err != nil {
		return "", err
	}
	str, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("%s: unexpected result type %T", method, out[0])
	}
	return str, nil
}

func (s *NFTService) call(ctx context.Context, chain models.Chain, to, method string, args ...any) ([]any, error) {
	caller, err := s.providers.Get(chain)
	if err != nil {
		return nil, err
	}
	if !common.IsHexAddress(to) {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid contract address %q", to))
	}

	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	param := map[string]string{
		"to":   to,
		"data": "0x" + hex.EncodeToString(data),
	}

	result, err := ethrpc.ReadString(caller.DoCtx(ctx, "eth_call", param, "latest"))
	if err != nil {
		s.metrics.RecordRPCCall(chain.String(), method, metrics.OutcomeFailure)
		return nil, fmt.Errorf("eth_call %s: %w", method, err)
	}
	s.metrics.RecordRPCCall(chain.String(), method, metrics.OutcomeSuccess)

	raw, err := hexutil.Decode(result)
	if err != nil {
		return nil, fmt.Errorf("decode %s result: %w", method, err)
	}
	if len(raw) == 0 {
		return nil, errEmptyResult
	}
	out, err := contractABI.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, errEmptyResult
	}
	return out, nil
}

func isBurntRevert(err error) bool {
	msg := err.Error()
	for _, marker := range burntRevertMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func isRevert(err error) bool {
	return strings.Contains(err.Error(), "execution reverted")
}
