package onchain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// nftABI covers the read-only calls the pipeline makes: ERC-721 ownerOf and
// tokenURI, ERC-1155 uri and the ERC-7572 contractURI extension.
const nftABI = `[
	{"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"tokenURI","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"uri","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"contractURI","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]}
]`

const (
	methodOwnerOf     = "ownerOf"
	methodTokenURI    = "tokenURI"
	methodURI         = "uri"
	methodContractURI = "contractURI"
)

var contractABI = mustParseABI(nftABI)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(fmt.Sprintf("parse nft abi: %v", err))
	}
	return parsed
}

// parseTokenID accepts decimal ids and 0x-prefixed hex ids.
func parseTokenID(tokenID string) (*big.Int, error) {
	base := 10
	digits := tokenID
	if strings.HasPrefix(tokenID, "0x") || strings.HasPrefix(tokenID, "0X") {
		base = 16
		digits = tokenID[2:]
	}
	id, ok := new(big.Int).SetString(digits, base)
	if !ok || id.Sign() < 0 {
		return nil, fmt.Errorf("invalid token id %q", tokenID)
	}
	return id, nil
}
