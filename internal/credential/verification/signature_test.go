package verification

import (
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"vcpipe/internal/credential/models"
	dErrors "vcpipe/pkg/domain-errors"
)

const (
	signedProofValue   = "0x5b88ebef582fd631bca407e9b6454190a0346de45285add0ffe19a4f374acc6463f1f418c60bc76fb6168884a763fb4e28297f3f8a1c381debedf4e2deb293fe1c"
	tamperedProofValue = "0x5b88ebef582fa631bca407e9b6454190a0346de45285add0ffe19a4f374acc6463f1f418c60bc76fb6168884a763fb4e28297f3f8a1c381debedf4e2deb293fe1c"
)

const signedCredentialJSON = `{
	"id": "urn:uuid:84a101bf-ded2-442d-b766-4e599d35fe89",
	"credentialSubject": {
		"name": "s",
		"id": "did:polygon-amoy:0x1B887669437644aA348c518844660ef8d63bd643"
	},
	"nft": {
		"tokenId": "13",
		"chain": "polygon-amoy",
		"contractAddress": "0x2245D3fdFF160503897020A1165b796cEaC00B68"
	},
	"issuer": {"id": "did:polygon-amoy:0xd9d8BA9D5956f78E02F4506940f42ac2dAB9DABd"},
	"type": ["VerifiableCredential", "userName"],
	"validFrom": "2024-07-02T22:56:30.187Z",
	"@context": ["https://www.w3.org/2018/credentials/v1"],
	"proof": {
		"verificationMethod": "did:polygon-amoy:0xd9d8BA9D5956f78E02F4506940f42ac2dAB9DABd#evmAddress",
		"created": "2024-07-02T22:56:30.187Z",
		"proofPurpose": "assertionMethod",
		"type": "EthereumEip712Signature2021",
		"proofValue": "PROOF_VALUE",
		"eip712": {
			"domain": {
				"name": "Crossmint",
				"version": "0.1",
				"chainId": 4,
				"verifyingContract": "0xD8393a735e8b7B6E199db9A537cf27C61Aa74954"
			},
			"types": {
				"VerifiableCredential": [
					{"name": "@context", "type": "string[]"},
					{"name": "type", "type": "string[]"},
					{"name": "id", "type": "string"},
					{"name": "issuer", "type": "Issuer"},
					{"name": "credentialSubject", "type": "CredentialSubject"},
					{"name": "validFrom", "type": "string"},
					{"name": "nft", "type": "Nft"}
				],
				"CredentialSubject": [
					{"name": "id", "type": "string"},
					{"name": "name", "type": "string"}
				],
				"Issuer": [{"name": "id", "type": "string"}],
				"Nft": [
					{"name": "tokenId", "type": "string"},
					{"name": "contractAddress", "type": "string"},
					{"name": "chain", "type": "string"}
				]
			},
			"primaryType": "VerifiableCredential"
		}
	}
}`

func signedCredential(t *testing.T, proofValue string) *models.VerifiableCredential {
	t.Helper()
	cred, err := models.ParseCredential([]byte(strings.Replace(signedCredentialJSON, "PROOF_VALUE", proofValue, 1)))
	require.NoError(t, err)
	require.Equal(t, models.CredentialKindPlain, cred.Kind)
	return cred.Plain
}

type SignatureVerifierSuite struct {
	suite.Suite
	verifier *SignatureVerifier
}

func TestSignatureVerifierSuite(t *testing.T) {
	suite.Run(t, new(SignatureVerifierSuite))
}

func (s *SignatureVerifierSuite) SetupTest() {
	s.verifier = NewSignatureVerifier()
}

func (s *SignatureVerifierSuite) TestIssuerSignatureVerifies() {
	ok, err := s.verifier.Verify(signedCredential(s.T(), signedProofValue))
	s.NoError(err)
	s.True(ok)
}

func (s *SignatureVerifierSuite) TestTamperedSignatureFails() {
	ok, err := s.verifier.Verify(signedCredential(s.T(), tamperedProofValue))
	s.NoError(err)
	s.False(ok)
}

func (s *SignatureVerifierSuite) TestTamperedClaimFails() {
	vc := signedCredential(s.T(), signedProofValue)
	doc, err := vc.Document()
	s.Require().NoError(err)
	doc["credentialSubject"].(map[string]any)["name"] = "mallory"
	raw, err := json.Marshal(doc)
	s.Require().NoError(err)
	cred, err := models.ParseCredential(raw)
	s.Require().NoError(err)

	ok, err := s.verifier.Verify(cred.Plain)
	s.NoError(err)
	s.False(ok)
}

func (s *SignatureVerifierSuite) TestUndeclaredFieldsAreIgnored() {
	vc := signedCredential(s.T(), signedProofValue)
	doc, err := vc.Document()
	s.Require().NoError(err)
	doc["name"] = "display name"
	raw, err := json.Marshal(doc)
	s.Require().NoError(err)
	cred, err := models.ParseCredential(raw)
	s.Require().NoError(err)

	ok, err := s.verifier.Verify(cred.Plain)
	s.NoError(err)
	s.True(ok)
}

func (s *SignatureVerifierSuite) TestMissingProof() {
	_, err := s.verifier.Verify(&models.VerifiableCredential{Issuer: models.Issuer{ID: "did:polygon-amoy:0xd9d8BA9D5956f78E02F4506940f42ac2dAB9DABd"}})
	s.EqualError(err, "No proof associated with credential")
}

func (s *SignatureVerifierSuite) TestInvalidIssuerDID() {
	_, err := s.verifier.Verify(&models.VerifiableCredential{Issuer: models.Issuer{ID: "invalidDID"}, Proof: &models.Proof{}})
	s.EqualError(err, "Issuer DID should be in the format did:{chain}:{address}")
}

func (s *SignatureVerifierSuite) TestIssuerDIDCheckedBeforeProof() {
	_, err := s.verifier.Verify(&models.VerifiableCredential{Issuer: models.Issuer{ID: "invalidDID"}})
	s.EqualError(err, "Issuer DID should be in the format did:{chain}:{address}")
}

func (s *SignatureVerifierSuite) TestMalformedIssuerAddress() {
	tests := []struct {
		name   string
		issuer string
	}{
		{name: "too short", issuer: "did:polygon:0x123"},
		{name: "not hex", issuer: "did:chain:address"},
		{name: "bad checksum", issuer: "did:polygon-amoy:0xD9d8BA9D5956f78E02F4506940f42ac2dAB9DABd"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.verifier.Verify(&models.VerifiableCredential{Issuer: models.Issuer{ID: tt.issuer}, Proof: &models.Proof{}})
			s.EqualError(err, "malformed issuer address")
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}

func TestValidAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{name: "checksummed", address: "0xd9d8BA9D5956f78E02F4506940f42ac2dAB9DABd", want: true},
		{name: "lowercase", address: "0xd9d8ba9d5956f78e02f4506940f42ac2dab9dabd", want: true},
		{name: "uppercase", address: "0xD9D8BA9D5956F78E02F4506940F42AC2DAB9DABD", want: true},
		{name: "bad checksum", address: "0xD9d8BA9D5956f78E02F4506940f42ac2dAB9DABd", want: false},
		{name: "short", address: "0xd9d8", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validAddress(tt.address))
		})
	}
}

func (s *SignatureVerifierSuite) TestMalformedProofValue() {
	_, err := s.verifier.Verify(signedCredential(s.T(), "0x1234"))
	s.EqualError(err, "malformed proof value")
}

func TestBuildDomainOrder(t *testing.T) {
	domain, fields, err := buildDomain(models.EIP712Domain{
		Name:              "Crossmint",
		ChainID:           json.Number("0x89"),
		VerifyingContract: "0xD8393a735e8b7B6E199db9A537cf27C61Aa74954",
	})
	require.NoError(t, err)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"name", "chainId", "verifyingContract"}, names)
	assert.Equal(t, int64(137), (*big.Int)(domain.ChainId).Int64())

	_, _, err = buildDomain(models.EIP712Domain{ChainID: json.Number("four")})
	assert.Error(t, err)
}

func TestProject(t *testing.T) {
	vc := signedCredential(t, signedProofValue)
	doc, err := vc.UnsignedDocument()
	require.NoError(t, err)
	doc["nft"].(map[string]any)["metadata"] = map[string]any{"image": "ipfs://x"}

	td, err := buildTypedData(vc.Proof.EIP712, doc)
	require.NoError(t, err)
	assert.NotContains(t, td.Message["nft"], "metadata")
	assert.Contains(t, td.Types, eip712DomainType)
}

func TestVerifyPersonalSignature(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	address := crypto.PubkeyToAddress(key.PublicKey)

	sig, err := crypto.Sign(accounts.TextHash([]byte("nonce-123")), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27
	signature := hexutil.Encode(sig)

	ok, err := VerifyPersonalSignature(address.Hex(), "nonce-123", signature)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPersonalSignature(address.Hex(), "nonce-456", signature)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = VerifyPersonalSignature("0xnope", "nonce-123", signature)
	assert.EqualError(t, err, "malformed address")

	ok, err = VerifyPersonalSignature(strings.ToLower(address.Hex()), "nonce-123", signature)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = VerifyPersonalSignature("0xD9d8BA9D5956f78E02F4506940f42ac2dAB9DABd", "nonce-123", signature)
	assert.EqualError(t, err, "malformed address")

	_, err = VerifyPersonalSignature(address.Hex(), "nonce-123", "0x00")
	assert.EqualError(t, err, "malformed signature")
}

