package verification

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"vcpipe/internal/credential/models"
	dErrors "vcpipe/pkg/domain-errors"
)

const eip712DomainType = "EIP712Domain"

// SignatureVerifier checks EIP-712 credential proofs against the issuer DID.
// It performs no I/O.
type SignatureVerifier struct{}

func NewSignatureVerifier() *SignatureVerifier {
	return &SignatureVerifier{}
}

// Verify reports whether the credential proof was produced by the address in
// the issuer DID. Malformed proofs and issuers are errors, a proof signed by
// anyone else is false.
func (v *SignatureVerifier) Verify(vc *models.VerifiableCredential) (bool, error) {
	did, err := models.ParseDID(vc.Issuer.ID)
	if err != nil {
		return false, err
	}
	if !validAddress(did.Address) {
		return false, dErrors.New(dErrors.CodeValidation, "malformed issuer address")
	}
	if vc.Proof == nil {
		return false, dErrors.New(dErrors.CodeValidation, "No proof associated with credential")
	}
	issuer := common.HexToAddress(did.Address)

	message, err := vc.UnsignedDocument()
	if err != nil {
		return false, err
	}
	typedData, err := buildTypedData(vc.Proof.EIP712, message)
	if err != nil {
		return false, err
	}
	hash, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeValidation, "invalid typed data in proof")
	}

	sig, err := hexutil.Decode(vc.Proof.ProofValue)
	if err != nil || len(sig) != crypto.SignatureLength {
		return false, dErrors.New(dErrors.CodeValidation, "malformed proof value")
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}
	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		// a signature that recovers to no key cannot belong to the issuer
		return false, nil
	}
	return crypto.PubkeyToAddress(*pub) == issuer, nil
}

// validAddress accepts single-case hex as-is and requires mixed-case hex to
// carry a correct EIP-55 checksum.
func validAddress(a string) bool {
	if !common.IsHexAddress(a) {
		return false
	}
	digits := a
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	if digits == strings.ToLower(digits) || digits == strings.ToUpper(digits) {
		return true
	}
	return common.HexToAddress(a).Hex() == a
}

func buildTypedData(proof models.EIP712, message map[string]any) (apitypes.TypedData, error) {
	domain, domainFields, err := buildDomain(proof.Domain)
	if err != nil {
		return apitypes.TypedData{}, err
	}

	types := apitypes.Types{eip712DomainType: domainFields}
	for name, fields := range proof.Types {
		if name == eip712DomainType {
			continue
		}
		converted := make([]apitypes.Type, 0, len(fields))
		for _, f := range fields {
			converted = append(converted, apitypes.Type{Name: f.Name, Type: f.Type})
		}
		types[name] = converted
	}
	if _, ok := types[proof.PrimaryType]; !ok || proof.PrimaryType == eip712DomainType {
		return apitypes.TypedData{}, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("primary type %q is not declared in proof types", proof.PrimaryType))
	}

	projected, _ := project(types, proof.PrimaryType, message).(map[string]any)
	return apitypes.TypedData{
		Types:       types,
		PrimaryType: proof.PrimaryType,
		Domain:      domain,
		Message:     projected,
	}, nil
}

// buildDomain derives the EIP712Domain type from the domain fields that are
// set, in canonical order.
func buildDomain(d models.EIP712Domain) (apitypes.TypedDataDomain, []apitypes.Type, error) {
	var (
		domain apitypes.TypedDataDomain
		fields []apitypes.Type
	)
	if d.Name != "" {
		domain.Name = d.Name
		fields = append(fields, apitypes.Type{Name: "name", Type: "string"})
	}
	if d.Version != "" {
		domain.Version = d.Version
		fields = append(fields, apitypes.Type{Name: "version", Type: "string"})
	}
	if d.ChainID != "" {
		id, ok := parseChainID(d.ChainID.String())
		if !ok {
			return domain, nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid domain chainId %q", d.ChainID))
		}
		domain.ChainId = (*math.HexOrDecimal256)(id)
		fields = append(fields, apitypes.Type{Name: "chainId", Type: "uint256"})
	}
	if d.VerifyingContract != "" {
		domain.VerifyingContract = d.VerifyingContract
		fields = append(fields, apitypes.Type{Name: "verifyingContract", Type: "address"})
	}
	if d.Salt != "" {
		domain.Salt = d.Salt
		fields = append(fields, apitypes.Type{Name: "salt", Type: "bytes32"})
	}
	return domain, fields, nil
}

func parseChainID(s string) (*big.Int, bool) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return new(big.Int).SetString(s[2:], 16)
	}
	return new(big.Int).SetString(s, 10)
}

// project keeps only the fields declared for typeName, recursing into
// struct-typed fields and arrays of them. Typed-data encoding rejects
// undeclared fields, while the issued document may carry extras.
func project(types apitypes.Types, typeName string, value any) any {
	if elem, ok := strings.CutSuffix(typeName, "[]"); ok {
		items, isSlice := value.([]any)
		if !isSlice {
			return value
		}
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = project(types, elem, item)
		}
		return out
	}
	fields, isStruct := types[typeName]
	if !isStruct {
		return value
	}
	obj, isObject := value.(map[string]any)
	if !isObject {
		return value
	}
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		if v, present := obj[f.Name]; present {
			out[f.Name] = project(types, f.Type, v)
		}
	}
	return out
}

// RecoverPersonalSigner returns the address that produced an EIP-191
// personal_sign signature over message.
func RecoverPersonalSigner(message, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil || len(sig) != crypto.SignatureLength {
		return common.Address{}, dErrors.New(dErrors.CodeValidation, "malformed signature")
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}
	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return common.Address{}, dErrors.Wrap(err, dErrors.CodeValidation, "malformed signature")
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// VerifyPersonalSignature reports whether address signed message. A holder
// proves control of its wallet this way before a credential is decrypted.
func VerifyPersonalSignature(address, message, signature string) (bool, error) {
	if !validAddress(address) {
		return false, dErrors.New(dErrors.CodeValidation, "malformed address")
	}
	signer, err := RecoverPersonalSigner(message, signature)
	if err != nil {
		return false, err
	}
	return signer == common.HexToAddress(address), nil
}
