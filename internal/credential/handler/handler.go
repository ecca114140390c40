// Package handler exposes the credential presentation and verification
// services over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"vcpipe/internal/credential/crossmint"
	"vcpipe/internal/credential/models"
	"vcpipe/internal/credential/presentation"
	"vcpipe/internal/credential/verification"
	dErrors "vcpipe/pkg/domain-errors"
	"vcpipe/pkg/platform/httputil"
	pkgstrings "vcpipe/pkg/platform/strings"
	"vcpipe/pkg/platform/sentinel"
	"vcpipe/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks CollectionService,LocatorService,CredentialService,Verifier,RecordReader

// CollectionService lists a wallet's credential collections.
type CollectionService interface {
	GetCredentialNfts(ctx context.Context, chain models.Chain, wallet string, fetcher presentation.NFTFetcher, filters models.CredentialFilter) ([]models.CredentialsCollection, error)
}

// LocatorService resolves a locator to its NFT and collection.
type LocatorService interface {
	GetCredentialNFTFromLocator(ctx context.Context, locator string) (*presentation.CredentialNFT, error)
}

// CredentialService retrieves and decrypts credentials.
type CredentialService interface {
	GetByID(ctx context.Context, credentialID string) (*models.Credential, error)
	GetByLocator(ctx context.Context, locator string) (*models.Credential, error)
	RequestDecryptionChallenge(ctx context.Context, address string) (string, error)
	Decrypt(ctx context.Context, req crossmint.DecryptRequest) (*models.Credential, error)
}

// Verifier runs the verification gates.
type Verifier interface {
	VerifyCredential(ctx context.Context, vc *models.VerifiableCredential) (models.VerificationResult, error)
	VerifyBatch(ctx context.Context, vcs []*models.VerifiableCredential) ([]verification.BatchResult, error)
}

// RecordReader reads stored verification outcomes.
type RecordReader interface {
	Latest(ctx context.Context, credentialID string) (*models.VerificationRecord, error)
	History(ctx context.Context, credentialID string, limit int) ([]models.VerificationRecord, error)
}

// Services groups the handler dependencies. Records may be nil when no
// store is configured.
type Services struct {
	Collections CollectionService
	Fetcher     presentation.NFTFetcher
	Locators    LocatorService
	Credentials CredentialService
	Verifier    Verifier
	Records     RecordReader
}

type Handler struct {
	svc    Services
	logger *slog.Logger
}

func New(svc Services, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Register mounts credential endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/wallets/{chain}/{wallet}/collections", h.HandleListCollections)
	r.Get("/credentials/{id}", h.HandleGetCredential)
	r.Post("/credentials/verify", h.HandleVerify)
	r.Post("/credentials/verify/batch", h.HandleVerifyBatch)
	r.Get("/nfts/{locator}", h.HandleGetNFT)
	r.Get("/nfts/{locator}/credential", h.HandleGetCredentialByLocator)
	r.Post("/nfts/signed", h.HandleSignedLocator)
	r.Get("/verifications/{credentialID}", h.HandleLatestVerification)
	r.Get("/verifications/{credentialID}/history", h.HandleVerificationHistory)
	r.Post("/decryption/challenge", h.HandleDecryptionChallenge)
	r.Post("/decryption/decrypt", h.HandleDecrypt)
}

// HandleListCollections handles GET /wallets/{chain}/{wallet}/collections.
func (h *Handler) HandleListCollections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	chain := models.Chain(chi.URLParam(r, "chain"))
	wallet := chi.URLParam(r, "wallet")

	query := r.URL.Query()
	filters := models.CredentialFilter{
		Issuers: listParam(query, "issuers"),
		Types:   listParam(query, "types"),
	}

	collections, err := h.svc.Collections.GetCredentialNfts(ctx, chain, wallet, h.svc.Fetcher, filters)
	if err != nil {
		h.fail(ctx, w, "list credential collections failed", err, "chain", chain, "wallet", wallet)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CollectionsResponse{Collections: collections})
}

// HandleGetCredential handles GET /credentials/{id}.
func (h *Handler) HandleGetCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	credentialID := chi.URLParam(r, "id")

	cred, err := h.svc.Credentials.GetByID(ctx, credentialID)
	if err != nil {
		h.fail(ctx, w, "get credential failed", err, "credential_id", credentialID)
		return
	}
	h.writeCredential(ctx, w, cred)
}

// HandleGetNFT handles GET /nfts/{locator}.
func (h *Handler) HandleGetNFT(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locator := chi.URLParam(r, "locator")

	nft, err := h.svc.Locators.GetCredentialNFTFromLocator(ctx, locator)
	if err != nil {
		h.fail(ctx, w, "resolve locator failed", err, "locator", locator)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, nft)
}

// HandleGetCredentialByLocator handles GET /nfts/{locator}/credential.
func (h *Handler) HandleGetCredentialByLocator(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locator := chi.URLParam(r, "locator")

	cred, err := h.svc.Credentials.GetByLocator(ctx, locator)
	if err != nil {
		h.fail(ctx, w, "get credential by locator failed", err, "locator", locator)
		return
	}
	h.writeCredential(ctx, w, cred)
}

// HandleSignedLocator handles POST /nfts/signed. It recovers the wallet that
// signed the locator and resolves the credential NFT the locator points at.
func (h *Handler) HandleSignedLocator(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SignedLocatorRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	signed, err := models.ParseSignedLocator(req.SignedLocator)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	signer, err := verification.RecoverPersonalSigner(signed.Message(), signed.Signature)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	locator := signed.Locator.String()
	nft, err := h.svc.Locators.GetCredentialNFTFromLocator(ctx, locator)
	if err != nil {
		h.fail(ctx, w, "resolve signed locator failed", err, "locator", locator)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SignedLocatorResponse{
		Signer: signer.Hex(),
		Date:   signed.Date,
		Nonce:  signed.Nonce,
		NFT:    nft,
	})
}

// HandleVerify handles POST /credentials/verify. The body is the credential itself.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	body, ok := httputil.DecodeJSON[json.RawMessage](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	vc, err := plainCredential(*body)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.svc.Verifier.VerifyCredential(ctx, vc)
	if err != nil {
		h.fail(ctx, w, "verify credential failed", err, "credential_id", vc.ID)
		return
	}

	h.logger.InfoContext(ctx, "credential verified",
		"request_id", requestID,
		"credential_id", vc.ID,
		"valid", result.ValidVC,
		"reason", result.Error,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleVerifyBatch handles POST /credentials/verify/batch.
func (h *Handler) HandleVerifyBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[VerifyBatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	vcs := make([]*models.VerifiableCredential, len(req.Credentials))
	for i, raw := range req.Credentials {
		vc, err := plainCredential(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeValidation, fmt.Sprintf("credentials[%d]: %s", i, err.Error())))
			return
		}
		vcs[i] = vc
	}

	results, err := h.svc.Verifier.VerifyBatch(ctx, vcs)
	if err != nil {
		h.fail(ctx, w, "verify batch failed", err, "count", len(vcs))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromBatchResults(results))
}

// HandleLatestVerification handles GET /verifications/{credentialID}.
func (h *Handler) HandleLatestVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	credentialID := chi.URLParam(r, "credentialID")
	if h.svc.Records == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnsupported, "Verification records are not stored"))
		return
	}

	record, err := h.svc.Records.Latest(ctx, credentialID)
	if errors.Is(err, sentinel.ErrNotFound) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "No verification recorded for credential "+credentialID))
		return
	}
	if err != nil {
		h.fail(ctx, w, "read verification record failed", err, "credential_id", credentialID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, record)
}

// HandleVerificationHistory handles GET /verifications/{credentialID}/history?limit=N.
func (h *Handler) HandleVerificationHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	credentialID := chi.URLParam(r, "credentialID")
	if h.svc.Records == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnsupported, "Verification records are not stored"))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistoryLimit {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("limit must be between 1 and %d", maxHistoryLimit)))
			return
		}
		limit = n
	}

	records, err := h.svc.Records.History(ctx, credentialID, limit)
	if err != nil {
		h.fail(ctx, w, "read verification history failed", err, "credential_id", credentialID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, HistoryResponse{CredentialID: credentialID, Records: records})
}

// HandleDecryptionChallenge handles POST /decryption/challenge.
func (h *Handler) HandleDecryptionChallenge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ChallengeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	nonce, err := h.svc.Credentials.RequestDecryptionChallenge(ctx, req.Address)
	if err != nil {
		h.fail(ctx, w, "decryption challenge failed", err, "address", req.Address)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ChallengeResponse{Nonce: nonce})
}

// HandleDecrypt handles POST /decryption/decrypt. The nonce signature is
// checked locally so a wrong wallet never reaches Crossmint.
func (h *Handler) HandleDecrypt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[DecryptRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	signed, err := verification.VerifyPersonalSignature(req.Address, req.Nonce, req.Signature)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if !signed {
		h.logger.WarnContext(ctx, "decryption signature mismatch",
			"request_id", requestID,
			"address", req.Address,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "Signature was not produced by "+req.Address))
		return
	}

	cred, err := h.svc.Credentials.Decrypt(ctx, req.toDomain())
	if err != nil {
		h.fail(ctx, w, "decrypt credential failed", err, "address", req.Address)
		return
	}
	h.writeCredential(ctx, w, cred)
}

func (h *Handler) writeCredential(ctx context.Context, w http.ResponseWriter, cred *models.Credential) {
	resp, err := FromCredential(cred)
	if err != nil {
		h.fail(ctx, w, "encode credential failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// fail logs at error level for internal failures and warn otherwise, then
// writes the mapped error response.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attrs ...any) {
	attrs = append(attrs, "request_id", requestcontext.RequestID(ctx), "error", err)
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) && domainErr.Code != dErrors.CodeInternal {
		h.logger.WarnContext(ctx, msg, attrs...)
	} else {
		h.logger.ErrorContext(ctx, msg, attrs...)
	}
	httputil.WriteError(w, err)
}

// listParam distinguishes an absent parameter (nil, no filtering) from an
// empty one (empty slice, matches nothing).
func listParam(query map[string][]string, key string) []string {
	values, present := query[key]
	if !present {
		return nil
	}
	return pkgstrings.SplitDedupeAndTrim(values, ",")
}
