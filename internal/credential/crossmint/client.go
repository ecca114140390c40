// Package crossmint is a client for the Crossmint credentials and wallets API.
package crossmint

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vcpipe/internal/credential/metrics"
	"vcpipe/internal/credential/models"
	"vcpipe/pkg/platform/circuit"
)

const (
	ProductionBaseURL = "https://www.crossmint.com"
	StagingBaseURL    = "https://staging.crossmint.com"

	apiVersion = "v1-alpha1"

	// WalletNFTsPageSize is the page size requested when listing wallet NFTs.
	// A page shorter than this ends the listing.
	WalletNFTsPageSize = 50
	maxWalletNFTPages  = 200

	defaultTimeout = 10 * time.Second
)

const (
	opGetCredential          = "get_credential"
	opGetCredentialByLocator = "get_credential_by_locator"
	opListWalletNFTs         = "list_wallet_nfts"
	opDecryptionChallenge    = "decryption_challenge"
	opDecrypt                = "decrypt"
)

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Client. BaseURL defaults to ProductionBaseURL.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient HTTPDoer
}

type Client struct {
	baseURL string
	apiKey  string
	client  HTTPDoer
	breaker *circuit.Breaker
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithBreaker replaces the default circuit breaker.
func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Client) {
		if b != nil {
			c.breaker = b
		}
	}
}

// New builds a Client. An API key is required by every endpoint the client calls.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("crossmint api key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = ProductionBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  httpClient,
		breaker: circuit.New("crossmint"),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// credentialEnvelope is the shape of both credential lookup endpoints.
type credentialEnvelope struct {
	UnencryptedCredential json.RawMessage `json:"unencryptedCredential"`
	EncryptedCredential   json.RawMessage `json:"encryptedCredential"`
}

// GetCredential fetches a credential by its id and returns the raw plain or
// encrypted credential document.
func (c *Client) GetCredential(ctx context.Context, credentialID string) (json.RawMessage, error) {
	path := "/credentials/" + url.PathEscape(credentialID)
	return c.getCredential(ctx, opGetCredential, path)
}

// GetCredentialByLocator fetches the credential anchored to the NFT at locator.
func (c *Client) GetCredentialByLocator(ctx context.Context, locator string) (json.RawMessage, error) {
	path := "/nfts/" + url.PathEscape(locator) + "/credentials"
	return c.getCredential(ctx, opGetCredentialByLocator, path)
}

func (c *Client) getCredential(ctx context.Context, op, path string) (json.RawMessage, error) {
	var env credentialEnvelope
	if err := c.do(ctx, op, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	switch {
	case isJSONValue(env.UnencryptedCredential):
		return env.UnencryptedCredential, nil
	case isJSONValue(env.EncryptedCredential):
		return env.EncryptedCredential, nil
	}
	return nil, newError(ErrorBadData, op, "invalid response", nil)
}

type walletNFT struct {
	Chain           models.Chain    `json:"chain"`
	ContractAddress string          `json:"contractAddress"`
	TokenID         string          `json:"tokenId"`
	TokenStandard   string          `json:"tokenStandard,omitempty"`
	Metadata        json.RawMessage `json:"metadata,omitempty"`
}

// ListWalletNFTs returns every NFT held by wallet on chain, following pages
// until one comes back short.
func (c *Client) ListWalletNFTs(ctx context.Context, chain models.Chain, wallet string) ([]models.NFT, error) {
	path := fmt.Sprintf("/wallets/%s/nfts", url.PathEscape(string(chain)+":"+wallet))
	var all []models.NFT
	for page := 1; page <= maxWalletNFTPages; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("perPage", strconv.Itoa(WalletNFTsPageSize))

		var items []walletNFT
		if err := c.do(ctx, opListWalletNFTs, http.MethodGet, path+"?"+query.Encode(), nil, &items); err != nil {
			return nil, err
		}
		for _, item := range items {
			all = append(all, models.NFT{
				Chain:           item.Chain,
				ContractAddress: item.ContractAddress,
				TokenID:         item.TokenID,
				Metadata:        item.Metadata,
			})
		}
		if len(items) < WalletNFTsPageSize {
			return all, nil
		}
	}
	return nil, newError(ErrorBadData, opListWalletNFTs, fmt.Sprintf("more than %d pages of nfts", maxWalletNFTPages), nil)
}

// RequestDecryptionChallenge asks Crossmint for a nonce the wallet at
// address must sign before a credential can be decrypted.
func (c *Client) RequestDecryptionChallenge(ctx context.Context, address string) (string, error) {
	var resp struct {
		Nonce *string `json:"nonce"`
	}
	body := map[string]string{"address": address}
	if err := c.do(ctx, opDecryptionChallenge, http.MethodPost, "/credentials/auth/wallet", body, &resp); err != nil {
		return "", err
	}
	if resp.Nonce == nil {
		return "", newError(ErrorBadData, opDecryptionChallenge, "Failed to get challenge from Crossmint", nil)
	}
	c.logger.DebugContext(ctx, "retrieved decryption challenge", "address", address)
	return *resp.Nonce, nil
}

// DecryptRequest carries a signed challenge together with the encrypted credential.
type DecryptRequest struct {
	Address             string                                `json:"address"`
	EncryptedCredential *models.EncryptedVerifiableCredential `json:"encryptedCredential"`
	Nonce               string                                `json:"nonce"`
	Signature           string                                `json:"signature"`
}

// Decrypt exchanges a signed challenge for the decrypted credential document.
func (c *Client) Decrypt(ctx context.Context, req DecryptRequest) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.do(ctx, opDecrypt, http.MethodPost, "/credentials/decryption/decrypt", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	if !c.breaker.Allow() {
		c.metrics.RecordCrossmintRequest(op, "circuit_open")
		return newError(ErrorOutage, op, "circuit open", circuit.ErrOpen)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return newError(ErrorInternal, op, "failed to marshal request", err)
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + "/api/" + apiVersion + path
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return newError(ErrorInternal, op, "failed to create request", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.recordFailure(ctx, op)
		c.metrics.RecordCrossmintRequest(op, "error")
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return newError(ErrorTimeout, op, "request timeout", err)
		}
		return newError(ErrorOutage, op, "failed to execute request", err)
	}
	defer resp.Body.Close()
	c.metrics.RecordCrossmintRequest(op, strconv.Itoa(resp.StatusCode))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.recordFailure(ctx, op)
		return newError(ErrorBadData, op, "failed to read response", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.recordFailure(ctx, op)
	} else {
		c.breaker.RecordSuccess()
	}
	if cerr := statusError(op, resp.StatusCode, respBody); cerr != nil {
		return cerr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return newError(ErrorBadData, op, "failed to parse response", err)
	}
	return nil
}

func (c *Client) recordFailure(ctx context.Context, op string) {
	if _, change := c.breaker.RecordFailure(); change.Opened {
		c.logger.WarnContext(ctx, "crossmint circuit opened", "operation", op)
	}
}

func statusError(op string, status int, body []byte) *Error {
	var category ErrorCategory
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		category = ErrorAuthentication
	case status == http.StatusNotFound:
		category = ErrorNotFound
	case status == http.StatusTooManyRequests:
		category = ErrorRateLimited
	case status >= http.StatusInternalServerError:
		category = ErrorOutage
	case status >= http.StatusBadRequest:
		category = ErrorBadRequest
	default:
		category = ErrorBadData
	}
	e := newError(category, op, fmt.Sprintf("HTTP error! status: %d, responses: %s", status, truncate(body, 256)), nil)
	e.StatusCode = status
	return e
}

func isJSONValue(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
