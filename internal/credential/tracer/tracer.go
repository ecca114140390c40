// Package tracer provides a small tracing abstraction for the credential
// pipeline so services do not depend on OpenTelemetry APIs directly.
//
// Implementations:
//   - NoopTracer: for tests
//   - OTelTracer: OpenTelemetry adapter for production
package tracer

import (
	"context"
)

// Span represents an active trace span. End must be called exactly once.
type Span interface {
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Span names.
const (
	SpanVerifyCredential  = "credential.verify"
	SpanVerifyBatch       = "credential.verify_batch"
	SpanGetCredentialNfts = "credential.collections"
	SpanGetCredential     = "credential.retrieve"
	SpanIPFSGetFile       = "ipfs.get_file"
)

// Attribute keys.
const (
	AttrCredentialID = "credential.id"
	AttrChain        = "chain"
	AttrContract     = "contract"
	AttrValid        = "valid"
	AttrReason       = "reason"
	AttrProcedure    = "procedure"
	AttrCount        = "count"
	AttrGateway      = "gateway"
)

// Event names.
const (
	EventGateExpiration = "gate.expiration"
	EventGateSignature  = "gate.signature"
	EventGateRevocation = "gate.revocation"
)

// NoopTracer discards all spans.
type NoopTracer struct{}

func (NoopTracer) Start(ctx context.Context, _ string, _ ...Attribute) (context.Context, Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End(error) {}
func (noopSpan) SetAttributes(...Attribute) {}
func (noopSpan) AddEvent(string, ...Attribute) {}

var (
	_ Tracer = NoopTracer{}
	_ Span   = noopSpan{}
)
