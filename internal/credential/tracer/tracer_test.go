package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestNoopTracerReturnsSameContext(t *testing.T) {
	ctx := context.Background()
	got, span := NoopTracer{}.Start(ctx, SpanVerifyCredential, String(AttrChain, "polygon"))
	assert.Equal(t, ctx, got)
	assert.NotPanics(t, func() {
		span.AddEvent(EventGateSignature, Bool(AttrValid, true))
		span.End(errors.New("boom"))
	})
}

func TestOTelTracerWithInjectedProvider(t *testing.T) {
	tr := NewOTel(WithOTelTracer(noop.NewTracerProvider().Tracer("test")))
	_, span := tr.Start(context.Background(), SpanIPFSGetFile, String(AttrGateway, "ipfs.io"), Int(AttrCount, 2))
	assert.NotPanics(t, func() {
		span.SetAttributes(Bool(AttrValid, false))
		span.End(nil)
	})
}

func TestToOTelAttributesSkipsUnknownTypes(t *testing.T) {
	attrs := toOTelAttributes([]Attribute{
		String("a", "x"),
		Bool("b", true),
		Int("c", 3),
		{Key: "d", Value: 1.5},
	})
	assert.Equal(t, []attribute.KeyValue{
		attribute.String("a", "x"),
		attribute.Bool("b", true),
		attribute.Int("c", 3),
	}, attrs)
}
