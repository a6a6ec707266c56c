package otelstream

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/promptwire/promptwire"
)

func newTestTracer(t *testing.T) (trace.Tracer, *tracetest.InMemoryExporter) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return tp.Tracer("test"), exporter
}

func intAttr(t *testing.T, attrs []attribute.KeyValue, key string) int64 {
	t.Helper()
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value.AsInt64()
		}
	}
	t.Fatalf("attribute %q not found", key)
	return 0
}

func TestHandler_RecordsTotals(t *testing.T) {
	t.Parallel()
	tracer, exporter := newTestTracer(t)

	var c promptwire.Collector
	_, h := Start(context.Background(), tracer, "generate", &c)
	h.HandleToken("Hel")
	h.HandleToken("lo")
	h.HandleToken("!")
	h.End()

	assert.Equal(t, "Hello!", c.String())

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "generate", span.Name)
	assert.Equal(t, int64(3), intAttr(t, span.Attributes, attrTokens))
	assert.Equal(t, int64(6), intAttr(t, span.Attributes, attrBytes))
	assert.GreaterOrEqual(t, intAttr(t, span.Attributes, attrDurationMS), int64(0))
}

func TestHandler_FirstTokenEventOnce(t *testing.T) {
	t.Parallel()
	tracer, exporter := newTestTracer(t)

	discard := promptwire.StreamHandlerFunc(func(token string) string { return token })
	_, h := Start(context.Background(), tracer, "generate", discard)
	h.HandleToken("a")
	h.HandleToken("b")
	h.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	var firstTokenEvents int
	for _, ev := range spans[0].Events {
		if ev.Name == eventFirstToken {
			firstTokenEvents++
			assert.GreaterOrEqual(t, intAttr(t, ev.Attributes, attrTTFTMS), int64(0))
		}
	}
	assert.Equal(t, 1, firstTokenEvents)
}

func TestHandler_EmptyStream(t *testing.T) {
	t.Parallel()
	tracer, exporter := newTestTracer(t)

	_, h := Start(context.Background(), tracer, "generate", &promptwire.Collector{})
	h.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, int64(0), intAttr(t, spans[0].Attributes, attrTokens))
	assert.Empty(t, spans[0].Events)
}

func TestHandler_ForwardsReturnValue(t *testing.T) {
	t.Parallel()
	tracer, _ := newTestTracer(t)

	upper := promptwire.StreamHandlerFunc(func(token string) string { return token + "!" })
	_, h := Start(context.Background(), tracer, "generate", upper)
	got := h.HandleToken("hi")
	h.End()
	assert.Equal(t, "hi!", got)
}

func TestStart_PutsSpanInContext(t *testing.T) {
	t.Parallel()
	tracer, _ := newTestTracer(t)

	ctx, h := Start(context.Background(), tracer, "generate", &promptwire.Collector{})
	defer h.End()
	assert.True(t, trace.SpanFromContext(ctx).SpanContext().IsValid())
}
