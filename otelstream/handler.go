package otelstream

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/promptwire/promptwire"
)

// Span attribute and event names.
const (
	eventFirstToken = "first_token"

	attrTokens     = "llm.stream.tokens"
	attrBytes      = "llm.stream.bytes"
	attrDurationMS = "llm.stream.duration_ms"
	attrTTFTMS     = "llm.stream.time_to_first_token_ms"
)

// Handler wraps a StreamHandler and records stream timing onto a span: a
// first_token event when the first token arrives, and token, byte and
// duration totals when End is called. Like the handlers it wraps, a Handler
// serves one stream from one goroutine.
type Handler struct {
	next   promptwire.StreamHandler
	span   trace.Span
	start  time.Time
	tokens int
	bytes  int
	seen   bool
}

// Wrap returns a Handler recording onto span. A nil next falls back to a
// WriterHandler. The caller is responsible for calling End.
func Wrap(span trace.Span, next promptwire.StreamHandler) *Handler {
	if next == nil {
		next = &promptwire.WriterHandler{}
	}
	return &Handler{next: next, span: span, start: time.Now()}
}

// Start begins a span named spanName on tracer and returns a Handler
// recording onto it. Call End when the stream finishes.
func Start(ctx context.Context, tracer trace.Tracer, spanName string, next promptwire.StreamHandler) (context.Context, *Handler) {
	ctx, span := tracer.Start(ctx, spanName)
	return ctx, Wrap(span, next)
}

// HandleToken records token and forwards it to the wrapped handler.
func (h *Handler) HandleToken(token string) string {
	if !h.seen {
		h.seen = true
		h.span.AddEvent(eventFirstToken, trace.WithAttributes(
			attribute.Int64(attrTTFTMS, time.Since(h.start).Milliseconds()),
		))
	}
	h.tokens++
	h.bytes += len(token)
	return h.next.HandleToken(token)
}

// End stamps the stream totals onto the span and ends it.
func (h *Handler) End() {
	h.span.SetAttributes(
		attribute.Int(attrTokens, h.tokens),
		attribute.Int(attrBytes, h.bytes),
		attribute.Int64(attrDurationMS, time.Since(h.start).Milliseconds()),
	)
	h.span.End()
}

// Compile-time check that Handler implements StreamHandler.
var _ promptwire.StreamHandler = (*Handler)(nil)
