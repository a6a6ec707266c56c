package promptwire

import (
	"io"
	"os"
	"strings"
)

// DoneMarker is the sentinel payload OpenAI-compatible SSE backends send as
// the final event of a stream. The sse subpackage consumes it; handlers
// never receive it.
const DoneMarker = "[DONE]"

// StreamHandler receives generated text as it arrives, one token or chunk
// per call. The return value is the text actually forwarded downstream,
// which lets wrapping handlers reshape the stream (see DeltaHandler).
// Handlers are invoked sequentially from a single goroutine.
type StreamHandler interface {
	HandleToken(token string) string
}

// StreamHandlerFunc adapts a function to StreamHandler.
type StreamHandlerFunc func(token string) string

// HandleToken calls f(token).
func (f StreamHandlerFunc) HandleToken(token string) string { return f(token) }

// WriterHandler writes each token to W as it arrives and forwards it
// unchanged. The zero value writes to os.Stdout. Write errors are dropped.
type WriterHandler struct {
	W io.Writer
}

// HandleToken writes token to the underlying writer and returns it.
func (h *WriterHandler) HandleToken(token string) string {
	w := h.W
	if w == nil {
		w = os.Stdout
	}
	_, _ = io.WriteString(w, token)
	return token
}

// MultiHandler returns a StreamHandler that calls each handler in order with
// the same token and forwards the token unchanged, in the manner of
// io.MultiWriter.
func MultiHandler(handlers ...StreamHandler) StreamHandler {
	hs := make([]StreamHandler, len(handlers))
	copy(hs, handlers)
	return StreamHandlerFunc(func(token string) string {
		for _, h := range hs {
			h.HandleToken(token)
		}
		return token
	})
}

// Collector accumulates every token it receives. Useful for capturing the
// full text while another handler streams it to a terminal.
type Collector struct {
	b strings.Builder
}

// HandleToken appends token to the collected text and returns it.
func (c *Collector) HandleToken(token string) string {
	c.b.WriteString(token)
	return token
}

// String returns the text collected so far.
func (c *Collector) String() string { return c.b.String() }

// Reset discards the collected text.
func (c *Collector) Reset() { c.b.Reset() }

// Compile-time checks that the built-in handlers implement StreamHandler.
var (
	_ StreamHandler = StreamHandlerFunc(nil)
	_ StreamHandler = (*WriterHandler)(nil)
	_ StreamHandler = (*Collector)(nil)
)
