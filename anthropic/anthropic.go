package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"

	"github.com/promptwire/promptwire"
)

// Relay drains a Messages streaming call, forwarding each text delta to h,
// and returns the accumulated text. The handler runs on the calling
// goroutine; ctx cancellation stops the relay between events. The caller
// keeps ownership of the stream.
func Relay(ctx context.Context, stream *ssestream.Stream[anthropic.MessageStreamEventUnion], h promptwire.StreamHandler) (string, error) {
	if h == nil {
		return "", promptwire.ErrNilHandler
	}
	var sb strings.Builder
	for stream.Next() {
		if err := ctx.Err(); err != nil {
			return sb.String(), err
		}
		switch event := stream.Current().AsAny().(type) {
		case anthropic.ContentBlockDeltaEvent:
			switch delta := event.Delta.AsAny().(type) {
			case anthropic.TextDelta:
				sb.WriteString(delta.Text)
				h.HandleToken(delta.Text)
			}
		}
	}
	if err := stream.Err(); err != nil {
		return sb.String(), fmt.Errorf("anthropic: stream: %w", err)
	}
	return sb.String(), nil
}
