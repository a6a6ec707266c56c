package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/packages/ssestream"

	"github.com/promptwire/promptwire"
)

// Relay drains a Chat Completions streaming call, forwarding the delta
// content of the first choice to h, and returns the accumulated text.
// Role-only and finish chunks carry no content and are skipped. The handler
// runs on the calling goroutine; ctx cancellation stops the relay between
// chunks. The caller keeps ownership of the stream.
func Relay(ctx context.Context, stream *ssestream.Stream[openai.ChatCompletionChunk], h promptwire.StreamHandler) (string, error) {
	if h == nil {
		return "", promptwire.ErrNilHandler
	}
	var sb strings.Builder
	for stream.Next() {
		if err := ctx.Err(); err != nil {
			return sb.String(), err
		}
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		sb.WriteString(delta)
		h.HandleToken(delta)
	}
	if err := stream.Err(); err != nil {
		return sb.String(), fmt.Errorf("openai: stream: %w", err)
	}
	return sb.String(), nil
}
