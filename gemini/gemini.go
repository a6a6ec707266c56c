package gemini

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"google.golang.org/genai"

	"github.com/promptwire/promptwire"
)

// Relay drains a GenerateContentStream iterator, forwarding the text of each
// response to h, and returns the accumulated text. A mid-stream error stops
// the relay with the text seen so far. The handler runs on the calling
// goroutine; ctx cancellation stops the relay between responses.
func Relay(ctx context.Context, seq iter.Seq2[*genai.GenerateContentResponse, error], h promptwire.StreamHandler) (string, error) {
	if h == nil {
		return "", promptwire.ErrNilHandler
	}
	var sb strings.Builder
	for resp, err := range seq {
		if err != nil {
			return sb.String(), fmt.Errorf("gemini: stream: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return sb.String(), err
		}
		text := resp.Text()
		if text == "" {
			continue
		}
		sb.WriteString(text)
		h.HandleToken(text)
	}
	return sb.String(), nil
}
