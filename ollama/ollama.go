package ollama

import (
	"github.com/ollama/ollama/api"

	"github.com/promptwire/promptwire"
)

// ChatFunc returns an api.ChatResponseFunc that forwards streamed chat
// content to h. The final chunk gets a trailing newline, closing the line an
// incremental stream leaves open on a terminal. A nil h falls back to a
// WriterHandler.
func ChatFunc(h promptwire.StreamHandler) api.ChatResponseFunc {
	if h == nil {
		h = &promptwire.WriterHandler{}
	}
	return func(resp api.ChatResponse) error {
		token := resp.Message.Content
		if resp.Done {
			token += "\n"
		}
		h.HandleToken(token)
		return nil
	}
}

// GenerateFunc mirrors ChatFunc for the Generate API.
func GenerateFunc(h promptwire.StreamHandler) api.GenerateResponseFunc {
	if h == nil {
		h = &promptwire.WriterHandler{}
	}
	return func(resp api.GenerateResponse) error {
		token := resp.Response
		if resp.Done {
			token += "\n"
		}
		h.HandleToken(token)
		return nil
	}
}
