// Package ollama adapts promptwire stream handlers to the Ollama client's
// response callbacks. ChatFunc and GenerateFunc return api.ChatResponseFunc
// and api.GenerateResponseFunc values that forward streamed content to a
// handler, with a trailing newline on the final chunk.
package ollama
