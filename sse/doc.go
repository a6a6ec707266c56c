// Package sse reads Server-Sent Events streams from OpenAI-compatible
// endpoints. Reader yields event data payloads and stops at the [DONE]
// marker; Relay forwards payloads to a promptwire.StreamHandler. Callers
// using a provider SDK do not need this package: the SDKs decode their own
// streams.
package sse
