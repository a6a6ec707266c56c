// Package anthropic relays Anthropic Messages API streams to a
// promptwire.StreamHandler. Relay forwards text deltas as they arrive and
// returns the accumulated text; thinking and tool-use deltas are skipped.
package anthropic
