// Package gemini relays Gemini (genai) streaming iterators to a
// promptwire.StreamHandler. Relay forwards the text of each streamed
// response and returns the accumulated text.
package gemini
