// Package openai relays Chat Completions API streams to a
// promptwire.StreamHandler. Relay forwards delta content as it arrives and
// returns the accumulated text.
package openai
