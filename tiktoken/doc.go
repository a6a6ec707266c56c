// Package tiktoken provides exact token counting and truncation backed by
// the tiktoken-go BPE encodings. Encoder implements promptwire.Tokenizer and
// promptwire.Truncator; loaded encodings are cached process-wide.
package tiktoken
