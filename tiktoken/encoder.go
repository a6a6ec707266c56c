package tiktoken

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"golang.org/x/sync/singleflight"

	"github.com/promptwire/promptwire"
)

// FallbackEncoding is used when a model name has no registered encoding.
// The cl100k family covers most current chat models closely enough for
// budgeting purposes.
const FallbackEncoding = "cl100k_base"

// ErrUnknownEncoding is returned when an encoding cannot be loaded.
var ErrUnknownEncoding = errors.New("tiktoken: unknown encoding")

// Encoder counts and truncates text with an exact BPE encoding.
type Encoder struct {
	enc  *tiktoken.Tiktoken
	name string
}

var (
	mu    sync.RWMutex
	cache = map[string]*tiktoken.Tiktoken{}
	sf    singleflight.Group
)

// loadEncoding returns a cached encoding, building it at most once per
// process. Concurrent first loads of the same encoding share one build.
func loadEncoding(name string) (*tiktoken.Tiktoken, error) {
	mu.RLock()
	enc, ok := cache[name]
	mu.RUnlock()
	if ok {
		return enc, nil
	}
	v, err, _ := sf.Do(name, func() (any, error) {
		mu.RLock()
		enc, ok := cache[name]
		mu.RUnlock()
		if ok {
			return enc, nil
		}
		enc, err := tiktoken.GetEncoding(name)
		if err != nil {
			return nil, err
		}
		mu.Lock()
		cache[name] = enc
		mu.Unlock()
		return enc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*tiktoken.Tiktoken), nil
}

// New returns an Encoder for a named encoding, e.g. "cl100k_base" or
// "o200k_base".
func New(encoding string) (*Encoder, error) {
	enc, err := loadEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownEncoding, encoding, err)
	}
	return &Encoder{enc: enc, name: encoding}, nil
}

// ForModel resolves the encoding registered for a model name, e.g. "gpt-4o".
// Models without a registered encoding fall back to FallbackEncoding.
func ForModel(model string) (*Encoder, error) {
	if name, ok := tiktoken.MODEL_TO_ENCODING[model]; ok {
		return New(name)
	}
	for prefix, name := range tiktoken.MODEL_PREFIX_TO_ENCODING {
		if strings.HasPrefix(model, prefix) {
			return New(name)
		}
	}
	slog.Debug("no encoding registered for model, using fallback",
		"model", model, "encoding", FallbackEncoding)
	return New(FallbackEncoding)
}

// Name returns the encoding name.
func (e *Encoder) Name() string { return e.name }

// Count returns the exact token count of text.
func (e *Encoder) Count(text string) (int, error) {
	return len(e.enc.Encode(text, nil, nil)), nil
}

// Truncate keeps the first maxTokens tokens of text, decoding the slice back
// to a string. maxTokens <= 0 yields the empty string.
func (e *Encoder) Truncate(text string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		return "", nil
	}
	tokens := e.enc.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text, nil
	}
	return e.enc.Decode(tokens[:maxTokens]), nil
}

// Encode returns the token ids of text.
func (e *Encoder) Encode(text string) []int {
	return e.enc.Encode(text, nil, nil)
}

// Decode converts token ids back to text.
func (e *Encoder) Decode(tokens []int) string {
	return e.enc.Decode(tokens)
}

// Compile-time checks that Encoder satisfies the promptwire interfaces.
var (
	_ promptwire.Tokenizer = (*Encoder)(nil)
	_ promptwire.Truncator = (*Encoder)(nil)
)
