package promptwire

import "unicode/utf8"

// Tokenizer counts tokens in a string.
// Callers can plug in an exact tokenizer (e.g. the tiktoken subpackage);
// default is HeuristicTokenizer.
type Tokenizer interface {
	Count(text string) (int, error)
}

// Truncator cuts text at an exact token boundary. Tokenizers that can decode
// token slices should implement it; Fitter type-asserts for Truncator and
// falls back to a Count-based search when it is absent.
type Truncator interface {
	Truncate(text string, maxTokens int) (string, error)
}

// HeuristicTokenizer estimates tokens as runes/CharsPerToken.
// Zero value uses 4 chars per token (English average).
type HeuristicTokenizer struct {
	CharsPerToken int
}

// Count returns the estimated token count: ceil(rune_count / CharsPerToken).
// If CharsPerToken <= 0, uses 4.
func (h *HeuristicTokenizer) Count(text string) (int, error) {
	cpt := h.CharsPerToken
	if cpt <= 0 {
		cpt = 4
	}
	n := utf8.RuneCountInString(text)
	return (n + cpt - 1) / cpt, nil
}

// Truncate keeps the first maxTokens estimated tokens of text, cutting at a
// rune boundary. maxTokens <= 0 yields the empty string.
func (h *HeuristicTokenizer) Truncate(text string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		return "", nil
	}
	cpt := h.CharsPerToken
	if cpt <= 0 {
		cpt = 4
	}
	maxRunes := maxTokens * cpt
	if utf8.RuneCountInString(text) <= maxRunes {
		return text, nil
	}
	runes := []rune(text)
	return string(runes[:maxRunes]), nil
}

// Compile-time checks that HeuristicTokenizer implements both interfaces.
var (
	_ Tokenizer = (*HeuristicTokenizer)(nil)
	_ Truncator = (*HeuristicTokenizer)(nil)
)
