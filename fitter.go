package promptwire

import "fmt"

// DefaultReserve is the default number of tokens kept for the model answer.
const DefaultReserve = 100

// FitResult reports how a prompt was fitted to a model context window.
type FitResult struct {
	// Prompt is the prompt to send, truncated when the original did not fit.
	Prompt string `json:"prompt"`
	// PromptTokens is the token count of the original prompt.
	PromptTokens int `json:"prompt_tokens"`
	// FittedTokens is the token count of Prompt.
	FittedTokens int `json:"fitted_tokens"`
	// ModelMax is the configured model context window, in tokens.
	ModelMax int `json:"model_max"`
	// Reserve is the configured answer reserve, in tokens.
	Reserve int `json:"reserve"`
}

// Truncated reports whether the prompt was cut to fit.
func (r FitResult) Truncated() bool { return r.FittedTokens < r.PromptTokens }

// Fitter resizes prompts so prompt tokens plus a reserved answer budget fit
// within a model context window.
type Fitter struct {
	tok      Tokenizer
	modelMax int
	reserve  int
}

// NewFitter returns a Fitter for a model with modelMax context tokens.
// A nil tok falls back to HeuristicTokenizer. The answer reserve defaults to
// DefaultReserve and must stay below modelMax.
func NewFitter(tok Tokenizer, modelMax int, opts ...FitterOption) (*Fitter, error) {
	if tok == nil {
		tok = &HeuristicTokenizer{}
	}
	f := &Fitter{tok: tok, modelMax: modelMax, reserve: DefaultReserve}
	for _, opt := range opts {
		opt(f)
	}
	if f.modelMax <= 0 || f.reserve < 0 || f.reserve >= f.modelMax {
		return nil, &BudgetError{ModelMax: f.modelMax, Reserve: f.reserve, Err: ErrInvalidBudget}
	}
	return f, nil
}

// Fit resizes prompt to at most modelMax-reserve tokens. A prompt already
// within budget is returned unchanged; an empty prompt is returned as is
// with zero counts.
func (f *Fitter) Fit(prompt string) (FitResult, error) {
	res := FitResult{Prompt: prompt, ModelMax: f.modelMax, Reserve: f.reserve}
	if prompt == "" {
		return res, nil
	}
	n, err := f.tok.Count(prompt)
	if err != nil {
		return FitResult{}, fmt.Errorf("%w: %w", ErrTokenCount, err)
	}
	res.PromptTokens = n
	if n+f.reserve <= f.modelMax {
		res.FittedTokens = n
		return res, nil
	}
	fitted, fittedTokens, err := f.truncate(prompt, f.modelMax-f.reserve)
	if err != nil {
		return FitResult{}, fmt.Errorf("%w: %w", ErrTruncate, err)
	}
	res.Prompt = fitted
	res.FittedTokens = fittedTokens
	return res, nil
}

// truncate cuts prompt to at most budget tokens. An exact Truncator cuts at
// the budget boundary, so the slice length is the resulting count; the
// fallback binary-searches the longest rune prefix Count accepts.
func (f *Fitter) truncate(prompt string, budget int) (string, int, error) {
	if t, ok := f.tok.(Truncator); ok {
		fitted, err := t.Truncate(prompt, budget)
		if err != nil {
			return "", 0, err
		}
		return fitted, budget, nil
	}
	runes := []rune(prompt)
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		n, err := f.tok.Count(string(runes[:mid]))
		if err != nil {
			return "", 0, err
		}
		if n <= budget {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	fitted := string(runes[:lo])
	n, err := f.tok.Count(fitted)
	if err != nil {
		return "", 0, err
	}
	return fitted, n, nil
}
