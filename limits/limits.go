package limits

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/promptwire/promptwire"
)

// Sentinel errors for table operations.
var (
	ErrUnknownModel  = errors.New("limits: unknown model")
	ErrInvalidLimits = errors.New("limits: invalid limits entry")
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ModelLimits describes a model's token budget.
type ModelLimits struct {
	// ContextWindow is the total context size in tokens.
	ContextWindow int `yaml:"context_window" json:"context_window"`
	// MaxOutput is the output ceiling in tokens, when the provider enforces one.
	MaxOutput int `yaml:"max_output" json:"max_output"`
}

// Table maps model names to limits. Safe for concurrent use.
type Table struct {
	mu sync.RWMutex
	m  map[string]ModelLimits
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{m: make(map[string]ModelLimits)}
}

var defaultTable = mustDefault()

func mustDefault() *Table {
	t := NewTable()
	if err := t.Load(bytes.NewReader(defaultsYAML)); err != nil {
		panic(fmt.Sprintf("limits: embedded defaults: %v", err))
	}
	return t
}

// Default returns a new table populated with the embedded defaults.
func Default() *Table {
	t := NewTable()
	defaultTable.mu.RLock()
	defer defaultTable.mu.RUnlock()
	for k, v := range defaultTable.m {
		t.m[k] = v
	}
	return t
}

// Lookup consults the embedded default table.
func Lookup(model string) (ModelLimits, bool) {
	return defaultTable.Lookup(model)
}

// FitterFor builds a Fitter for model from the embedded default table.
func FitterFor(model string, tok promptwire.Tokenizer, opts ...promptwire.FitterOption) (*promptwire.Fitter, error) {
	return defaultTable.FitterFor(model, tok, opts...)
}

// normalize lowercases a model name and strips a router-style provider
// prefix such as "anthropic/".
func normalize(model string) string {
	name := strings.ToLower(strings.TrimSpace(model))
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Load merges YAML entries from r into the table. Later entries override
// earlier ones with the same name.
func (t *Table) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("limits: read: %w", err)
	}
	var raw map[string]ModelLimits
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLimits, err)
	}
	for name, ml := range raw {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: empty model name", ErrInvalidLimits)
		}
		if ml.ContextWindow <= 0 {
			return fmt.Errorf("%w: %q: context_window must be positive", ErrInvalidLimits, name)
		}
		if ml.MaxOutput < 0 {
			return fmt.Errorf("%w: %q: max_output must not be negative", ErrInvalidLimits, name)
		}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for name, ml := range raw {
		t.m[normalize(name)] = ml
	}
	return nil
}

// LoadFile merges entries from a YAML file.
func (t *Table) LoadFile(path string) error {
	f, err := os.Open(path) // #nosec G304 -- path is chosen by the caller
	if err != nil {
		return fmt.Errorf("limits: open %q: %w", path, err)
	}
	defer f.Close()
	return t.Load(f)
}

// Set registers limits for one model name.
func (t *Table) Set(model string, ml ModelLimits) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[normalize(model)] = ml
}

// Lookup returns the limits for model: an exact match first, then the
// longest registered prefix.
func (t *Table) Lookup(model string) (ModelLimits, bool) {
	name := normalize(model)
	t.mu.RLock()
	defer t.mu.RUnlock()
	if ml, ok := t.m[name]; ok {
		return ml, true
	}
	var (
		best  string
		found ModelLimits
		ok    bool
	)
	for k, v := range t.m {
		if strings.HasPrefix(name, k) && len(k) > len(best) {
			best, found, ok = k, v, true
		}
	}
	return found, ok
}

// Names returns the registered model names, sorted.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.m))
	for k := range t.m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// FitterFor builds a Fitter for model using the table's context window as
// the model maximum.
func (t *Table) FitterFor(model string, tok promptwire.Tokenizer, opts ...promptwire.FitterOption) (*promptwire.Fitter, error) {
	ml, ok := t.Lookup(model)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}
	return promptwire.NewFitter(tok, ml.ContextWindow, opts...)
}
