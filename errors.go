package promptwire

import (
	"errors"
	"fmt"
)

// Sentinel errors for handler and fitting operations.
// All use prefix "promptwire:" for identification. Callers should use errors.Is/errors.As.
var (
	ErrNilHandler    = errors.New("promptwire: stream handler is nil")
	ErrInvalidBudget = errors.New("promptwire: answer reserve leaves no room for the prompt")
	ErrTokenCount    = errors.New("promptwire: token counting failed")
	ErrTruncate      = errors.New("promptwire: prompt truncation failed")
)

// BudgetError wraps a sentinel error with the configured budget numbers.
// Use errors.Is(err, ErrInvalidBudget) and errors.As(err, &budgetErr) to inspect.
type BudgetError struct {
	ModelMax int
	Reserve  int
	Err      error
}

// Error implements error.
func (e *BudgetError) Error() string {
	return fmt.Sprintf("promptwire: reserve %d within model max %d: %v", e.Reserve, e.ModelMax, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/errors.As.
func (e *BudgetError) Unwrap() error { return e.Err }

// Compile-time check that BudgetError implements error.
var _ error = (*BudgetError)(nil)
