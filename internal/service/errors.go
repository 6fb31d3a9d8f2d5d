package service

import (
	"errors"
	"fmt"
)

var (
	ErrRuleNotFound    = errors.New("rule not found")
	ErrSessionNotFound = errors.New("invalid session ID")

	// ErrLastActiveRule rejects deleting the rule that keeps the game playable.
	ErrLastActiveRule = errors.New("cannot delete the last active rule, at least one rule must remain active")
)

// ConflictError reports a divisor uniqueness violation.
type ConflictError struct {
	Divisor int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("a rule with divisor %d already exists", e.Divisor)
}
