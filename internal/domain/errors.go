package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrNoPlayers       = errors.New("game needs at least one player")
	ErrEmptyPlayerName = errors.New("player name cannot be empty")
	ErrForbiddenWager  = errors.New("wager is not allowed")
	ErrWagerOutOfRange = errors.New("wager is out of range")
)

// WagerErrorKind distinguishes the two ways a wager can be rejected
type WagerErrorKind string

const (
	WagerForbidden  WagerErrorKind = "FORBIDDEN_WAGER"
	WagerOutOfRange WagerErrorKind = "WAGER_OUT_OF_RANGE"
)

// WagerError reports a rejected wager together with the bounds that applied
type WagerError struct {
	Kind   WagerErrorKind
	Amount int
	Min    int
	Max    int
}

func (e *WagerError) Error() string {
	if e.Kind == WagerForbidden {
		return fmt.Sprintf("wager %d is not allowed", e.Amount)
	}
	return fmt.Sprintf("wager %d must be between %d and %d", e.Amount, e.Min, e.Max)
}

// Unwrap lets callers match with errors.Is(err, ErrForbiddenWager) and friends
func (e *WagerError) Unwrap() error {
	if e.Kind == WagerForbidden {
		return ErrForbiddenWager
	}
	return ErrWagerOutOfRange
}
