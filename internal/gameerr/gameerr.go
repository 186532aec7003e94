// Package gameerr defines the closed set of recoverable failures returned by
// the game core. Every failure carries exactly one Kind so callers can switch
// on it exhaustively.
package gameerr

import (
	"errors"
	"fmt"
)

// Kind classifies a recoverable game failure.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInvalidTarget
	KindCapacityExceeded
	KindNotFound
	KindCharacterDead
	KindAbilityOnCooldown
	KindInsufficientFunds
	KindInvalidEffectFormat
	KindWrongType
	KindRequirementNotMet
	KindCombatNotActive
)

func (k Kind) String() string {
	switch k {
	case KindInvalidTarget:
		return "invalid target"
	case KindCapacityExceeded:
		return "capacity exceeded"
	case KindNotFound:
		return "not found"
	case KindCharacterDead:
		return "character dead"
	case KindAbilityOnCooldown:
		return "ability on cooldown"
	case KindInsufficientFunds:
		return "insufficient funds"
	case KindInvalidEffectFormat:
		return "invalid effect format"
	case KindWrongType:
		return "wrong type"
	case KindRequirementNotMet:
		return "requirement not met"
	case KindCombatNotActive:
		return "combat not active"
	}
	return "unknown"
}

// Error is the single error type produced by the game core.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so the sentinels below work with
// errors.Is regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidTarget       = &Error{Kind: KindInvalidTarget}
	ErrCapacityExceeded    = &Error{Kind: KindCapacityExceeded}
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrCharacterDead       = &Error{Kind: KindCharacterDead}
	ErrAbilityOnCooldown   = &Error{Kind: KindAbilityOnCooldown}
	ErrInsufficientFunds   = &Error{Kind: KindInsufficientFunds}
	ErrInvalidEffectFormat = &Error{Kind: KindInvalidEffectFormat}
	ErrWrongType           = &Error{Kind: KindWrongType}
	ErrRequirementNotMet   = &Error{Kind: KindRequirementNotMet}
	ErrCombatNotActive     = &Error{Kind: KindCombatNotActive}
)

// New builds an *Error with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error that keeps cause reachable through errors.Unwrap.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}
