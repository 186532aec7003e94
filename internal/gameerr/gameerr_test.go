package gameerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsMatchesByKind(t *testing.T) {
	err := New(KindNotFound, "no %s in inventory", "potion")
	if !errors.Is(err, ErrNotFound) {
		t.Fatal("expected errors.Is to match ErrNotFound")
	}
	if errors.Is(err, ErrCapacityExceeded) {
		t.Fatal("NotFound must not match ErrCapacityExceeded")
	}
}

func TestKindOfThroughWrapping(t *testing.T) {
	inner := New(KindInsufficientFunds, "costs 50 gold")
	outer := fmt.Errorf("shop: %w", inner)
	if got := KindOf(outer); got != KindInsufficientFunds {
		t.Errorf("KindOf = %v; want %v", got, KindInsufficientFunds)
	}
	if got := KindOf(errors.New("plain")); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v; want unknown", got)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("strconv: bad digit")
	err := Wrap(KindInvalidEffectFormat, cause, "effect %q", "strength:x")
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable through Unwrap")
	}
	want := `effect "strength:x": strconv: bad digit`
	if err.Error() != want {
		t.Errorf("Error() = %q; want %q", err.Error(), want)
	}
}

func TestKindStrings(t *testing.T) {
	for k := KindInvalidTarget; k <= KindCombatNotActive; k++ {
		if k.String() == "unknown" {
			t.Errorf("kind %d has no name", k)
		}
	}
}
