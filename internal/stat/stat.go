// Package stat defines effect descriptors: a stat name paired with a signed
// delta. The "name:value" string form exists only at the data boundary
// (catalog files, saves); everything inside the game passes Effect values.
package stat

import (
	"fmt"
	"quest-chronicles/internal/gameerr"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Name identifies a character stat.
type Name string

const (
	Health    Name = "health"
	MaxHealth Name = "max_health"
	Strength  Name = "strength"
	Magic     Name = "magic"
)

// Known reports whether n is a stat the effect engine can apply.
func (n Name) Known() bool {
	switch n {
	case Health, MaxHealth, Strength, Magic:
		return true
	}
	return false
}

// Effect is a parsed effect descriptor.
type Effect struct {
	Stat  Name
	Value int
}

// Inverse returns the equal-and-opposite effect.
func (e Effect) Inverse() Effect { return Effect{Stat: e.Stat, Value: -e.Value} }

// IsZero reports whether e is the zero value (no descriptor).
func (e Effect) IsZero() bool { return e.Stat == "" && e.Value == 0 }

// String renders the boundary form, e.g. "strength:5".
func (e Effect) String() string { return fmt.Sprintf("%s:%d", e.Stat, e.Value) }

// Parse splits a "name:value" descriptor. It fails unless there are exactly
// two colon-separated parts and the second is an integer. Unknown stat names
// are accepted here; the effect engine decides what to do with them.
func Parse(descriptor string) (Effect, error) {
	parts := strings.Split(descriptor, ":")
	if len(parts) != 2 {
		return Effect{}, gameerr.New(gameerr.KindInvalidEffectFormat,
			"invalid effect %q: want exactly one ':' separating stat and value", descriptor)
	}
	v, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Effect{}, gameerr.Wrap(gameerr.KindInvalidEffectFormat, err,
			"invalid effect %q: value is not an integer", descriptor)
	}
	return Effect{Stat: Name(strings.TrimSpace(parts[0])), Value: v}, nil
}

func (e Effect) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *Effect) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func (e Effect) MarshalYAML() (any, error) { return e.String(), nil }

func (e *Effect) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("effect: %w", err)
	}
	return e.UnmarshalText([]byte(s))
}
