// Package effect applies stat effects to characters while holding the
// health invariant 0 <= Health <= MaxHealth.
package effect

import (
	"log/slog"
	"quest-chronicles/internal/character"
	"quest-chronicles/internal/stat"
)

// Engine applies effects. The logger receives warnings for effects naming a
// stat the engine does not know.
type Engine struct {
	log *slog.Logger
}

// NewEngine returns an Engine logging to logger (slog.Default when nil).
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{log: logger}
}

// Outcome reports what an Apply call actually changed.
type Outcome struct {
	Effect  stat.Effect
	Applied bool // false when the stat name was unknown
	Delta   int  // change to the named stat (health clamping included)
}

// Apply changes c according to e:
//   - health: adds Value clamped to [0, MaxHealth]
//   - max_health: adds Value to MaxHealth and the same amount to Health
//   - strength, magic: adds Value unchanged
//
// Unknown stat names are logged at warn level and leave c untouched.
func (en *Engine) Apply(c *character.Character, e stat.Effect) Outcome {
	out := Outcome{Effect: e, Applied: true}
	switch e.Stat {
	case stat.Health:
		out.Delta = c.AdjustHealth(e.Value)
	case stat.MaxHealth:
		out.Delta = applyMaxHealth(c, e.Value)
	case stat.Strength:
		c.Strength += e.Value
		out.Delta = e.Value
	case stat.Magic:
		c.Magic += e.Value
		out.Delta = e.Value
	default:
		en.log.Warn("ignoring effect on unknown stat", "stat", string(e.Stat), "value", e.Value, "character", c.Name)
		out.Applied = false
	}
	return out
}

// Reverse applies the inverse of e, undoing an earlier Apply.
func (en *Engine) Reverse(c *character.Character, e stat.Effect) Outcome {
	return en.Apply(c, e.Inverse())
}

// applyMaxHealth moves MaxHealth by delta and drags Health along with it.
// MaxHealth never drops below 1, and losing a max-health bonus never takes
// a living character to 0 health.
func applyMaxHealth(c *character.Character, delta int) int {
	before := c.MaxHealth
	c.MaxHealth += delta
	if c.MaxHealth < 1 {
		c.MaxHealth = 1
	}
	alive := c.Health > 0
	c.AdjustHealth(delta)
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
	if alive && c.Health < 1 {
		c.Health = 1
	}
	return c.MaxHealth - before
}
