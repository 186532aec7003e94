package effect

import (
	"bytes"
	"log/slog"
	"quest-chronicles/internal/character"
	"quest-chronicles/internal/stat"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newHero(t *testing.T) *character.Character {
	t.Helper()
	c, err := character.New("Hero", character.Warrior)
	require.NoError(t, err)
	return c
}

func TestApplyHealthClampsAtMax(t *testing.T) {
	c := newHero(t)
	c.Health = 100 // max 120

	out := NewEngine(nil).Apply(c, stat.Effect{Stat: stat.Health, Value: 50})
	assert.True(t, out.Applied)
	assert.Equal(t, 20, out.Delta)
	assert.Equal(t, 120, c.Health)
}

func TestApplyNegativeHealthClampsAtZero(t *testing.T) {
	c := newHero(t)
	c.Health = 5

	out := NewEngine(nil).Apply(c, stat.Effect{Stat: stat.Health, Value: -40})
	assert.Equal(t, -5, out.Delta)
	assert.Equal(t, 0, c.Health)
}

func TestApplyMaxHealthGrantsBonusImmediately(t *testing.T) {
	c := newHero(t)
	c.Health = 100

	NewEngine(nil).Apply(c, stat.Effect{Stat: stat.MaxHealth, Value: 10})
	assert.Equal(t, 130, c.MaxHealth)
	assert.Equal(t, 110, c.Health)
}

func TestReverseMaxHealthKeepsCharacterAlive(t *testing.T) {
	c := newHero(t)
	en := NewEngine(nil)
	en.Apply(c, stat.Effect{Stat: stat.MaxHealth, Value: 10})
	c.Health = 4

	en.Reverse(c, stat.Effect{Stat: stat.MaxHealth, Value: 10})
	assert.Equal(t, 120, c.MaxHealth)
	assert.Equal(t, 1, c.Health, "losing an armor bonus must not kill")
}

func TestApplyStrengthAndMagic(t *testing.T) {
	c := newHero(t)
	en := NewEngine(nil)
	en.Apply(c, stat.Effect{Stat: stat.Strength, Value: 5})
	en.Apply(c, stat.Effect{Stat: stat.Magic, Value: -2})
	assert.Equal(t, 20, c.Strength)
	assert.Equal(t, 3, c.Magic)
}

func TestApplyUnknownStatIsLoggedNoOp(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	c := newHero(t)
	before := *c

	out := NewEngine(logger).Apply(c, stat.Effect{Stat: "luck", Value: 7})
	assert.False(t, out.Applied)
	assert.Equal(t, before.Strength, c.Strength)
	assert.Equal(t, before.Health, c.Health)
	assert.Contains(t, buf.String(), "unknown stat")
	assert.Contains(t, buf.String(), "luck")
}

func TestHealthInvariantHolds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxHP := rapid.IntRange(1, 500).Draw(t, "max")
		c := &character.Character{
			Name:      "Prop",
			MaxHealth: maxHP,
			Health:    rapid.IntRange(0, maxHP).Draw(t, "health"),
		}
		en := NewEngine(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
		names := []stat.Name{stat.Health, stat.MaxHealth, stat.Strength, stat.Magic, "luck"}

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			e := stat.Effect{
				Stat:  rapid.SampledFrom(names).Draw(t, "stat"),
				Value: rapid.IntRange(-200, 200).Draw(t, "value"),
			}
			en.Apply(c, e)
			if c.Health < 0 || c.Health > c.MaxHealth {
				t.Fatalf("after %v: health %d outside [0, %d]", e, c.Health, c.MaxHealth)
			}
			if c.MaxHealth < 1 {
				t.Fatalf("after %v: max health %d < 1", e, c.MaxHealth)
			}
		}
	})
}
