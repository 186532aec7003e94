package character

import (
	"log/slog"
	"quest-chronicles/internal/gameerr"
)

// Per-level growth applied on every level-up.
const (
	XPPerLevel        = 100
	LevelUpMaxHealth  = 10
	LevelUpStrength   = 2
	LevelUpMagic      = 2
	DefaultReviveCost = 25
)

// XPToNextLevel returns the experience needed to leave the current level.
func (c *Character) XPToNextLevel() int { return c.Level * XPPerLevel }

// GainExperience adds xp and applies every level-up it pays for. Leftover
// experience carries into the next level. Returns the levels reached, in order.
func (c *Character) GainExperience(xp int) []int {
	if xp <= 0 {
		return nil
	}
	c.Experience += xp
	var reached []int
	for c.Experience >= c.XPToNextLevel() {
		c.Experience -= c.XPToNextLevel()
		c.Level++
		c.MaxHealth += LevelUpMaxHealth
		c.Strength += LevelUpStrength
		c.Magic += LevelUpMagic
		c.Health = c.MaxHealth
		reached = append(reached, c.Level)
	}
	return reached
}

// ReviveCost returns what reviving c costs at costPerLevel gold per level.
func (c *Character) ReviveCost(costPerLevel int) int { return c.Level * costPerLevel }

// Revive brings a dead character back at full health for a gold fee.
func (c *Character) Revive(costPerLevel int) error {
	if !c.IsDead() {
		return gameerr.New(gameerr.KindInvalidTarget, "%s is not dead", c.Name)
	}
	if err := c.SpendGold(c.ReviveCost(costPerLevel)); err != nil {
		return err
	}
	c.Health = c.MaxHealth
	return nil
}

// Saver persists a character record.
type Saver interface {
	Save(c *Character) error
}

// Manager is the character-management collaborator handed to combat and
// quests: experience with levelling, gold, healing, death checks and saving.
type Manager struct {
	saver Saver
	log   *slog.Logger
}

// NewManager builds a Manager. saver may be nil, in which case Save is a no-op.
func NewManager(saver Saver, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{saver: saver, log: logger}
}

// GainExperience awards xp and logs any level-ups.
func (m *Manager) GainExperience(c *Character, xp int) []int {
	levels := c.GainExperience(xp)
	for _, lvl := range levels {
		m.log.Info("level up", "character", c.Name, "level", lvl)
	}
	return levels
}

func (m *Manager) AddGold(c *Character, amount int) { c.AddGold(amount) }

func (m *Manager) Heal(c *Character, amount int) int { return c.Heal(amount) }

func (m *Manager) IsDead(c *Character) bool { return c.IsDead() }

// Save persists c through the configured saver.
func (m *Manager) Save(c *Character) error {
	if m.saver == nil {
		return nil
	}
	if err := m.saver.Save(c); err != nil {
		m.log.Warn("auto-save failed", "character", c.Name, "error", err)
		return err
	}
	return nil
}
