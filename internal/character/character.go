// Package character holds the player record and the character-management
// rules the rest of the game builds on: creation, healing, gold, levelling
// and revival.
package character

import (
	"quest-chronicles/internal/gameerr"
	"quest-chronicles/internal/stat"
	"strings"
)

// Class is one of the closed set of playable classes.
type Class string

const (
	Warrior Class = "Warrior"
	Mage    Class = "Mage"
	Rogue   Class = "Rogue"
	Cleric  Class = "Cleric"
)

// Classes lists the playable classes in menu order.
var Classes = []Class{Warrior, Mage, Rogue, Cleric}

// ClassDef holds the starting stats and blurb for a class.
type ClassDef struct {
	Class     Class
	Lore      string
	MaxHealth int
	Strength  int
	Magic     int
	Ability   string
}

var classDefs = map[Class]ClassDef{
	Warrior: {Warrior, "Front-line fighter who trusts steel over spells", 120, 15, 5, "Power Strike"},
	Mage:    {Mage, "Scholar of the arcane, fragile but devastating", 80, 8, 20, "Fireball"},
	Rogue:   {Rogue, "Quick blade that gambles on the perfect opening", 90, 12, 10, "Critical Strike"},
	Cleric:  {Cleric, "Healer whose faith keeps the party standing", 100, 10, 15, "Heal"},
}

// Definition returns the starting stats for c.
func Definition(c Class) (ClassDef, bool) {
	d, ok := classDefs[c]
	return d, ok
}

// ParseClass resolves a class name case-insensitively.
func ParseClass(s string) (Class, error) {
	for _, c := range Classes {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", gameerr.New(gameerr.KindInvalidTarget, "unknown class %q", s)
}

// StartingGold is the purse of a freshly created character.
const StartingGold = 100

// Character is the persisted player record.
type Character struct {
	Name       string   `yaml:"name"`
	Class      Class    `yaml:"class"`
	Level      int      `yaml:"level"`
	Experience int      `yaml:"experience"`
	Health     int      `yaml:"health"`
	MaxHealth  int      `yaml:"max_health"`
	Strength   int      `yaml:"strength"`
	Magic      int      `yaml:"magic"`
	Gold       int      `yaml:"gold"`
	Inventory  []string `yaml:"inventory"`

	EquippedWeapon *Equipped `yaml:"equipped_weapon,omitempty"`
	EquippedArmor  *Equipped `yaml:"equipped_armor,omitempty"`

	ActiveQuests    []string `yaml:"active_quests,omitempty"`
	CompletedQuests []string `yaml:"completed_quests,omitempty"`
}

// Equipped is the equip-time snapshot of an item: its id and the exact
// effect that was applied, so unequip can reverse it without the catalog.
type Equipped struct {
	ItemID string      `yaml:"id"`
	Effect stat.Effect `yaml:"effect"`
}

// New creates a level 1 character of the given class.
func New(name string, class Class) (*Character, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, gameerr.New(gameerr.KindInvalidTarget, "character name cannot be empty")
	}
	def, ok := classDefs[class]
	if !ok {
		return nil, gameerr.New(gameerr.KindInvalidTarget, "unknown class %q", class)
	}
	return &Character{
		Name:      name,
		Class:     class,
		Level:     1,
		Health:    def.MaxHealth,
		MaxHealth: def.MaxHealth,
		Strength:  def.Strength,
		Magic:     def.Magic,
		Gold:      StartingGold,
		Inventory: []string{},
	}, nil
}

// IsDead reports whether health has reached zero.
func (c *Character) IsDead() bool { return c.Health <= 0 }

// AdjustHealth adds delta to health clamped to [0, MaxHealth] and returns the
// change actually applied.
func (c *Character) AdjustHealth(delta int) int {
	before := c.Health
	c.Health = clamp(c.Health+delta, 0, c.MaxHealth)
	return c.Health - before
}

// Heal restores up to amount health, never past MaxHealth.
// Returns the amount restored.
func (c *Character) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	return c.AdjustHealth(amount)
}

// TakeDamage removes up to amount health, never below zero.
// Returns the damage actually taken.
func (c *Character) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	return -c.AdjustHealth(-amount)
}

// AddGold credits the purse. Negative amounts are ignored.
func (c *Character) AddGold(amount int) {
	if amount > 0 {
		c.Gold += amount
	}
}

// SpendGold debits the purse or fails without touching it.
func (c *Character) SpendGold(amount int) error {
	if amount > c.Gold {
		return gameerr.New(gameerr.KindInsufficientFunds, "costs %d gold, you only have %d", amount, c.Gold)
	}
	c.Gold -= amount
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
