package combat

import (
	"quest-chronicles/internal/gameerr"
)

// Enemy is an opponent created fresh for a single encounter.
type Enemy struct {
	Type       string
	Name       string
	Health     int
	MaxHealth  int
	Strength   int
	Magic      int
	XPReward   int
	GoldReward int
}

// IsDead reports whether the enemy has been beaten.
func (e *Enemy) IsDead() bool { return e.Health <= 0 }

// takeDamage lowers health, never below zero, and returns the damage dealt.
func (e *Enemy) takeDamage(amount int) int {
	if amount > e.Health {
		amount = e.Health
	}
	e.Health -= amount
	return amount
}

type enemyDef struct {
	name string
	hp   int
	str  int
	mag  int
	xp   int
	gold int
}

// enemyTypes lists the tiers from weakest to strongest.
var enemyTypes = []string{"goblin", "orc", "dragon"}

var enemyDefs = map[string]enemyDef{
	"goblin": {"Goblin", 50, 8, 2, 25, 10},
	"orc":    {"Orc", 80, 12, 5, 50, 25},
	"dragon": {"Dragon", 200, 25, 15, 200, 100},
}

// EnemyTypes returns the known enemy type names, weakest first.
func EnemyTypes() []string {
	return append([]string(nil), enemyTypes...)
}

// CreateEnemy returns a full-health enemy of the given type.
func CreateEnemy(enemyType string) (*Enemy, error) {
	d, ok := enemyDefs[enemyType]
	if !ok {
		return nil, gameerr.New(gameerr.KindInvalidTarget, "enemy type %q not recognized", enemyType)
	}
	return &Enemy{
		Type:       enemyType,
		Name:       d.name,
		Health:     d.hp,
		MaxHealth:  d.hp,
		Strength:   d.str,
		Magic:      d.mag,
		XPReward:   d.xp,
		GoldReward: d.gold,
	}, nil
}

// EnemyTypeForLevel picks the tier a character of the given level fights.
func EnemyTypeForLevel(level int) string {
	switch {
	case level <= 2:
		return "goblin"
	case level <= 5:
		return "orc"
	default:
		return "dragon"
	}
}

// EnemyForLevel creates the enemy a character of the given level fights.
func EnemyForLevel(level int) *Enemy {
	e, _ := CreateEnemy(EnemyTypeForLevel(level))
	return e
}
