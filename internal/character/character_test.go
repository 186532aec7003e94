package character

import (
	"errors"
	"quest-chronicles/internal/gameerr"
	"testing"
)

func TestNewUsesClassStats(t *testing.T) {
	cases := []struct {
		class        Class
		hp, str, mag int
	}{
		{Warrior, 120, 15, 5},
		{Mage, 80, 8, 20},
		{Rogue, 90, 12, 10},
		{Cleric, 100, 10, 15},
	}
	for _, tc := range cases {
		t.Run(string(tc.class), func(t *testing.T) {
			c, err := New("Hero", tc.class)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if c.Health != tc.hp || c.MaxHealth != tc.hp {
				t.Errorf("health = %d/%d; want %d/%d", c.Health, c.MaxHealth, tc.hp, tc.hp)
			}
			if c.Strength != tc.str || c.Magic != tc.mag {
				t.Errorf("str/mag = %d/%d; want %d/%d", c.Strength, c.Magic, tc.str, tc.mag)
			}
			if c.Level != 1 || c.Gold != StartingGold || len(c.Inventory) != 0 {
				t.Errorf("unexpected starting record: %+v", c)
			}
			if c.EquippedWeapon != nil || c.EquippedArmor != nil {
				t.Error("new character should have nothing equipped")
			}
		})
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New("  ", Warrior); !errors.Is(err, gameerr.ErrInvalidTarget) {
		t.Errorf("empty name: got %v; want InvalidTarget", err)
	}
	if _, err := New("Hero", Class("Bard")); !errors.Is(err, gameerr.ErrInvalidTarget) {
		t.Errorf("unknown class: got %v; want InvalidTarget", err)
	}
}

func TestParseClassIsCaseInsensitive(t *testing.T) {
	got, err := ParseClass(" cLeRiC ")
	if err != nil || got != Cleric {
		t.Fatalf("ParseClass = %q, %v; want Cleric", got, err)
	}
	if _, err := ParseClass("necromancer"); err == nil {
		t.Fatal("expected error for unknown class")
	}
}

func TestHealClampsAtMax(t *testing.T) {
	c := &Character{Health: 90, MaxHealth: 100}
	if got := c.Heal(30); got != 10 {
		t.Errorf("Heal returned %d; want 10", got)
	}
	if c.Health != 100 {
		t.Errorf("health = %d; want 100", c.Health)
	}
	if got := c.Heal(-5); got != 0 || c.Health != 100 {
		t.Errorf("negative heal should be a no-op; got %d, health %d", got, c.Health)
	}
}

func TestTakeDamageClampsAtZero(t *testing.T) {
	c := &Character{Health: 7, MaxHealth: 100}
	if got := c.TakeDamage(13); got != 7 {
		t.Errorf("TakeDamage returned %d; want 7", got)
	}
	if c.Health != 0 || !c.IsDead() {
		t.Errorf("health = %d; want 0 and dead", c.Health)
	}
}

func TestSpendGold(t *testing.T) {
	c := &Character{Gold: 20}
	if err := c.SpendGold(25); !errors.Is(err, gameerr.ErrInsufficientFunds) {
		t.Fatalf("got %v; want InsufficientFunds", err)
	}
	if c.Gold != 20 {
		t.Errorf("gold changed on failed spend: %d", c.Gold)
	}
	if err := c.SpendGold(20); err != nil || c.Gold != 0 {
		t.Errorf("SpendGold(20) = %v, gold %d; want nil, 0", err, c.Gold)
	}
}

func TestGainExperienceLevelsUp(t *testing.T) {
	c, _ := New("Hero", Warrior)
	c.Health = 50

	levels := c.GainExperience(350) // 100 for L1->2, 200 for L2->3, 50 left
	if len(levels) != 2 || levels[0] != 2 || levels[1] != 3 {
		t.Fatalf("levels = %v; want [2 3]", levels)
	}
	if c.Level != 3 || c.Experience != 50 {
		t.Errorf("level/xp = %d/%d; want 3/50", c.Level, c.Experience)
	}
	if c.MaxHealth != 140 || c.Health != 140 {
		t.Errorf("health = %d/%d; want 140/140", c.Health, c.MaxHealth)
	}
	if c.Strength != 19 || c.Magic != 9 {
		t.Errorf("str/mag = %d/%d; want 19/9", c.Strength, c.Magic)
	}
}

func TestGainExperienceBelowThreshold(t *testing.T) {
	c, _ := New("Hero", Mage)
	if levels := c.GainExperience(25); levels != nil {
		t.Errorf("levels = %v; want none", levels)
	}
	if c.Experience != 25 || c.Level != 1 {
		t.Errorf("xp/level = %d/%d; want 25/1", c.Experience, c.Level)
	}
}

func TestRevive(t *testing.T) {
	c, _ := New("Hero", Rogue)
	if err := c.Revive(DefaultReviveCost); !errors.Is(err, gameerr.ErrInvalidTarget) {
		t.Fatalf("reviving a living character: got %v; want InvalidTarget", err)
	}

	c.Health = 0
	c.Level = 2
	if err := c.Revive(DefaultReviveCost); err != nil {
		t.Fatalf("Revive: %v", err)
	}
	if c.Health != c.MaxHealth || c.Gold != StartingGold-50 {
		t.Errorf("after revive health=%d gold=%d; want %d, %d", c.Health, c.Gold, c.MaxHealth, StartingGold-50)
	}

	c.Health = 0
	c.Gold = 10
	if err := c.Revive(DefaultReviveCost); !errors.Is(err, gameerr.ErrInsufficientFunds) {
		t.Errorf("broke revive: got %v; want InsufficientFunds", err)
	}
	if !c.IsDead() {
		t.Error("failed revive must leave the character dead")
	}
}

type failingSaver struct{ calls int }

func (f *failingSaver) Save(*Character) error {
	f.calls++
	return errors.New("disk full")
}

func TestManagerSaveReportsFailure(t *testing.T) {
	s := &failingSaver{}
	m := NewManager(s, nil)
	c, _ := New("Hero", Cleric)
	if err := m.Save(c); err == nil {
		t.Fatal("expected save error to be returned")
	}
	if s.calls != 1 {
		t.Errorf("saver called %d times; want 1", s.calls)
	}
	if err := NewManager(nil, nil).Save(c); err != nil {
		t.Errorf("nil saver should be a no-op, got %v", err)
	}
}
