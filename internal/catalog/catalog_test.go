package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"quest-chronicles/internal/gameerr"
	"quest-chronicles/internal/stat"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	potion, err := c.Item("health_potion")
	if err != nil {
		t.Fatalf("Item(health_potion): %v", err)
	}
	if potion.Type != Consumable || potion.Effect != "health:20" || potion.Cost != 25 {
		t.Errorf("unexpected potion: %+v", potion)
	}
	if len(c.Quests()) == 0 {
		t.Error("expected default quests")
	}
}

func TestDefaultEffectsParse(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, it := range c.Items() {
		e, err := stat.Parse(it.Effect)
		if err != nil {
			t.Errorf("item %s: %v", it.ID, err)
			continue
		}
		if !e.Stat.Known() {
			t.Errorf("item %s uses unknown stat %q", it.ID, e.Stat)
		}
	}
}

func TestItemNotFound(t *testing.T) {
	c, _ := Load("")
	if _, err := c.Item("excalibur"); !errors.Is(err, gameerr.ErrNotFound) {
		t.Errorf("got %v; want NotFound", err)
	}
	if _, err := c.Quest("nope"); !errors.Is(err, gameerr.ErrNotFound) {
		t.Errorf("got %v; want NotFound", err)
	}
}

func TestShopStockSortedByCost(t *testing.T) {
	c, _ := Load("")
	stock := c.ShopStock()
	for i := 1; i < len(stock); i++ {
		if stock[i-1].Cost > stock[i].Cost {
			t.Fatalf("stock not sorted: %s(%d) before %s(%d)",
				stock[i-1].ID, stock[i-1].Cost, stock[i].ID, stock[i].Cost)
		}
	}
}

func TestDataDirOverridesItems(t *testing.T) {
	dir := t.TempDir()
	items := []byte(`items:
  - id: stick
    name: Stick
    type: weapon
    effect: strength:1
    cost: 2
`)
	if err := os.WriteFile(filepath.Join(dir, "items.yaml"), items, 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Items()) != 1 {
		t.Fatalf("expected override to replace items, got %d", len(c.Items()))
	}
	if _, err := c.Quest("first_steps"); err != nil {
		t.Errorf("quests should fall back to defaults: %v", err)
	}
}

func TestParseRejectsUnknownItemType(t *testing.T) {
	items := []byte("items:\n  - id: ring\n    type: trinket\n    effect: magic:1\n    cost: 5\n")
	_, err := Parse(items, []byte("quests: []\n"))
	if !errors.Is(err, gameerr.ErrInvalidTarget) {
		t.Errorf("got %v; want InvalidTarget", err)
	}
}

func TestParseRejectsUnknownPrerequisite(t *testing.T) {
	quests := []byte("quests:\n  - id: a\n    title: A\n    prerequisite: missing\n")
	if _, err := Parse([]byte("items: []\n"), quests); err == nil {
		t.Error("expected unknown prerequisite to fail")
	}
}

func TestParseRejectsDuplicates(t *testing.T) {
	items := []byte(`items:
  - id: a
    type: weapon
    effect: strength:1
    cost: 1
  - id: a
    type: armor
    effect: max_health:1
    cost: 1
`)
	if _, err := Parse(items, []byte("quests: []\n")); err == nil {
		t.Error("expected duplicate id to fail")
	}
}
