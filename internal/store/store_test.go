package store

import (
	"os"
	"path/filepath"
	"quest-chronicles/internal/character"
	"quest-chronicles/internal/gameerr"
	"quest-chronicles/internal/stat"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hero(t *testing.T) *character.Character {
	t.Helper()
	c, err := character.New("Sir Robin", character.Warrior)
	require.NoError(t, err)
	return c
}

func TestFileName(t *testing.T) {
	cases := map[string]string{
		"Sir Robin":  "sir_robin.yaml",
		"../../etc":  "______etc.yaml",
		"  Ada-99  ": "ada-99.yaml",
		"":           "_.yaml",
		"Zoë":        "zo_.yaml",
	}
	for in, want := range cases {
		if got := FileName(in); got != want {
			t.Errorf("FileName(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(t.TempDir(), nil)
	c := hero(t)
	c.Inventory = []string{"health_potion", "health_potion"}
	c.EquippedWeapon = &character.Equipped{ItemID: "iron_sword", Effect: stat.Effect{Stat: stat.Strength, Value: 5}}
	c.Strength += 5
	c.ActiveQuests = []string{"first_steps"}

	require.NoError(t, s.Save(c))
	got, err := s.Load("Sir Robin")
	require.NoError(t, err)
	assert.Equal(t, c, got)

	raw, err := os.ReadFile(filepath.Join(s.Dir(), "sir_robin.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "strength:5")
}

func TestLoadEmptyInventoryIsNonNil(t *testing.T) {
	s := New(t.TempDir(), nil)
	require.NoError(t, s.Save(hero(t)))
	got, err := s.Load("sir robin")
	require.NoError(t, err)
	assert.NotNil(t, got.Inventory)
	assert.Nil(t, got.EquippedArmor)
}

func TestLoadMissingAndCorrupted(t *testing.T) {
	s := New(t.TempDir(), nil)
	_, err := s.Load("ghost")
	assert.ErrorIs(t, err, gameerr.ErrNotFound)

	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "broken.yaml"), []byte("name: [unterminated"), 0o644))
	_, err = s.Load("broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupted")

	bad := "name: Broken\nclass: Warrior\nlevel: 1\nhealth: 500\nmax_health: 100\n"
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "broken.yaml"), []byte(bad), 0o644))
	_, err = s.Load("broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "health 500")
}

func TestListAndDelete(t *testing.T) {
	s := New(t.TempDir(), nil)
	entries, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, entries)

	for _, name := range []string{"Zed", "Amy"} {
		c, err := character.New(name, character.Mage)
		require.NoError(t, err)
		require.NoError(t, s.Save(c))
	}
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "junk.yaml"), []byte(":::"), 0o644))

	entries, err = s.List()
	require.NoError(t, err)
	assert.Equal(t, []Entry{{"Amy", character.Mage, 1}, {"Zed", character.Mage, 1}}, entries)

	require.NoError(t, s.Delete("Zed"))
	assert.ErrorIs(t, s.Delete("Zed"), gameerr.ErrNotFound)
}

func TestStoreIsACharacterSaver(t *testing.T) {
	var _ character.Saver = New(t.TempDir(), nil)
}

func TestDefaultDirXDGOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)
	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "quest-chronicles"), dir)
}

func TestDefaultDirFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	dir, err := DefaultDir()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	suffix := filepath.Join(".local", "share", "quest-chronicles")
	if !strings.HasSuffix(dir, suffix) {
		t.Errorf("dir %q does not end with %q", dir, suffix)
	}
}

func TestAppendBattle(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nested"), nil)
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.AppendBattle(BattleRecord{
			Time: when, Character: "Amy", Class: "Mage", Level: 1,
			Enemy: "goblin", Outcome: "player_won", Turns: i + 1, XPGained: 25, GoldGained: 10,
		}))
	}
	data, err := os.ReadFile(filepath.Join(s.Dir(), "battles.jsonl"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"outcome":"player_won"`)

	recs, err := s.Battles()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, 3, recs[2].Turns)
	assert.True(t, recs[0].Time.Equal(when))
}

func TestBattlesMissingLog(t *testing.T) {
	recs, err := New(t.TempDir(), nil).Battles()
	require.NoError(t, err)
	assert.Empty(t, recs)
}
