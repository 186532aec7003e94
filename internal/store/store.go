// Package store persists characters as YAML files and keeps an append-only
// log of finished battles.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"quest-chronicles/internal/character"
	"quest-chronicles/internal/gameerr"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	saveExt     = ".yaml"
	battlesFile = "battles.jsonl"
)

// Store reads and writes save files under one directory.
type Store struct {
	dir string
	log *slog.Logger
}

// New returns a Store rooted at dir. The directory is created on first save.
func New(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, log: logger}
}

// Dir returns the save directory.
func (s *Store) Dir() string { return s.dir }

// DefaultDir returns $XDG_DATA_HOME/quest-chronicles, defaulting to
// ~/.local/share/quest-chronicles.
func DefaultDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "quest-chronicles"), nil
}

// FileName maps a character name to its save file name: lower case, with
// anything outside [a-z0-9_-] replaced by '_'.
func FileName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_" + saveExt
	}
	return b.String() + saveExt
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, FileName(name))
}

// Save writes c to its save file, replacing any previous save.
func (s *Store) Save(c *character.Character) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.Name, err)
	}
	dst := s.path(c.Name)
	tmp, err := os.CreateTemp(s.dir, ".save-*")
	if err != nil {
		return fmt.Errorf("save %s: %w", c.Name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", c.Name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", c.Name, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", c.Name, err)
	}
	s.log.Debug("character saved", "name", c.Name, "path", dst)
	return nil
}

// Load reads the named character. A missing save is NotFound; a file that
// does not decode into a valid character is reported as corrupted.
func (s *Store) Load(name string) (*character.Character, error) {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, gameerr.New(gameerr.KindNotFound, "no save found for %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return decode(data, name)
}

func decode(data []byte, name string) (*character.Character, error) {
	var c character.Character
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("save for %q is corrupted: %w", name, err)
	}
	if err := validate(&c); err != nil {
		return nil, fmt.Errorf("save for %q is corrupted: %w", name, err)
	}
	if c.Inventory == nil {
		c.Inventory = []string{}
	}
	return &c, nil
}

func validate(c *character.Character) error {
	switch {
	case c.Name == "":
		return errors.New("missing name")
	case c.Level < 1:
		return fmt.Errorf("level %d", c.Level)
	case c.MaxHealth < 1:
		return fmt.Errorf("max_health %d", c.MaxHealth)
	case c.Health < 0 || c.Health > c.MaxHealth:
		return fmt.Errorf("health %d outside [0, %d]", c.Health, c.MaxHealth)
	case c.Gold < 0 || c.Experience < 0:
		return errors.New("negative gold or experience")
	}
	if _, err := character.ParseClass(string(c.Class)); err != nil {
		return err
	}
	return nil
}

// Entry is one line of a save listing.
type Entry struct {
	Name  string
	Class character.Class
	Level int
}

// List returns the saved characters sorted by name. Unreadable files are
// logged and skipped.
func (s *Store) List() ([]Entry, error) {
	files, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	var out []Entry
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != saveExt || strings.HasPrefix(f.Name(), ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, f.Name()))
		if err != nil {
			s.log.Warn("skipping unreadable save", "file", f.Name(), "err", err)
			continue
		}
		c, err := decode(data, strings.TrimSuffix(f.Name(), saveExt))
		if err != nil {
			s.log.Warn("skipping corrupted save", "file", f.Name(), "err", err)
			continue
		}
		out = append(out, Entry{Name: c.Name, Class: c.Class, Level: c.Level})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes the named character's save.
func (s *Store) Delete(name string) error {
	err := os.Remove(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return gameerr.New(gameerr.KindNotFound, "no save found for %q", name)
	}
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	return nil
}
