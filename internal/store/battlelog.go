package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// BattleRecord is one finished battle as written to battles.jsonl.
type BattleRecord struct {
	Time       time.Time `json:"time"`
	Character  string    `json:"character"`
	Class      string    `json:"class"`
	Level      int       `json:"level"`
	Enemy      string    `json:"enemy"`
	Outcome    string    `json:"outcome"`
	Turns      int       `json:"turns"`
	XPGained   int       `json:"xp_gained"`
	GoldGained int       `json:"gold_gained"`
}

// AppendBattle appends rec as a single JSON line.
func (s *Store) AppendBattle(rec BattleRecord) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode battle record: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(s.dir, battlesFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open battle log: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write battle log: %w", err)
	}
	return nil
}

// Battles reads the battle log, oldest first. Lines that fail to decode are
// skipped.
func (s *Store) Battles() ([]BattleRecord, error) {
	f, err := os.Open(filepath.Join(s.dir, battlesFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open battle log: %w", err)
	}
	defer f.Close()

	var out []BattleRecord
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rec BattleRecord
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			s.log.Warn("skipping bad battle log line", "err", err)
			continue
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("read battle log: %w", err)
	}
	return out, nil
}
