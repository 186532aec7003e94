// Package catalog loads the read-only item and quest data the game core
// looks items up in. Defaults are embedded; a data directory may override
// either file.
package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"quest-chronicles/internal/gameerr"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var defaults embed.FS

// ItemType is the category an item belongs to.
type ItemType string

const (
	Consumable ItemType = "consumable"
	Weapon     ItemType = "weapon"
	Armor      ItemType = "armor"
)

func (t ItemType) valid() bool {
	switch t {
	case Consumable, Weapon, Armor:
		return true
	}
	return false
}

// Item describes one catalog entry. Effect stays in its "stat:value" form
// here; operations that use it parse it before touching any state.
type Item struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Type        ItemType `yaml:"type"`
	Effect      string   `yaml:"effect"`
	Cost        int      `yaml:"cost"`
	Description string   `yaml:"description"`
}

// DisplayName falls back to the id when no name is set.
func (it Item) DisplayName() string {
	if it.Name == "" {
		return it.ID
	}
	return it.Name
}

// NoPrerequisite marks a quest that can be taken without finishing another.
const NoPrerequisite = "NONE"

// Quest describes one catalog quest.
type Quest struct {
	ID            string `yaml:"id"`
	Title         string `yaml:"title"`
	Description   string `yaml:"description"`
	RewardXP      int    `yaml:"reward_xp"`
	RewardGold    int    `yaml:"reward_gold"`
	RequiredLevel int    `yaml:"required_level"`
	Prerequisite  string `yaml:"prerequisite"`
}

// Catalog is the item and quest lookup.
type Catalog struct {
	items  map[string]Item
	quests map[string]Quest
	// declaration order, for stable listings
	itemOrder  []string
	questOrder []string
}

type itemFile struct {
	Items []Item `yaml:"items"`
}

type questFile struct {
	Quests []Quest `yaml:"quests"`
}

// Load builds a Catalog. Files in dataDir (items.yaml, quests.yaml) take
// precedence over the embedded defaults; an empty dataDir uses defaults only.
func Load(dataDir string) (*Catalog, error) {
	itemData, err := readData(dataDir, "items.yaml")
	if err != nil {
		return nil, err
	}
	questData, err := readData(dataDir, "quests.yaml")
	if err != nil {
		return nil, err
	}
	return Parse(itemData, questData)
}

// Parse builds a Catalog from raw YAML documents.
func Parse(itemData, questData []byte) (*Catalog, error) {
	var itf itemFile
	if err := decodeStrict(itemData, &itf); err != nil {
		return nil, fmt.Errorf("failed to parse items: %w", err)
	}
	var qf questFile
	if err := decodeStrict(questData, &qf); err != nil {
		return nil, fmt.Errorf("failed to parse quests: %w", err)
	}

	c := &Catalog{items: make(map[string]Item), quests: make(map[string]Quest)}
	for _, it := range itf.Items {
		if it.ID == "" {
			return nil, fmt.Errorf("item %q has no id", it.Name)
		}
		if !it.Type.valid() {
			return nil, gameerr.New(gameerr.KindInvalidTarget, "item %s has unknown type %q", it.ID, it.Type)
		}
		if it.Cost < 0 {
			return nil, fmt.Errorf("item %s has negative cost %d", it.ID, it.Cost)
		}
		if _, dup := c.items[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %s", it.ID)
		}
		c.items[it.ID] = it
		c.itemOrder = append(c.itemOrder, it.ID)
	}
	for _, q := range qf.Quests {
		if q.ID == "" {
			return nil, fmt.Errorf("quest %q has no id", q.Title)
		}
		if _, dup := c.quests[q.ID]; dup {
			return nil, fmt.Errorf("duplicate quest id %s", q.ID)
		}
		if q.Prerequisite == "" {
			q.Prerequisite = NoPrerequisite
		}
		c.quests[q.ID] = q
		c.questOrder = append(c.questOrder, q.ID)
	}
	for _, q := range c.quests {
		if q.Prerequisite == NoPrerequisite {
			continue
		}
		if _, ok := c.quests[q.Prerequisite]; !ok {
			return nil, fmt.Errorf("quest %s requires unknown quest %s", q.ID, q.Prerequisite)
		}
	}
	return c, nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}

func readData(dataDir, name string) ([]byte, error) {
	if dataDir != "" {
		data, err := os.ReadFile(filepath.Join(dataDir, name))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
	}
	data, err := defaults.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("missing embedded %s: %w", name, err)
	}
	return data, nil
}

// Item looks up an item by id.
func (c *Catalog) Item(id string) (Item, error) {
	it, ok := c.items[id]
	if !ok {
		return Item{}, gameerr.New(gameerr.KindNotFound, "unknown item %q", id)
	}
	return it, nil
}

// Items returns every item in file order.
func (c *Catalog) Items() []Item {
	out := make([]Item, 0, len(c.itemOrder))
	for _, id := range c.itemOrder {
		out = append(out, c.items[id])
	}
	return out
}

// ShopStock lists items for sale, cheapest first, ties broken by name.
func (c *Catalog) ShopStock() []Item {
	out := c.Items()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost < out[j].Cost
		}
		return out[i].DisplayName() < out[j].DisplayName()
	})
	return out
}

// Quest looks up a quest by id.
func (c *Catalog) Quest(id string) (Quest, error) {
	q, ok := c.quests[id]
	if !ok {
		return Quest{}, gameerr.New(gameerr.KindNotFound, "unknown quest %q", id)
	}
	return q, nil
}

// Quests returns every quest in file order.
func (c *Catalog) Quests() []Quest {
	out := make([]Quest, 0, len(c.questOrder))
	for _, id := range c.questOrder {
		out = append(out, c.quests[id])
	}
	return out
}
