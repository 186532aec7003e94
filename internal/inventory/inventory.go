// Package inventory is the bounded item ledger carried by every character:
// an ordered multiset of item ids holding at most MaxSize entries.
package inventory

import (
	"fmt"
	"quest-chronicles/internal/character"
	"quest-chronicles/internal/gameerr"
	"slices"
)

// MaxSize is the number of item slots a character has.
const MaxSize = 20

// Add appends itemID, failing when the inventory is full.
func Add(c *character.Character, itemID string) error {
	if len(c.Inventory) >= MaxSize {
		return gameerr.New(gameerr.KindCapacityExceeded,
			"cannot add %s: inventory is full (%d/%d)", itemID, len(c.Inventory), MaxSize)
	}
	c.Inventory = append(c.Inventory, itemID)
	return nil
}

// Remove drops the first occurrence of itemID.
func Remove(c *character.Character, itemID string) error {
	i := slices.Index(c.Inventory, itemID)
	if i < 0 {
		return gameerr.New(gameerr.KindNotFound, "%s not found in inventory", itemID)
	}
	c.Inventory = removeAt(c.Inventory, i)
	return nil
}

// Has reports whether at least one itemID is carried.
func Has(c *character.Character, itemID string) bool {
	return slices.Contains(c.Inventory, itemID)
}

// Count returns how many itemID are carried.
func Count(c *character.Character, itemID string) int {
	n := 0
	for _, id := range c.Inventory {
		if id == itemID {
			n++
		}
	}
	return n
}

// SpaceRemaining returns the number of free slots.
func SpaceRemaining(c *character.Character) int {
	return MaxSize - len(c.Inventory)
}

// Clear empties the inventory and returns what it held.
func Clear(c *character.Character) []string {
	removed := c.Inventory
	c.Inventory = []string{}
	if removed == nil {
		removed = []string{}
	}
	return removed
}

// Stack is one line of a grouped inventory listing.
type Stack struct {
	ItemID string
	Qty    int
}

// Stacks groups the inventory by item id in first-seen order.
func Stacks(c *character.Character) []Stack {
	var out []Stack
	index := make(map[string]int)
	for _, id := range c.Inventory {
		if i, ok := index[id]; ok {
			out[i].Qty++
			continue
		}
		index[id] = len(out)
		out = append(out, Stack{ItemID: id, Qty: 1})
	}
	return out
}

// Summary renders "n/20 slots used".
func Summary(c *character.Character) string {
	return fmt.Sprintf("%d/%d slots used", len(c.Inventory), MaxSize)
}

// removeAt returns a new slice with the element at index i removed.
func removeAt(s []string, i int) []string {
	out := make([]string, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}
