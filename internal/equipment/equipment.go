// Package equipment manages the weapon and armor slots. Each equipped item
// keeps the exact effect applied at equip time so unequipping undoes it
// precisely.
package equipment

import (
	"fmt"
	"quest-chronicles/internal/catalog"
	"quest-chronicles/internal/character"
	"quest-chronicles/internal/effect"
	"quest-chronicles/internal/gameerr"
	"quest-chronicles/internal/inventory"
	"quest-chronicles/internal/stat"
)

// Slot selects which equipment slot an operation targets.
type Slot uint8

const (
	SlotWeapon Slot = iota
	SlotArmor
)

func (s Slot) String() string {
	if s == SlotArmor {
		return "armor"
	}
	return "weapon"
}

// itemType is the catalog type a slot accepts.
func (s Slot) itemType() catalog.ItemType {
	if s == SlotArmor {
		return catalog.Armor
	}
	return catalog.Weapon
}

// SlotFor maps an item type to its slot.
func SlotFor(t catalog.ItemType) (Slot, bool) {
	switch t {
	case catalog.Weapon:
		return SlotWeapon, true
	case catalog.Armor:
		return SlotArmor, true
	}
	return 0, false
}

func slotRef(c *character.Character, s Slot) **character.Equipped {
	if s == SlotArmor {
		return &c.EquippedArmor
	}
	return &c.EquippedWeapon
}

// Equipped returns the record in slot s, or nil.
func Equipped(c *character.Character, s Slot) *character.Equipped {
	return *slotRef(c, s)
}

// Change describes the result of an equip or unequip.
type Change struct {
	Equipped   string // item id now in the slot, if any
	Unequipped string // item id returned to the inventory, if any
	Summary    string
}

// Manager equips and unequips items through an effect engine.
type Manager struct {
	effects *effect.Engine
}

// NewManager returns a Manager applying bonuses through en.
func NewManager(en *effect.Engine) *Manager {
	return &Manager{effects: en}
}

// EquipWeapon equips a weapon from the inventory.
func (m *Manager) EquipWeapon(c *character.Character, itemID string, item catalog.Item) (Change, error) {
	return m.Equip(c, SlotWeapon, itemID, item)
}

// EquipArmor equips armor from the inventory.
func (m *Manager) EquipArmor(c *character.Character, itemID string, item catalog.Item) (Change, error) {
	return m.Equip(c, SlotArmor, itemID, item)
}

// Equip moves itemID from the inventory into slot s, swapping out whatever
// was there. Every check runs before any state changes, so a failed equip
// leaves the character exactly as it was.
func (m *Manager) Equip(c *character.Character, s Slot, itemID string, item catalog.Item) (Change, error) {
	if !inventory.Has(c, itemID) {
		return Change{}, gameerr.New(gameerr.KindNotFound, "cannot equip %s: not in inventory", itemID)
	}
	if item.Type != s.itemType() {
		return Change{}, gameerr.New(gameerr.KindWrongType, "cannot equip %s as %s: it is a %s", itemID, s, item.Type)
	}
	e, err := stat.Parse(item.Effect)
	if err != nil {
		return Change{}, err
	}
	ref := slotRef(c, s)
	old := *ref
	if old != nil && inventory.SpaceRemaining(c) <= 0 {
		return Change{}, gameerr.New(gameerr.KindCapacityExceeded,
			"equip blocked: inventory full, no room to return %s", old.ItemID)
	}

	var ch Change
	if old != nil {
		m.effects.Reverse(c, old.Effect)
		// cannot fail: space was checked above
		_ = inventory.Add(c, old.ItemID)
		ch.Unequipped = old.ItemID
	}
	// record what was applied, not what was asked for: max_health is floored
	out := m.effects.Apply(c, e)
	*ref = &character.Equipped{ItemID: itemID, Effect: stat.Effect{Stat: e.Stat, Value: out.Delta}}
	_ = inventory.Remove(c, itemID)
	ch.Equipped = itemID

	ch.Summary = fmt.Sprintf("Equipped %s.", item.DisplayName())
	if old != nil {
		ch.Summary = fmt.Sprintf("Unequipped %s. %s", old.ItemID, ch.Summary)
	}
	return ch, nil
}

// UnequipWeapon returns the equipped weapon to the inventory.
func (m *Manager) UnequipWeapon(c *character.Character) (Change, error) {
	return m.Unequip(c, SlotWeapon)
}

// UnequipArmor returns the equipped armor to the inventory.
func (m *Manager) UnequipArmor(c *character.Character) (Change, error) {
	return m.Unequip(c, SlotArmor)
}

// Unequip reverses the recorded bonus of slot s and puts the item back in
// the inventory. An empty slot is a no-op with an empty Unequipped id.
func (m *Manager) Unequip(c *character.Character, s Slot) (Change, error) {
	ref := slotRef(c, s)
	cur := *ref
	if cur == nil {
		return Change{Summary: fmt.Sprintf("No %s equipped.", s)}, nil
	}
	if inventory.SpaceRemaining(c) <= 0 {
		return Change{}, gameerr.New(gameerr.KindCapacityExceeded,
			"cannot unequip %s: inventory is full", cur.ItemID)
	}
	m.effects.Reverse(c, cur.Effect)
	_ = inventory.Add(c, cur.ItemID)
	*ref = nil
	return Change{Unequipped: cur.ItemID, Summary: fmt.Sprintf("Unequipped %s.", cur.ItemID)}, nil
}
