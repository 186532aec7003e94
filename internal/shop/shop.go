// Package shop trades gold for items and items for gold at a fixed
// half-price sell-back.
package shop

import (
	"fmt"
	"quest-chronicles/internal/catalog"
	"quest-chronicles/internal/character"
	"quest-chronicles/internal/gameerr"
	"quest-chronicles/internal/inventory"
)

// SellPrice is what the shop pays for an item: half its cost, rounded down.
func SellPrice(item catalog.Item) int {
	return item.Cost / 2
}

// Receipt describes a completed transaction.
type Receipt struct {
	ItemID  string
	Gold    int // gold paid (purchase) or credited (sale)
	Summary string
}

// Purchase buys one itemID. Funds and space are both checked before gold or
// inventory change, so a failure leaves the character untouched.
func Purchase(c *character.Character, itemID string, item catalog.Item) (Receipt, error) {
	if c.Gold < item.Cost {
		return Receipt{}, gameerr.New(gameerr.KindInsufficientFunds,
			"%s costs %d gold, you have %d", item.DisplayName(), item.Cost, c.Gold)
	}
	if inventory.SpaceRemaining(c) <= 0 {
		return Receipt{}, gameerr.New(gameerr.KindCapacityExceeded,
			"cannot buy %s: inventory is full", item.DisplayName())
	}
	if err := c.SpendGold(item.Cost); err != nil {
		return Receipt{}, err
	}
	if err := inventory.Add(c, itemID); err != nil {
		c.AddGold(item.Cost)
		return Receipt{}, err
	}
	return Receipt{
		ItemID:  itemID,
		Gold:    item.Cost,
		Summary: fmt.Sprintf("Bought %s for %d gold.", item.DisplayName(), item.Cost),
	}, nil
}

// Sell removes one itemID from the inventory and credits SellPrice gold.
func Sell(c *character.Character, itemID string, item catalog.Item) (Receipt, error) {
	if err := inventory.Remove(c, itemID); err != nil {
		return Receipt{}, gameerr.Wrap(gameerr.KindNotFound, err, "cannot sell %s", itemID)
	}
	price := SellPrice(item)
	c.AddGold(price)
	return Receipt{
		ItemID:  itemID,
		Gold:    price,
		Summary: fmt.Sprintf("Sold %s for %d gold.", item.DisplayName(), price),
	}, nil
}
