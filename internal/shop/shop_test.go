package shop

import (
	"fmt"
	"quest-chronicles/internal/catalog"
	"quest-chronicles/internal/character"
	"quest-chronicles/internal/gameerr"
	"quest-chronicles/internal/inventory"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var chainMail = catalog.Item{ID: "chain_mail", Name: "Chain Mail", Type: catalog.Armor, Effect: "max_health:25", Cost: 125}

func hero(t *testing.T) *character.Character {
	t.Helper()
	c, err := character.New("Hero", character.Rogue)
	require.NoError(t, err)
	return c
}

func TestPurchase(t *testing.T) {
	c := hero(t)
	c.Gold = 200

	r, err := Purchase(c, "chain_mail", chainMail)
	require.NoError(t, err)
	assert.Equal(t, 75, c.Gold)
	assert.Equal(t, 125, r.Gold)
	assert.True(t, inventory.Has(c, "chain_mail"))
	assert.Equal(t, "Bought Chain Mail for 125 gold.", r.Summary)
}

func TestPurchaseFailuresAreAtomic(t *testing.T) {
	tests := []struct {
		name  string
		gold  int
		items int
		want  error
	}{
		{"too poor", 124, 0, gameerr.ErrInsufficientFunds},
		{"full inventory", 500, inventory.MaxSize, gameerr.ErrCapacityExceeded},
		{"poor and full", 10, inventory.MaxSize, gameerr.ErrInsufficientFunds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := hero(t)
			c.Gold = tt.gold
			for i := 0; i < tt.items; i++ {
				require.NoError(t, inventory.Add(c, fmt.Sprintf("rock_%d", i)))
			}
			_, err := Purchase(c, "chain_mail", chainMail)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.gold, c.Gold)
			assert.Len(t, c.Inventory, tt.items)
			assert.False(t, inventory.Has(c, "chain_mail"))
		})
	}
}

func TestSellCreditsHalfRoundedDown(t *testing.T) {
	c := hero(t)
	c.Gold = 0
	c.Inventory = []string{"chain_mail", "chain_mail"}

	r, err := Sell(c, "chain_mail", chainMail)
	require.NoError(t, err)
	assert.Equal(t, 62, r.Gold)
	assert.Equal(t, 62, c.Gold)
	assert.Equal(t, 1, inventory.Count(c, "chain_mail"))
}

func TestSellMissingItem(t *testing.T) {
	c := hero(t)
	gold := c.Gold
	_, err := Sell(c, "chain_mail", chainMail)
	assert.ErrorIs(t, err, gameerr.ErrNotFound)
	assert.Equal(t, gold, c.Gold)
}

func TestSellThenBuyBackCostsHouseEdge(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cost := rapid.IntRange(0, 1000).Draw(t, "cost")
		item := catalog.Item{ID: "thing", Name: "Thing", Type: catalog.Consumable, Effect: "health:1", Cost: cost}
		c := &character.Character{Gold: rapid.IntRange(cost, 5000).Draw(t, "gold"), Inventory: []string{"thing"}}
		start := c.Gold

		if _, err := Sell(c, "thing", item); err != nil {
			t.Fatalf("Sell: %v", err)
		}
		if _, err := Purchase(c, "thing", item); err != nil {
			t.Fatalf("Purchase: %v", err)
		}
		if got, want := start-c.Gold, cost-cost/2; got != want {
			t.Fatalf("gold lost = %d; want %d", got, want)
		}
		if c.Gold < 0 {
			t.Fatalf("gold went negative: %d", c.Gold)
		}
	})
}
