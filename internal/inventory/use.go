package inventory

import (
	"fmt"
	"quest-chronicles/internal/catalog"
	"quest-chronicles/internal/character"
	"quest-chronicles/internal/effect"
	"quest-chronicles/internal/gameerr"
	"quest-chronicles/internal/stat"
)

// UseResult describes a consumed item.
type UseResult struct {
	Outcome effect.Outcome
	Summary string
}

// Use consumes one itemID: the effect is parsed and applied, then one unit is
// removed. A malformed effect fails before anything changes.
func Use(en *effect.Engine, c *character.Character, itemID string, item catalog.Item) (UseResult, error) {
	if !Has(c, itemID) {
		return UseResult{}, gameerr.New(gameerr.KindNotFound, "cannot use %s: not in inventory", itemID)
	}
	if item.Type != catalog.Consumable {
		return UseResult{}, gameerr.New(gameerr.KindWrongType, "cannot use %s: %s items are equipped, not used", itemID, item.Type)
	}
	e, err := stat.Parse(item.Effect)
	if err != nil {
		return UseResult{}, err
	}
	if err := Remove(c, itemID); err != nil {
		return UseResult{}, err
	}
	out := en.Apply(c, e)
	return UseResult{Outcome: out, Summary: useSummary(item, out)}, nil
}

func useSummary(item catalog.Item, out effect.Outcome) string {
	if !out.Applied {
		return fmt.Sprintf("Used %s. Nothing happened.", item.DisplayName())
	}
	if out.Effect.Stat == stat.Health {
		return fmt.Sprintf("Used %s. Restored %d health.", item.DisplayName(), out.Delta)
	}
	return fmt.Sprintf("Used %s. %s %+d.", item.DisplayName(), out.Effect.Stat, out.Delta)
}
