package game

import (
	"fmt"
	"quest-chronicles/internal/catalog"
	"quest-chronicles/internal/equipment"
	"quest-chronicles/internal/inventory"
	"quest-chronicles/internal/render"
	"quest-chronicles/internal/shop"
)

// runStats shows the character sheet until a key is pressed.
func (g *Game) runStats() {
	c := g.char
	g.r.Clear()
	g.r.Text(2, 1, render.Glyph(render.ClassGlyphs, string(c.Class))+" "+c.Name, render.Title)
	rows := []string{
		fmt.Sprintf("Class:      %s", c.Class),
		fmt.Sprintf("Level:      %d", c.Level),
		fmt.Sprintf("Experience: %d/%d", c.Experience, c.XPToNextLevel()),
		fmt.Sprintf("Health:     %d/%d %s", c.Health, c.MaxHealth, render.Bar(c.Health, c.MaxHealth, 20)),
		fmt.Sprintf("Strength:   %d", max(0, c.Strength)),
		fmt.Sprintf("Magic:      %d", max(0, c.Magic)),
		fmt.Sprintf("Gold:       %d", c.Gold),
		fmt.Sprintf("Weapon:     %s", g.slotLabel(equipment.SlotWeapon)),
		fmt.Sprintf("Armor:      %s", g.slotLabel(equipment.SlotArmor)),
		fmt.Sprintf("Inventory:  %s", inventory.Summary(c)),
		g.quests.Progress(c).String(),
	}
	for i, row := range rows {
		g.r.Text(4, 3+i, row, render.Stat)
	}
	g.r.Text(2, 4+len(rows), "Press any key to return", render.Dim)
	g.r.Show()
	g.waitKey()
}

func (g *Game) slotLabel(s equipment.Slot) string {
	eq := equipment.Equipped(g.char, s)
	if eq == nil {
		return "(none)"
	}
	return g.itemName(eq.ItemID) + " (" + eq.Effect.String() + ")"
}

// Column widths for item listings.
const (
	nameCol   = 28
	typeCol   = 11
	effectCol = 16
)

// stackLabel renders one inventory line.
func (g *Game) stackLabel(st inventory.Stack) string {
	label := g.itemName(st.ItemID)
	if st.Qty > 1 {
		label += fmt.Sprintf(" x%d", st.Qty)
	}
	it, err := g.cat.Item(st.ItemID)
	if err != nil {
		return label
	}
	return render.Pad(label, nameCol) + render.Pad(string(it.Type), typeCol) + it.Effect
}

// runInventory lists the carried items and lets the player use, equip, sell
// or unequip them.
func (g *Game) runInventory() {
	cursor := 0
	for {
		stacks := inventory.Stacks(g.char)
		cursor = clamp(cursor, len(stacks))

		g.r.Clear()
		g.r.Text(2, 1, "Inventory ("+inventory.Summary(g.char)+")", render.Title)
		g.r.Text(2, 2, "Weapon: "+g.slotLabel(equipment.SlotWeapon), render.Stat)
		g.r.Text(2, 3, "Armor:  "+g.slotLabel(equipment.SlotArmor), render.Stat)
		if len(stacks) == 0 {
			g.r.Text(4, 5, "Your pack is empty.", render.Dim)
		} else {
			labels := make([]string, len(stacks))
			for i, st := range stacks {
				labels[i] = g.stackLabel(st)
			}
			g.r.Menu(5, labels, cursor)
		}
		g.r.DrawHUD(g.char, g.messages)
		_, sh := g.screen.Size()
		g.r.Text(2, sh-6, "[u]se [e]quip [s]ell  un-equip [w]eapon/[a]rmor  [q] back", render.Dim)
		g.r.Show()

		ev, ok := g.nextKey()
		if !ok {
			return
		}
		switch keyToNav(ev) {
		case navUp:
			cursor = move(cursor, -1, len(stacks))
			continue
		case navDown:
			cursor = move(cursor, 1, len(stacks))
			continue
		case navBack:
			return
		}
		switch ev.Rune() {
		case 'w', 'W':
			g.report(g.equip.UnequipWeapon(g.char))
		case 'a', 'A':
			g.report(g.equip.UnequipArmor(g.char))
		case 'u', 'U', 'e', 'E', 's', 'S':
			if len(stacks) == 0 {
				continue
			}
			g.actOnItem(ev.Rune(), stacks[cursor].ItemID)
		}
	}
}

// actOnItem applies an inventory key to one item id.
func (g *Game) actOnItem(key rune, id string) {
	item, err := g.cat.Item(id)
	if err != nil {
		g.addMessage(errMessage(err))
		return
	}
	switch key {
	case 'u', 'U':
		res, err := inventory.Use(g.effects, g.char, id, item)
		if err != nil {
			g.addMessage(errMessage(err))
			return
		}
		g.addMessage(res.Summary)
	case 'e', 'E':
		s, ok := equipment.SlotFor(item.Type)
		if !ok {
			g.addMessage(fmt.Sprintf("Error: %s cannot be equipped.", item.DisplayName()))
			return
		}
		g.report(g.equip.Equip(g.char, s, id, item))
	case 's', 'S':
		g.sell(id, item)
	}
}

func (g *Game) report(ch equipment.Change, err error) {
	if err != nil {
		g.addMessage(errMessage(err))
		return
	}
	g.addMessage(ch.Summary)
}

func (g *Game) sell(id string, item catalog.Item) {
	rc, err := shop.Sell(g.char, id, item)
	if err != nil {
		g.addMessage(errMessage(err))
		return
	}
	g.log.Info("item sold", "character", g.char.Name, "item", id, "gold", rc.Gold)
	g.addMessage(rc.Summary)
}

// shop panels
const (
	panelBuy = iota
	panelSell
)

// runShop shows the stock and the player's pack side by side; Tab switches
// panels and Enter buys or sells the highlighted item.
func (g *Game) runShop() {
	stock := g.cat.ShopStock()
	panel := panelBuy
	cursors := [2]int{}
	for {
		stacks := inventory.Stacks(g.char)
		cursors[panelSell] = clamp(cursors[panelSell], len(stacks))
		cursors[panelBuy] = clamp(cursors[panelBuy], len(stock))

		g.r.Clear()
		g.r.Text(2, 1, "🏪 Shop", render.Title)
		g.r.Text(12, 1, fmt.Sprintf("Gold: %d", g.char.Gold), render.Gold)

		buyStyle, sellStyle := render.Highlight, render.Dim
		if panel == panelSell {
			buyStyle, sellStyle = render.Dim, render.Highlight
		}
		g.r.Text(2, 3, " Buy ", buyStyle)
		g.r.Text(10, 3, " Sell ", sellStyle)

		var labels []string
		if panel == panelBuy {
			for _, it := range stock {
				labels = append(labels, render.Pad(g.itemName(it.ID), nameCol)+
					render.Pad(fmt.Sprintf("%dg", it.Cost), 6)+
					render.Pad(it.Effect, effectCol)+it.Description)
			}
		} else {
			for _, st := range stacks {
				price := 0
				if it, err := g.cat.Item(st.ItemID); err == nil {
					price = shop.SellPrice(it)
				}
				labels = append(labels, render.Pad(g.stackLabel(st), nameCol+typeCol+effectCol)+fmt.Sprintf("sells for %dg", price))
			}
		}
		if len(labels) == 0 {
			g.r.Text(4, 5, "Nothing here.", render.Dim)
		} else {
			g.r.Menu(5, labels, cursors[panel])
		}
		g.r.DrawHUD(g.char, g.messages)
		_, sh := g.screen.Size()
		g.r.Text(2, sh-6, "[Tab] buy/sell  [Enter] confirm  [q] back", render.Dim)
		g.r.Show()

		ev, ok := g.nextKey()
		if !ok {
			return
		}
		switch keyToNav(ev) {
		case navUp:
			cursors[panel] = move(cursors[panel], -1, len(labels))
		case navDown:
			cursors[panel] = move(cursors[panel], 1, len(labels))
		case navTab:
			panel = 1 - panel
		case navBack:
			return
		case navSelect:
			if len(labels) == 0 {
				continue
			}
			if panel == panelBuy {
				g.buy(stock[cursors[panelBuy]])
				continue
			}
			id := stacks[cursors[panelSell]].ItemID
			item, err := g.cat.Item(id)
			if err != nil {
				g.addMessage(errMessage(err))
				continue
			}
			g.sell(id, item)
		}
	}
}

func (g *Game) buy(item catalog.Item) {
	rc, err := shop.Purchase(g.char, item.ID, item)
	if err != nil {
		g.addMessage(errMessage(err))
		return
	}
	g.log.Info("item bought", "character", g.char.Name, "item", item.ID, "gold", rc.Gold)
	g.addMessage(rc.Summary)
}
