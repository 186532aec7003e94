package game

import (
	"fmt"
	"quest-chronicles/internal/catalog"
	"quest-chronicles/internal/render"
)

const (
	panelAvailable = iota
	panelActive
	panelCompleted
	questPanels
)

var questTabs = [questPanels]string{" Available ", " Active ", " Completed "}

func questLabel(q catalog.Quest) string {
	return fmt.Sprintf("%s (Lv %d)  +%d XP +%dg  %s", q.Title, q.RequiredLevel, q.RewardXP, q.RewardGold, q.Description)
}

// runQuests lists available, active and completed quests; Tab cycles the
// panels. Enter accepts an available quest or completes an active one; x
// abandons an active one. The completed panel is read-only.
func (g *Game) runQuests() {
	panel := panelAvailable
	cursors := [questPanels]int{}
	for {
		lists := [questPanels][]catalog.Quest{
			g.quests.Available(g.char),
			g.quests.Active(g.char),
			g.quests.Completed(g.char),
		}
		for p := range lists {
			cursors[p] = clamp(cursors[p], len(lists[p]))
		}

		g.r.Clear()
		g.r.Text(2, 1, "📜 Quests", render.Title)
		g.r.Text(14, 1, g.quests.Progress(g.char).String(), render.Stat)

		x := 2
		for p, tab := range questTabs {
			st := render.Dim
			if p == panel {
				st = render.Highlight
			}
			x = g.r.Text(x, 3, tab, st) + 2
		}

		cur := lists[panel]
		if len(cur) == 0 {
			g.r.Text(4, 5, "No quests here.", render.Dim)
		} else {
			labels := make([]string, len(cur))
			for i, q := range cur {
				labels[i] = questLabel(q)
			}
			g.r.Menu(5, labels, cursors[panel])
		}
		g.r.DrawHUD(g.char, g.messages)
		_, sh := g.screen.Size()
		help := "[Tab] switch  [Enter] accept  [q] back"
		switch panel {
		case panelActive:
			help = "[Tab] switch  [Enter] complete  [x] abandon  [q] back"
		case panelCompleted:
			help = "[Tab] switch  [q] back"
		}
		g.r.Text(2, sh-6, help, render.Dim)
		g.r.Show()

		ev, ok := g.nextKey()
		if !ok {
			return
		}
		switch keyToNav(ev) {
		case navUp:
			cursors[panel] = move(cursors[panel], -1, len(cur))
			continue
		case navDown:
			cursors[panel] = move(cursors[panel], 1, len(cur))
			continue
		case navTab:
			panel = (panel + 1) % questPanels
			continue
		case navBack:
			return
		case navSelect:
			if len(cur) == 0 {
				continue
			}
			id := cur[cursors[panel]].ID
			switch panel {
			case panelAvailable:
				g.acceptQuest(id)
			case panelActive:
				g.completeQuest(id)
			}
			continue
		}
		if (ev.Rune() == 'x' || ev.Rune() == 'X') && panel == panelActive && len(cur) > 0 {
			msg, err := g.quests.Abandon(g.char, cur[cursors[panel]].ID)
			if err != nil {
				g.addMessage(errMessage(err))
				continue
			}
			g.addMessage(msg)
		}
	}
}

func (g *Game) acceptQuest(id string) {
	msg, err := g.quests.Accept(g.char, id)
	if err != nil {
		g.addMessage(errMessage(err))
		return
	}
	g.addMessage(msg)
}

func (g *Game) completeQuest(id string) {
	done, err := g.quests.Complete(g.char, id)
	if err != nil {
		g.addMessage(errMessage(err))
		return
	}
	g.addMessage(done.Summary)
	for _, lvl := range done.LevelsGained {
		g.addMessage(fmt.Sprintf("Level up! You are now level %d.", lvl))
	}
}
