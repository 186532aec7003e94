package game

import (
	"fmt"
	"quest-chronicles/internal/character"
	"quest-chronicles/internal/combat"
	"quest-chronicles/internal/render"
	"quest-chronicles/internal/store"
	"time"

	"github.com/gdamore/tcell/v2"
)

// battleLogRows is how many combat lines stay on screen.
const battleLogRows = 8

// ScreenDecider reads combat actions from the keyboard. Keys 1-3 pick an
// action; any other key is an invalid choice and wastes the turn.
type ScreenDecider struct {
	screen tcell.Screen
	poll   func() tcell.Event
	draw   func(combat.Status)
}

// NewScreenDecider builds a decider that redraws with draw before each read.
func NewScreenDecider(screen tcell.Screen, poll func() tcell.Event, draw func(combat.Status)) *ScreenDecider {
	return &ScreenDecider{screen: screen, poll: poll, draw: draw}
}

func (d *ScreenDecider) Decide(s combat.Status) combat.Action {
	for {
		if d.draw != nil {
			d.draw(s)
		}
		switch ev := d.poll().(type) {
		case nil:
			return combat.ActionInvalid
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() != tcell.KeyRune {
				return combat.ActionInvalid
			}
			return combat.ParseAction(ev.Rune())
		}
	}
}

// explore finds an enemy for the character's level and fights it.
func (g *Game) explore() {
	enemy := combat.EnemyForLevel(g.char.Level)
	var lines []string
	draw := func(s combat.Status) { g.drawBattle(s, lines) }

	b := combat.NewBattle(g.char, enemy,
		combat.WithRand(g.rng),
		combat.WithRewarder(g.chars),
		combat.WithEffects(g.effects),
		combat.WithLogger(g.log),
		combat.WithDecider(NewScreenDecider(g.screen, g.poll, draw)),
		combat.WithBattleLog(func(line string) { lines = append(lines, line) }),
	)
	res, err := b.Start()
	if err != nil {
		g.addMessage(errMessage(err))
		return
	}

	g.drawBattle(b.Status(), lines)
	_, sh := g.screen.Size()
	g.r.Text(2, sh-6, "Press any key to continue", render.Dim)
	g.r.Show()
	g.waitKey()

	g.addMessage(battleSummary(enemy, res))
	g.recordBattle(enemy, res)
}

func battleSummary(e *combat.Enemy, res combat.Result) string {
	switch res.Outcome {
	case combat.PlayerWon:
		return fmt.Sprintf("Defeated the %s: +%d XP, +%d gold.", e.Name, res.XPGained, res.GoldGained)
	case combat.Escaped:
		return fmt.Sprintf("Escaped from the %s.", e.Name)
	}
	return fmt.Sprintf("Fell to the %s.", e.Name)
}

func (g *Game) recordBattle(e *combat.Enemy, res combat.Result) {
	if g.store == nil {
		return
	}
	err := g.store.AppendBattle(store.BattleRecord{
		Time:       time.Now().UTC(),
		Character:  g.char.Name,
		Class:      string(g.char.Class),
		Level:      g.char.Level,
		Enemy:      e.Type,
		Outcome:    res.Outcome.String(),
		Turns:      res.Turns,
		XPGained:   res.XPGained,
		GoldGained: res.GoldGained,
	})
	if err != nil {
		g.log.Warn("battle history not written", "err", err)
	}
}

func (g *Game) drawBattle(s combat.Status, lines []string) {
	c, e := s.Character, s.Enemy
	g.r.Clear()
	g.r.Text(2, 1, fmt.Sprintf("%s %s  HP %d/%d %s", render.Glyph(render.EnemyGlyphs, e.Type), e.Name,
		e.Health, e.MaxHealth, render.Bar(e.Health, e.MaxHealth, 20)), render.Bad)
	g.r.Text(2, 2, fmt.Sprintf("%s %s  HP %d/%d %s", render.Glyph(render.ClassGlyphs, string(c.Class)), c.Name,
		c.Health, c.MaxHealth, render.Bar(c.Health, c.MaxHealth, 20)), render.Good)

	ability := "Special Ability"
	if def, ok := character.Definition(c.Class); ok {
		ability = def.Ability
	}
	if s.Cooldown > 0 {
		ability += fmt.Sprintf(" (cooldown %d)", s.Cooldown)
	}
	g.r.Text(2, 4, fmt.Sprintf("Turn %d", s.Turn), render.Stat)
	g.r.Menu(5, []string{"1. Basic Attack", "2. " + ability, "3. Try to Run"}, -1)
	g.r.DrawLog(9, battleLogRows, lines)
	g.r.Show()
}

// runDeath offers a paid revive. It returns false when the player gives up
// and the session should end.
func (g *Game) runDeath() bool {
	cost := g.char.ReviveCost(g.reviveCost)
	options := []string{
		fmt.Sprintf("Revive (%d gold)", cost),
		"Quit to main menu",
	}
	for {
		i := g.choose(options, 0, func() int {
			g.r.Center(1, "💀 You have fallen 💀", render.Bad)
			g.r.Center(2, fmt.Sprintf("You carry %d gold.", g.char.Gold), render.Gold)
			g.r.DrawLog(4, 2, g.messages)
			return 7
		})
		if i != 0 {
			g.log.Info("session ended by death", "character", g.char.Name, "level", g.char.Level)
			return false
		}
		if err := g.char.Revive(g.reviveCost); err != nil {
			g.addMessage(errMessage(err))
			continue
		}
		g.addMessage(fmt.Sprintf("You are revived for %d gold.", cost))
		return true
	}
}
