package game

import (
	"errors"
	"fmt"
	"quest-chronicles/internal/character"
	"quest-chronicles/internal/gameerr"
	"quest-chronicles/internal/render"
	"strings"

	"github.com/gdamore/tcell/v2"
)

type mainChoice int

const (
	mainNew mainChoice = iota
	mainLoad
	mainQuit
)

var mainOptions = []string{"New Game", "Load Game", "Quit"}

type menuChoice int

const (
	menuStats menuChoice = iota
	menuInventory
	menuQuests
	menuExplore
	menuShop
	menuSaveQuit
)

var gameOptions = []string{
	"View Character Stats",
	"View Inventory",
	"Quest Menu",
	"Explore (Find Battles)",
	"Shop",
	"Save and Quit",
}

const maxNameLen = 24

// choose runs a vertical menu and returns the picked index, or -1 when the
// player backs out. draw renders everything except the options themselves
// and returns the row the options start on.
func (g *Game) choose(options []string, cursor int, draw func() int) int {
	for {
		g.r.Clear()
		y := draw()
		g.r.Menu(y, options, cursor)
		g.r.Show()

		ev, ok := g.nextKey()
		if !ok {
			return -1
		}
		if i, ok := digitKey(ev); ok && i < len(options) {
			return i
		}
		switch keyToNav(ev) {
		case navUp:
			cursor = move(cursor, -1, len(options))
		case navDown:
			cursor = move(cursor, 1, len(options))
		case navSelect:
			return cursor
		case navBack:
			return -1
		}
	}
}

func (g *Game) runMainMenu() mainChoice {
	i := g.choose(mainOptions, 0, func() int {
		g.r.Center(1, "⚔️  QUEST CHRONICLES  ⚔️", render.Title)
		g.r.Center(2, "a text adventure", render.Dim)
		g.r.DrawLog(4, 3, g.messages)
		return 8
	})
	if i < 0 {
		return mainQuit
	}
	return mainChoice(i)
}

func (g *Game) runGameMenu() menuChoice {
	i := g.choose(gameOptions, 0, func() int {
		g.r.Text(2, 1, "What would you like to do?", render.Title)
		g.r.DrawHUD(g.char, g.messages)
		return 3
	})
	if i < 0 {
		return menuSaveQuit
	}
	return menuChoice(i)
}

// runNewCharacter walks class selection and naming, and saves the new
// character. It returns nil when the player backs out or the name is taken.
func (g *Game) runNewCharacter() *character.Character {
	class, ok := g.runClassSelect()
	if !ok {
		return nil
	}
	name, ok := g.prompt("Name your " + string(class) + ":")
	if !ok {
		return nil
	}
	if g.store != nil {
		// any answer other than NotFound means a file holds this name,
		// readable or not
		if _, err := g.store.Load(name); !errors.Is(err, gameerr.ErrNotFound) {
			g.addMessage(fmt.Sprintf("A save named %q already exists.", name))
			return nil
		}
	}
	c, err := character.New(name, class)
	if err != nil {
		g.addMessage(errMessage(err))
		return nil
	}
	if err := g.chars.Save(c); err != nil {
		g.addMessage(fmt.Sprintf("!! Failed to save game: %v !!", err))
	}
	g.log.Info("character created", "character", c.Name, "class", c.Class)
	return c
}

// runClassSelect shows each class with its starting stats.
func (g *Game) runClassSelect() (character.Class, bool) {
	labels := make([]string, len(character.Classes))
	for i, cl := range character.Classes {
		def, _ := character.Definition(cl)
		labels[i] = fmt.Sprintf("%s %-8s HP %3d  STR %2d  MAG %2d  %s",
			render.Glyph(render.ClassGlyphs, string(cl)), cl, def.MaxHealth, def.Strength, def.Magic, def.Ability)
	}
	i := g.choose(labels, 0, func() int {
		g.r.Center(1, "Choose your class", render.Title)
		return 3
	})
	if i < 0 {
		return "", false
	}
	return character.Classes[i], true
}

// prompt reads a single line of text. ok is false on Esc.
func (g *Game) prompt(title string) (string, bool) {
	var buf []rune
	for {
		g.r.Clear()
		g.r.Text(2, 1, title, render.Title)
		g.r.Text(2, 3, "> "+string(buf)+"_", render.Normal)
		g.r.Text(2, 5, "[Enter] confirm  [Esc] cancel", render.Dim)
		g.r.Show()

		ev, ok := g.nextKey()
		if !ok {
			return "", false
		}
		switch ev.Key() {
		case tcell.KeyEscape:
			return "", false
		case tcell.KeyEnter:
			if s := strings.TrimSpace(string(buf)); s != "" {
				return s, true
			}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case tcell.KeyRune:
			if len(buf) < maxNameLen {
				buf = append(buf, ev.Rune())
			}
		}
	}
}

// runLoadCharacter lists the saves and loads the picked one.
func (g *Game) runLoadCharacter() *character.Character {
	if g.store == nil {
		g.addMessage("Saving is disabled.")
		return nil
	}
	entries, err := g.store.List()
	if err != nil {
		g.addMessage(errMessage(err))
		return nil
	}
	if len(entries) == 0 {
		g.addMessage("No saved characters found.")
		return nil
	}
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = fmt.Sprintf("%s %s (Level %d %s)", render.Glyph(render.ClassGlyphs, string(e.Class)), e.Name, e.Level, e.Class)
	}
	i := g.choose(labels, 0, func() int {
		g.r.Center(1, "Load a character", render.Title)
		return 3
	})
	if i < 0 {
		return nil
	}
	c, err := g.store.Load(entries[i].Name)
	if err != nil {
		switch {
		case errors.Is(err, gameerr.ErrNotFound):
			g.addMessage(fmt.Sprintf("Save %q has disappeared.", entries[i].Name))
		default:
			g.addMessage(errMessage(err))
		}
		return nil
	}
	return c
}
