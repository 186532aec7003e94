package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"quest-chronicles/internal/catalog"
	"quest-chronicles/internal/character"
	"quest-chronicles/internal/effect"
	"quest-chronicles/internal/equipment"
	"quest-chronicles/internal/quest"
	"quest-chronicles/internal/render"
	"quest-chronicles/internal/store"
	"time"

	"github.com/gdamore/tcell/v2"
)

// maxMessages bounds the message log kept for the HUD.
const maxMessages = 50

// Deps are the collaborators a Game runs against.
type Deps struct {
	Catalog    *catalog.Catalog
	Store      *store.Store // nil disables saving
	Logger     *slog.Logger
	Rand       *rand.Rand
	ReviveCost int // gold per level
}

// Game is the top-level orchestrator: menus, the per-character action loop
// and auto-saving.
type Game struct {
	screen tcell.Screen
	r      *render.Renderer
	poll   func() tcell.Event

	cat        *catalog.Catalog
	store      *store.Store
	chars      *character.Manager
	effects    *effect.Engine
	equip      *equipment.Manager
	quests     *quest.Tracker
	log        *slog.Logger
	rng        *rand.Rand
	reviveCost int

	char     *character.Character
	messages []string
}

// New creates a Game on the real terminal.
func New(deps Deps) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, deps), nil
}

// NewWithScreen creates a Game on an already initialised screen.
func NewWithScreen(screen tcell.Screen, deps Deps) *Game {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	var saver character.Saver
	if deps.Store != nil {
		saver = deps.Store
	}
	chars := character.NewManager(saver, logger)
	effects := effect.NewEngine(logger)
	return &Game{
		screen:     screen,
		r:          render.NewRenderer(screen),
		poll:       screen.PollEvent,
		cat:        deps.Catalog,
		store:      deps.Store,
		chars:      chars,
		effects:    effects,
		equip:      equipment.NewManager(effects),
		quests:     quest.NewTracker(deps.Catalog, chars),
		log:        logger,
		rng:        rng,
		reviveCost: deps.ReviveCost,
	}
}

// Run shows the main menu until the player quits.
func (g *Game) Run() {
	defer g.screen.Fini()
	for {
		switch g.runMainMenu() {
		case mainNew:
			if c := g.runNewCharacter(); c != nil {
				g.play(c)
			}
		case mainLoad:
			if c := g.runLoadCharacter(); c != nil {
				g.play(c)
			}
		default:
			return
		}
	}
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// errMessage formats a failed action for the player.
func errMessage(err error) string {
	return "Error: " + err.Error()
}

// play runs the game menu loop for c, auto-saving after every action.
func (g *Game) play(c *character.Character) {
	g.char = c
	g.messages = nil
	g.addMessage(fmt.Sprintf("Welcome, %s the %s!", c.Name, c.Class))
	g.log.Info("session started", "character", c.Name, "class", c.Class, "level", c.Level)
	defer func() { g.char = nil }()

	for {
		if g.char.IsDead() {
			if !g.runDeath() {
				return
			}
			g.autoSave()
			continue
		}
		switch g.runGameMenu() {
		case menuStats:
			g.runStats()
		case menuInventory:
			g.runInventory()
		case menuQuests:
			g.runQuests()
		case menuExplore:
			g.explore()
		case menuShop:
			g.runShop()
		default:
			if err := g.chars.Save(g.char); err != nil {
				g.addMessage(fmt.Sprintf("!! Failed to save game: %v !!", err))
			}
			return
		}
		g.autoSave()
	}
}

// autoSave persists the current character. A failure is reported and play
// continues.
func (g *Game) autoSave() {
	if err := g.chars.Save(g.char); err != nil {
		g.addMessage(fmt.Sprintf("!! Auto-save failed: %v !!", err))
	}
}

// itemName resolves an item id for display.
func (g *Game) itemName(id string) string {
	if it, err := g.cat.Item(id); err == nil {
		return render.Glyph(render.ItemGlyphs, string(it.Type)) + " " + it.DisplayName()
	}
	return id
}
