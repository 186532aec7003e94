package render

import "github.com/gdamore/tcell/v2"

// Shared styles for every screen.
var (
	Title     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 100, 255)).Bold(true)
	Normal    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	Dim       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	Highlight = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(180, 100, 255))
	Stat      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 220, 255))
	Gold      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 200, 50))
	Good      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	Bad       = tcell.StyleDefault.Foreground(tcell.ColorRed)
	Log       = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
)

// Emoji are rendered by the terminal with their own colors, so each kind of
// thing gets a distinct glyph instead of a tint.
var (
	ClassGlyphs = map[string]string{
		"Warrior": "⚔️",
		"Mage":    "🔮",
		"Rogue":   "🗡️",
		"Cleric":  "✨",
	}
	EnemyGlyphs = map[string]string{
		"goblin": "👺",
		"orc":    "👹",
		"dragon": "🐉",
	}
	ItemGlyphs = map[string]string{
		"consumable": "🧪",
		"weapon":     "🪓",
		"armor":      "🛡️",
	}
)

// Glyph looks name up in m, falling back to a bullet.
func Glyph(m map[string]string, name string) string {
	if g, ok := m[name]; ok {
		return g
	}
	return "•"
}
