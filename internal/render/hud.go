package render

import (
	"fmt"
	"quest-chronicles/internal/character"
	"strings"
)

// Bar renders cur/total as a fixed-width gauge such as "[#####-----]".
func Bar(cur, total, width int) string {
	if width <= 0 {
		return "[]"
	}
	filled := 0
	if total > 0 && cur > 0 {
		filled = cur * width / total
		if filled == 0 {
			filled = 1
		}
		if filled > width {
			filled = width
		}
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// StatusLine summarises a character in one row. Strength and magic are shown
// floored at zero.
func StatusLine(c *character.Character) string {
	return fmt.Sprintf("%s %s [%s] Lv %d  HP %d/%d  STR %d  MAG %d  Gold %d",
		Glyph(ClassGlyphs, string(c.Class)), c.Name, c.Class, c.Level,
		c.Health, c.MaxHealth, max(0, c.Strength), max(0, c.Magic), c.Gold)
}

// DrawHUD renders the status bar and the last few messages at the bottom of
// the screen.
func (r *Renderer) DrawHUD(c *character.Character, messages []string) {
	_, sh := r.screen.Size()
	hudY := sh - 5

	r.HLine(hudY, Dim)
	if c != nil {
		r.Text(0, hudY+1, StatusLine(c), Normal)
	}
	start := len(messages) - 3
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.Text(0, hudY+2+i, msg, Log)
	}
}

// DrawLog renders the last n lines of a log from row y downwards.
func (r *Renderer) DrawLog(y, n int, lines []string) {
	start := len(lines) - n
	if start < 0 {
		start = 0
	}
	for i, l := range lines[start:] {
		r.Text(0, y+i, l, Log)
	}
}
