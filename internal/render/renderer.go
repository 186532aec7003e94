// Package render draws text menus, status lines and battle logs onto a tcell
// screen. Widths are measured in terminal columns, so emoji and other wide
// runes line up.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Clear blanks the screen.
func (r *Renderer) Clear() { r.screen.Clear() }

// Show flushes pending drawing to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// Text writes s at (x, y), clipped at the right edge. It returns the column
// after the last cell written.
func (r *Renderer) Text(x, y int, s string, st tcell.Style) int {
	sw, _ := r.screen.Size()
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > sw {
			break
		}
		r.screen.SetContent(x, y, ch, nil, st)
		if w == 2 {
			// Fill the second column to avoid rendering artifacts.
			r.screen.SetContent(x+1, y, ' ', nil, st)
		}
		x += w
	}
	return x
}

// Center writes s horizontally centred on row y.
func (r *Renderer) Center(y int, s string, st tcell.Style) {
	sw, _ := r.screen.Size()
	x := (sw - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	r.Text(x, y, s, st)
}

// HLine draws a full-width separator on row y.
func (r *Renderer) HLine(y int, st tcell.Style) {
	sw, _ := r.screen.Size()
	for x := 0; x < sw; x++ {
		r.screen.SetContent(x, y, '─', nil, st)
	}
}

// Menu draws numbered options starting at row y, highlighting cursor.
// It returns the row after the last option.
func (r *Renderer) Menu(y int, options []string, cursor int) int {
	for i, opt := range options {
		st, pfx := Normal, "  "
		if i == cursor {
			st, pfx = Highlight, "► "
		}
		r.Text(2, y+i, pfx+opt, st)
	}
	return y + len(options)
}

// Pad fits s into exactly width columns, truncating with "…" if needed.
func Pad(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
