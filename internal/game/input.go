package game

import "github.com/gdamore/tcell/v2"

// navKey is a menu navigation intent.
type navKey uint8

const (
	navNone navKey = iota
	navUp
	navDown
	navSelect
	navBack
	navTab
)

// keyToNav maps a tcell key event to a menu navigation intent.
func keyToNav(ev *tcell.EventKey) navKey {
	switch ev.Key() {
	case tcell.KeyUp:
		return navUp
	case tcell.KeyDown:
		return navDown
	case tcell.KeyEnter:
		return navSelect
	case tcell.KeyEscape:
		return navBack
	case tcell.KeyTab:
		return navTab
	}
	switch ev.Rune() {
	case 'k', 'K':
		return navUp
	case 'j', 'J':
		return navDown
	case 'q', 'Q':
		return navBack
	}
	return navNone
}

// digitKey returns the 0-based index for keys '1'-'9'.
func digitKey(ev *tcell.EventKey) (int, bool) {
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}
	r := ev.Rune()
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

// move shifts cursor by delta, wrapping within n entries.
func move(cursor, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((cursor+delta)%n + n) % n
}

// clamp keeps cursor inside a list of n entries.
func clamp(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// nextKey waits for the next key press, handling resizes. ok is false when
// the screen has been shut down.
func (g *Game) nextKey() (ev *tcell.EventKey, ok bool) {
	for {
		switch ev := g.poll().(type) {
		case nil:
			return nil, false
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			return ev, true
		}
	}
}

// waitKey blocks until any key is pressed.
func (g *Game) waitKey() {
	g.nextKey()
}
