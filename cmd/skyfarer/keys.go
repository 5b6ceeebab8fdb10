package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skyfarer/input"
)

// keyFromEvent maps a terminal key event to a binding key
// Returns false for keys that have no binding name
func keyFromEvent(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyRune:
		return input.NormalizeKey(string(ev.Rune())), true
	}
	return "", false
}

// isQuit reports the exit chord: q, Esc or Ctrl+C
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
