package event

import (
	"fmt"
	"strings"
)

// Key identifies a key on the keyboard. Printable characters use KeyRune
// with the rune carried alongside in KeyEvent.
type Key uint16

const (
	KeyNull Key = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyTab
	KeyBackTab
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyNull:      "null",
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyBackTab:   "backtab",
	KeyEsc:       "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Mod is a bitmask of key modifiers.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
)

// ModNone means no modifier is held.
const ModNone Mod = 0

func (m Mod) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// KeyEvent is a single decoded key press.
type KeyEvent struct {
	Code Key
	Rune rune // set only when Code is KeyRune
	Mods Mod
}

// NewKeyEvent returns a key event for a non-printable key.
func NewKeyEvent(code Key) KeyEvent {
	return KeyEvent{Code: code}
}

// NewRuneEvent returns a key event for a printable character.
func NewRuneEvent(r rune) KeyEvent {
	return KeyEvent{Code: KeyRune, Rune: r}
}

// With returns a copy of the event with the given modifiers added.
func (k KeyEvent) With(m Mod) KeyEvent {
	k.Mods |= m
	return k
}

func (k KeyEvent) String() string {
	name := k.Code.String()
	if k.Code == KeyRune {
		name = string(k.Rune)
	}
	if mods := k.Mods.String(); mods != "" {
		return fmt.Sprintf("%s+%s", mods, name)
	}
	return name
}
