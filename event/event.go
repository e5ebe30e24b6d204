// Package event defines the closed event model delivered by the listener:
// keyboard input, periodic ticks, and application-defined user events.
package event

import "fmt"

// Kind discriminates the variants of Event.
type Kind uint8

const (
	// KindKeyboard is a key press converted by an input backend.
	KindKeyboard Kind = iota
	// KindTick is the periodic, payload-free clock event.
	KindTick
	// KindUser is an application-defined event produced by a custom source.
	KindUser
)

func (k Kind) String() string {
	switch k {
	case KindKeyboard:
		return "keyboard"
	case KindTick:
		return "tick"
	case KindUser:
		return "user"
	default:
		return "unknown"
	}
}

// Event is the closed union of events flowing out of the listener.
// U is the application-defined user event payload; it must be comparable
// so that events can be matched and deduplicated by consumers.
//
// Events are immutable values: they are produced once by the listener
// worker and never modified afterwards.
type Event[U comparable] struct {
	kind Kind
	key  KeyEvent
	user U
}

// NewKeyboard wraps a key press.
func NewKeyboard[U comparable](k KeyEvent) Event[U] {
	return Event[U]{kind: KindKeyboard, key: k}
}

// NewTick returns the periodic clock event.
func NewTick[U comparable]() Event[U] {
	return Event[U]{kind: KindTick}
}

// NewUser wraps an application-defined payload.
func NewUser[U comparable](u U) Event[U] {
	return Event[U]{kind: KindUser, user: u}
}

// Kind reports which variant the event holds.
func (e Event[U]) Kind() Kind { return e.kind }

// IsTick reports whether the event is a tick.
func (e Event[U]) IsTick() bool { return e.kind == KindTick }

// Keyboard returns the key press and true when the event is a keyboard event.
func (e Event[U]) Keyboard() (KeyEvent, bool) {
	if e.kind != KindKeyboard {
		return KeyEvent{}, false
	}
	return e.key, true
}

// User returns the payload and true when the event is a user event.
func (e Event[U]) User() (U, bool) {
	var zero U
	if e.kind != KindUser {
		return zero, false
	}
	return e.user, true
}

func (e Event[U]) String() string {
	switch e.kind {
	case KindKeyboard:
		return fmt.Sprintf("keyboard(%s)", e.key)
	case KindTick:
		return "tick"
	case KindUser:
		return fmt.Sprintf("user(%v)", e.user)
	default:
		return "unknown"
	}
}
