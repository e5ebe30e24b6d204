package termsource

import (
	"unicode/utf8"

	"github.com/zjrosen/eventide/event"
)

// decodeKeys converts a raw chunk read from the terminal into key events.
// Unrecognized escape sequences are skipped rather than leaked as garbage
// runes.
func decodeKeys(buf []byte) []event.KeyEvent {
	var keys []event.KeyEvent
	for len(buf) > 0 {
		k, n := decodeOne(buf)
		buf = buf[n:]
		if k != nil {
			keys = append(keys, *k)
		}
	}
	return keys
}

// decodeOne decodes a single key from the front of buf and returns how many
// bytes it consumed. It always consumes at least one byte.
func decodeOne(buf []byte) (*event.KeyEvent, int) {
	if buf[0] == 0x1b {
		return decodeEscape(buf)
	}
	return decodePlain(buf)
}

func decodePlain(buf []byte) (*event.KeyEvent, int) {
	b := buf[0]
	switch {
	case b == 0x00:
		return key(event.NewKeyEvent(event.KeyNull)), 1
	case b == '\r', b == '\n':
		return key(event.NewKeyEvent(event.KeyEnter)), 1
	case b == '\t':
		return key(event.NewKeyEvent(event.KeyTab)), 1
	case b == 0x7f, b == 0x08:
		return key(event.NewKeyEvent(event.KeyBackspace)), 1
	case b < 0x20:
		// Remaining control bytes map onto ctrl+letter.
		return key(event.NewRuneEvent(rune('a' + b - 1)).With(event.ModCtrl)), 1
	default:
		r, n := utf8.DecodeRune(buf)
		if r == utf8.RuneError && n <= 1 {
			return nil, 1
		}
		return key(event.NewRuneEvent(r)), n
	}
}

func decodeEscape(buf []byte) (*event.KeyEvent, int) {
	if len(buf) == 1 {
		return key(event.NewKeyEvent(event.KeyEsc)), 1
	}
	switch buf[1] {
	case '[':
		return decodeCSI(buf)
	case 'O':
		return decodeSS3(buf)
	default:
		// ESC prefix on a plain key means alt was held.
		k, n := decodePlain(buf[1:])
		if k == nil {
			return nil, n + 1
		}
		alt := k.With(event.ModAlt)
		return &alt, n + 1
	}
}

// decodeSS3 handles the two-byte SS3 sequences (ESC O x) used for F1-F4.
func decodeSS3(buf []byte) (*event.KeyEvent, int) {
	if len(buf) < 3 {
		return nil, len(buf)
	}
	switch buf[2] {
	case 'P':
		return key(event.NewKeyEvent(event.KeyF1)), 3
	case 'Q':
		return key(event.NewKeyEvent(event.KeyF2)), 3
	case 'R':
		return key(event.NewKeyEvent(event.KeyF3)), 3
	case 'S':
		return key(event.NewKeyEvent(event.KeyF4)), 3
	default:
		return nil, 3
	}
}

// decodeCSI handles ESC [ params final. Parameters are semicolon-separated
// decimal numbers; the second one, when present, is the xterm modifier code.
func decodeCSI(buf []byte) (*event.KeyEvent, int) {
	// Find the final byte (0x40-0x7e).
	i := 2
	for i < len(buf) && (buf[i] < 0x40 || buf[i] > 0x7e) {
		i++
	}
	if i >= len(buf) {
		// Truncated sequence; swallow what we have.
		return nil, len(buf)
	}
	final := buf[i]
	params := parseParams(buf[2:i])
	consumed := i + 1

	mods := event.ModNone
	if len(params) >= 2 && params[1] > 0 {
		mods = xtermMods(params[1])
	}

	var ev event.KeyEvent
	switch final {
	case 'A':
		ev = event.NewKeyEvent(event.KeyUp)
	case 'B':
		ev = event.NewKeyEvent(event.KeyDown)
	case 'C':
		ev = event.NewKeyEvent(event.KeyRight)
	case 'D':
		ev = event.NewKeyEvent(event.KeyLeft)
	case 'H':
		ev = event.NewKeyEvent(event.KeyHome)
	case 'F':
		ev = event.NewKeyEvent(event.KeyEnd)
	case 'Z':
		ev = event.NewKeyEvent(event.KeyBackTab)
	case '~':
		code, ok := tildeKeys[firstParam(params)]
		if !ok {
			return nil, consumed
		}
		ev = event.NewKeyEvent(code)
	default:
		return nil, consumed
	}

	ev = ev.With(mods)
	return &ev, consumed
}

// tildeKeys maps the leading CSI parameter of "ESC [ n ~" sequences.
var tildeKeys = map[int]event.Key{
	1:  event.KeyHome,
	2:  event.KeyInsert,
	3:  event.KeyDelete,
	4:  event.KeyEnd,
	5:  event.KeyPageUp,
	6:  event.KeyPageDown,
	15: event.KeyF5,
	17: event.KeyF6,
	18: event.KeyF7,
	19: event.KeyF8,
	20: event.KeyF9,
	21: event.KeyF10,
	23: event.KeyF11,
	24: event.KeyF12,
}

// xtermMods converts the xterm modifier parameter (value-1 is a bitmask:
// 1=shift, 2=alt, 4=ctrl).
func xtermMods(param int) event.Mod {
	bits := param - 1
	var m event.Mod
	if bits&1 != 0 {
		m |= event.ModShift
	}
	if bits&2 != 0 {
		m |= event.ModAlt
	}
	if bits&4 != 0 {
		m |= event.ModCtrl
	}
	return m
}

func parseParams(raw []byte) []int {
	if len(raw) == 0 {
		return nil
	}
	var params []int
	cur, seen := 0, false
	for _, b := range raw {
		switch {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
			seen = true
		case b == ';':
			params = append(params, cur)
			cur, seen = 0, false
		}
	}
	if seen {
		params = append(params, cur)
	}
	return params
}

func firstParam(params []int) int {
	if len(params) == 0 {
		return 0
	}
	return params[0]
}

func key(k event.KeyEvent) *event.KeyEvent { return &k }
