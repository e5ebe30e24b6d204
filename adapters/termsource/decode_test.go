package termsource

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/eventide/event"
)

func TestDecodeKeys_PlainRunes(t *testing.T) {
	keys := decodeKeys([]byte("ab"))
	require.Equal(t, []event.KeyEvent{
		event.NewRuneEvent('a'),
		event.NewRuneEvent('b'),
	}, keys)
}

func TestDecodeKeys_Utf8(t *testing.T) {
	keys := decodeKeys([]byte("é"))
	require.Equal(t, []event.KeyEvent{event.NewRuneEvent('é')}, keys)
}

func TestDecodeKeys_ControlBytes(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want event.KeyEvent
	}{
		{"enter", []byte{'\r'}, event.NewKeyEvent(event.KeyEnter)},
		{"newline is enter", []byte{'\n'}, event.NewKeyEvent(event.KeyEnter)},
		{"tab", []byte{'\t'}, event.NewKeyEvent(event.KeyTab)},
		{"backspace del", []byte{0x7f}, event.NewKeyEvent(event.KeyBackspace)},
		{"backspace bs", []byte{0x08}, event.NewKeyEvent(event.KeyBackspace)},
		{"null", []byte{0x00}, event.NewKeyEvent(event.KeyNull)},
		{"ctrl+a", []byte{0x01}, event.NewRuneEvent('a').With(event.ModCtrl)},
		{"ctrl+z", []byte{0x1a}, event.NewRuneEvent('z').With(event.ModCtrl)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := decodeKeys(tt.in)
			require.Equal(t, []event.KeyEvent{tt.want}, keys)
		})
	}
}

func TestDecodeKeys_EscapeSequences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want event.KeyEvent
	}{
		{"bare esc", "\x1b", event.NewKeyEvent(event.KeyEsc)},
		{"up", "\x1b[A", event.NewKeyEvent(event.KeyUp)},
		{"down", "\x1b[B", event.NewKeyEvent(event.KeyDown)},
		{"right", "\x1b[C", event.NewKeyEvent(event.KeyRight)},
		{"left", "\x1b[D", event.NewKeyEvent(event.KeyLeft)},
		{"home", "\x1b[H", event.NewKeyEvent(event.KeyHome)},
		{"end", "\x1b[F", event.NewKeyEvent(event.KeyEnd)},
		{"backtab", "\x1b[Z", event.NewKeyEvent(event.KeyBackTab)},
		{"insert", "\x1b[2~", event.NewKeyEvent(event.KeyInsert)},
		{"delete", "\x1b[3~", event.NewKeyEvent(event.KeyDelete)},
		{"pgup", "\x1b[5~", event.NewKeyEvent(event.KeyPageUp)},
		{"pgdown", "\x1b[6~", event.NewKeyEvent(event.KeyPageDown)},
		{"f1", "\x1bOP", event.NewKeyEvent(event.KeyF1)},
		{"f4", "\x1bOS", event.NewKeyEvent(event.KeyF4)},
		{"f5", "\x1b[15~", event.NewKeyEvent(event.KeyF5)},
		{"f12", "\x1b[24~", event.NewKeyEvent(event.KeyF12)},
		{"ctrl+right", "\x1b[1;5C", event.NewKeyEvent(event.KeyRight).With(event.ModCtrl)},
		{"shift+up", "\x1b[1;2A", event.NewKeyEvent(event.KeyUp).With(event.ModShift)},
		{"alt+delete", "\x1b[3;3~", event.NewKeyEvent(event.KeyDelete).With(event.ModAlt)},
		{"alt+x", "\x1bx", event.NewRuneEvent('x').With(event.ModAlt)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := decodeKeys([]byte(tt.in))
			require.Equal(t, []event.KeyEvent{tt.want}, keys)
		})
	}
}

func TestDecodeKeys_MixedBuffer(t *testing.T) {
	keys := decodeKeys([]byte("q\x1b[A\r"))
	require.Equal(t, []event.KeyEvent{
		event.NewRuneEvent('q'),
		event.NewKeyEvent(event.KeyUp),
		event.NewKeyEvent(event.KeyEnter),
	}, keys)
}

func TestDecodeKeys_UnknownSequenceSkipped(t *testing.T) {
	// An unrecognized CSI final byte is swallowed without leaking runes.
	keys := decodeKeys([]byte("\x1b[99Xq"))
	require.Equal(t, []event.KeyEvent{event.NewRuneEvent('q')}, keys)
}

func TestDecodeKeys_Empty(t *testing.T) {
	require.Empty(t, decodeKeys(nil))
}