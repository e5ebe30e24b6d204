// Package termsource provides the default keyboard input backend: it puts
// stdin into raw mode, pumps bytes on a private goroutine and decodes them
// into key events. Poll never blocks; it drains a buffered channel filled by
// the pump, which is what makes a blocking file descriptor usable behind the
// non-blocking Poller contract.
package termsource

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"

	"github.com/zjrosen/eventide/event"
	"github.com/zjrosen/eventide/internal/log"
	"github.com/zjrosen/eventide/listener"
)

const keyBuffer = 64

// Source reads key presses from stdin. It owns the terminal's raw mode for
// its lifetime; Close restores the previous state and unblocks the pump via
// the cancel reader, so no goroutine outlives the source.
type Source[U comparable] struct {
	fd     int
	state  *term.State
	reader cancelreader.CancelReader

	keys    chan event.KeyEvent
	readErr chan error

	closeOnce sync.Once
}

// New puts stdin into raw mode and starts the read pump.
// Fails when stdin is not a terminal.
func New[U comparable]() (*Source[U], error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}

	reader, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		_ = term.Restore(fd, state)
		return nil, fmt.Errorf("creating cancel reader: %w", err)
	}

	s := &Source[U]{
		fd:      fd,
		state:   state,
		reader:  reader,
		keys:    make(chan event.KeyEvent, keyBuffer),
		readErr: make(chan error, 1),
	}
	go s.pump()

	log.Debug(log.CatAdapter, "terminal source started")
	return s, nil
}

// NewPort is a convenience wrapping a fresh terminal source in a listener
// port with the given polling interval. The source is returned too so the
// caller can Close it after stopping the listener.
func NewPort[U comparable](interval time.Duration) (*listener.Port[U], *Source[U], error) {
	s, err := New[U]()
	if err != nil {
		return nil, nil, err
	}
	return listener.NewPort[U](s, interval), s, nil
}

// pump moves bytes from the raw terminal into the key channel until the
// reader is canceled. Decoded keys that find the buffer full are dropped;
// a consumer that far behind has bigger problems than a lost key.
func (s *Source[U]) pump() {
	buf := make([]byte, 256)
	for {
		n, err := s.reader.Read(buf)
		if err != nil {
			if errors.Is(err, cancelreader.ErrCanceled) {
				return
			}
			select {
			case s.readErr <- err:
			default:
			}
			return
		}
		for _, k := range decodeKeys(buf[:n]) {
			select {
			case s.keys <- k:
			default:
				log.Warn(log.CatAdapter, "key dropped, buffer full", "key", k)
			}
		}
	}
}

// Poll reports the next buffered key press, if any. A read error from the
// pump is surfaced once and the source is considered dead afterwards.
func (s *Source[U]) Poll() (*event.Event[U], error) {
	select {
	case err := <-s.readErr:
		return nil, fmt.Errorf("reading terminal input: %w", err)
	case k := <-s.keys:
		ev := event.NewKeyboard[U](k)
		return &ev, nil
	default:
		return nil, nil
	}
}

// Close cancels the read pump and restores the terminal state. Safe to call
// more than once.
func (s *Source[U]) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.reader.Cancel()
		err = term.Restore(s.fd, s.state)
		log.Debug(log.CatAdapter, "terminal source closed")
	})
	return err
}
