package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/eventide/adapters/fssource"
	"github.com/zjrosen/eventide/adapters/termsource"
	"github.com/zjrosen/eventide/event"
	"github.com/zjrosen/eventide/internal/config"
	"github.com/zjrosen/eventide/internal/log"
	"github.com/zjrosen/eventide/listener"
)

// FileChange is the demo's user event: one debounced file system change.
type FileChange struct {
	Path string
	Op   string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	tickStyle   = lipgloss.NewStyle().Faint(true)
	fileStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F2C94C"))
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	hintStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
)

// runViewer wires the configured sources into a listener and prints every
// event until the user quits. The terminal may be in raw mode, so every line
// ends with an explicit carriage return.
func runViewer(cfg config.Config) error {
	b := listener.NewCfg[FileChange]().
		PollTimeout(cfg.PollTimeout).
		TickInterval(cfg.TickInterval).
		StopTimeout(cfg.StopTimeout)

	if cfg.Input.Enabled {
		port, src, err := termsource.NewPort[FileChange](cfg.Input.Interval)
		if err != nil {
			return fmt.Errorf("starting keyboard source: %w", err)
		}
		defer func() { _ = src.Close() }()
		b.AddPort(port)
	}

	if cfg.Watch.Enabled {
		src, err := fssource.New(cfg.Watch.Paths, cfg.Watch.Debounce, func(ev fsnotify.Event) (FileChange, bool) {
			return FileChange{Path: ev.Name, Op: ev.Op.String()}, true
		})
		if err != nil {
			return fmt.Errorf("starting file-watch source: %w", err)
		}
		defer func() { _ = src.Close() }()
		b.Port(src, cfg.Watch.Interval)
	}

	l, err := b.Start()
	if err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	printLine(headerStyle.Render("eventide event stream"))
	printLine(hintStyle.Render("q or ctrl+c quits, p pauses, u resumes"))

	for {
		ev, err := l.Poll()
		switch {
		case errors.Is(err, listener.ErrListenerDied):
			printLine(errStyle.Render("listener died"))
			return err
		case err != nil:
			printLine(errStyle.Render(fmt.Sprintf("poll error: %v", err)))
			continue
		case ev == nil:
			continue
		}

		renderEvent(*ev)

		if key, ok := ev.Keyboard(); ok {
			switch {
			case key.Code == event.KeyRune && key.Rune == 'q' && key.Mods == event.ModNone:
				return l.Stop()
			case key.Code == event.KeyRune && key.Rune == 'c' && key.Mods == event.ModCtrl:
				return l.Stop()
			case key.Code == event.KeyRune && key.Rune == 'p' && key.Mods == event.ModNone:
				_ = l.Pause()
				printLine(hintStyle.Render("paused"))
			case key.Code == event.KeyRune && key.Rune == 'u' && key.Mods == event.ModNone:
				_ = l.Unpause()
				printLine(hintStyle.Render("resumed"))
			}
		}
	}
}

func renderEvent[U comparable](ev event.Event[U]) {
	switch ev.Kind() {
	case event.KindKeyboard:
		key, _ := ev.Keyboard()
		printLine(keyStyle.Render(fmt.Sprintf("key      %s", key)))
	case event.KindTick:
		printLine(tickStyle.Render("tick"))
	case event.KindUser:
		u, _ := ev.User()
		printLine(fileStyle.Render(fmt.Sprintf("file     %v", u)))
	}
	log.Debug(log.CatDemo, "event rendered", "event", ev)
}

// printLine writes with an explicit carriage return; raw mode disables the
// terminal's output post-processing.
func printLine(s string) {
	fmt.Printf("%s\r\n", s)
}
