// Package fssource adapts file system notifications into a listener event
// source. Change bursts are debounced before delivery so one save that
// touches a file several times surfaces as a single user event.
package fssource

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/eventide/event"
	"github.com/zjrosen/eventide/internal/log"
)

const eventBuffer = 16

// Convert turns a raw fsnotify event into the application's user event.
// Returning false drops the event (for filtering by name or operation).
type Convert[U comparable] func(fsnotify.Event) (U, bool)

// Source watches a set of paths and reports debounced change events through
// the non-blocking Poll contract.
type Source[U comparable] struct {
	watcher  *fsnotify.Watcher
	convert  Convert[U]
	debounce time.Duration

	events chan U
	errs   chan error
	done   chan struct{}

	closeOnce sync.Once
}

// New starts watching the given paths. Directories watch their direct
// entries, matching fsnotify semantics.
func New[U comparable](paths []string, debounce time.Duration, convert Convert[U]) (*Source[U], error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	for _, p := range paths {
		if err := fsw.Add(p); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", p, err)
		}
	}

	s := &Source[U]{
		watcher:  fsw,
		convert:  convert,
		debounce: debounce,
		events:   make(chan U, eventBuffer),
		errs:     make(chan error, 1),
		done:     make(chan struct{}),
	}
	go s.loop()

	log.Debug(log.CatAdapter, "fs source started", "paths", len(paths), "debounce", debounce)
	return s, nil
}

// loop converts and debounces raw notifications. The latest converted event
// within a burst wins; it is flushed when the debounce timer fires.
func (s *Source[U]) loop() {
	var (
		timer   *time.Timer
		pending U
		armed   bool
	)

	for {
		select {
		case raw, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			ev, keep := s.convert(raw)
			if !keep {
				continue
			}
			pending = ev
			armed = true
			if s.debounce <= 0 {
				s.deliver(pending)
				armed = false
				continue
			}
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(s.debounce)
			}

		case <-func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}():
			if armed {
				s.deliver(pending)
				armed = false
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			select {
			case s.errs <- err:
			default:
			}

		case <-s.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (s *Source[U]) deliver(ev U) {
	select {
	case s.events <- ev:
	default:
		log.Warn(log.CatAdapter, "fs event dropped, buffer full")
	}
}

// Poll reports the next debounced change, if any. Watcher errors surface
// once per occurrence without stopping the source.
func (s *Source[U]) Poll() (*event.Event[U], error) {
	select {
	case err := <-s.errs:
		return nil, fmt.Errorf("watching files: %w", err)
	case u := <-s.events:
		ev := event.NewUser(u)
		return &ev, nil
	default:
		return nil, nil
	}
}

// Close stops the watcher and the conversion loop. Safe to call more than
// once.
func (s *Source[U]) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.watcher.Close()
		log.Debug(log.CatAdapter, "fs source closed")
	})
	return err
}
