// Package listener multiplexes independently-paced event sources and a
// periodic tick into a single, ordered, consumer-pulled event stream.
//
// A Listener owns one background worker goroutine. The worker polls every
// registered Port at its own cadence, injects ticks, and fans everything
// into one FIFO channel. The consumer pulls from that channel with Poll,
// bounded by the configured poll timeout, and controls the worker with
// Pause, Unpause and Stop. The design is strictly single-producer,
// single-consumer: one worker writes, one caller reads.
package listener

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/zjrosen/eventide/event"
	"github.com/zjrosen/eventide/internal/log"
)

// Listener is the public handle over the worker goroutine. All methods are
// intended for a single consumer; Poll is the only one that blocks, and
// never longer than the poll timeout.
type Listener[U comparable] struct {
	pollTimeout time.Duration
	stopTimeout time.Duration // zero means wait for the worker indefinitely

	// running and paused are the only mutable state shared with the
	// worker besides the channel. The listener writes, the worker reads.
	running *ctrlFlag
	paused  *ctrlFlag

	msgs <-chan message[U]
	done <-chan struct{}

	cleanup runtime.Cleanup

	stopMu  sync.Mutex
	stopped bool
}

// Start spawns a listener over the given ports. pollTimeout bounds every
// Poll call and must be positive: a zero timeout could never distinguish
// "no event yet" from "timed out", so it is rejected with ErrCouldNotStart
// before any goroutine is spawned. tickInterval enables the periodic Tick
// event; zero disables it.
func Start[U comparable](ports []*Port[U], pollTimeout, tickInterval time.Duration) (*Listener[U], error) {
	return start(ports, pollTimeout, tickInterval, 0)
}

func start[U comparable](ports []*Port[U], pollTimeout, tickInterval, stopTimeout time.Duration) (*Listener[U], error) {
	if pollTimeout <= 0 {
		return nil, fmt.Errorf("%w: poll timeout must be positive", ErrCouldNotStart)
	}

	running := newCtrlFlag(true)
	paused := newCtrlFlag(false)
	msgs := make(chan message[U], msgBuffer)
	done := make(chan struct{})

	w := newWorker(ports, msgs, running, paused, tickInterval)
	go func() {
		defer close(done)
		w.run()
	}()

	l := &Listener[U]{
		pollTimeout: pollTimeout,
		stopTimeout: stopTimeout,
		running:     running,
		paused:      paused,
		msgs:        msgs,
		done:        done,
	}
	// If the handle is dropped without Stop, still request shutdown so the
	// worker goroutine is not leaked. The cleanup must not reference the
	// listener itself, only the flag the worker watches.
	l.cleanup = runtime.AddCleanup(l, func(f *ctrlFlag) { f.set(false) }, running)

	log.Info(log.CatListener, "listener started",
		"ports", len(ports), "poll_timeout", pollTimeout, "tick_interval", tickInterval)
	return l, nil
}

// Poll waits up to the poll timeout for the next event. It returns
// (nil, nil) when the timeout elapses with nothing pending, ErrListenerDied
// when the worker has ended and the channel is drained, and ErrPollFailed
// when a source failure message is delivered. Messages arrive in the exact
// order the worker produced them.
func (l *Listener[U]) Poll() (*event.Event[U], error) {
	timer := time.NewTimer(l.pollTimeout)
	defer timer.Stop()

	select {
	case m, ok := <-l.msgs:
		if !ok {
			return nil, ErrListenerDied
		}
		if m.err != nil {
			return nil, m.err
		}
		ev := m.ev
		return &ev, nil
	case <-timer.C:
		return nil, nil
	}
}

// Pause suspends port polling and tick delivery. The worker idles until
// Unpause; wall-clock time keeps counting toward the next tick. The error
// return is reserved for flag-write failures and is currently always nil.
func (l *Listener[U]) Pause() error {
	l.paused.set(true)
	log.Debug(log.CatListener, "listener paused")
	return nil
}

// Unpause resumes port polling and tick delivery.
func (l *Listener[U]) Unpause() error {
	l.paused.set(false)
	log.Debug(log.CatListener, "listener unpaused")
	return nil
}

// Stop requests worker termination and waits for it to exit. Stopping is
// cooperative: the worker notices the flag at the top of its next iteration,
// so an in-flight Poller call is never interrupted. Stop is idempotent; a
// second call after the worker finished returns nil. With a stop timeout
// configured (see Cfg.StopTimeout), Stop gives up after that long and
// returns ErrCouldNotStop; the worker may still be running.
func (l *Listener[U]) Stop() error {
	l.stopMu.Lock()
	defer l.stopMu.Unlock()

	if l.stopped {
		return nil
	}

	l.running.set(false)

	if l.stopTimeout > 0 {
		timer := time.NewTimer(l.stopTimeout)
		defer timer.Stop()
		select {
		case <-l.done:
		case <-timer.C:
			log.Warn(log.CatListener, "worker did not exit in time", "stop_timeout", l.stopTimeout)
			return fmt.Errorf("%w: worker did not exit within %s", ErrCouldNotStop, l.stopTimeout)
		}
	} else {
		<-l.done
	}

	l.stopped = true
	l.cleanup.Stop()
	log.Info(log.CatListener, "listener stopped")
	return nil
}

// Close is the defer-friendly teardown hook: it requests shutdown,
// best-effort joins the worker and swallows any error, since during implicit
// teardown there is no caller left to observe one.
func (l *Listener[U]) Close() error {
	_ = l.Stop()
	return nil
}
