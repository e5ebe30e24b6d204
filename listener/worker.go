package listener

import (
	"time"

	"github.com/zjrosen/eventide/event"
	"github.com/zjrosen/eventide/internal/log"
)

// message is the channel payload flowing from the worker to the listener.
// A non-nil err marks a failure; otherwise ev carries a tick, keyboard or
// user event. Exactly one of the two is meaningful.
type message[U comparable] struct {
	ev  event.Event[U]
	err error
}

const (
	// msgBuffer bounds the handoff channel. A full buffer means the
	// consumer stopped reading; sends then drop instead of stalling the
	// scheduling loop.
	msgBuffer = 64

	// minSleep and maxSleep clamp the inter-iteration yield. The cap keeps
	// stop latency bounded even when every configured interval is long.
	minSleep = time.Millisecond
	maxSleep = 50 * time.Millisecond

	// pausedSleep is the idle cadence while the paused flag is set.
	pausedSleep = 25 * time.Millisecond
)

// worker owns the ports and the tick schedule. It runs on a dedicated
// goroutine, reads the shared control flags every iteration, and is the only
// writer of the message channel. Ports and the tick timestamps are
// worker-private after construction.
type worker[U comparable] struct {
	ports        []*Port[U]
	msgs         chan message[U]
	running      *ctrlFlag
	paused       *ctrlFlag
	tickInterval time.Duration
	lastTick     time.Time
}

func newWorker[U comparable](ports []*Port[U], msgs chan message[U], running, paused *ctrlFlag, tickInterval time.Duration) *worker[U] {
	return &worker[U]{
		ports:        ports,
		msgs:         msgs,
		running:      running,
		paused:       paused,
		tickInterval: tickInterval,
	}
}

// run is the scheduling loop. It exits when the running flag goes false and
// closes the message channel on the way out, which is how the listener
// distinguishes a finished worker from a quiet one.
func (w *worker[U]) run() {
	defer close(w.msgs)
	log.Debug(log.CatWorker, "worker started", "ports", len(w.ports), "tick", w.tickInterval)

	for w.running.get() {
		if w.paused.get() {
			// Ports and tick are neither evaluated nor advanced while
			// paused, but wall-clock time keeps accumulating: resuming
			// after a long pause fires an overdue tick immediately.
			time.Sleep(pausedSleep)
			continue
		}

		now := time.Now()
		w.pollPorts(now)
		if w.shouldTick(now) {
			w.tick(now)
		}

		time.Sleep(w.sleepFor(time.Now()))
	}

	log.Debug(log.CatWorker, "worker stopped")
}

// pollPorts polls every due port once, in registration order.
func (w *worker[U]) pollPorts(now time.Time) {
	for _, p := range w.ports {
		if !p.due(now) {
			continue
		}
		ev, err := p.poll(now)
		switch {
		case err != nil:
			// A failing source must not take down polling for the
			// others: surface one error and keep the loop alive.
			log.ErrorErr(log.CatPort, "poll failed", err, "port", p.ID())
			w.send(message[U]{err: ErrPollFailed})
		case ev != nil:
			w.send(message[U]{ev: *ev})
		}
	}
}

// shouldTick reports whether the tick schedule is due. The check is
// inclusive, and a worker that has never ticked is due immediately.
func (w *worker[U]) shouldTick(now time.Time) bool {
	if w.tickInterval <= 0 {
		return false
	}
	if w.lastTick.IsZero() {
		return true
	}
	return now.Sub(w.lastTick) >= w.tickInterval
}

func (w *worker[U]) tick(now time.Time) {
	w.lastTick = now
	w.send(message[U]{ev: event.NewTick[U]()})
}

// send delivers best-effort. Dropping beats blocking here: a single slow
// consumer must not starve the other ports of their polling cadence.
func (w *worker[U]) send(m message[U]) {
	select {
	case w.msgs <- m:
	default:
		log.Warn(log.CatWorker, "message dropped, consumer not reading", "event", m.ev)
	}
}

// sleepFor computes the next yield: long enough to avoid spinning, short
// enough that no port or tick due-time is checked coarser than its interval.
func (w *worker[U]) sleepFor(now time.Time) time.Duration {
	d := maxSleep
	if w.tickInterval > 0 {
		if until := w.tickInterval - now.Sub(w.lastTick); until < d {
			d = until
		}
	}
	for _, p := range w.ports {
		if until := p.nextDue(now); until < d {
			d = until
		}
	}
	if d < minSleep {
		d = minSleep
	}
	return d
}
