package listener

import (
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/eventide/event"
)

// Port binds one Poller to its own polling cadence. The worker is the sole
// driver after construction: it asks whether the port is due and polls it,
// stamping the due-timer. Ports are never shared between listeners.
type Port[U comparable] struct {
	id       uuid.UUID
	src      Poller[U]
	interval time.Duration
	lastPoll time.Time
}

// NewPort wraps src with the given polling interval. A zero interval is
// legal and means "poll every loop iteration"; it is wasteful, not invalid.
func NewPort[U comparable](src Poller[U], interval time.Duration) *Port[U] {
	return &Port[U]{
		id:       uuid.New(),
		src:      src,
		interval: interval,
	}
}

// ID identifies the port in log fields.
func (p *Port[U]) ID() uuid.UUID { return p.id }

// Interval returns the polling cadence set at construction.
func (p *Port[U]) Interval() time.Duration { return p.interval }

// due reports whether enough time has elapsed since the last poll.
// A port that has never been polled is always due.
func (p *Port[U]) due(now time.Time) bool {
	if p.lastPoll.IsZero() {
		return true
	}
	return now.Sub(p.lastPoll) >= p.interval
}

// poll invokes the source once and resets the due-timer. The timer resets
// on every outcome: no event, one event, or failure.
func (p *Port[U]) poll(now time.Time) (*event.Event[U], error) {
	p.lastPoll = now
	return p.src.Poll()
}

// nextDue returns the time remaining until the port is due again.
// Zero or negative means due now.
func (p *Port[U]) nextDue(now time.Time) time.Duration {
	if p.lastPoll.IsZero() {
		return 0
	}
	return p.interval - now.Sub(p.lastPoll)
}
