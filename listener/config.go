package listener

import "time"

// DefaultPollTimeout bounds Poll calls when the builder is not told
// otherwise.
const DefaultPollTimeout = 10 * time.Millisecond

// Cfg accumulates listener configuration fluently:
//
//	l, err := listener.NewCfg[MyEvent]().
//		Port(src, 10*time.Millisecond).
//		TickInterval(time.Second).
//		Start()
//
// Ports fire in registration order within a worker iteration.
type Cfg[U comparable] struct {
	ports        []*Port[U]
	pollTimeout  time.Duration
	tickInterval time.Duration
	stopTimeout  time.Duration
}

// NewCfg returns a builder with the default poll timeout, no ports and no
// tick schedule.
func NewCfg[U comparable]() *Cfg[U] {
	return &Cfg[U]{pollTimeout: DefaultPollTimeout}
}

// PollTimeout sets the upper bound for every Poll call.
func (c *Cfg[U]) PollTimeout(d time.Duration) *Cfg[U] {
	c.pollTimeout = d
	return c
}

// TickInterval enables the periodic Tick event. Zero disables it.
func (c *Cfg[U]) TickInterval(d time.Duration) *Cfg[U] {
	c.tickInterval = d
	return c
}

// StopTimeout bounds how long Stop waits for the worker to exit before
// returning ErrCouldNotStop. Zero (the default) waits indefinitely, which
// matches the contract that Pollers are non-blocking.
func (c *Cfg[U]) StopTimeout(d time.Duration) *Cfg[U] {
	c.stopTimeout = d
	return c
}

// Port registers a source with its own polling interval.
func (c *Cfg[U]) Port(src Poller[U], interval time.Duration) *Cfg[U] {
	c.ports = append(c.ports, NewPort(src, interval))
	return c
}

// AddPort registers an already-constructed port.
func (c *Cfg[U]) AddPort(p *Port[U]) *Cfg[U] {
	c.ports = append(c.ports, p)
	return c
}

// Start spawns the listener. See Start for the validation rules.
func (c *Cfg[U]) Start() (*Listener[U], error) {
	return start(c.ports, c.pollTimeout, c.tickInterval, c.stopTimeout)
}
