package listener

import "github.com/zjrosen/eventide/event"

// Poller is the capability a Port drives: a single non-blocking check for a
// new event. Implementations are supplied by input backend adapters (see
// adapters/) or by applications with custom event producers.
//
// Poll must return promptly. The worker calls it inline from its single
// scheduling goroutine, so a Poller that blocks stalls every other port and
// can delay shutdown indefinitely. That obligation is on the implementer;
// the worker does not defend against it.
//
// Returns (nil, nil) when no event is pending, the event when one was read,
// or an error when polling failed. Errors surface to the consumer as
// ErrPollFailed, once per occurrence, without stopping the worker.
//
// A Poller is never called concurrently with itself: the worker invokes each
// source at most once per loop iteration from one goroutine.
type Poller[U comparable] interface {
	Poll() (*event.Event[U], error)
}
