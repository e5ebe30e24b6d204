package listener

import "errors"

// The listener surfaces a closed set of failure kinds. Callers match them
// with errors.Is; wrapped variants carry additional context.
var (
	// ErrCouldNotStart means the listener rejected its construction
	// parameters or failed to establish the worker's shared state.
	// No background goroutine exists when Start returns this.
	ErrCouldNotStart = errors.New("could not start event listener")

	// ErrCouldNotStop means a stop request could not observe worker
	// termination. The caller must not assume the worker has exited.
	ErrCouldNotStop = errors.New("could not stop event listener")

	// ErrListenerDied means the worker ended and the message channel is
	// closed. The listener is unusable; Poll must not be called again.
	ErrListenerDied = errors.New("event listener has died")

	// ErrPollFailed means a single source's Poll call failed. The failure
	// is isolated: the worker and the other sources keep running.
	ErrPollFailed = errors.New("poll call returned an error")
)
