package listener

import "sync"

// ctrlFlag is a shared boolean crossing the listener/worker boundary.
// The listener writes, the worker only reads. The two flags (running,
// paused) are guarded independently so pausing never contends with
// stopping.
type ctrlFlag struct {
	mu sync.RWMutex
	v  bool
}

func newCtrlFlag(v bool) *ctrlFlag {
	return &ctrlFlag{v: v}
}

func (f *ctrlFlag) set(v bool) {
	f.mu.Lock()
	f.v = v
	f.mu.Unlock()
}

func (f *ctrlFlag) get() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.v
}
