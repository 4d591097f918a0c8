package errsync

import "sync"

// Once runs a function that can fail exactly once and remembers its error.
// Unlike sync.Once it can be Reset so the function runs again.
type Once struct {
	mu   sync.Mutex
	done bool
	err  error
}

// Do calls fn if it has not been called since the last Reset and returns the
// error fn returned the time it ran.
func (o *Once) Do(fn func() error) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.done {
		return o.err
	}

	o.err = fn()
	o.done = true

	return o.err
}

// Reset forgets the previous call.
func (o *Once) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.done = false
	o.err = nil
}
