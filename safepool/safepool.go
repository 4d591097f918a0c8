package safepool

import "sync"

// A Pool is a type-safe wrapper around a sync.Pool.
type Pool[T any] struct {
	p *sync.Pool
}

// NewPool constructs a new Pool. newFn is called whenever Get finds the pool
// empty and must return a fresh value each time.
func NewPool[T any](newFn func() *T) Pool[T] {
	return Pool[T]{p: &sync.Pool{
		New: func() any {
			return newFn()
		},
	}}
}

// Get retrieves a *T from the pool, creating one if necessary.
func (p Pool[T]) Get() *T {
	return p.p.Get().(*T)
}

// Put adds t to the pool. Callers reset t before putting it back.
func (p Pool[T]) Put(t *T) {
	p.p.Put(t)
}
