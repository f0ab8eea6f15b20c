package application

import "sync"

// Cell holds a value and notifies subscribers on every write. Subscribers run
// synchronously on the writing goroutine, in registration order, after the
// value has been stored, so they may read the cell themselves.
type Cell[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   []subscription[T]
}

type subscription[T any] struct {
	id int
	fn func(T)
}

// NewCell creates a Cell holding initial. No subscriber is notified of the
// initial value.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set stores v and notifies every subscriber, even when v equals the
// previous value.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	subs := make([]subscription[T], len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Update replaces the value with fn applied to the current value.
func (c *Cell[T]) Update(fn func(T) T) {
	c.Set(fn(c.Get()))
}

// Subscribe registers fn to be called with each new value. The returned
// function removes the subscription; calling it more than once is harmless.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.subs = append(c.subs, subscription[T]{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Derived is a read-only value computed from a Cell. The result is cached
// and recomputed on the first Get after the source changes.
type Derived[T, R any] struct {
	source  *Cell[T]
	compute func(T) R

	mu    sync.Mutex
	valid bool
	value R
}

// NewDerived creates a Derived value over source.
func NewDerived[T, R any](source *Cell[T], compute func(T) R) *Derived[T, R] {
	d := &Derived[T, R]{source: source, compute: compute}
	source.Subscribe(func(T) { d.invalidate() })
	return d
}

// Get returns compute applied to the source's current value.
func (d *Derived[T, R]) Get() R {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.valid {
		d.value = d.compute(d.source.Get())
		d.valid = true
	}
	return d.value
}

func (d *Derived[T, R]) invalidate() {
	d.mu.Lock()
	d.valid = false
	d.mu.Unlock()
}
