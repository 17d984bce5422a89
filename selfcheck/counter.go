package selfcheck

import "sync"

// Counter is a uint64 that can be incremented from several goroutines.
type Counter struct {
	x  uint64
	mu *sync.Mutex
}

func NewCounter() *Counter {
	return &Counter{x: 0, mu: new(sync.Mutex)}
}

func (c *Counter) Get() uint64 {
	c.mu.Lock()
	x := c.x
	c.mu.Unlock()
	return x
}

func (c *Counter) Inc(y uint64) {
	c.mu.Lock()
	c.x += y
	c.mu.Unlock()
}
