package generation

import (
	"context"
	"errors"
	"sync"
)

// ClientCache lazily builds a Transport on first use and reuses it for every
// later call with the same credential. A failed construction is not cached,
// so a later call with a valid credential still succeeds. A different
// credential replaces the cached transport. The cache lives for the process
// and is never torn down.
type ClientCache struct {
	factory TransportFactory

	mu        sync.Mutex
	key       string
	transport Transport
}

// NewClientCache creates a cache around factory.
func NewClientCache(factory TransportFactory) *ClientCache {
	return &ClientCache{factory: factory}
}

// Get returns the transport for apiKey, constructing it if needed.
func (c *ClientCache) Get(ctx context.Context, apiKey string) (Transport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transport != nil && c.key == apiKey {
		return c.transport, nil
	}

	t, err := c.factory(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.New("transport factory returned nil transport")
	}

	c.key = apiKey
	c.transport = t
	return t, nil
}

// Cached reports whether a transport has been constructed.
func (c *ClientCache) Cached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transport != nil
}
