package cache

import (
	"sync"
	"time"
)

type item[V any] struct {
	value      V
	expiration int64
}

// Cache es un mapa en memoria con expiración por entrada.
// Es seguro para uso concurrente.
type Cache[V any] struct {
	items map[string]item[V]
	mu    sync.RWMutex
	ttl   time.Duration
	stop  chan struct{}
	once  sync.Once
}

// New crea un caché con TTL por defecto ttl. Si cleanupEvery > 0 arranca una
// goroutine que limpia las entradas expiradas; se detiene con Close.
func New[V any](ttl, cleanupEvery time.Duration) *Cache[V] {
	c := &Cache[V]{
		items: make(map[string]item[V]),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}
	if cleanupEvery > 0 {
		go c.cleanupExpired(cleanupEvery)
	}
	return c
}

// Set guarda un valor en caché
func (c *Cache[V]) Set(key string, value V, ttl ...time.Duration) {
	duration := c.ttl
	if len(ttl) > 0 {
		duration = ttl[0]
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = item[V]{
		value:      value,
		expiration: time.Now().Add(duration).UnixNano(),
	}
}

// Get obtiene un valor no expirado
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero V
	it, found := c.items[key]
	if !found {
		return zero, false
	}
	if time.Now().UnixNano() > it.expiration {
		return zero, false
	}
	return it.value, true
}

// Close detiene la limpieza periódica
func (c *Cache[V]) Close() {
	c.once.Do(func() { close(c.stop) })
}

func (c *Cache[V]) cleanupExpired(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

func (c *Cache[V]) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for key, it := range c.items {
		if now > it.expiration {
			delete(c.items, key)
		}
	}
}
