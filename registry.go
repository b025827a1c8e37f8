package codable

import "sync"

var (
	registry   = make(map[string]*Codec)
	registryMu sync.RWMutex
)

// Use returns a cached Codec for the parser's content type, building one on
// first use. Later calls with a different parser of the same content type get
// the cached codec.
func Use(parser Parser) *Codec {
	key := parser.ContentType()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached
	}

	c := New(parser)
	registry[key] = c
	return c
}

// Reset clears the codec cache.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]*Codec)
}
