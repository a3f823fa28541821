package cart

import (
	"context"
	"io"
	"log"
	"sync"
)

// Manager hands out one rehydrated Store per cart key. Each client
// installation uses a single fixed key, so the manager acts as the session
// registry: the first request for a key loads the persisted cart, later
// requests get the same live store.
type Manager struct {
	newPersister func(key string) Persister
	logger       *log.Logger

	mu         sync.Mutex
	stores     map[string]*Store
	persisters map[string]Persister
}

func NewManager(newPersister func(key string) Persister, logger *log.Logger) *Manager {
	return &Manager{
		newPersister: newPersister,
		logger:       logger,
		stores:       make(map[string]*Store),
		persisters:   make(map[string]Persister),
	}
}

// Get returns the live store for the key, creating and rehydrating it on
// first use.
func (m *Manager) Get(ctx context.Context, key string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[key]; ok {
		return s
	}

	p := m.newPersister(key)
	s := NewStore(ctx, p, m.logger)
	m.stores[key] = s
	m.persisters[key] = p
	return s
}

// Close shuts down any persisters that own background resources.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for _, p := range m.persisters {
		if c, ok := p.(io.Closer); ok {
			if err := c.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
