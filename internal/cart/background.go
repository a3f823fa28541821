package cart

import (
	"context"
	"log"
	"sync"
)

// BackgroundPersister decorates a Persister so that Save becomes
// fire-and-forget: snapshots are handed to a single writer goroutine and the
// caller returns immediately. Only the latest snapshot matters, so queued
// writes coalesce; an unflushed intermediate state is simply superseded.
// Write failures are logged and dropped (at-most-once durability).
type BackgroundPersister struct {
	inner  Persister
	logger *log.Logger

	mu      sync.Mutex
	pending []LineItem
	dirty   bool
	closed  bool

	wake chan struct{}
	done chan struct{}
}

func NewBackgroundPersister(inner Persister, logger *log.Logger) *BackgroundPersister {
	b := &BackgroundPersister{
		inner:  inner,
		logger: logger,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go b.run()
	return b
}

func (b *BackgroundPersister) Load(ctx context.Context) ([]LineItem, error) {
	return b.inner.Load(ctx)
}

// Save records the snapshot and returns immediately. It never reports an
// error; the eventual write outcome is only observable in the log.
func (b *BackgroundPersister) Save(_ context.Context, items []LineItem) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.pending = items
	b.dirty = true
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
	return nil
}

// Close stops the writer and flushes any snapshot still pending.
func (b *BackgroundPersister) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.mu.Unlock()

	close(b.wake)
	<-b.done
	b.flush()
	return nil
}

func (b *BackgroundPersister) run() {
	defer close(b.done)
	for range b.wake {
		b.flush()
	}
}

func (b *BackgroundPersister) flush() {
	b.mu.Lock()
	if !b.dirty {
		b.mu.Unlock()
		return
	}
	items := b.pending
	b.dirty = false
	b.mu.Unlock()

	if err := b.inner.Save(context.Background(), items); err != nil {
		b.logger.Printf("cart background save failed: %v", err)
	}
}
