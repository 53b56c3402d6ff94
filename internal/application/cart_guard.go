package application

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// keyedGuard serializes work per key. Entries are dropped once no caller
// holds or waits on them.
type keyedGuard struct {
	mu      sync.Mutex
	entries map[string]*guardEntry
}

type guardEntry struct {
	sem  *semaphore.Weighted
	refs int
}

func newKeyedGuard() *keyedGuard {
	return &keyedGuard{entries: map[string]*guardEntry{}}
}

func (g *keyedGuard) Acquire(ctx context.Context, key string) (func(), error) {
	g.mu.Lock()
	entry, ok := g.entries[key]
	if !ok {
		entry = &guardEntry{sem: semaphore.NewWeighted(1)}
		g.entries[key] = entry
	}
	entry.refs++
	g.mu.Unlock()

	if err := entry.sem.Acquire(ctx, 1); err != nil {
		g.unref(key, entry)
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			entry.sem.Release(1)
			g.unref(key, entry)
		})
	}, nil
}

func (g *keyedGuard) unref(key string, entry *guardEntry) {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry.refs--
	if entry.refs == 0 && g.entries[key] == entry {
		delete(g.entries, key)
	}
}
