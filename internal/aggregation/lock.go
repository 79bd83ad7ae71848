package aggregation

import (
	"context"
	"sync"

	"github.com/carbonledger/backend/internal/models"
)

// keyLocks serializes work per user and month. Locks are created on
// demand and dropped when nobody holds or waits for them.
type keyLocks struct {
	mu    sync.Mutex
	locks map[models.Key]*keyLock
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[models.Key]*keyLock)}
}

// lock blocks until the key is free or the context is done.
func (k *keyLocks) lock(ctx context.Context, key models.Key) (func(), error) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{ch: make(chan struct{}, 1)}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	select {
	case l.ch <- struct{}{}:
		return func() {
			<-l.ch
			k.release(key, l)
		}, nil
	case <-ctx.Done():
		k.release(key, l)
		return nil, ctx.Err()
	}
}

func (k *keyLocks) release(key models.Key, l *keyLock) {
	k.mu.Lock()
	defer k.mu.Unlock()

	l.refs--
	if l.refs == 0 {
		delete(k.locks, key)
	}
}
