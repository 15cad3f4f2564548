package assetstore

import (
	"sync"
)

// operationType defines whether an operation is read or write.
type operationType int

const (
	// readOperation indicates an operation that only reads data.
	// Multiple read operations can proceed concurrently.
	readOperation operationType = iota

	// writeOperation indicates an operation that modifies data.
	// Write operations are exclusive.
	writeOperation
)

// lockManager centralizes the locking strategy of the store so every method
// takes the right kind of lock and releases it on every path.
type lockManager struct {
	mu *sync.RWMutex
}

func newLockManager() *lockManager {
	return &lockManager{
		mu: &sync.RWMutex{},
	}
}

// execute runs fn holding a read lock or the write lock depending on opType.
// The lock is released via defer, even if fn panics.
func (lm *lockManager) execute(opType operationType, fn func() error) error {
	switch opType {
	case readOperation:
		lm.mu.RLock()
		defer lm.mu.RUnlock()
	case writeOperation:
		lm.mu.Lock()
		defer lm.mu.Unlock()
	}
	return fn()
}

// read runs fn under a read lock and returns its result
func read[T any](lm *lockManager, fn func() T) T {
	var out T
	_ = lm.execute(readOperation, func() error {
		out = fn()
		return nil
	})
	return out
}
