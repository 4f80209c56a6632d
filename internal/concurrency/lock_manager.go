package concurrency

import (
	"strings"
	"sync"
)

// LockManager hands out one mutex per user key so that read-check-debit-commit
// sequences for the same user never interleave.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for key. Keys are case-insensitive emails.
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(strings.ToLower(key), &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the mutex for key and returns its unlock function.
func (lm *LockManager) Lock(key string) func() {
	m := lm.GetLock(key)
	m.Lock()
	return m.Unlock
}

// TryLock acquires the mutex for key only when it is free.
func (lm *LockManager) TryLock(key string) (func(), bool) {
	m := lm.GetLock(key)
	if !m.TryLock() {
		return nil, false
	}
	return m.Unlock, true
}
