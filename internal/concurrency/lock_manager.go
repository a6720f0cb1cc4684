package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per account ID so mutations to a single
// user's record serialize while unrelated users proceed in parallel. There
// is deliberately no global lock.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given account ID, creating it on first use.
func (lm *LockManager) GetLock(id uint64) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(id, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
