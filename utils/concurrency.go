package utils

import (
	"sync"
	"time"
)

var (
	banLocks = make(map[string]time.Time)
	banMutex = &sync.Mutex{}
)

const banLockDuration = 5 * time.Minute

// CheckAndSetBanLock checks if a user is currently under a ban action lock.
// If not locked, it sets a new lock and returns true.
// If locked, it returns false.
func CheckAndSetBanLock(userID string) bool {
	banMutex.Lock()
	defer banMutex.Unlock()

	if lastBanTime, ok := banLocks[userID]; ok {
		if time.Since(lastBanTime) < banLockDuration {
			return false // Locked
		}
	}

	banLocks[userID] = time.Now()
	return true // Not locked, new lock set
}
