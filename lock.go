package main

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// acquireLock takes the single-instance lock. Two daemons polling the same
// pointer would double-fire every arrival.
func acquireLock(dir string) (*flock.Flock, error) {
	lock := flock.New(filepath.Join(dir, "hotedge.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another hotedge instance is running (lock %s)", lock.Path())
	}
	return lock, nil
}
