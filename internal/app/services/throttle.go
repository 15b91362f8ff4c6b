package services

import (
	"sync"
	"time"
)

// MayProceed reports whether a client may perform a rate-limited action again,
// given the timestamp of its most recent prior record. A client with no prior
// record always passes. The boundary is strict: exactly cooldown elapsed is
// still too soon.
func MayProceed(last *time.Time, cooldown time.Duration, now time.Time) bool {
	if last == nil {
		return true
	}
	return now.Sub(*last) > cooldown
}

// keyedMutex serializes the throttle check and the subsequent insert per
// client address, so two concurrent submissions from one address cannot both
// observe "no recent record".
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
