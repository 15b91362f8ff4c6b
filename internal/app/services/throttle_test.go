package services

import (
	"sync"
	"testing"
	"time"
)

func TestMayProceedFirstTimeAlwaysPasses(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, cooldown := range []time.Duration{0, time.Second, time.Minute, 5 * time.Minute} {
		if !MayProceed(nil, cooldown, now) {
			t.Fatalf("expected no prior record to pass for cooldown %s", cooldown)
		}
	}
}

func TestMayProceedStrictBoundary(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cooldown := 5 * time.Minute

	tests := []struct {
		name    string
		elapsed time.Duration
		want    bool
	}{
		{name: "well inside cooldown", elapsed: 10 * time.Second, want: false},
		{name: "one second before boundary", elapsed: cooldown - time.Second, want: false},
		{name: "exactly at boundary", elapsed: cooldown, want: false},
		{name: "one nanosecond past boundary", elapsed: cooldown + time.Nanosecond, want: true},
		{name: "well past boundary", elapsed: cooldown + time.Hour, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			last := base
			got := MayProceed(&last, cooldown, base.Add(tc.elapsed))
			if got != tc.want {
				t.Fatalf("MayProceed(elapsed=%s) = %v, want %v", tc.elapsed, got, tc.want)
			}
		})
	}
}

func TestKeyedMutexSerializesPerKey(t *testing.T) {
	t.Parallel()

	locks := newKeyedMutex()

	var counter int
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock("10.0.0.1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("expected 50 serialized increments, got %d", counter)
	}
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	t.Parallel()

	locks := newKeyedMutex()

	unlockA := locks.lock("10.0.0.1")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.lock("10.0.0.2")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key should not block")
	}
}
