// Package ratelimit implements per-user sliding-window admission control.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter bounds the number of actions per user within a trailing window.
// State is in-memory only; restarts reset the windows, which is acceptable
// for an abuse-mitigation control.
type Limiter struct {
	windows  map[string][]time.Time
	nowFn    func() time.Time
	width    time.Duration
	capacity int
	mu       sync.Mutex
}

// NewLimiter creates a limiter admitting at most capacity actions per user
// within the given window width.
func NewLimiter(width time.Duration, capacity int) *Limiter {
	if width <= 0 {
		width = time.Minute
	}
	if capacity <= 0 {
		capacity = 10
	}

	return &Limiter{
		windows:  make(map[string][]time.Time),
		nowFn:    time.Now,
		width:    width,
		capacity: capacity,
	}
}

// Admit prunes timestamps older than the window, rejects when the user is
// at capacity, and otherwise records the action and allows it.
func (l *Limiter) Admit(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFn()
	cutoff := now.Add(-l.width)

	window := l.windows[userID]
	pruned := window[:0]
	for _, ts := range window {
		if ts.After(cutoff) {
			pruned = append(pruned, ts)
		}
	}

	if len(pruned) >= l.capacity {
		l.windows[userID] = pruned
		return false
	}

	l.windows[userID] = append(pruned, now)
	return true
}

// Remaining reports how many actions the user has left in the current
// window without recording one.
func (l *Limiter) Remaining(userID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.nowFn().Add(-l.width)
	count := 0
	for _, ts := range l.windows[userID] {
		if ts.After(cutoff) {
			count++
		}
	}

	remaining := l.capacity - count
	if remaining < 0 {
		return 0
	}
	return remaining
}
